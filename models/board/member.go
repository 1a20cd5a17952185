// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package board

import (
	"context"
	"fmt"

	"github.com/taskbrd/taskbrd/models/db"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/container"
	"github.com/taskbrd/taskbrd/modules/timeutil"
	"github.com/taskbrd/taskbrd/modules/util"
)

// BoardMember represents the relation between an individual and a board.
// The board owner always has a row here.
type BoardMember struct {
	ID          int64              `xorm:"pk autoincr"`
	BoardID     int64              `xorm:"UNIQUE(s) INDEX NOT NULL"`
	UserID      int64              `xorm:"UNIQUE(s) INDEX NOT NULL"`
	CreatedUnix timeutil.TimeStamp `xorm:"INDEX created"`
}

func init() {
	db.RegisterModel(new(BoardMember))
}

// ErrOwnerMemberRemoval is returned when trying to remove the board owner
// from the board's member set.
type ErrOwnerMemberRemoval struct {
	BoardID int64
	UserID  int64
}

// IsErrOwnerMemberRemoval checks if an error is a ErrOwnerMemberRemoval
func IsErrOwnerMemberRemoval(err error) bool {
	_, ok := err.(ErrOwnerMemberRemoval)
	return ok
}

func (err ErrOwnerMemberRemoval) Error() string {
	return fmt.Sprintf("cannot remove board owner from members [board_id: %d, user_id: %d]", err.BoardID, err.UserID)
}

func (err ErrOwnerMemberRemoval) Unwrap() error {
	return util.ErrInvalidOperation
}

// IsBoardMember checks if a user is a member of the board
func IsBoardMember(ctx context.Context, boardID, userID int64) (bool, error) {
	return db.GetEngine(ctx).Get(&BoardMember{BoardID: boardID, UserID: userID})
}

// GetBoardMemberIDs returns the user ids of the board's members, ordered by
// when they joined
func GetBoardMemberIDs(ctx context.Context, boardID int64) ([]int64, error) {
	ids := make([]int64, 0, 8)
	return ids, db.GetEngine(ctx).Table("board_member").
		Where("board_id = ?", boardID).
		Asc("id").
		Cols("user_id").
		Find(&ids)
}

// GetBoardMembers returns the member users of the board
func GetBoardMembers(ctx context.Context, boardID int64) ([]*user_model.User, error) {
	ids, err := GetBoardMemberIDs(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return user_model.GetUserByIDs(ctx, ids)
}

// CountBoardMembers returns the total number of members of a board
func CountBoardMembers(ctx context.Context, boardID int64) (int64, error) {
	return db.GetEngine(ctx).Where("board_id = ?", boardID).Count(&BoardMember{})
}

// AddBoardMember adds the user to the board's member set. Adding a user who
// is a member already is a no-op.
func AddBoardMember(ctx context.Context, boardID, userID int64) error {
	return db.AutoTx(ctx, func(ctx context.Context) error {
		has, err := IsBoardMember(ctx, boardID, userID)
		if err != nil {
			return err
		} else if has {
			return nil
		}
		return db.Insert(ctx, &BoardMember{BoardID: boardID, UserID: userID})
	})
}

// RemoveBoardMember removes the user from the board's member set. The owner
// can never be removed.
func RemoveBoardMember(ctx context.Context, b *Board, userID int64) error {
	if b.IsOwner(userID) {
		return ErrOwnerMemberRemoval{BoardID: b.ID, UserID: userID}
	}
	_, err := db.GetEngine(ctx).Delete(&BoardMember{BoardID: b.ID, UserID: userID})
	return err
}

// SetBoardMembers replaces the board's member set with the given users. The
// owner is re-added unconditionally.
func SetBoardMembers(ctx context.Context, b *Board, userIDs []int64) error {
	return db.AutoTx(ctx, func(ctx context.Context) error {
		if _, err := db.GetEngine(ctx).Delete(&BoardMember{BoardID: b.ID}); err != nil {
			return err
		}

		seen := make(container.Set[int64], len(userIDs)+1)
		members := make([]*BoardMember, 0, len(userIDs)+1)
		for _, uid := range append([]int64{b.OwnerID}, userIDs...) {
			if !seen.Add(uid) {
				continue
			}
			members = append(members, &BoardMember{BoardID: b.ID, UserID: uid})
		}
		return db.Insert(ctx, members)
	})
}
