// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package board implements board operations on behalf of an acting user.
// Every call loads its target first, consults the authorization guard and
// only then touches the store, so an absent board is reported as not found
// even to users who could not have accessed it.
package board

import (
	"context"
	"fmt"

	board_model "github.com/taskbrd/taskbrd/models/board"
	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/models/perm"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/container"
	"github.com/taskbrd/taskbrd/modules/util"
)

// ErrUnknownMembers is returned when a member list names users that do not
// exist.
type ErrUnknownMembers struct {
	MissingIDs []int64
}

// IsErrUnknownMembers checks if an error is an ErrUnknownMembers.
func IsErrUnknownMembers(err error) bool {
	_, ok := err.(ErrUnknownMembers)
	return ok
}

func (err ErrUnknownMembers) Error() string {
	return fmt.Sprintf("unknown board members [ids: %v]", err.MissingIDs)
}

// Unwrap unwraps this error as a ErrInvalidArgument error
func (err ErrUnknownMembers) Unwrap() error {
	return util.ErrInvalidArgument
}

// checkMemberIDs verifies that every id in the list belongs to an existing
// user. Duplicates are fine, the membership table squashes them anyway.
func checkMemberIDs(ctx context.Context, memberIDs []int64) error {
	if len(memberIDs) == 0 {
		return nil
	}
	users, err := user_model.GetUserByIDs(ctx, memberIDs)
	if err != nil {
		return err
	}
	found := make(container.Set[int64], len(users))
	for _, u := range users {
		found.Add(u.ID)
	}
	missing := make(container.Set[int64], 0)
	for _, id := range memberIDs {
		if !found.Contains(id) {
			missing.Add(id)
		}
	}
	if len(missing) > 0 {
		return ErrUnknownMembers{MissingIDs: missing.Values()}
	}
	return nil
}

// Create creates a board owned by the doer. The doer becomes a member no
// matter what the member list says; every listed id must be an existing user.
func Create(ctx context.Context, doer *user_model.User, title string, memberIDs []int64) (*board_model.Board, error) {
	if err := checkMemberIDs(ctx, memberIDs); err != nil {
		return nil, err
	}

	b := &board_model.Board{
		Title:   title,
		OwnerID: doer.ID,
	}
	if err := db.WithTx(ctx, func(ctx context.Context) error {
		if err := board_model.NewBoard(ctx, b); err != nil {
			return err
		}
		if len(memberIDs) > 0 {
			return board_model.SetBoardMembers(ctx, b, memberIDs)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return b, nil
}

// Get returns a board the doer may view.
func Get(ctx context.Context, doer *user_model.User, boardID int64) (*board_model.Board, error) {
	b, err := board_model.GetBoardByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := perm.CheckBoardReadable(ctx, b, doer); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns the boards the doer is a member of, in stable id order.
func List(ctx context.Context, doer *user_model.User) ([]*board_model.Board, error) {
	return board_model.FindBoards(ctx, board_model.SearchOptions{MemberID: doer.ID})
}

// UpdateOptions are the changes Update applies. Nil fields are left alone.
type UpdateOptions struct {
	Title *string
	// MemberIDs replaces the whole member set when present. The owner is
	// re-added regardless of the list content.
	MemberIDs *[]int64
}

// Update renames a board and/or replaces its member set. Owner only.
func Update(ctx context.Context, doer *user_model.User, boardID int64, opts UpdateOptions) (*board_model.Board, error) {
	b, err := board_model.GetBoardByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := perm.CheckBoardAdmin(ctx, b, doer); err != nil {
		return nil, err
	}
	if opts.MemberIDs != nil {
		if err := checkMemberIDs(ctx, *opts.MemberIDs); err != nil {
			return nil, err
		}
	}

	if err := db.WithTx(ctx, func(ctx context.Context) error {
		if opts.Title != nil {
			if err := board_model.UpdateBoardTitle(ctx, b, *opts.Title); err != nil {
				return err
			}
		}
		if opts.MemberIDs != nil {
			return board_model.SetBoardMembers(ctx, b, *opts.MemberIDs)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return b, nil
}

// AddMember adds a user to the board. Owner only. Adding someone twice is a
// no-op.
func AddMember(ctx context.Context, doer *user_model.User, boardID, userID int64) error {
	b, err := board_model.GetBoardByID(ctx, boardID)
	if err != nil {
		return err
	}
	if err := perm.CheckBoardAdmin(ctx, b, doer); err != nil {
		return err
	}
	u, err := user_model.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	return board_model.AddBoardMember(ctx, b.ID, u.ID)
}

// RemoveMember removes a user from the board. Owner only; removing the owner
// is rejected.
func RemoveMember(ctx context.Context, doer *user_model.User, boardID, userID int64) error {
	b, err := board_model.GetBoardByID(ctx, boardID)
	if err != nil {
		return err
	}
	if err := perm.CheckBoardAdmin(ctx, b, doer); err != nil {
		return err
	}
	return board_model.RemoveBoardMember(ctx, b, userID)
}

// Members returns the member roster of a board the doer may view.
func Members(ctx context.Context, doer *user_model.User, boardID int64) ([]*user_model.User, error) {
	b, err := Get(ctx, doer, boardID)
	if err != nil {
		return nil, err
	}
	return board_model.GetBoardMembers(ctx, b.ID)
}
