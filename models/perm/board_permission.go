// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package perm

import (
	"context"
	"fmt"

	board_model "github.com/taskbrd/taskbrd/models/board"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/util"
)

// ErrBoardAccessDenied represents a denied board access for a user.
type ErrBoardAccessDenied struct {
	UserID  int64
	BoardID int64
}

// IsErrBoardAccessDenied checks if an error is a ErrBoardAccessDenied
func IsErrBoardAccessDenied(err error) bool {
	_, ok := err.(ErrBoardAccessDenied)
	return ok
}

func (err ErrBoardAccessDenied) Error() string {
	return fmt.Sprintf("user is not allowed to access the board [user_id: %d, board_id: %d]", err.UserID, err.BoardID)
}

func (err ErrBoardAccessDenied) Unwrap() error {
	return util.ErrPermissionDenied
}

// Permission contains the calculated access level of a user on a board
type Permission struct {
	AccessMode AccessMode
}

// IsOwner returns true if the user owns the board
func (p *Permission) IsOwner() bool {
	return p.AccessMode >= AccessModeOwner
}

// CanRead returns true if the user may view the board, its tasks and comments
func (p *Permission) CanRead() bool {
	return p.AccessMode >= AccessModeMember
}

// CanWriteTasks returns true if the user may create and edit the board's
// tasks and comment on them. Every member may.
func (p *Permission) CanWriteTasks() bool {
	return p.AccessMode >= AccessModeMember
}

// CanAdmin returns true if the user may rename the board, change its member
// set or delete it. Only the owner may.
func (p *Permission) CanAdmin() bool {
	return p.AccessMode >= AccessModeOwner
}

// GetBoardPermission derives the user's access mode on a board from the
// owner column and the membership relation
func GetBoardPermission(ctx context.Context, b *board_model.Board, user *user_model.User) (perm Permission, err error) {
	if user == nil {
		return Permission{AccessMode: AccessModeNone}, nil
	}
	if b.IsOwner(user.ID) {
		return Permission{AccessMode: AccessModeOwner}, nil
	}

	isMember, err := board_model.IsBoardMember(ctx, b.ID, user.ID)
	if err != nil {
		return perm, err
	}
	if isMember {
		return Permission{AccessMode: AccessModeMember}, nil
	}
	return Permission{AccessMode: AccessModeNone}, nil
}

// CheckBoardReadable returns ErrBoardAccessDenied unless the user may view
// the board. Call it only after the board was loaded: a missing board is
// "not found", never "denied".
func CheckBoardReadable(ctx context.Context, b *board_model.Board, user *user_model.User) error {
	perm, err := GetBoardPermission(ctx, b, user)
	if err != nil {
		return err
	}
	if !perm.CanRead() {
		return ErrBoardAccessDenied{UserID: userID(user), BoardID: b.ID}
	}
	return nil
}

// CheckBoardTasksWritable returns ErrBoardAccessDenied unless the user may
// work with the board's tasks and comments
func CheckBoardTasksWritable(ctx context.Context, b *board_model.Board, user *user_model.User) error {
	perm, err := GetBoardPermission(ctx, b, user)
	if err != nil {
		return err
	}
	if !perm.CanWriteTasks() {
		return ErrBoardAccessDenied{UserID: userID(user), BoardID: b.ID}
	}
	return nil
}

// CheckBoardAdmin returns ErrBoardAccessDenied unless the user owns the board
func CheckBoardAdmin(ctx context.Context, b *board_model.Board, user *user_model.User) error {
	perm, err := GetBoardPermission(ctx, b, user)
	if err != nil {
		return err
	}
	if !perm.CanAdmin() {
		return ErrBoardAccessDenied{UserID: userID(user), BoardID: b.ID}
	}
	return nil
}

func userID(user *user_model.User) int64 {
	if user == nil {
		return 0
	}
	return user.ID
}
