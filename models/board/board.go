// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package board holds the board model and its membership relation. A board is
// owned by exactly one user; the owner is also kept as a member row at all
// times so that membership queries never need to special-case the owner.
package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskbrd/taskbrd/models/db"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/timeutil"
	"github.com/taskbrd/taskbrd/modules/util"

	"xorm.io/builder"
)

// BoardTitleMaxLen is the longest accepted board title
const BoardTitleMaxLen = 250

// ErrBoardNotExist represents a "BoardNotExist" kind of error.
type ErrBoardNotExist struct {
	ID int64
}

// IsErrBoardNotExist checks if an error is a ErrBoardNotExist
func IsErrBoardNotExist(err error) bool {
	_, ok := err.(ErrBoardNotExist)
	return ok
}

func (err ErrBoardNotExist) Error() string {
	return fmt.Sprintf("board does not exist [id: %d]", err.ID)
}

func (err ErrBoardNotExist) Unwrap() error {
	return util.ErrNotExist
}

// Board represents a task board shared by its members
type Board struct {
	ID      int64            `xorm:"pk autoincr"`
	Title   string           `xorm:"INDEX NOT NULL"`
	OwnerID int64            `xorm:"INDEX NOT NULL"`
	Owner   *user_model.User `xorm:"-"`

	CreatedUnix timeutil.TimeStamp `xorm:"INDEX created"`
	UpdatedUnix timeutil.TimeStamp `xorm:"INDEX updated"`
}

func init() {
	db.RegisterModel(new(Board))
}

// LoadOwner loads the owner user once and caches it on the board
func (b *Board) LoadOwner(ctx context.Context) (err error) {
	if b.Owner != nil {
		return nil
	}
	b.Owner, err = user_model.GetUserByID(ctx, b.OwnerID)
	return err
}

// IsOwner returns true if the given user id owns the board
func (b *Board) IsOwner(userID int64) bool {
	return b.OwnerID == userID
}

func validateBoardTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return util.NewInvalidArgumentErrorf("board title is empty")
	}
	if len(title) > BoardTitleMaxLen {
		return util.NewInvalidArgumentErrorf("board title is too long [max: %d]", BoardTitleMaxLen)
	}
	return nil
}

// NewBoard creates a new board for b.OwnerID. The owner's membership row is
// inserted in the same transaction.
func NewBoard(ctx context.Context, b *Board) error {
	if err := validateBoardTitle(b.Title); err != nil {
		return err
	}

	return db.AutoTx(ctx, func(ctx context.Context) error {
		if err := db.Insert(ctx, b); err != nil {
			return err
		}
		return db.Insert(ctx, &BoardMember{BoardID: b.ID, UserID: b.OwnerID})
	})
}

// GetBoardByID returns the board with the given id
func GetBoardByID(ctx context.Context, id int64) (*Board, error) {
	b := new(Board)

	has, err := db.GetEngine(ctx).ID(id).Get(b)
	if err != nil {
		return nil, err
	} else if !has {
		return nil, ErrBoardNotExist{ID: id}
	}

	return b, nil
}

// UpdateBoardTitle changes the board title
func UpdateBoardTitle(ctx context.Context, b *Board, title string) error {
	if err := validateBoardTitle(title); err != nil {
		return err
	}
	b.Title = title
	_, err := db.GetEngine(ctx).ID(b.ID).Cols("title").Update(b)
	return err
}

// SearchOptions are options for FindBoards
type SearchOptions struct {
	// MemberID filters to boards the user is a member of. The owner is always
	// a member, so this covers owned boards too.
	MemberID int64
	OwnerID  int64
}

func (opts *SearchOptions) toConds() builder.Cond {
	cond := builder.NewCond()
	if opts.MemberID > 0 {
		cond = cond.And(builder.In("id",
			builder.Select("board_id").From("board_member").Where(builder.Eq{"user_id": opts.MemberID})))
	}
	if opts.OwnerID > 0 {
		cond = cond.And(builder.Eq{"owner_id": opts.OwnerID})
	}
	return cond
}

// CountBoards counts boards
func CountBoards(ctx context.Context, opts SearchOptions) (int64, error) {
	return db.GetEngine(ctx).Where(opts.toConds()).Count(new(Board))
}

// FindBoards returns the matching boards in stable id order
func FindBoards(ctx context.Context, opts SearchOptions) ([]*Board, error) {
	boards := make([]*Board, 0, 10)
	return boards, db.GetEngine(ctx).Where(opts.toConds()).Asc("id").Find(&boards)
}
