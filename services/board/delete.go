// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package board

import (
	"context"

	board_model "github.com/taskbrd/taskbrd/models/board"
	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/models/perm"
	task_model "github.com/taskbrd/taskbrd/models/task"
	user_model "github.com/taskbrd/taskbrd/models/user"

	"xorm.io/builder"
)

// Delete removes a board with everything on it. Owner only. The cascade runs
// comments, then tasks, then membership rows, then the board itself, all in
// one transaction.
func Delete(ctx context.Context, doer *user_model.User, boardID int64) error {
	b, err := board_model.GetBoardByID(ctx, boardID)
	if err != nil {
		return err
	}
	if err := perm.CheckBoardAdmin(ctx, b, doer); err != nil {
		return err
	}

	return db.WithTx(ctx, func(ctx context.Context) error {
		e := db.GetEngine(ctx)

		if _, err := e.Where(builder.In("task_id",
			builder.Select("id").From("task").Where(builder.Eq{"board_id": b.ID}),
		)).Delete(&task_model.Comment{}); err != nil {
			return err
		}
		if _, err := e.Where("board_id = ?", b.ID).Delete(&task_model.Task{}); err != nil {
			return err
		}
		if _, err := e.Where("board_id = ?", b.ID).Delete(&board_model.BoardMember{}); err != nil {
			return err
		}
		_, err := e.ID(b.ID).Delete(&board_model.Board{})
		return err
	})
}
