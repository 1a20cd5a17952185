// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"context"
	"strings"

	"github.com/taskbrd/taskbrd/models/db"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/container"
	"github.com/taskbrd/taskbrd/modules/timeutil"
	"github.com/taskbrd/taskbrd/modules/util"
)

// Comment represents a remark left on a task. Comments are append-only:
// they are never edited or removed, only swept away with their task.
type Comment struct {
	ID       int64            `xorm:"pk autoincr"`
	TaskID   int64            `xorm:"INDEX NOT NULL"`
	AuthorID int64            `xorm:"INDEX NOT NULL"`
	Author   *user_model.User `xorm:"-"`
	Content  string           `xorm:"TEXT NOT NULL"`

	CreatedUnix timeutil.TimeStamp `xorm:"INDEX created"`
}

func init() {
	db.RegisterModel(new(Comment))
}

// CreateComment appends a comment to a task. The author is whoever the
// caller says it is; services force it to the acting user.
func CreateComment(ctx context.Context, c *Comment) error {
	if strings.TrimSpace(c.Content) == "" {
		return util.NewInvalidArgumentErrorf("comment content is empty")
	}
	return db.Insert(ctx, c)
}

// CommentList defines a list of comments
type CommentList []*Comment

// LoadAuthors loads the author of every comment in the list
func (comments CommentList) LoadAuthors(ctx context.Context) error {
	if len(comments) == 0 {
		return nil
	}

	authorIDs := container.FilterSlice(comments, func(c *Comment) (int64, bool) {
		return c.AuthorID, c.Author == nil && c.AuthorID > 0
	})

	authors, err := user_model.GetUserByIDs(ctx, authorIDs)
	if err != nil {
		return err
	}
	authorMap := make(map[int64]*user_model.User, len(authors))
	for _, author := range authors {
		authorMap[author.ID] = author
	}

	for _, comment := range comments {
		if comment.Author == nil {
			comment.Author = authorMap[comment.AuthorID]
		}
	}
	return nil
}

// FindComments returns the comments of a task, newest first. Ties on the
// creation time are broken by id, newest insert first.
func FindComments(ctx context.Context, taskID int64) (CommentList, error) {
	comments := make(CommentList, 0, 10)
	return comments, db.GetEngine(ctx).
		Where("task_id = ?", taskID).
		Desc("created_unix").
		Desc("id").
		Find(&comments)
}

// CountComments returns the number of comments on a task
func CountComments(ctx context.Context, taskID int64) (int64, error) {
	return db.GetEngine(ctx).Where("task_id = ?", taskID).Count(&Comment{})
}
