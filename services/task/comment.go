// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"context"

	task_model "github.com/taskbrd/taskbrd/models/task"
	user_model "github.com/taskbrd/taskbrd/models/user"
)

// CreateComment appends a comment to a task on a board the doer is a member
// of. The author is always the doer, whatever the request claims.
func CreateComment(ctx context.Context, doer *user_model.User, taskID int64, content string) (*task_model.Comment, error) {
	t, err := getTaskForDoer(ctx, doer, taskID)
	if err != nil {
		return nil, err
	}

	c := &task_model.Comment{
		TaskID:   t.ID,
		AuthorID: doer.ID,
		Author:   doer,
		Content:  content,
	}
	if err := task_model.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListComments returns the comments of a task, newest first.
func ListComments(ctx context.Context, doer *user_model.User, taskID int64) (task_model.CommentList, error) {
	t, err := getTaskForDoer(ctx, doer, taskID)
	if err != nil {
		return nil, err
	}
	return task_model.FindComments(ctx, t.ID)
}
