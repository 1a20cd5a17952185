// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package convert

import (
	"context"
	"time"

	task_model "github.com/taskbrd/taskbrd/models/task"
	api "github.com/taskbrd/taskbrd/modules/structs"
)

// ToTask converts a task_model.Task to api.Task. Unset assignee and reviewer
// come out as null, an unset due date as a null due_date.
func ToTask(ctx context.Context, t *task_model.Task) (*api.Task, error) {
	if err := t.LoadAssignee(ctx); err != nil {
		return nil, err
	}
	if err := t.LoadReviewer(ctx); err != nil {
		return nil, err
	}
	commentsCount, err := task_model.CountComments(ctx, t.ID)
	if err != nil {
		return nil, err
	}

	var dueDate *string
	if !t.DueUnix.IsZero() {
		// dates are stored and rendered in UTC so the wire value never
		// depends on the server timezone
		formatted := t.DueUnix.AsTimeInLocation(time.UTC).Format("2006-01-02")
		dueDate = &formatted
	}

	return &api.Task{
		ID:            t.ID,
		BoardID:       t.BoardID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		Assignee:      ToUser(t.Assignee),
		Reviewer:      ToUser(t.Reviewer),
		DueDate:       dueDate,
		CommentsCount: commentsCount,
	}, nil
}

// ToTasks converts a list of tasks to a list of api.Task
func ToTasks(ctx context.Context, tasks []*task_model.Task) ([]*api.Task, error) {
	result := make([]*api.Task, len(tasks))
	for i := range tasks {
		apiTask, err := ToTask(ctx, tasks[i])
		if err != nil {
			return nil, err
		}
		result[i] = apiTask
	}
	return result, nil
}

// ToComment converts a task_model.Comment to api.Comment. The author must be
// loaded beforehand; it is rendered as a display name only.
func ToComment(c *task_model.Comment) *api.Comment {
	comment := &api.Comment{
		ID:      c.ID,
		Created: c.CreatedUnix.AsTime(),
		Content: c.Content,
	}
	if c.Author != nil {
		comment.Author = c.Author.DisplayName()
	}
	return comment
}

// ToComments loads the authors of a comment list and converts it
func ToComments(ctx context.Context, comments task_model.CommentList) ([]*api.Comment, error) {
	if err := comments.LoadAuthors(ctx); err != nil {
		return nil, err
	}
	result := make([]*api.Comment, len(comments))
	for i := range comments {
		result[i] = ToComment(comments[i])
	}
	return result, nil
}
