// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package task implements task and comment operations on behalf of an acting
// user. The order of checks is fixed: load the task (or board) first, then
// ask the authorization guard, then touch the store.
package task

import (
	"context"
	"fmt"
	"time"

	board_model "github.com/taskbrd/taskbrd/models/board"
	"github.com/taskbrd/taskbrd/models/perm"
	task_model "github.com/taskbrd/taskbrd/models/task"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/timeutil"
	"github.com/taskbrd/taskbrd/modules/util"
)

// ErrUnknownTaskUser is returned when an assignee or reviewer id does not
// belong to an existing user.
type ErrUnknownTaskUser struct {
	Role   string
	UserID int64
}

// IsErrUnknownTaskUser checks if an error is an ErrUnknownTaskUser.
func IsErrUnknownTaskUser(err error) bool {
	_, ok := err.(ErrUnknownTaskUser)
	return ok
}

func (err ErrUnknownTaskUser) Error() string {
	return fmt.Sprintf("%s does not exist [user_id: %d]", err.Role, err.UserID)
}

// Unwrap unwraps this error as a ErrInvalidArgument error
func (err ErrUnknownTaskUser) Unwrap() error {
	return util.ErrInvalidArgument
}

// checkTaskUser verifies that the id names an existing user. Assignee and
// reviewer are deliberately not checked against board membership.
func checkTaskUser(ctx context.Context, role string, userID int64) error {
	_, err := user_model.GetUserByID(ctx, userID)
	if user_model.IsErrUserNotExist(err) {
		return ErrUnknownTaskUser{Role: role, UserID: userID}
	}
	return err
}

// parseDueDate parses the YYYY-MM-DD wire form. Dates are interpreted in UTC
// so the stored value never depends on the server timezone.
func parseDueDate(value string) (timeutil.TimeStamp, error) {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return 0, util.NewInvalidArgumentErrorf("invalid due date %q, expected YYYY-MM-DD", value)
	}
	return timeutil.TimeStamp(parsed.Unix()), nil
}

// getTaskForDoer loads a task and checks the doer's access to the board it
// lives on. A missing task is reported as not found before any access check.
func getTaskForDoer(ctx context.Context, doer *user_model.User, taskID int64) (*task_model.Task, error) {
	t, err := task_model.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	b, err := board_model.GetBoardByID(ctx, t.BoardID)
	if err != nil {
		return nil, err
	}
	if err := perm.CheckBoardTasksWritable(ctx, b, doer); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateOptions are the fields of a new task. Status and priority fall back
// to their defaults when empty.
type CreateOptions struct {
	BoardID     int64
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  *int64
	ReviewerID  *int64
	DueDate     *string
}

// Create creates a task on a board the doer is a member of. The board must
// exist; a missing board is not found, not denied.
func Create(ctx context.Context, doer *user_model.User, opts CreateOptions) (*task_model.Task, error) {
	b, err := board_model.GetBoardByID(ctx, opts.BoardID)
	if err != nil {
		return nil, err
	}
	if err := perm.CheckBoardTasksWritable(ctx, b, doer); err != nil {
		return nil, err
	}

	t := &task_model.Task{
		BoardID:     b.ID,
		Title:       opts.Title,
		Description: opts.Description,
		Status:      task_model.Status(opts.Status),
		Priority:    task_model.Priority(opts.Priority),
	}
	if opts.AssigneeID != nil && *opts.AssigneeID != 0 {
		if err := checkTaskUser(ctx, "assignee", *opts.AssigneeID); err != nil {
			return nil, err
		}
		t.AssigneeID = *opts.AssigneeID
	}
	if opts.ReviewerID != nil && *opts.ReviewerID != 0 {
		if err := checkTaskUser(ctx, "reviewer", *opts.ReviewerID); err != nil {
			return nil, err
		}
		t.ReviewerID = *opts.ReviewerID
	}
	if opts.DueDate != nil && *opts.DueDate != "" {
		due, err := parseDueDate(*opts.DueDate)
		if err != nil {
			return nil, err
		}
		t.DueUnix = due
	}

	if err := task_model.NewTask(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns a task on a board the doer is a member of.
func Get(ctx context.Context, doer *user_model.User, taskID int64) (*task_model.Task, error) {
	return getTaskForDoer(ctx, doer, taskID)
}

// UpdateOptions are the changes Update applies. Nil fields are left alone;
// assignee and reviewer are cleared by passing 0, the due date by passing an
// empty string.
type UpdateOptions struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *int64
	ReviewerID  *int64
	DueDate     *string
}

// Update edits a task on a board the doer is a member of. The board itself
// can never change.
func Update(ctx context.Context, doer *user_model.User, taskID int64, opts UpdateOptions) (*task_model.Task, error) {
	t, err := getTaskForDoer(ctx, doer, taskID)
	if err != nil {
		return nil, err
	}

	if opts.Title != nil {
		t.Title = *opts.Title
	}
	if opts.Description != nil {
		t.Description = *opts.Description
	}
	if opts.Status != nil {
		t.Status = task_model.Status(*opts.Status)
	}
	if opts.Priority != nil {
		t.Priority = task_model.Priority(*opts.Priority)
	}
	if opts.AssigneeID != nil {
		if *opts.AssigneeID != 0 {
			if err := checkTaskUser(ctx, "assignee", *opts.AssigneeID); err != nil {
				return nil, err
			}
		}
		t.AssigneeID = *opts.AssigneeID
		t.Assignee = nil
	}
	if opts.ReviewerID != nil {
		if *opts.ReviewerID != 0 {
			if err := checkTaskUser(ctx, "reviewer", *opts.ReviewerID); err != nil {
				return nil, err
			}
		}
		t.ReviewerID = *opts.ReviewerID
		t.Reviewer = nil
	}
	if opts.DueDate != nil {
		if *opts.DueDate == "" {
			t.DueUnix = 0
		} else {
			due, err := parseDueDate(*opts.DueDate)
			if err != nil {
				return nil, err
			}
			t.DueUnix = due
		}
	}

	if err := task_model.UpdateTask(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a task and its comments. Any member of the board may.
func Delete(ctx context.Context, doer *user_model.User, taskID int64) error {
	t, err := getTaskForDoer(ctx, doer, taskID)
	if err != nil {
		return err
	}
	return task_model.DeleteTaskByID(ctx, t.ID)
}

// ListAssigned returns the tasks assigned to the doer across all boards.
func ListAssigned(ctx context.Context, doer *user_model.User) ([]*task_model.Task, error) {
	return task_model.FindTasks(ctx, task_model.SearchOptions{AssigneeID: doer.ID})
}

// ListReviewing returns the tasks the doer reviews across all boards.
func ListReviewing(ctx context.Context, doer *user_model.User) ([]*task_model.Task, error) {
	return task_model.FindTasks(ctx, task_model.SearchOptions{ReviewerID: doer.ID})
}
