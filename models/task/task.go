// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package task holds the task and comment models. Tasks always belong to a
// board and never move between boards; comments always belong to a task.
package task

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

// Status is the workflow state of a task
type Status string

// enumerates all the states a task moves through
const (
	StatusToDo       Status = "to-do"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// IsValid checks if the status is one of the known states
func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusReview, StatusDone:
		return true
	default:
		return false
	}
}

// Priority is the urgency of a task
type Priority string

// enumerates all the task priorities
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is one of the known levels
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// TaskTitleMaxLen is the longest accepted task title
const TaskTitleMaxLen = 250

// ErrTaskNotExist represents a "TaskNotExist" kind of error.
type ErrTaskNotExist struct {
	ID int64
}

// IsErrTaskNotExist checks if an error is a ErrTaskNotExist
func IsErrTaskNotExist(err error) bool {
	_, ok := err.(ErrTaskNotExist)
	return ok
}

func (err ErrTaskNotExist) Error() string {
	return fmt.Sprintf("task does not exist [id: %d]", err.ID)
}

func (err ErrTaskNotExist) Unwrap() error {
	return util.ErrNotExist
}

// Task represents a unit of work on a board
type Task struct {
	ID          int64  `xorm:"pk autoincr"`
	BoardID     int64  `xorm:"INDEX NOT NULL"`
	Title       string `xorm:"NOT NULL"`
	Description string `xorm:"TEXT"`

	Status   Status   `xorm:"VARCHAR(20) INDEX NOT NULL"`
	Priority Priority `xorm:"VARCHAR(10) INDEX NOT NULL"`

	AssigneeID int64            `xorm:"INDEX"`
	Assignee   *user_model.User `xorm:"-"`
	ReviewerID int64            `xorm:"INDEX"`
	Reviewer   *user_model.User `xorm:"-"`

	DueUnix timeutil.TimeStamp `xorm:"INDEX"`

	CreatedUnix timeutil.TimeStamp `xorm:"INDEX created"`
	UpdatedUnix timeutil.TimeStamp `xorm:"INDEX updated"`
}

func init() {
	db.RegisterModel(new(Task))
}

// LoadAssignee loads the assignee user once and caches it on the task
func (t *Task) LoadAssignee(ctx context.Context) (err error) {
	if t.AssigneeID == 0 || t.Assignee != nil {
		return nil
	}
	t.Assignee, err = user_model.GetUserByID(ctx, t.AssigneeID)
	return err
}

// LoadReviewer loads the reviewer user once and caches it on the task
func (t *Task) LoadReviewer(ctx context.Context) (err error) {
	if t.ReviewerID == 0 || t.Reviewer != nil {
		return nil
	}
	t.Reviewer, err = user_model.GetUserByID(ctx, t.ReviewerID)
	return err
}

func validateTask(t *Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return util.NewInvalidArgumentErrorf("task title is empty")
	}
	if len(t.Title) > TaskTitleMaxLen {
		return util.NewInvalidArgumentErrorf("task title is too long [max: %d]", TaskTitleMaxLen)
	}
	if !t.Status.IsValid() {
		return util.NewInvalidArgumentErrorf("invalid task status %q", t.Status)
	}
	if !t.Priority.IsValid() {
		return util.NewInvalidArgumentErrorf("invalid task priority %q", t.Priority)
	}
	return nil
}

// NewTask creates a new task on t.BoardID. Status and priority fall back to
// their defaults when empty. The caller is responsible for checking that the
// board exists and that the doer may write to it.
func NewTask(ctx context.Context, t *Task) error {
	if t.Status == "" {
		t.Status = StatusToDo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if err := validateTask(t); err != nil {
		return err
	}
	return db.Insert(ctx, t)
}

// GetTaskByID returns the task with the given id
func GetTaskByID(ctx context.Context, id int64) (*Task, error) {
	t := new(Task)

	has, err := db.GetEngine(ctx).ID(id).Get(t)
	if err != nil {
		return nil, err
	} else if !has {
		return nil, ErrTaskNotExist{ID: id}
	}

	return t, nil
}

// UpdateTask updates the mutable columns of a task. The board id is not
// among them: tasks never move between boards.
func UpdateTask(ctx context.Context, t *Task) error {
	if err := validateTask(t); err != nil {
		return err
	}
	_, err := db.GetEngine(ctx).ID(t.ID).Cols(
		"title",
		"description",
		"status",
		"priority",
		"assignee_id",
		"reviewer_id",
		"due_unix",
	).Update(t)
	return err
}

// DeleteTaskByID removes the task and its comments in one transaction.
// Deleting an absent task is a no-op.
func DeleteTaskByID(ctx context.Context, id int64) error {
	return db.AutoTx(ctx, func(ctx context.Context) error {
		return db.DeleteBeans(ctx,
			&Comment{TaskID: id},
			&Task{ID: id},
		)
	})
}

// SearchOptions are options for FindTasks and CountTasks
type SearchOptions struct {
	BoardID    int64
	AssigneeID int64
	ReviewerID int64
	Status     Status
	Priority   Priority
}

func (opts *SearchOptions) toConds() builder.Cond {
	cond := builder.NewCond()
	if opts.BoardID > 0 {
		cond = cond.And(builder.Eq{"board_id": opts.BoardID})
	}
	if opts.AssigneeID > 0 {
		cond = cond.And(builder.Eq{"assignee_id": opts.AssigneeID})
	}
	if opts.ReviewerID > 0 {
		cond = cond.And(builder.Eq{"reviewer_id": opts.ReviewerID})
	}
	if opts.Status != "" {
		cond = cond.And(builder.Eq{"status": opts.Status})
	}
	if opts.Priority != "" {
		cond = cond.And(builder.Eq{"priority": opts.Priority})
	}
	return cond
}

// FindTasks returns the matching tasks in stable id order
func FindTasks(ctx context.Context, opts SearchOptions) ([]*Task, error) {
	tasks := make([]*Task, 0, 10)
	return tasks, db.GetEngine(ctx).Where(opts.toConds()).Asc("id").Find(&tasks)
}

// CountTasks counts the matching tasks. The board aggregates (total, to-do,
// high priority) are computed through this on every call, never cached.
func CountTasks(ctx context.Context, opts SearchOptions) (int64, error) {
	return db.GetEngine(ctx).Where(opts.toConds()).Count(new(Task))
}
