// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// Task represents a task as exposed by the API. Assignee and reviewer are
// resolved accounts and may be null; due_date uses the YYYY-MM-DD form and
// is null when the task carries no deadline.
// swagger:model
type Task struct {
	ID int64 `json:"id"`
	// id of the board the task lives on
	BoardID     int64  `json:"board"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// one of: to-do, in-progress, review, done
	Status string `json:"status"`
	// one of: low, medium, high
	Priority string `json:"priority"`
	Assignee *User  `json:"assignee"`
	Reviewer *User  `json:"reviewer"`
	// swagger:strfmt date
	DueDate *string `json:"due_date"`
	// number of comments on the task
	CommentsCount int64 `json:"comments_count"`
}

// CreateTaskOption is the request body for creating a task
type CreateTaskOption struct {
	// id of the board the task is created on
	// required: true
	BoardID int64 `json:"board" binding:"Required"`
	// required: true
	Title       string `json:"title" binding:"Required;MaxSize(250)"`
	Description string `json:"description"`
	// defaults to to-do when empty
	Status string `json:"status" binding:"In(,to-do,in-progress,review,done)"`
	// defaults to medium when empty
	Priority   string `json:"priority" binding:"In(,low,medium,high)"`
	AssigneeID *int64 `json:"assignee_id"`
	ReviewerID *int64 `json:"reviewer_id"`
	// swagger:strfmt date
	DueDate *string `json:"due_date"`
}

// EditTaskOption is the request body for changing a task. Absent fields are
// left untouched; status and priority are validated by the task registry so
// that edits through any transport face the same rules. The board of a task
// cannot be changed.
type EditTaskOption struct {
	Title       *string `json:"title" binding:"MaxSize(250)"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	// pass 0 to clear the assignee
	AssigneeID *int64 `json:"assignee_id"`
	// pass 0 to clear the reviewer
	ReviewerID *int64 `json:"reviewer_id"`
	// pass an empty string to clear the due date
	// swagger:strfmt date
	DueDate *string `json:"due_date"`
}
