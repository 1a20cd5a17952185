// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

import (
	"time"
)

// Comment represents a comment on a task. Author is the full display name
// of the account that wrote it.
// swagger:model
type Comment struct {
	ID int64 `json:"id"`
	// swagger:strfmt date-time
	Created time.Time `json:"created_at"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
}

// CreateCommentOption is the request body for adding a comment to a task
type CreateCommentOption struct {
	// required: true
	Content string `json:"content" binding:"Required"`
}
