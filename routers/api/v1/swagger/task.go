// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package swagger

import (
	api "github.com/taskbrd/taskbrd/modules/structs"
)

// Task
// swagger:response Task
type swaggerResponseTask struct {
	// in:body
	Body api.Task `json:"body"`
}

// TaskList
// swagger:response TaskList
type swaggerResponseTaskList struct {
	// in:body
	Body []api.Task `json:"body"`
}

// Comment
// swagger:response Comment
type swaggerResponseComment struct {
	// in:body
	Body api.Comment `json:"body"`
}

// CommentList
// swagger:response CommentList
type swaggerResponseCommentList struct {
	// in:body
	Body []api.Comment `json:"body"`
}
