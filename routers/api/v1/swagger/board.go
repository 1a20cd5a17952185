// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package swagger

import (
	api "github.com/taskbrd/taskbrd/modules/structs"
)

// Board
// swagger:response Board
type swaggerResponseBoard struct {
	// in:body
	Body api.Board `json:"body"`
}

// BoardList
// swagger:response BoardList
type swaggerResponseBoardList struct {
	// in:body
	Body []api.Board `json:"body"`
}

// BoardDetail
// swagger:response BoardDetail
type swaggerResponseBoardDetail struct {
	// in:body
	Body api.BoardDetail `json:"body"`
}

// BoardUpdateResponse
// swagger:response BoardUpdateResponse
type swaggerResponseBoardUpdateResponse struct {
	// in:body
	Body api.BoardUpdateResponse `json:"body"`
}
