// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package swagger

import (
	api "github.com/taskbrd/taskbrd/modules/structs"
)

// User
// swagger:response User
type swaggerResponseUser struct {
	// in:body
	Body api.User `json:"body"`
}

// UserList
// swagger:response UserList
type swaggerResponseUserList struct {
	// in:body
	Body []api.User `json:"body"`
}

// AuthToken
// swagger:response AuthToken
type swaggerResponseAuthToken struct {
	// in:body
	Body api.AuthToken `json:"body"`
}
