// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package auth

import (
	"net/http"

	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/web/middleware"
)

// DataStore represents a data store
type DataStore middleware.DataStore

// Method represents an authentication method (plugin) for HTTP requests.
type Method interface {
	// Verify tries to verify the authentication data contained in the request.
	// If verification is successful returns the existing user object.
	// Returns (nil, nil) when the request carries no authentication data at
	// all, and a non-nil error when it carries data that does not check out.
	Verify(req *http.Request, w http.ResponseWriter, store DataStore) (*user_model.User, error)
}

// Named represents a named thing
type Named interface {
	Name() string
}
