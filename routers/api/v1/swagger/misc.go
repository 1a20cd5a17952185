// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package swagger holds the response shapes referenced by the
// swagger:operation comments on the API handlers. Nothing in here is
// executed; the types only feed the spec generator.
package swagger

import (
	api "github.com/taskbrd/taskbrd/modules/structs"
)

// ServerVersion
// swagger:response ServerVersion
type swaggerResponseServerVersion struct {
	// in:body
	Body api.ServerVersion `json:"body"`
}

// MessageResponse
// swagger:response MessageResponse
type swaggerResponseMessage struct {
	// in:body
	Body struct {
		Message string `json:"message"`
	} `json:"body"`
}

// APIError is an api error with a message
// swagger:response error
type swaggerResponseError struct {
	// in:body
	Body api.APIError `json:"body"`
}

// APIValidationError is an error the input validation raised
// swagger:response validationError
type swaggerResponseValidationError struct {
	// in:body
	Body api.APIError `json:"body"`
}

// APIUnauthorizedError is an error for a missing or unusable token
// swagger:response unauthorized
type swaggerResponseUnauthorized struct {
	// in:body
	Body api.APIError `json:"body"`
}

// APIForbiddenError is an error for an authenticated but not permitted doer
// swagger:response forbidden
type swaggerResponseForbidden struct {
	// in:body
	Body api.APIError `json:"body"`
}

// APINotFound is a not found empty response
// swagger:response notFound
type swaggerResponseNotFound struct{}

// APIEmpty is an empty response
// swagger:response empty
type swaggerResponseEmpty struct{}
