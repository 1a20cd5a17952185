// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// ServerVersion wraps the version of the server
type ServerVersion struct {
	Version string `json:"version"`
}

// APIError is the shape of every error response
// swagger:model
type APIError struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
