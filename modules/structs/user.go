// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package structs holds the API types exchanged over the wire. JSON field
// names follow the contract of the original frontend, so some of them differ
// from common Go spelling (fullname, ticket_count).
package structs

// User represents an account as exposed by the API
// swagger:model
type User struct {
	// the user's id
	ID int64 `json:"id"`
	// the user's email address
	// swagger:strfmt email
	Email string `json:"email"`
	// the user's full display name
	FullName string `json:"fullname"`
}
