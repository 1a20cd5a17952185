// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package middleware holds types shared between the route layer and the
// request contexts.
package middleware

// DataStore represents a data store
type DataStore interface {
	GetData() map[string]any
}
