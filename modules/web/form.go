// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package web

import (
	"github.com/taskbrd/taskbrd/modules/web/middleware"
)

const formKey = "__form"

// SetForm stores a validated form in the request's data store
func SetForm(dataStore middleware.DataStore, obj any) {
	dataStore.GetData()[formKey] = obj
}

// GetForm returns the validated form parsed by a preceding bind handler
func GetForm(dataStore middleware.DataStore) any {
	return dataStore.GetData()[formKey]
}
