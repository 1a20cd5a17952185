// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package db

import (
	"errors"
)

// ErrAlreadyInTransaction is returned when a nested transaction is requested on a context that carries one
var ErrAlreadyInTransaction = errors.New("database connection has already been in a transaction")
