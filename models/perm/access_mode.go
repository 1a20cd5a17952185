// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package perm answers the question "may this user touch this board" without
// mutating anything. Every registry consults it after loading its target and
// before applying an operation.
package perm

// AccessMode specifies the users access mode to a board
type AccessMode int

const (
	// AccessModeNone no access
	AccessModeNone AccessMode = iota // 0
	// AccessModeMember member access: view the board, work with its tasks and comments
	AccessModeMember // 1
	// AccessModeOwner owner access: everything a member may do, plus renaming,
	// membership changes and deletion
	AccessModeOwner // 2
)

func (mode AccessMode) String() string {
	switch mode {
	case AccessModeMember:
		return "member"
	case AccessModeOwner:
		return "owner"
	default:
		return "none"
	}
}
