// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package convert turns models into their API representations. Everything
// the JSON layer hands out passes through here so that wire shapes are
// defined in exactly one place.
package convert

import (
	user_model "github.com/taskbrd/taskbrd/models/user"
	api "github.com/taskbrd/taskbrd/modules/structs"
)

// ToUser convert user_model.User to api.User
func ToUser(user *user_model.User) *api.User {
	if user == nil {
		return nil
	}
	return &api.User{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}

// ToUsers convert list of user_model.User to list of api.User
func ToUsers(users []*user_model.User) []*api.User {
	result := make([]*api.User, len(users))
	for i := range users {
		result[i] = ToUser(users[i])
	}
	return result
}
