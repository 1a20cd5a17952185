// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package structs

// RegisterOption is the request body for creating a new account
type RegisterOption struct {
	// swagger:strfmt email
	Email string `json:"email" binding:"Required;Email;MaxSize(254)"`
	// the full display name of the new account
	FullName string `json:"fullname" binding:"Required;MaxSize(100)"`
	Password string `json:"password" binding:"Required;MaxSize(255)"`
	// must match password exactly
	RepeatedPassword string `json:"repeated_password" binding:"Required;MaxSize(255)"`
}

// LoginOption is the request body for obtaining a session token
type LoginOption struct {
	// swagger:strfmt email
	Email    string `json:"email" binding:"Required;Email;MaxSize(254)"`
	Password string `json:"password" binding:"Required"`
}

// AuthToken is returned after a successful registration or login
// swagger:model
type AuthToken struct {
	Token string `json:"token"`
	// the full display name of the authenticated user
	FullName string `json:"fullname"`
	// swagger:strfmt email
	Email  string `json:"email"`
	UserID int64  `json:"user_id"`
}
