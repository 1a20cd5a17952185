// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package auth implements request authentication and the account lifecycle:
// registration, sign-in and sign-out. Every successful registration or
// sign-in mints a fresh access token; sign-out revokes the token the request
// was made with.
package auth

import (
	"context"
	"fmt"

	auth_model "github.com/taskbrd/taskbrd/models/auth"
	"github.com/taskbrd/taskbrd/models/db"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/modules/util"
)

// ErrInvalidCredentials is returned on sign-in when the email is unknown or
// the password does not match. The two cases are deliberately not told apart.
type ErrInvalidCredentials struct{}

// IsErrInvalidCredentials checks if an error is an ErrInvalidCredentials.
func IsErrInvalidCredentials(err error) bool {
	_, ok := err.(ErrInvalidCredentials)
	return ok
}

func (err ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// Unwrap unwraps this error as a ErrInvalidArgument error
func (err ErrInvalidCredentials) Unwrap() error {
	return util.ErrInvalidArgument
}

// ErrPasswordTooShort represents a rejected registration password.
type ErrPasswordTooShort struct {
	MinLength int
}

// IsErrPasswordTooShort checks if an error is an ErrPasswordTooShort.
func IsErrPasswordTooShort(err error) bool {
	_, ok := err.(ErrPasswordTooShort)
	return ok
}

func (err ErrPasswordTooShort) Error() string {
	return fmt.Sprintf("password must be at least %d characters long", err.MinLength)
}

// Unwrap unwraps this error as a ErrInvalidArgument error
func (err ErrPasswordTooShort) Unwrap() error {
	return util.ErrInvalidArgument
}

// Register creates a new user account and issues its first access token.
func Register(ctx context.Context, email, fullName, password string) (*user_model.User, *auth_model.AccessToken, error) {
	if len(password) < setting.MinPasswordLength {
		return nil, nil, ErrPasswordTooShort{MinLength: setting.MinPasswordLength}
	}

	u := &user_model.User{
		Email:    email,
		FullName: fullName,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, nil, err
	}

	t := &auth_model.AccessToken{}
	if err := db.WithTx(ctx, func(ctx context.Context) error {
		if err := user_model.CreateUser(ctx, u); err != nil {
			return err
		}
		t.UID = u.ID
		return auth_model.NewAccessToken(ctx, t)
	}); err != nil {
		return nil, nil, err
	}
	return u, t, nil
}

// UserSignIn validates an email and password pair and, on success, issues a
// fresh access token for the user. Tokens are stored hashed, so sign-in never
// re-hands-out an existing one.
func UserSignIn(ctx context.Context, email, password string) (*user_model.User, *auth_model.AccessToken, error) {
	u, err := user_model.GetUserByEmail(ctx, email)
	if err != nil {
		if user_model.IsErrUserNotExist(err) {
			return nil, nil, ErrInvalidCredentials{}
		}
		return nil, nil, err
	}
	if !u.ValidatePassword(password) {
		return nil, nil, ErrInvalidCredentials{}
	}

	t := &auth_model.AccessToken{UID: u.ID}
	if err := auth_model.NewAccessToken(ctx, t); err != nil {
		return nil, nil, err
	}
	return u, t, nil
}

// UserSignOut revokes the access token the request authenticated with.
func UserSignOut(ctx context.Context, doer *user_model.User, tokenID int64) error {
	return auth_model.DeleteAccessTokenByID(ctx, tokenID, doer.ID)
}
