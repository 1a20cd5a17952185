// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package auth_test

import (
	"testing"

	auth_model "github.com/taskbrd/taskbrd/models/auth"
	"github.com/taskbrd/taskbrd/models/db"
	unittest "github.com/taskbrd/taskbrd/models/unittest"
	user_model "github.com/taskbrd/taskbrd/models/user"
	auth_service "github.com/taskbrd/taskbrd/services/auth"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	u, token, err := auth_service.Register(db.DefaultContext, "eve@example.com", "Eve Novak", "long-enough-secret")
	assert.NoError(t, err)
	assert.Len(t, token.Token, 40)
	unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: u.ID, Email: "eve@example.com"})
	unittest.AssertExistsAndLoadBean(t, &auth_model.AccessToken{UID: u.ID})

	// the fresh account can sign in right away, case-insensitively
	again, _, err := auth_service.UserSignIn(db.DefaultContext, "EVE@example.com", "long-enough-secret")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
}

func TestRegisterPasswordTooShort(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	_, _, err := auth_service.Register(db.DefaultContext, "shorty@example.com", "Shorty", "tiny")
	assert.Error(t, err)
	assert.True(t, auth_service.IsErrPasswordTooShort(err))
	unittest.AssertNotExistsBean(t, &user_model.User{Email: "shorty@example.com"})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())
	before := unittest.GetCount(t, &user_model.User{})

	_, _, err := auth_service.Register(db.DefaultContext, "ALICE@example.com", "Impostor", "long-enough-secret")
	assert.Error(t, err)
	assert.True(t, user_model.IsErrEmailAlreadyUsed(err))
	assert.Equal(t, before, unittest.GetCount(t, &user_model.User{}))
}

func TestUserSignIn(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	u, token, err := auth_service.UserSignIn(db.DefaultContext, "alice@example.com", "password")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, u.ID)
	assert.EqualValues(t, 2, token.UID)
	assert.Len(t, token.Token, 40)

	// the plain value resolves to the stored row
	loaded, err := auth_model.GetAccessTokenBySHA(db.DefaultContext, token.Token)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, loaded.UID)

	// every sign-in issues a distinct token
	_, token2, err := auth_service.UserSignIn(db.DefaultContext, "alice@example.com", "password")
	assert.NoError(t, err)
	assert.NotEqual(t, token.Token, token2.Token)
}

func TestUserSignInInvalidCredentials(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	// wrong password and unknown email fail the same way
	_, _, err := auth_service.UserSignIn(db.DefaultContext, "alice@example.com", "not-the-password")
	assert.Error(t, err)
	assert.True(t, auth_service.IsErrInvalidCredentials(err))

	_, _, err = auth_service.UserSignIn(db.DefaultContext, "nobody@example.com", "password")
	assert.Error(t, err)
	assert.True(t, auth_service.IsErrInvalidCredentials(err))
}

func TestUserSignOut(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())
	doer := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 2})

	assert.NoError(t, auth_service.UserSignOut(db.DefaultContext, doer, 2))
	unittest.AssertNotExistsBean(t, &auth_model.AccessToken{ID: 2})

	// a token can only be revoked by its owner
	err := auth_service.UserSignOut(db.DefaultContext, doer, 1)
	assert.Error(t, err)
	assert.True(t, auth_model.IsErrAccessTokenNotExist(err))
	unittest.AssertExistsAndLoadBean(t, &auth_model.AccessToken{ID: 1})
}
