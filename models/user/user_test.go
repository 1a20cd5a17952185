// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package user_test

import (
	"testing"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/models/unittest"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/util"

	"github.com/stretchr/testify/assert"
)

func TestGetUserByID(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	u, err := user_model.GetUserByID(db.DefaultContext, 2)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice Keller", u.FullName)

	_, err = user_model.GetUserByID(db.DefaultContext, unittest.NonexistentID)
	assert.Error(t, err)
	assert.True(t, user_model.IsErrUserNotExist(err))
}

func TestGetUserByEmail(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	u, err := user_model.GetUserByEmail(db.DefaultContext, "bob@example.com")
	assert.NoError(t, err)
	assert.EqualValues(t, 3, u.ID)

	// lookup is case-insensitive
	u, err = user_model.GetUserByEmail(db.DefaultContext, "BOB@Example.COM")
	assert.NoError(t, err)
	assert.EqualValues(t, 3, u.ID)

	_, err = user_model.GetUserByEmail(db.DefaultContext, "nobody@example.com")
	assert.True(t, user_model.IsErrUserNotExist(err))

	_, err = user_model.GetUserByEmail(db.DefaultContext, "")
	assert.True(t, user_model.IsErrUserNotExist(err))
}

func TestIsEmailUsed(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	used, err := user_model.IsEmailUsed(db.DefaultContext, "alice@example.com")
	assert.NoError(t, err)
	assert.True(t, used)

	used, err = user_model.IsEmailUsed(db.DefaultContext, "ALICE@example.com")
	assert.NoError(t, err)
	assert.True(t, used)

	used, err = user_model.IsEmailUsed(db.DefaultContext, "free@example.com")
	assert.NoError(t, err)
	assert.False(t, used)
}

func TestCreateUser(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	u := &user_model.User{
		Email:    "Eve.Martin@Example.com",
		FullName: "Eve Martin",
	}
	assert.NoError(t, u.SetPassword("correct horse battery"))
	assert.NoError(t, user_model.CreateUser(db.DefaultContext, u))
	assert.Positive(t, u.ID)
	assert.Equal(t, "eve.martin@example.com", u.LowerEmail)

	unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: u.ID})
	unittest.CheckConsistencyFor(t, &user_model.User{})
}

func TestCreateUser_duplicateEmail(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	u := &user_model.User{
		Email:    "ALICE@example.com",
		FullName: "Another Alice",
		Passwd:   "x",
	}
	err := user_model.CreateUser(db.DefaultContext, u)
	assert.Error(t, err)
	assert.True(t, user_model.IsErrEmailAlreadyUsed(err))
	assert.ErrorIs(t, err, util.ErrAlreadyExist)
}

func TestCreateUser_invalidEmail(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	for _, email := range []string{"", "not-an-address", "a b@example.com"} {
		err := user_model.CreateUser(db.DefaultContext, &user_model.User{Email: email, Passwd: "x"})
		assert.True(t, user_model.IsErrEmailInvalid(err), "email %q", email)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, user_model.ValidateEmail("user@example.com"))
	assert.Error(t, user_model.ValidateEmail(""))
	assert.Error(t, user_model.ValidateEmail("no-at-sign"))
}

func TestSetPassword(t *testing.T) {
	u := &user_model.User{}
	assert.NoError(t, u.SetPassword("s3cret-enough"))
	assert.NotEqual(t, "s3cret-enough", u.Passwd)
	assert.True(t, u.ValidatePassword("s3cret-enough"))
	assert.False(t, u.ValidatePassword("wrong"))
}

func TestDisplayName(t *testing.T) {
	u := &user_model.User{Email: "x@example.com", FullName: "X Ample"}
	assert.Equal(t, "X Ample", u.DisplayName())

	u.FullName = "  "
	assert.Equal(t, "x@example.com", u.DisplayName())
}

func TestGetUserByIDs(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	users, err := user_model.GetUserByIDs(db.DefaultContext, []int64{3, 2, unittest.NonexistentID})
	assert.NoError(t, err)
	if assert.Len(t, users, 2) {
		assert.EqualValues(t, 2, users[0].ID)
		assert.EqualValues(t, 3, users[1].ID)
	}
}

func TestSearchUsers(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	testSuccess := func(opts *user_model.SearchUserOptions, expectedIDs []int64) {
		users, count, err := user_model.SearchUsers(db.DefaultContext, opts)
		assert.NoError(t, err)
		assert.EqualValues(t, len(expectedIDs), count)
		ids := make([]int64, len(users))
		for i, u := range users {
			ids[i] = u.ID
		}
		assert.Equal(t, expectedIDs, ids)
	}

	testSuccess(&user_model.SearchUserOptions{Keyword: "alice@example.com"}, []int64{2})
	testSuccess(&user_model.SearchUserOptions{Keyword: "ALICE@EXAMPLE.COM"}, []int64{2})
	testSuccess(&user_model.SearchUserOptions{Keyword: "fischer"}, []int64{3})
	testSuccess(&user_model.SearchUserOptions{Keyword: "example.com"}, []int64{1, 2, 3, 4, 5})
	testSuccess(&user_model.SearchUserOptions{Keyword: "nothing-matches"}, []int64{})
	testSuccess(&user_model.SearchUserOptions{IsAdmin: true}, []int64{1})
}

func TestUpdateUserCols(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	u := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 4})
	u.FullName = "Charles Zhang"
	u.IsAdmin = true
	assert.NoError(t, user_model.UpdateUserCols(db.DefaultContext, u, "full_name"))

	updated := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 4})
	assert.Equal(t, "Charles Zhang", updated.FullName)
	// is_admin was not in the column list
	assert.False(t, updated.IsAdmin)
}

func TestCountUsers(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	count, err := user_model.CountUsers(db.DefaultContext)
	assert.NoError(t, err)
	assert.EqualValues(t, 5, count)
}
