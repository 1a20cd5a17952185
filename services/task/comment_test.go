// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package task_test

import (
	"testing"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/models/perm"
	task_model "github.com/taskbrd/taskbrd/models/task"
	"github.com/taskbrd/taskbrd/models/unittest"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/util"
	task_service "github.com/taskbrd/taskbrd/services/task"

	"github.com/stretchr/testify/assert"
)

func TestCreateComment(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())
	bob := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 3})

	c, err := task_service.CreateComment(db.DefaultContext, bob, 2, "Docs draft is up.")
	assert.NoError(t, err)
	// the author is always the doer
	assert.EqualValues(t, 3, c.AuthorID)
	unittest.AssertExistsAndLoadBean(t, &task_model.Comment{ID: c.ID, TaskID: 2, AuthorID: 3})

	_, err = task_service.CreateComment(db.DefaultContext, bob, 2, "   ")
	assert.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = task_service.CreateComment(db.DefaultContext, bob, 4, "not my board")
	assert.True(t, perm.IsErrBoardAccessDenied(err))

	_, err = task_service.CreateComment(db.DefaultContext, bob, 99, "ghost task")
	assert.True(t, task_model.IsErrTaskNotExist(err))
}

func TestListComments(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())
	alice := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 2})

	comments, err := task_service.ListComments(db.DefaultContext, alice, 1)
	assert.NoError(t, err)

	// newest first, creation ties broken by id
	if assert.Len(t, comments, 3) {
		assert.EqualValues(t, 3, comments[0].ID)
		assert.EqualValues(t, 2, comments[1].ID)
		assert.EqualValues(t, 1, comments[2].ID)
	}

	charlie := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 4})
	_, err = task_service.ListComments(db.DefaultContext, charlie, 1)
	assert.True(t, perm.IsErrBoardAccessDenied(err))
}
