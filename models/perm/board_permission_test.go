// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package perm_test

import (
	"testing"

	board_model "github.com/taskbrd/taskbrd/models/board"
	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/models/perm"
	"github.com/taskbrd/taskbrd/models/unittest"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/util"

	"github.com/stretchr/testify/assert"
)

func TestGetBoardPermission(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	board := unittest.AssertExistsAndLoadBean(t, &board_model.Board{ID: 1})
	owner := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 2})
	member := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 3})
	stranger := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 4})

	p, err := perm.GetBoardPermission(db.DefaultContext, board, owner)
	assert.NoError(t, err)
	assert.Equal(t, perm.AccessModeOwner, p.AccessMode)
	assert.True(t, p.IsOwner())
	assert.True(t, p.CanRead())
	assert.True(t, p.CanWriteTasks())
	assert.True(t, p.CanAdmin())

	p, err = perm.GetBoardPermission(db.DefaultContext, board, member)
	assert.NoError(t, err)
	assert.Equal(t, perm.AccessModeMember, p.AccessMode)
	assert.False(t, p.IsOwner())
	assert.True(t, p.CanRead())
	assert.True(t, p.CanWriteTasks())
	assert.False(t, p.CanAdmin())

	p, err = perm.GetBoardPermission(db.DefaultContext, board, stranger)
	assert.NoError(t, err)
	assert.Equal(t, perm.AccessModeNone, p.AccessMode)
	assert.False(t, p.CanRead())
	assert.False(t, p.CanWriteTasks())
	assert.False(t, p.CanAdmin())

	p, err = perm.GetBoardPermission(db.DefaultContext, board, nil)
	assert.NoError(t, err)
	assert.Equal(t, perm.AccessModeNone, p.AccessMode)
}

func TestCheckBoardReadable(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	board := unittest.AssertExistsAndLoadBean(t, &board_model.Board{ID: 1})
	member := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 3})
	stranger := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 4})

	assert.NoError(t, perm.CheckBoardReadable(db.DefaultContext, board, member))

	err := perm.CheckBoardReadable(db.DefaultContext, board, stranger)
	assert.Error(t, err)
	assert.True(t, perm.IsErrBoardAccessDenied(err))
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestCheckBoardTasksWritable(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	board := unittest.AssertExistsAndLoadBean(t, &board_model.Board{ID: 1})
	member := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 3})
	stranger := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 4})

	// any member may work with tasks, not just the owner
	assert.NoError(t, perm.CheckBoardTasksWritable(db.DefaultContext, board, member))
	assert.Error(t, perm.CheckBoardTasksWritable(db.DefaultContext, board, stranger))
}

func TestCheckBoardAdmin(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	board := unittest.AssertExistsAndLoadBean(t, &board_model.Board{ID: 1})
	owner := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 2})
	member := unittest.AssertExistsAndLoadBean(t, &user_model.User{ID: 3})

	assert.NoError(t, perm.CheckBoardAdmin(db.DefaultContext, board, owner))

	// plain members may not administrate
	err := perm.CheckBoardAdmin(db.DefaultContext, board, member)
	assert.Error(t, err)
	assert.True(t, perm.IsErrBoardAccessDenied(err))
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
}

func TestAccessMode_String(t *testing.T) {
	assert.Equal(t, "none", perm.AccessModeNone.String())
	assert.Equal(t, "member", perm.AccessModeMember.String())
	assert.Equal(t, "owner", perm.AccessModeOwner.String())
}
