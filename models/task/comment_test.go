// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"testing"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/models/unittest"
	"github.com/taskbrd/taskbrd/modules/util"

	"github.com/stretchr/testify/assert"
)

func TestCreateComment(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	c := &Comment{TaskID: 2, AuthorID: 3, Content: "LGTM"}
	assert.NoError(t, CreateComment(db.DefaultContext, c))
	assert.Positive(t, c.ID)

	unittest.AssertExistsAndLoadBean(t, &Comment{ID: c.ID, TaskID: 2, AuthorID: 3})
	unittest.CheckConsistencyFor(t, &Comment{})
}

func TestCreateComment_emptyContent(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	for _, content := range []string{"", "   ", "\n\t"} {
		err := CreateComment(db.DefaultContext, &Comment{TaskID: 2, AuthorID: 3, Content: content})
		assert.Error(t, err, "content %q", content)
		assert.ErrorIs(t, err, util.ErrInvalidArgument)
	}
	unittest.AssertCount(t, &Comment{}, 4)
}

func TestFindComments(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	comments, err := FindComments(db.DefaultContext, 1)
	assert.NoError(t, err)
	if assert.Len(t, comments, 3) {
		// newest first, the created_unix tie between 2 and 3 broken by id
		assert.EqualValues(t, 3, comments[0].ID)
		assert.EqualValues(t, 2, comments[1].ID)
		assert.EqualValues(t, 1, comments[2].ID)
	}
	for i := 1; i < len(comments); i++ {
		assert.LessOrEqual(t, comments[i].CreatedUnix, comments[i-1].CreatedUnix)
	}

	comments, err = FindComments(db.DefaultContext, unittest.NonexistentID)
	assert.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentList_LoadAuthors(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	comments, err := FindComments(db.DefaultContext, 1)
	assert.NoError(t, err)
	assert.NoError(t, comments.LoadAuthors(db.DefaultContext))

	for _, c := range comments {
		if assert.NotNil(t, c.Author, "comment %d", c.ID) {
			assert.Equal(t, c.AuthorID, c.Author.ID)
		}
	}
}

func TestCountComments(t *testing.T) {
	assert.NoError(t, unittest.PrepareTestDatabase())

	for _, tc := range []struct {
		taskID   int64
		expected int64
	}{{1, 3}, {2, 0}, {4, 1}, {unittest.NonexistentID, 0}} {
		count, err := CountComments(db.DefaultContext, tc.taskID)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, count, "task %d", tc.taskID)
	}
}
