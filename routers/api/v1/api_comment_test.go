// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package v1_test

import (
	"net/http"
	"testing"

	task_model "github.com/taskbrd/taskbrd/models/task"
	"github.com/taskbrd/taskbrd/models/unittest"
	api "github.com/taskbrd/taskbrd/modules/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIListComments(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/1/comments"), tokenAlice)
	resp := MakeRequest(t, req, http.StatusOK)

	var comments []*api.Comment
	DecodeJSON(t, resp, &comments)
	require.Len(t, comments, 3)
	// newest first, ties broken by id descending
	assert.EqualValues(t, 3, comments[0].ID)
	assert.EqualValues(t, 2, comments[1].ID)
	assert.EqualValues(t, 1, comments[2].ID)
	assert.Equal(t, "Bob Fischer", comments[0].Author)
	assert.Equal(t, "Alice Keller", comments[2].Author)
	assert.Equal(t, "Done, please review.", comments[0].Content)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/4/comments"), tokenAlice)
	MakeRequest(t, req, http.StatusForbidden)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/99/comments"), tokenAlice)
	MakeRequest(t, req, http.StatusNotFound)
}

func TestAPICreateComment(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := NewRequestWithJSON(t, "POST", "/api/v1/tasks/2/comments", &api.CreateCommentOption{
		Content: "LGTM",
	})
	addTokenAuth(req, tokenBob)
	resp := MakeRequest(t, req, http.StatusCreated)

	var comment api.Comment
	DecodeJSON(t, resp, &comment)
	assert.Equal(t, "LGTM", comment.Content)
	assert.Equal(t, "Bob Fischer", comment.Author)
	assert.False(t, comment.Created.IsZero())
	unittest.AssertExistsAndLoadBean(t, &task_model.Comment{ID: comment.ID, TaskID: 2, AuthorID: 3})

	t.Run("EmptyContent", func(t *testing.T) {
		req := NewRequestWithJSON(t, "POST", "/api/v1/tasks/2/comments", &api.CreateCommentOption{})
		addTokenAuth(req, tokenBob)
		MakeRequest(t, req, http.StatusBadRequest)

		req = NewRequestWithJSON(t, "POST", "/api/v1/tasks/2/comments", &api.CreateCommentOption{
			Content: "   ",
		})
		addTokenAuth(req, tokenBob)
		MakeRequest(t, req, http.StatusBadRequest)
	})

	t.Run("Denied", func(t *testing.T) {
		req := NewRequestWithJSON(t, "POST", "/api/v1/tasks/4/comments", &api.CreateCommentOption{
			Content: "Not on my board",
		})
		addTokenAuth(req, tokenBob)
		MakeRequest(t, req, http.StatusForbidden)

		req = NewRequestWithJSON(t, "POST", "/api/v1/tasks/99/comments", &api.CreateCommentOption{
			Content: "Ghost task",
		})
		addTokenAuth(req, tokenBob)
		MakeRequest(t, req, http.StatusNotFound)
	})
}
