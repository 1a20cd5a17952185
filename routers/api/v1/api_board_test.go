// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package v1_test

import (
	"net/http"
	"testing"

	board_model "github.com/taskbrd/taskbrd/models/board"
	task_model "github.com/taskbrd/taskbrd/models/task"
	"github.com/taskbrd/taskbrd/models/unittest"
	api "github.com/taskbrd/taskbrd/modules/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIListBoards(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := addTokenAuth(NewRequest(t, "GET", "/api/v1/boards"), tokenAlice)
	resp := MakeRequest(t, req, http.StatusOK)

	var boards []*api.Board
	DecodeJSON(t, resp, &boards)
	require.Len(t, boards, 1)
	assert.Equal(t, "Sprint 1", boards[0].Title)
	assert.EqualValues(t, 2, boards[0].OwnerID)
	assert.EqualValues(t, 2, boards[0].MemberCount)
	assert.EqualValues(t, 3, boards[0].TicketCount)
	assert.EqualValues(t, 2, boards[0].TasksToDoCount)
	assert.EqualValues(t, 1, boards[0].TasksHighPrioCount)

	// the admin flag grants nothing: admin is on no board at all
	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/boards"), tokenAdmin)
	resp = MakeRequest(t, req, http.StatusOK)
	DecodeJSON(t, resp, &boards)
	assert.Empty(t, boards)
}

func TestAPICreateBoard(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := NewRequestWithJSON(t, "POST", "/api/v1/boards", &api.CreateBoardOption{
		Title:   "Q3 Planning",
		Members: []int64{1},
	})
	addTokenAuth(req, tokenBob)
	resp := MakeRequest(t, req, http.StatusCreated)

	var board api.Board
	DecodeJSON(t, resp, &board)
	assert.Equal(t, "Q3 Planning", board.Title)
	assert.EqualValues(t, 3, board.OwnerID)
	assert.EqualValues(t, 2, board.MemberCount)
	assert.Zero(t, board.TicketCount)

	unittest.AssertExistsAndLoadBean(t, &board_model.Board{ID: board.ID, OwnerID: 3})
	unittest.AssertExistsAndLoadBean(t, &board_model.BoardMember{BoardID: board.ID, UserID: 3})
	unittest.AssertExistsAndLoadBean(t, &board_model.BoardMember{BoardID: board.ID, UserID: 1})

	t.Run("UnknownMembers", func(t *testing.T) {
		req := NewRequestWithJSON(t, "POST", "/api/v1/boards", &api.CreateBoardOption{
			Title:   "Bad roster",
			Members: []int64{99},
		})
		addTokenAuth(req, tokenBob)
		MakeRequest(t, req, http.StatusBadRequest)
		unittest.AssertNotExistsBean(t, &board_model.Board{Title: "Bad roster"})
	})

	t.Run("MissingTitle", func(t *testing.T) {
		req := NewRequestWithJSON(t, "POST", "/api/v1/boards", map[string]any{
			"members": []int64{2},
		})
		addTokenAuth(req, tokenBob)
		MakeRequest(t, req, http.StatusBadRequest)
	})
}

func TestAPIGetBoard(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := addTokenAuth(NewRequest(t, "GET", "/api/v1/boards/1"), tokenAlice)
	resp := MakeRequest(t, req, http.StatusOK)

	var detail api.BoardDetail
	DecodeJSON(t, resp, &detail)
	assert.EqualValues(t, 1, detail.ID)
	assert.Equal(t, "Sprint 1", detail.Title)
	assert.EqualValues(t, 2, detail.OwnerID)
	require.Len(t, detail.Members, 2)
	assert.Equal(t, "Alice Keller", detail.Members[0].FullName)
	assert.Equal(t, "Bob Fischer", detail.Members[1].FullName)
	require.Len(t, detail.Tasks, 3)
	assert.Equal(t, "Set up CI", detail.Tasks[0].Title)
	require.NotNil(t, detail.Tasks[0].DueDate)
	assert.Equal(t, "2024-07-01", *detail.Tasks[0].DueDate)

	// members may read, everyone else may not
	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/boards/1"), tokenBob)
	MakeRequest(t, req, http.StatusOK)
	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/boards/2"), tokenAlice)
	MakeRequest(t, req, http.StatusForbidden)

	// a missing board is not found, not denied
	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/boards/99"), tokenAlice)
	MakeRequest(t, req, http.StatusNotFound)
}

func TestAPIEditBoard(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	// plain members cannot edit
	req := NewRequestWithJSON(t, "PATCH", "/api/v1/boards/1", map[string]any{
		"title": "Sprint One",
	})
	addTokenAuth(req, tokenBob)
	MakeRequest(t, req, http.StatusForbidden)

	req = NewRequestWithJSON(t, "PATCH", "/api/v1/boards/1", map[string]any{
		"title": "Sprint One",
	})
	addTokenAuth(req, tokenAlice)
	resp := MakeRequest(t, req, http.StatusOK)

	var updated api.BoardUpdateResponse
	DecodeJSON(t, resp, &updated)
	assert.Equal(t, "Sprint One", updated.Title)
	require.NotNil(t, updated.OwnerData)
	assert.EqualValues(t, 2, updated.OwnerData.ID)
	assert.Len(t, updated.MembersData, 2)

	t.Run("ReplaceMembers", func(t *testing.T) {
		req := NewRequestWithJSON(t, "PATCH", "/api/v1/boards/1", map[string]any{
			"members": []int64{3, 4},
		})
		addTokenAuth(req, tokenAlice)
		resp := MakeRequest(t, req, http.StatusOK)

		var updated api.BoardUpdateResponse
		DecodeJSON(t, resp, &updated)
		ids := make([]int64, 0, len(updated.MembersData))
		for _, m := range updated.MembersData {
			ids = append(ids, m.ID)
		}
		// the owner stays even though the new roster omits them
		assert.ElementsMatch(t, []int64{2, 3, 4}, ids)
	})

	t.Run("EmptyMembersKeepsOwner", func(t *testing.T) {
		req := NewRequestWithJSON(t, "PATCH", "/api/v1/boards/1", map[string]any{
			"members": []int64{},
		})
		addTokenAuth(req, tokenAlice)
		resp := MakeRequest(t, req, http.StatusOK)

		var updated api.BoardUpdateResponse
		DecodeJSON(t, resp, &updated)
		require.Len(t, updated.MembersData, 1)
		assert.EqualValues(t, 2, updated.MembersData[0].ID)
	})

	t.Run("UnknownMembers", func(t *testing.T) {
		req := NewRequestWithJSON(t, "PATCH", "/api/v1/boards/1", map[string]any{
			"members": []int64{99},
		})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusBadRequest)
	})
}

func TestAPIDeleteBoard(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := addTokenAuth(NewRequest(t, "DELETE", "/api/v1/boards/1"), tokenBob)
	MakeRequest(t, req, http.StatusForbidden)

	req = addTokenAuth(NewRequest(t, "DELETE", "/api/v1/boards/1"), tokenAlice)
	MakeRequest(t, req, http.StatusNoContent)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/boards/1"), tokenAlice)
	MakeRequest(t, req, http.StatusNotFound)

	// tasks and comments went with the board
	unittest.AssertNotExistsBean(t, &task_model.Task{BoardID: 1})
	unittest.AssertNotExistsBean(t, &task_model.Comment{TaskID: 1})
	unittest.AssertNotExistsBean(t, &board_model.BoardMember{BoardID: 1})

	req = addTokenAuth(NewRequest(t, "DELETE", "/api/v1/boards/99"), tokenAlice)
	MakeRequest(t, req, http.StatusNotFound)
}

func TestAPIBoardMembers(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := addTokenAuth(NewRequest(t, "GET", "/api/v1/boards/1/members"), tokenBob)
	resp := MakeRequest(t, req, http.StatusOK)

	var members []*api.User
	DecodeJSON(t, resp, &members)
	require.Len(t, members, 2)
	assert.EqualValues(t, 2, members[0].ID)
	assert.EqualValues(t, 3, members[1].ID)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/boards/2/members"), tokenBob)
	MakeRequest(t, req, http.StatusForbidden)
}

func TestAPIAddRemoveMember(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	// only the owner manages the roster
	req := addTokenAuth(NewRequest(t, "PUT", "/api/v1/boards/1/members/4"), tokenBob)
	MakeRequest(t, req, http.StatusForbidden)

	req = addTokenAuth(NewRequest(t, "PUT", "/api/v1/boards/1/members/4"), tokenAlice)
	MakeRequest(t, req, http.StatusNoContent)
	unittest.AssertExistsAndLoadBean(t, &board_model.BoardMember{BoardID: 1, UserID: 4})

	// adding an existing member changes nothing
	req = addTokenAuth(NewRequest(t, "PUT", "/api/v1/boards/1/members/4"), tokenAlice)
	MakeRequest(t, req, http.StatusNoContent)
	assert.EqualValues(t, 3, unittest.GetCount(t, &board_model.BoardMember{BoardID: 1}))

	req = addTokenAuth(NewRequest(t, "PUT", "/api/v1/boards/1/members/99"), tokenAlice)
	MakeRequest(t, req, http.StatusNotFound)

	req = addTokenAuth(NewRequest(t, "DELETE", "/api/v1/boards/1/members/4"), tokenAlice)
	MakeRequest(t, req, http.StatusNoContent)
	unittest.AssertNotExistsBean(t, &board_model.BoardMember{BoardID: 1, UserID: 4})

	// the owner can never be removed
	req = addTokenAuth(NewRequest(t, "DELETE", "/api/v1/boards/1/members/2"), tokenAlice)
	MakeRequest(t, req, http.StatusBadRequest)
	unittest.AssertExistsAndLoadBean(t, &board_model.BoardMember{BoardID: 1, UserID: 2})
}
