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

func TestAPICreateTask(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := NewRequestWithJSON(t, "POST", "/api/v1/tasks", &api.CreateTaskOption{
		BoardID: 1,
		Title:   "Ship the release",
	})
	addTokenAuth(req, tokenBob)
	resp := MakeRequest(t, req, http.StatusCreated)

	var task api.Task
	DecodeJSON(t, resp, &task)
	assert.EqualValues(t, 1, task.BoardID)
	assert.Equal(t, "Ship the release", task.Title)
	assert.Equal(t, "to-do", task.Status)
	assert.Equal(t, "medium", task.Priority)
	assert.Nil(t, task.Assignee)
	assert.Nil(t, task.Reviewer)
	assert.Nil(t, task.DueDate)
	unittest.AssertExistsAndLoadBean(t, &task_model.Task{ID: task.ID, BoardID: 1})

	t.Run("FullOptions", func(t *testing.T) {
		assignee, reviewer, due := int64(5), int64(2), "2024-12-31"
		req := NewRequestWithJSON(t, "POST", "/api/v1/tasks", &api.CreateTaskOption{
			BoardID:     1,
			Title:       "Prepare retro",
			Description: "Collect talking points.",
			Status:      "review",
			Priority:    "high",
			AssigneeID:  &assignee,
			ReviewerID:  &reviewer,
			DueDate:     &due,
		})
		addTokenAuth(req, tokenAlice)
		resp := MakeRequest(t, req, http.StatusCreated)

		var task api.Task
		DecodeJSON(t, resp, &task)
		assert.Equal(t, "review", task.Status)
		assert.Equal(t, "high", task.Priority)
		// the assignee need not be a member of the board
		require.NotNil(t, task.Assignee)
		assert.EqualValues(t, 5, task.Assignee.ID)
		require.NotNil(t, task.Reviewer)
		assert.EqualValues(t, 2, task.Reviewer.ID)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, "2024-12-31", *task.DueDate)
	})

	t.Run("Checks", func(t *testing.T) {
		// the board must exist before membership is even considered
		req := NewRequestWithJSON(t, "POST", "/api/v1/tasks", &api.CreateTaskOption{BoardID: 99, Title: "Lost"})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusNotFound)

		req = NewRequestWithJSON(t, "POST", "/api/v1/tasks", &api.CreateTaskOption{BoardID: 2, Title: "Foreign"})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusForbidden)

		req = NewRequestWithJSON(t, "POST", "/api/v1/tasks", map[string]any{
			"board": 1, "title": "Bad status", "status": "blocked",
		})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusBadRequest)

		assignee := int64(99)
		req = NewRequestWithJSON(t, "POST", "/api/v1/tasks", &api.CreateTaskOption{
			BoardID: 1, Title: "Bad assignee", AssigneeID: &assignee,
		})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusBadRequest)

		due := "31-12-2024"
		req = NewRequestWithJSON(t, "POST", "/api/v1/tasks", &api.CreateTaskOption{
			BoardID: 1, Title: "Bad due date", DueDate: &due,
		})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusBadRequest)
	})
}

func TestAPIGetTask(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/1"), tokenAlice)
	resp := MakeRequest(t, req, http.StatusOK)

	var task api.Task
	DecodeJSON(t, resp, &task)
	assert.Equal(t, "Set up CI", task.Title)
	assert.Equal(t, "to-do", task.Status)
	assert.Equal(t, "high", task.Priority)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Bob Fischer", task.Assignee.FullName)
	require.NotNil(t, task.Reviewer)
	assert.Equal(t, "Alice Keller", task.Reviewer.FullName)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-07-01", *task.DueDate)
	assert.EqualValues(t, 3, task.CommentsCount)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/1"), tokenAdmin)
	MakeRequest(t, req, http.StatusForbidden)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/99"), tokenAlice)
	MakeRequest(t, req, http.StatusNotFound)
}

func TestAPIEditTask(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := NewRequestWithJSON(t, "PATCH", "/api/v1/tasks/1", map[string]any{
		"status": "in-progress",
	})
	addTokenAuth(req, tokenBob)
	resp := MakeRequest(t, req, http.StatusOK)

	var task api.Task
	DecodeJSON(t, resp, &task)
	assert.Equal(t, "in-progress", task.Status)
	// untouched fields stay as they were
	assert.Equal(t, "Set up CI", task.Title)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2024-07-01", *task.DueDate)

	t.Run("ClearFields", func(t *testing.T) {
		// zero clears a user field, an empty string the due date
		req := NewRequestWithJSON(t, "PATCH", "/api/v1/tasks/1", map[string]any{
			"assignee_id": 0,
			"due_date":    "",
		})
		addTokenAuth(req, tokenAlice)
		resp := MakeRequest(t, req, http.StatusOK)

		var task api.Task
		DecodeJSON(t, resp, &task)
		assert.Nil(t, task.Assignee)
		assert.Nil(t, task.DueDate)
		require.NotNil(t, task.Reviewer)
		assert.EqualValues(t, 2, task.Reviewer.ID)

		updated := unittest.AssertExistsAndLoadBean(t, &task_model.Task{ID: 1})
		assert.EqualValues(t, 0, updated.AssigneeID)
		assert.EqualValues(t, 0, updated.DueUnix)
		assert.EqualValues(t, 2, updated.ReviewerID)
	})

	t.Run("Checks", func(t *testing.T) {
		req := NewRequestWithJSON(t, "PATCH", "/api/v1/tasks/4", map[string]any{"title": "Nope"})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusForbidden)

		req = NewRequestWithJSON(t, "PATCH", "/api/v1/tasks/99", map[string]any{"title": "Nope"})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusNotFound)

		req = NewRequestWithJSON(t, "PATCH", "/api/v1/tasks/1", map[string]any{"title": ""})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusBadRequest)

		reviewer := int64(99)
		req = NewRequestWithJSON(t, "PATCH", "/api/v1/tasks/1", &api.EditTaskOption{ReviewerID: &reviewer})
		addTokenAuth(req, tokenAlice)
		MakeRequest(t, req, http.StatusBadRequest)
	})
}

func TestAPIDeleteTask(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	// any member may delete, not only the owner
	req := addTokenAuth(NewRequest(t, "DELETE", "/api/v1/tasks/1"), tokenBob)
	MakeRequest(t, req, http.StatusNoContent)
	unittest.AssertNotExistsBean(t, &task_model.Task{ID: 1})
	unittest.AssertNotExistsBean(t, &task_model.Comment{TaskID: 1})
	// comments of other tasks are untouched
	unittest.AssertExistsAndLoadBean(t, &task_model.Comment{ID: 4})

	req = addTokenAuth(NewRequest(t, "DELETE", "/api/v1/tasks/4"), tokenAlice)
	MakeRequest(t, req, http.StatusForbidden)

	req = addTokenAuth(NewRequest(t, "DELETE", "/api/v1/tasks/99"), tokenAlice)
	MakeRequest(t, req, http.StatusNotFound)
}

func TestAPIListAssignedAndReviewing(t *testing.T) {
	require.NoError(t, unittest.PrepareTestDatabase())

	req := addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/assigned-to-me"), tokenBob)
	resp := MakeRequest(t, req, http.StatusOK)

	var tasks []*api.Task
	DecodeJSON(t, resp, &tasks)
	require.Len(t, tasks, 2)
	assert.EqualValues(t, 1, tasks[0].ID)
	assert.EqualValues(t, 2, tasks[1].ID)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/reviewing"), tokenAlice)
	resp = MakeRequest(t, req, http.StatusOK)
	DecodeJSON(t, resp, &tasks)
	require.Len(t, tasks, 1)
	assert.EqualValues(t, 1, tasks[0].ID)

	req = addTokenAuth(NewRequest(t, "GET", "/api/v1/tasks/assigned-to-me"), tokenAdmin)
	resp = MakeRequest(t, req, http.StatusOK)
	DecodeJSON(t, resp, &tasks)
	assert.Empty(t, tasks)
}
