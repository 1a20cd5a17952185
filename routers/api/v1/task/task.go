// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package task exposes the task endpoints. Every operation requires
// membership on the task's board; the board is resolved before membership
// is checked so foreign tasks answer 403 and missing ones 404.
package task

import (
	"errors"
	"net/http"

	board_model "github.com/taskbrd/taskbrd/models/board"
	"github.com/taskbrd/taskbrd/models/perm"
	task_model "github.com/taskbrd/taskbrd/models/task"
	api "github.com/taskbrd/taskbrd/modules/structs"
	"github.com/taskbrd/taskbrd/modules/util"
	"github.com/taskbrd/taskbrd/modules/web"
	"github.com/taskbrd/taskbrd/services/context"
	"github.com/taskbrd/taskbrd/services/convert"
	task_service "github.com/taskbrd/taskbrd/services/task"
)

// CreateTask creates a task on the board named in the request body
func CreateTask(ctx *context.APIContext) {
	// swagger:operation POST /tasks task taskCreate
	// ---
	// summary: Create a task on a board
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: body
	//   in: body
	//   schema:
	//     "$ref": "#/definitions/CreateTaskOption"
	// responses:
	//   "201":
	//     "$ref": "#/responses/Task"
	//   "400":
	//     "$ref": "#/responses/validationError"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	form := web.GetForm(ctx).(*api.CreateTaskOption)

	t, err := task_service.Create(ctx, ctx.Doer, task_service.CreateOptions{
		BoardID:     form.BoardID,
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.Priority,
		AssigneeID:  form.AssigneeID,
		ReviewerID:  form.ReviewerID,
		DueDate:     form.DueDate,
	})
	if err != nil {
		switch {
		case board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "CreateTask", err)
		case task_service.IsErrUnknownTaskUser(err) || errors.Is(err, util.ErrInvalidArgument):
			ctx.Error(http.StatusBadRequest, "CreateTask", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	apiTask, err := convert.ToTask(ctx, t)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusCreated, apiTask)
}

// GetTask returns a single task
func GetTask(ctx *context.APIContext) {
	// swagger:operation GET /tasks/{id} task taskGet
	// ---
	// summary: Get a task
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the task
	//   type: integer
	//   format: int64
	//   required: true
	// responses:
	//   "200":
	//     "$ref": "#/responses/Task"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	t, err := task_service.Get(ctx, ctx.Doer, ctx.ParamsInt64(":id"))
	if err != nil {
		switch {
		case task_model.IsErrTaskNotExist(err) || board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "GetTask", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	apiTask, err := convert.ToTask(ctx, t)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, apiTask)
}

// EditTask changes the fields of a task that are present in the body
func EditTask(ctx *context.APIContext) {
	// swagger:operation PATCH /tasks/{id} task taskEdit
	// ---
	// summary: Edit a task
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the task
	//   type: integer
	//   format: int64
	//   required: true
	// - name: body
	//   in: body
	//   schema:
	//     "$ref": "#/definitions/EditTaskOption"
	// responses:
	//   "200":
	//     "$ref": "#/responses/Task"
	//   "400":
	//     "$ref": "#/responses/validationError"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	form := web.GetForm(ctx).(*api.EditTaskOption)

	t, err := task_service.Update(ctx, ctx.Doer, ctx.ParamsInt64(":id"), task_service.UpdateOptions{
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.Priority,
		AssigneeID:  form.AssigneeID,
		ReviewerID:  form.ReviewerID,
		DueDate:     form.DueDate,
	})
	if err != nil {
		switch {
		case task_model.IsErrTaskNotExist(err) || board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "EditTask", err)
		case task_service.IsErrUnknownTaskUser(err) || errors.Is(err, util.ErrInvalidArgument):
			ctx.Error(http.StatusBadRequest, "EditTask", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	apiTask, err := convert.ToTask(ctx, t)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, apiTask)
}

// DeleteTask deletes a task and its comments
func DeleteTask(ctx *context.APIContext) {
	// swagger:operation DELETE /tasks/{id} task taskDelete
	// ---
	// summary: Delete a task
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the task
	//   type: integer
	//   format: int64
	//   required: true
	// responses:
	//   "204":
	//     "$ref": "#/responses/empty"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	if err := task_service.Delete(ctx, ctx.Doer, ctx.ParamsInt64(":id")); err != nil {
		switch {
		case task_model.IsErrTaskNotExist(err) || board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "DeleteTask", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListAssigned returns every task assigned to the doer, newest first
func ListAssigned(ctx *context.APIContext) {
	// swagger:operation GET /tasks/assigned-to-me task taskListAssigned
	// ---
	// summary: List the tasks assigned to the authenticated user
	// produces:
	// - application/json
	// responses:
	//   "200":
	//     "$ref": "#/responses/TaskList"
	//   "401":
	//     "$ref": "#/responses/unauthorized"

	tasks, err := task_service.ListAssigned(ctx, ctx.Doer)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}

	apiTasks, err := convert.ToTasks(ctx, tasks)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, apiTasks)
}

// ListReviewing returns every task the doer reviews, newest first
func ListReviewing(ctx *context.APIContext) {
	// swagger:operation GET /tasks/reviewing task taskListReviewing
	// ---
	// summary: List the tasks the authenticated user reviews
	// produces:
	// - application/json
	// responses:
	//   "200":
	//     "$ref": "#/responses/TaskList"
	//   "401":
	//     "$ref": "#/responses/unauthorized"

	tasks, err := task_service.ListReviewing(ctx, ctx.Doer)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}

	apiTasks, err := convert.ToTasks(ctx, tasks)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, apiTasks)
}
