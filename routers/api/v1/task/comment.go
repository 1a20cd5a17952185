// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

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

// ListComments returns the comments on a task, newest first
func ListComments(ctx *context.APIContext) {
	// swagger:operation GET /tasks/{id}/comments task taskListComments
	// ---
	// summary: List the comments on a task
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
	//     "$ref": "#/responses/CommentList"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	comments, err := task_service.ListComments(ctx, ctx.Doer, ctx.ParamsInt64(":id"))
	if err != nil {
		switch {
		case task_model.IsErrTaskNotExist(err) || board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "ListComments", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	apiComments, err := convert.ToComments(ctx, comments)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, apiComments)
}

// CreateComment adds a comment to a task, authored by the doer
func CreateComment(ctx *context.APIContext) {
	// swagger:operation POST /tasks/{id}/comments task taskCreateComment
	// ---
	// summary: Comment on a task
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
	//     "$ref": "#/definitions/CreateCommentOption"
	// responses:
	//   "201":
	//     "$ref": "#/responses/Comment"
	//   "400":
	//     "$ref": "#/responses/validationError"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	form := web.GetForm(ctx).(*api.CreateCommentOption)

	c, err := task_service.CreateComment(ctx, ctx.Doer, ctx.ParamsInt64(":id"), form.Content)
	if err != nil {
		switch {
		case task_model.IsErrTaskNotExist(err) || board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "CreateComment", err)
		case errors.Is(err, util.ErrInvalidArgument):
			ctx.Error(http.StatusBadRequest, "CreateComment", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, convert.ToComment(c))
}
