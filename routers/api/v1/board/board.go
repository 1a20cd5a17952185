// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package board exposes the board and membership endpoints. Reads are open
// to every member, roster and board mutations to the owner only.
package board

import (
	"errors"
	"net/http"

	board_model "github.com/taskbrd/taskbrd/models/board"
	"github.com/taskbrd/taskbrd/models/perm"
	user_model "github.com/taskbrd/taskbrd/models/user"
	api "github.com/taskbrd/taskbrd/modules/structs"
	"github.com/taskbrd/taskbrd/modules/util"
	"github.com/taskbrd/taskbrd/modules/web"
	board_service "github.com/taskbrd/taskbrd/services/board"
	"github.com/taskbrd/taskbrd/services/context"
	"github.com/taskbrd/taskbrd/services/convert"
)

// ListBoards returns the summaries of every board the doer is a member of
func ListBoards(ctx *context.APIContext) {
	// swagger:operation GET /boards board boardList
	// ---
	// summary: List the boards the authenticated user is a member of
	// produces:
	// - application/json
	// responses:
	//   "200":
	//     "$ref": "#/responses/BoardList"
	//   "401":
	//     "$ref": "#/responses/unauthorized"

	boards, err := board_service.List(ctx, ctx.Doer)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}

	apiBoards, err := convert.ToBoards(ctx, boards)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, apiBoards)
}

// CreateBoard creates a board owned by the doer
func CreateBoard(ctx *context.APIContext) {
	// swagger:operation POST /boards board boardCreate
	// ---
	// summary: Create a board
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: body
	//   in: body
	//   schema:
	//     "$ref": "#/definitions/CreateBoardOption"
	// responses:
	//   "201":
	//     "$ref": "#/responses/Board"
	//   "400":
	//     "$ref": "#/responses/validationError"
	//   "401":
	//     "$ref": "#/responses/unauthorized"

	form := web.GetForm(ctx).(*api.CreateBoardOption)

	b, err := board_service.Create(ctx, ctx.Doer, form.Title, form.Members)
	if err != nil {
		if board_service.IsErrUnknownMembers(err) || errors.Is(err, util.ErrInvalidArgument) {
			ctx.Error(http.StatusBadRequest, "CreateBoard", err)
		} else {
			ctx.InternalServerError(err)
		}
		return
	}

	apiBoard, err := convert.ToBoard(ctx, b)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusCreated, apiBoard)
}

// GetBoard returns a single board with its members and tasks
func GetBoard(ctx *context.APIContext) {
	// swagger:operation GET /boards/{id} board boardGet
	// ---
	// summary: Get a board including members and tasks
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the board
	//   type: integer
	//   format: int64
	//   required: true
	// responses:
	//   "200":
	//     "$ref": "#/responses/BoardDetail"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	b, err := board_service.Get(ctx, ctx.Doer, ctx.ParamsInt64(":id"))
	if err != nil {
		switch {
		case board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "GetBoard", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	detail, err := convert.ToBoardDetail(ctx, b)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// EditBoard changes the title or replaces the member roster of a board
func EditBoard(ctx *context.APIContext) {
	// swagger:operation PATCH /boards/{id} board boardEdit
	// ---
	// summary: Edit a board (owner only)
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the board
	//   type: integer
	//   format: int64
	//   required: true
	// - name: body
	//   in: body
	//   schema:
	//     "$ref": "#/definitions/EditBoardOption"
	// responses:
	//   "200":
	//     "$ref": "#/responses/BoardUpdateResponse"
	//   "400":
	//     "$ref": "#/responses/validationError"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	form := web.GetForm(ctx).(*api.EditBoardOption)

	b, err := board_service.Update(ctx, ctx.Doer, ctx.ParamsInt64(":id"), board_service.UpdateOptions{
		Title:     form.Title,
		MemberIDs: form.Members,
	})
	if err != nil {
		switch {
		case board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "EditBoard", err)
		case board_service.IsErrUnknownMembers(err) || errors.Is(err, util.ErrInvalidArgument):
			ctx.Error(http.StatusBadRequest, "EditBoard", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	resp, err := convert.ToBoardUpdateResponse(ctx, b)
	if err != nil {
		ctx.InternalServerError(err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteBoard deletes a board together with its tasks and their comments
func DeleteBoard(ctx *context.APIContext) {
	// swagger:operation DELETE /boards/{id} board boardDelete
	// ---
	// summary: Delete a board and everything on it (owner only)
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the board
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

	if err := board_service.Delete(ctx, ctx.Doer, ctx.ParamsInt64(":id")); err != nil {
		switch {
		case board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "DeleteBoard", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListMembers returns the member roster of a board
func ListMembers(ctx *context.APIContext) {
	// swagger:operation GET /boards/{id}/members board boardListMembers
	// ---
	// summary: List the members of a board
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the board
	//   type: integer
	//   format: int64
	//   required: true
	// responses:
	//   "200":
	//     "$ref": "#/responses/UserList"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	members, err := board_service.Members(ctx, ctx.Doer, ctx.ParamsInt64(":id"))
	if err != nil {
		switch {
		case board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "ListMembers", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}
	ctx.JSON(http.StatusOK, convert.ToUsers(members))
}

// AddMember adds a user to the board's member roster
func AddMember(ctx *context.APIContext) {
	// swagger:operation PUT /boards/{id}/members/{userID} board boardAddMember
	// ---
	// summary: Add a user to a board (owner only)
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the board
	//   type: integer
	//   format: int64
	//   required: true
	// - name: userID
	//   in: path
	//   description: id of the user to add
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

	err := board_service.AddMember(ctx, ctx.Doer, ctx.ParamsInt64(":id"), ctx.ParamsInt64(":userID"))
	if err != nil {
		switch {
		case board_model.IsErrBoardNotExist(err) || user_model.IsErrUserNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "AddMember", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RemoveMember removes a user from the board's member roster
func RemoveMember(ctx *context.APIContext) {
	// swagger:operation DELETE /boards/{id}/members/{userID} board boardRemoveMember
	// ---
	// summary: Remove a user from a board (owner only, never the owner)
	// parameters:
	// - name: id
	//   in: path
	//   description: id of the board
	//   type: integer
	//   format: int64
	//   required: true
	// - name: userID
	//   in: path
	//   description: id of the user to remove
	//   type: integer
	//   format: int64
	//   required: true
	// responses:
	//   "204":
	//     "$ref": "#/responses/empty"
	//   "400":
	//     "$ref": "#/responses/error"
	//   "403":
	//     "$ref": "#/responses/forbidden"
	//   "404":
	//     "$ref": "#/responses/notFound"

	err := board_service.RemoveMember(ctx, ctx.Doer, ctx.ParamsInt64(":id"), ctx.ParamsInt64(":userID"))
	if err != nil {
		switch {
		case board_model.IsErrBoardNotExist(err):
			ctx.NotFound(err)
		case perm.IsErrBoardAccessDenied(err):
			ctx.Error(http.StatusForbidden, "RemoveMember", err)
		case board_model.IsErrOwnerMemberRemoval(err):
			ctx.Error(http.StatusBadRequest, "RemoveMember", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}
	ctx.Status(http.StatusNoContent)
}
