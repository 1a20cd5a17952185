// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package user

import (
	"net/http"

	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/services/context"
	"github.com/taskbrd/taskbrd/services/convert"
)

// GetCurrent returns the account the request is authenticated as
func GetCurrent(ctx *context.APIContext) {
	// swagger:operation GET /user user userGetCurrent
	// ---
	// summary: Get the authenticated user
	// produces:
	// - application/json
	// responses:
	//   "200":
	//     "$ref": "#/responses/User"
	//   "401":
	//     "$ref": "#/responses/unauthorized"

	ctx.JSON(http.StatusOK, convert.ToUser(ctx.Doer))
}

// Search looks an account up by its exact email address. It is reachable
// without a token so the registration form can check for taken addresses.
func Search(ctx *context.APIContext) {
	// swagger:operation GET /users/search user userSearch
	// ---
	// summary: Look a user up by email address
	// produces:
	// - application/json
	// parameters:
	// - name: email
	//   in: query
	//   description: email address to look up
	//   type: string
	//   required: true
	// responses:
	//   "200":
	//     "$ref": "#/responses/User"
	//   "400":
	//     "$ref": "#/responses/validationError"
	//   "404":
	//     "$ref": "#/responses/notFound"

	email := ctx.FormString("email")
	if email == "" {
		ctx.Error(http.StatusBadRequest, "Search", "email parameter is required")
		return
	}

	u, err := user_model.GetUserByEmail(ctx, email)
	if err != nil {
		if user_model.IsErrUserNotExist(err) {
			ctx.NotFound(err)
		} else {
			ctx.InternalServerError(err)
		}
		return
	}

	ctx.JSON(http.StatusOK, convert.ToUser(u))
}
