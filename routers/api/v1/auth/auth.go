// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package auth exposes registration and session handling. Tokens are issued
// on registration and on every login, and revoked again on logout.
package auth

import (
	"net/http"

	auth_model "github.com/taskbrd/taskbrd/models/auth"
	user_model "github.com/taskbrd/taskbrd/models/user"
	api "github.com/taskbrd/taskbrd/modules/structs"
	"github.com/taskbrd/taskbrd/modules/web"
	auth_service "github.com/taskbrd/taskbrd/services/auth"
	"github.com/taskbrd/taskbrd/services/context"
)

func authTokenResponse(u *user_model.User, t *auth_model.AccessToken) *api.AuthToken {
	return &api.AuthToken{
		Token:    t.Token,
		FullName: u.FullName,
		Email:    u.Email,
		UserID:   u.ID,
	}
}

// Register creates a new account and issues its first access token
func Register(ctx *context.APIContext) {
	// swagger:operation POST /auth/register auth authRegister
	// ---
	// summary: Register a new account
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: body
	//   in: body
	//   schema:
	//     "$ref": "#/definitions/RegisterOption"
	// responses:
	//   "201":
	//     "$ref": "#/responses/AuthToken"
	//   "400":
	//     "$ref": "#/responses/validationError"

	form := web.GetForm(ctx).(*api.RegisterOption)

	if form.Password != form.RepeatedPassword {
		ctx.Error(http.StatusBadRequest, "PasswordMismatch", "password and repeated_password do not match")
		return
	}

	u, t, err := auth_service.Register(ctx, form.Email, form.FullName, form.Password)
	if err != nil {
		switch {
		case user_model.IsErrEmailAlreadyUsed(err):
			ctx.Error(http.StatusBadRequest, "EmailAlreadyUsed", err)
		case auth_service.IsErrPasswordTooShort(err):
			ctx.Error(http.StatusBadRequest, "PasswordTooShort", err)
		default:
			ctx.InternalServerError(err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, authTokenResponse(u, t))
}

// Login verifies the credentials and issues a fresh access token
func Login(ctx *context.APIContext) {
	// swagger:operation POST /auth/login auth authLogin
	// ---
	// summary: Obtain an access token for an existing account
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: body
	//   in: body
	//   schema:
	//     "$ref": "#/definitions/LoginOption"
	// responses:
	//   "200":
	//     "$ref": "#/responses/AuthToken"
	//   "400":
	//     "$ref": "#/responses/validationError"

	form := web.GetForm(ctx).(*api.LoginOption)

	u, t, err := auth_service.UserSignIn(ctx, form.Email, form.Password)
	if err != nil {
		if auth_service.IsErrInvalidCredentials(err) {
			ctx.Error(http.StatusBadRequest, "UserSignIn", err)
		} else {
			ctx.InternalServerError(err)
		}
		return
	}

	ctx.JSON(http.StatusOK, authTokenResponse(u, t))
}

// Logout revokes the token the request was authenticated with
func Logout(ctx *context.APIContext) {
	// swagger:operation POST /auth/logout auth authLogout
	// ---
	// summary: Revoke the access token used for this request
	// produces:
	// - application/json
	// responses:
	//   "200":
	//     "$ref": "#/responses/MessageResponse"
	//   "401":
	//     "$ref": "#/responses/unauthorized"

	tokenID, _ := ctx.Data["ApiTokenID"].(int64)
	if err := auth_service.UserSignOut(ctx, ctx.Doer, tokenID); err != nil && !auth_model.IsErrAccessTokenNotExist(err) {
		ctx.InternalServerError(err)
		return
	}

	ctx.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}
