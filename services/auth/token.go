// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"net/http"
	"strings"

	auth_model "github.com/taskbrd/taskbrd/models/auth"
	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/log"
	"github.com/taskbrd/taskbrd/modules/timeutil"
)

// Ensure the struct implements the interface.
var (
	_ Method = &Token{}
	_ Named  = &Token{}
)

// Token implements the Method interface and authenticates requests by looking
// for an access token in the query parameters or the "Authorization" header.
type Token struct{}

// Name represents the name of auth method
func (t *Token) Name() string {
	return "token"
}

// parseToken returns the token from the request, and whether one was present
// at all. Both "Authorization: token <sha>" and "Authorization: Bearer <sha>"
// are accepted.
func parseToken(req *http.Request) (string, bool) {
	_ = req.ParseForm()

	// Check token.
	if token := req.Form.Get("token"); token != "" {
		return token, true
	}
	// Check access token.
	if token := req.Form.Get("access_token"); token != "" {
		return token, true
	}

	// check header token
	if auHead := req.Header.Get("Authorization"); auHead != "" {
		auths := strings.Fields(auHead)
		if len(auths) == 2 && (auths[0] == "token" || strings.EqualFold(auths[0], "bearer")) {
			return auths[1], true
		}
	}
	return "", false
}

// userIDFromToken returns the user id corresponding to the access token, or 0
// when the token does not resolve.
func userIDFromToken(ctx context.Context, tokenSHA string, store DataStore) int64 {
	t, err := auth_model.GetAccessTokenBySHA(ctx, tokenSHA)
	if err != nil {
		if !auth_model.IsErrAccessTokenNotExist(err) && !auth_model.IsErrAccessTokenEmpty(err) {
			log.Error("GetAccessTokenBySHA: %v", err)
		}
		return 0
	}
	t.UpdatedUnix = timeutil.TimeStampNow()
	if err = auth_model.UpdateAccessToken(ctx, t); err != nil {
		log.Error("UpdateAccessToken: %v", err)
	}
	store.GetData()["IsApiToken"] = true
	store.GetData()["ApiTokenID"] = t.ID
	return t.UID
}

// Verify extracts the user ID from the access token in the query parameters
// or the "Authorization" header and returns the corresponding user object.
func (t *Token) Verify(req *http.Request, w http.ResponseWriter, store DataStore) (*user_model.User, error) {
	tokenSHA, ok := parseToken(req)
	if !ok {
		return nil, nil
	}

	uid := userIDFromToken(req.Context(), tokenSHA, store)
	if uid <= 0 {
		return nil, user_model.ErrUserNotExist{}
	}
	log.Trace("Token Authorization: Found token for user[%d]", uid)

	u, err := user_model.GetUserByID(req.Context(), uid)
	if err != nil {
		if !user_model.IsErrUserNotExist(err) {
			log.Error("GetUserByID: %v", err)
		}
		return nil, err
	}

	log.Trace("Token Authorization: Logged in user %d/%s", u.ID, u.Email)
	return u, nil
}
