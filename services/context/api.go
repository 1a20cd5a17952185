// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package context provides the request context passed through API handlers.
// The APIContext doubles as a context.Context so handlers can hand it
// straight to the model and service layers.
package context

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	user_model "github.com/taskbrd/taskbrd/models/user"
	"github.com/taskbrd/taskbrd/modules/json"
	"github.com/taskbrd/taskbrd/modules/log"
	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/modules/structs"

	"github.com/go-chi/chi/v5"
)

// APIContext is a specific context for API service
type APIContext struct {
	Resp ResponseWriter
	Req  *http.Request
	Data map[string]any

	// Doer is the authenticated user performing the request, nil for
	// anonymous requests
	Doer     *user_model.User
	IsSigned bool
}

var _ context.Context = (*APIContext)(nil)

// GetData returns the data store, which also carries the validated form
func (ctx *APIContext) GetData() map[string]any {
	return ctx.Data
}

// Written returns true if there are something sent to web browser
func (ctx *APIContext) Written() bool {
	return ctx.Resp.Status() > 0
}

// Status writes status code
func (ctx *APIContext) Status(status int) {
	ctx.Resp.WriteHeader(status)
}

// Header returns the header of the response
func (ctx *APIContext) Header() http.Header {
	return ctx.Resp.Header()
}

// RemoteAddr returns the client machine's address
func (ctx *APIContext) RemoteAddr() string {
	return ctx.Req.RemoteAddr
}

// Params returns the param in the request path
func (ctx *APIContext) Params(p string) string {
	s, _ := url.PathUnescape(chi.URLParam(ctx.Req, strings.TrimPrefix(p, ":")))
	return s
}

// ParamsInt64 returns the param in the request path as int64
func (ctx *APIContext) ParamsInt64(p string) int64 {
	v, _ := strconv.ParseInt(ctx.Params(p), 10, 64)
	return v
}

// FormString returns the first value matching the provided key in the form as a string
func (ctx *APIContext) FormString(key string) string {
	return ctx.Req.FormValue(key)
}

// JSON renders content as JSON
func (ctx *APIContext) JSON(status int, content any) {
	ctx.Resp.Header().Set("Content-Type", "application/json;charset=utf-8")
	ctx.Resp.WriteHeader(status)
	if err := json.NewEncoder(ctx.Resp).Encode(content); err != nil {
		log.Error("Render JSON failed: %v", err)
	}
}

// Error responds with an error message to client with given obj as the message.
// If status is 500, also it prints error to log.
func (ctx *APIContext) Error(status int, title string, obj any) {
	var message string
	if err, ok := obj.(error); ok {
		message = err.Error()
	} else {
		message = fmt.Sprintf("%s", obj)
	}

	if status == http.StatusInternalServerError {
		log.Log(1, log.ERROR, "%s: %s", title, message)

		if setting.IsProd && !(ctx.Doer != nil && ctx.Doer.IsAdmin) {
			message = ""
		}
	}

	ctx.JSON(status, structs.APIError{
		Message: message,
		URL:     setting.AppURL + "api/v1",
	})
}

// InternalServerError responds with an error message to the client with the
// error as a message when not in production
func (ctx *APIContext) InternalServerError(err error) {
	log.Log(1, log.ERROR, "InternalServerError: %v", err)

	var message string
	if !setting.IsProd || (ctx.Doer != nil && ctx.Doer.IsAdmin) {
		message = err.Error()
	}

	ctx.JSON(http.StatusInternalServerError, structs.APIError{
		Message: message,
		URL:     setting.AppURL + "api/v1",
	})
}

// ServerError responds with error message, status is 500
func (ctx *APIContext) ServerError(title string, err error) {
	ctx.Error(http.StatusInternalServerError, title, err)
}

// NotFound handles 404s for APIContext
// String will replace message, errors will be added to a slice
func (ctx *APIContext) NotFound(objs ...any) {
	message := http.StatusText(http.StatusNotFound)
	var errs []string
	for _, obj := range objs {
		// Ignore nil
		if obj == nil {
			continue
		}

		if err, ok := obj.(error); ok {
			errs = append(errs, err.Error())
		} else {
			message = obj.(string)
		}
	}

	ctx.JSON(http.StatusNotFound, map[string]any{
		"message": message,
		"url":     setting.AppURL + "api/v1",
		"errors":  errs,
	})
}

// Deadline is part of the interface for context.Context and we pass this to the request context
func (ctx *APIContext) Deadline() (deadline time.Time, ok bool) {
	return ctx.Req.Context().Deadline()
}

// Done is part of the interface for context.Context and we pass this to the request context
func (ctx *APIContext) Done() <-chan struct{} {
	return ctx.Req.Context().Done()
}

// Err is part of the interface for context.Context and we pass this to the request context
func (ctx *APIContext) Err() error {
	return ctx.Req.Context().Err()
}

// Value is part of the interface for context.Context and we pass this to the request context
func (ctx *APIContext) Value(key any) any {
	return ctx.Req.Context().Value(key)
}

type apiContextKeyType struct{}

var apiContextKey apiContextKeyType

// WithAPIContext set up api context in request
func WithAPIContext(req *http.Request, ctx *APIContext) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), apiContextKey, ctx))
}

// GetAPIContext returns a context for API routes
func GetAPIContext(req *http.Request) *APIContext {
	return req.Context().Value(apiContextKey).(*APIContext)
}

// APIContexter returns APIContext middleware
func APIContexter() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := &APIContext{
				Resp: WrapResponseWriter(w),
				Data: map[string]any{},
			}
			ctx.Req = WithAPIContext(req, ctx)

			next.ServeHTTP(ctx.Resp, ctx.Req)
		})
	}
}
