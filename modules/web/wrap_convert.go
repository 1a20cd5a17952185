// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package web

import (
	"fmt"
	"net/http"

	"github.com/taskbrd/taskbrd/modules/web/routing"
	"github.com/taskbrd/taskbrd/services/context"
)

// wrappedHandlerFunc is a handler in a handler chain. It reports whether it
// has completed the response so the chain can stop, and may return a
// function to run after the remaining handlers finish.
type wrappedHandlerFunc func(resp http.ResponseWriter, req *http.Request, others ...wrappedHandlerFunc) (done bool, deferrable func())

func convertHandler(handler any) wrappedHandlerFunc {
	funcInfo := routing.GetFuncInfo(handler)
	switch t := handler.(type) {
	case http.HandlerFunc:
		return func(resp http.ResponseWriter, req *http.Request, others ...wrappedHandlerFunc) (done bool, deferrable func()) {
			routing.UpdateFuncInfo(req.Context(), funcInfo)
			t(resp, req)
			if r, ok := resp.(context.ResponseWriter); ok && r.Status() > 0 {
				done = true
			}
			return done, deferrable
		}

	case func(http.ResponseWriter, *http.Request):
		return func(resp http.ResponseWriter, req *http.Request, others ...wrappedHandlerFunc) (done bool, deferrable func()) {
			routing.UpdateFuncInfo(req.Context(), funcInfo)
			t(resp, req)
			if r, ok := resp.(context.ResponseWriter); ok && r.Status() > 0 {
				done = true
			}
			return done, deferrable
		}

	case func(ctx *context.APIContext):
		return func(resp http.ResponseWriter, req *http.Request, others ...wrappedHandlerFunc) (done bool, deferrable func()) {
			routing.UpdateFuncInfo(req.Context(), funcInfo)
			ctx := context.GetAPIContext(req)
			t(ctx)
			done = ctx.Written()
			return done, deferrable
		}

	case func(http.Handler) http.Handler:
		return func(resp http.ResponseWriter, req *http.Request, others ...wrappedHandlerFunc) (done bool, deferrable func()) {
			if len(others) > 0 {
				routing.UpdateFuncInfo(req.Context(), funcInfo)
				t(wrapInternal(others)).ServeHTTP(resp, req)
				done = true
			}
			return done, deferrable
		}

	default:
		panic(fmt.Sprintf("Unsupported handler type: %#v", t))
	}
}
