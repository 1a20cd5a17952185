// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package web

import (
	"fmt"
	"net/http"

	"github.com/taskbrd/taskbrd/modules/web/routing"
	"github.com/taskbrd/taskbrd/services/context"
)

// MiddleAPI wraps a context function as a chi middleware
func MiddleAPI(f func(ctx *context.APIContext)) func(next http.Handler) http.Handler {
	funcInfo := routing.GetFuncInfo(f)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			routing.UpdateFuncInfo(req.Context(), funcInfo)
			ctx := context.GetAPIContext(req)
			f(ctx)
			if ctx.Written() {
				return
			}
			next.ServeHTTP(ctx.Resp, ctx.Req)
		})
	}
}

// toHandlerProvider converts a middleware to a chi middleware provider
func toHandlerProvider(handler any) func(next http.Handler) http.Handler {
	switch t := handler.(type) {
	case func(http.Handler) http.Handler:
		return t
	case func(ctx *context.APIContext):
		return MiddleAPI(t)
	default:
		panic(fmt.Sprintf("Unsupported middleware type: %#v", t))
	}
}
