// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package common holds the middleware chain shared by every route tree.
package common

import (
	"fmt"
	"net/http"

	"github.com/taskbrd/taskbrd/modules/log"
	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/modules/web/routing"
	"github.com/taskbrd/taskbrd/services/context"

	"github.com/go-chi/chi/v5/middleware"
)

// Middlewares returns common middlewares
func Middlewares() []func(http.Handler) http.Handler {
	handlers := []func(http.Handler) http.Handler{
		func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
				// Ensure that all routing is done with a correctly escaped
				// URL, and that every later handler sees a response writer
				// that records status and size.
				req.URL.RawPath = req.URL.EscapedPath()
				next.ServeHTTP(context.WrapResponseWriter(resp), req)
			})
		},
		middleware.StripSlashes,
	}

	if !setting.Log.DisableRouterLog {
		handlers = append(handlers, routing.NewLoggerHandler())
	}

	handlers = append(handlers, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			// The last-resort recovery: anything below may panic again while
			// rendering its own error response, so this one only writes a
			// plain error page.
			defer func() {
				if err := recover(); err != nil {
					routing.UpdatePanicError(req.Context(), err)
					combinedErr := fmt.Sprintf("PANIC: %v\n%s", err, log.Stack(2))
					log.Error("%v", combinedErr)
					if setting.IsProd {
						http.Error(resp, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					} else {
						http.Error(resp, combinedErr, http.StatusInternalServerError)
					}
				}
			}()
			next.ServeHTTP(resp, req)
		})
	})
	return handlers
}
