// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package web wraps the chi router so route handlers can be plain http
// handlers, APIContext handlers or middleware providers interchangeably.
package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Router is a wrapper around chi.Router
type Router struct {
	chiRouter      chi.Router
	curGroupPrefix string
	curMiddlewares []any
}

// NewRouter creates a new router
func NewRouter() *Router {
	return &Router{chiRouter: chi.NewRouter()}
}

// Use supports two middleware types: func(http.Handler) http.Handler and
// func(*context.APIContext). Middlewares must be registered before routes.
func (r *Router) Use(middlewares ...any) {
	if r.curGroupPrefix != "" {
		// the behavior would be surprising, chi attaches Use middlewares to
		// the whole mux, not the current group
		panic("Use should not be called inside a Group")
	}
	for _, m := range middlewares {
		if m != nil {
			r.chiRouter.Use(toHandlerProvider(m))
		}
	}
}

// Group mounts a sub-group of routes, "middlewares" are executed for every
// route of the group including nested ones
func (r *Router) Group(pattern string, fn func(), middlewares ...any) {
	previousGroupPrefix := r.curGroupPrefix
	previousMiddlewares := r.curMiddlewares
	r.curGroupPrefix += pattern
	r.curMiddlewares = append(r.curMiddlewares, middlewares...)

	fn()

	r.curGroupPrefix = previousGroupPrefix
	r.curMiddlewares = previousMiddlewares
}

func (r *Router) getPattern(pattern string) string {
	newPattern := r.curGroupPrefix + pattern
	if !strings.HasPrefix(newPattern, "/") {
		newPattern = "/" + newPattern
	}
	if newPattern == "/" {
		return newPattern
	}
	return strings.TrimSuffix(newPattern, "/")
}

// Methods adds the same handlers for multiple http "methods" (separated by ",").
// e.g. Methods("GET,POST", "/", handler1, handler2)
func (r *Router) Methods(methods, pattern string, h ...any) {
	hs := make([]any, 0, len(r.curMiddlewares)+len(h))
	hs = append(hs, r.curMiddlewares...)
	hs = append(hs, h...)
	handler := Wrap(hs...)

	fullPattern := r.getPattern(pattern)
	if strings.Contains(methods, ",") {
		for _, method := range strings.Split(methods, ",") {
			r.chiRouter.Method(strings.TrimSpace(method), fullPattern, handler)
		}
	} else {
		r.chiRouter.Method(methods, fullPattern, handler)
	}
}

// Mount attaches another Router along the pattern
func (r *Router) Mount(pattern string, subRouter *Router) {
	subRouter.Use(r.curMiddlewares...)
	r.chiRouter.Mount(r.getPattern(pattern), subRouter.chiRouter)
}

// Any delegates all methods
func (r *Router) Any(pattern string, h ...any) {
	hs := make([]any, 0, len(r.curMiddlewares)+len(h))
	hs = append(hs, r.curMiddlewares...)
	hs = append(hs, h...)
	r.chiRouter.HandleFunc(r.getPattern(pattern), Wrap(hs...))
}

// Get delegates the GET method
func (r *Router) Get(pattern string, h ...any) {
	r.Methods("GET", pattern, h...)
}

// Post delegates the POST method
func (r *Router) Post(pattern string, h ...any) {
	r.Methods("POST", pattern, h...)
}

// Put delegates the PUT method
func (r *Router) Put(pattern string, h ...any) {
	r.Methods("PUT", pattern, h...)
}

// Patch delegates the PATCH method
func (r *Router) Patch(pattern string, h ...any) {
	r.Methods("PATCH", pattern, h...)
}

// Delete delegates the DELETE method
func (r *Router) Delete(pattern string, h ...any) {
	r.Methods("DELETE", pattern, h...)
}

// Head delegates the HEAD method
func (r *Router) Head(pattern string, h ...any) {
	r.Methods("HEAD", pattern, h...)
}

// NotFound defines a handler to respond whenever a route could not be found
func (r *Router) NotFound(h http.HandlerFunc) {
	r.chiRouter.NotFound(h)
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.chiRouter.ServeHTTP(w, req)
}
