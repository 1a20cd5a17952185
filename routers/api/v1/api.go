// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package v1 assembles the JSON API served under /api/v1. Authentication is
// a bearer access token; a request carrying a broken token fails immediately,
// one carrying none proceeds anonymously until a route requires a doer.
package v1

import (
	"net/http"
	"reflect"

	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/modules/web"
	"github.com/taskbrd/taskbrd/routers/api/v1/auth"
	"github.com/taskbrd/taskbrd/routers/api/v1/board"
	"github.com/taskbrd/taskbrd/routers/api/v1/misc"
	"github.com/taskbrd/taskbrd/routers/api/v1/task"
	"github.com/taskbrd/taskbrd/routers/api/v1/user"
	auth_service "github.com/taskbrd/taskbrd/services/auth"
	"github.com/taskbrd/taskbrd/services/context"

	"gitea.com/go-chi/binding"
	"github.com/go-chi/cors"

	api "github.com/taskbrd/taskbrd/modules/structs"
)

// apiAuth converts an authentication method into a middleware that resolves
// the doer for the whole request.
func apiAuth(authMethod auth_service.Method) func(*context.APIContext) {
	return func(ctx *context.APIContext) {
		u, err := authMethod.Verify(ctx.Req, ctx.Resp, ctx)
		if err != nil {
			ctx.Error(http.StatusUnauthorized, "Verify", err)
			return
		}
		ctx.Doer = u
		ctx.IsSigned = u != nil
	}
}

// reqToken makes sure the request is authenticated
func reqToken() func(ctx *context.APIContext) {
	return func(ctx *context.APIContext) {
		if ctx.IsSigned {
			return
		}
		ctx.Error(http.StatusUnauthorized, "reqToken", "token is required")
	}
}

// bind binding an obj to a func(ctx *context.APIContext)
func bind(obj interface{}) http.HandlerFunc {
	tp := reflect.TypeOf(obj)
	for tp.Kind() == reflect.Ptr {
		tp = tp.Elem()
	}
	return web.Wrap(func(ctx *context.APIContext) {
		theObj := reflect.New(tp).Interface() // create a new form obj for every request but not use obj directly
		errs := binding.Bind(ctx.Req, theObj)
		if len(errs) > 0 {
			ctx.Error(http.StatusBadRequest, "validationError", errs[0].Error())
			return
		}
		web.SetForm(ctx, theObj)
	})
}

// Routes registers all v1 APIs routes to web application.
func Routes() *web.Router {
	m := web.NewRouter()

	if setting.CORSConfig.Enabled {
		m.Use(cors.Handler(cors.Options{
			AllowedOrigins:   setting.CORSConfig.AllowDomain,
			AllowedMethods:   setting.CORSConfig.Methods,
			AllowedHeaders:   setting.CORSConfig.Headers,
			AllowCredentials: setting.CORSConfig.AllowCredentials,
			MaxAge:           int(setting.CORSConfig.MaxAge.Seconds()),
		}))
	}
	m.Use(context.APIContexter())
	m.Use(apiAuth(&auth_service.Token{}))

	m.Group("", func() {
		m.Get("/version", misc.Version)

		m.Group("/auth", func() {
			m.Post("/register", bind(api.RegisterOption{}), auth.Register)
			m.Post("/login", bind(api.LoginOption{}), auth.Login)
			m.Post("/logout", reqToken(), auth.Logout)
		})

		m.Group("/users", func() {
			m.Get("/search", user.Search)
		})

		m.Group("/user", func() {
			m.Get("", user.GetCurrent)
		}, reqToken())

		m.Group("/boards", func() {
			m.Get("", board.ListBoards)
			m.Post("", bind(api.CreateBoardOption{}), board.CreateBoard)
			m.Group("/{id}", func() {
				m.Get("", board.GetBoard)
				m.Patch("", bind(api.EditBoardOption{}), board.EditBoard)
				m.Delete("", board.DeleteBoard)
				m.Get("/members", board.ListMembers)
				m.Group("/members/{userID}", func() {
					m.Put("", board.AddMember)
					m.Delete("", board.RemoveMember)
				})
			})
		}, reqToken())

		m.Group("/tasks", func() {
			m.Post("", bind(api.CreateTaskOption{}), task.CreateTask)
			m.Get("/assigned-to-me", task.ListAssigned)
			m.Get("/reviewing", task.ListReviewing)
			m.Group("/{id}", func() {
				m.Get("", task.GetTask)
				m.Patch("", bind(api.EditTaskOption{}), task.EditTask)
				m.Delete("", task.DeleteTask)
				m.Get("/comments", task.ListComments)
				m.Post("/comments", bind(api.CreateCommentOption{}), task.CreateComment)
			})
		}, reqToken())
	})

	return m
}
