// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskbrd/taskbrd/modules/util"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func chiURLParamsToMap(chiCtx *chi.Context) map[string]string {
	pathParams := chiCtx.URLParams
	m := make(map[string]string, len(pathParams.Keys))
	for i, key := range pathParams.Keys {
		if key == "*" && pathParams.Values[i] == "" {
			continue // chi router will add an empty "*" key if there is a "Mount"
		}
		m[key] = pathParams.Values[i]
	}
	return m
}

func TestRouter(t *testing.T) {
	buff := bytes.NewBufferString("")
	recorder := httptest.NewRecorder()
	recorder.Body = buff

	type resultStruct struct {
		method      string
		pathParams  map[string]string
		handlerMark string
	}
	var res resultStruct

	h := func(optMark ...string) func(resp http.ResponseWriter, req *http.Request) {
		mark := util.OptionalArg(optMark, "")
		return func(resp http.ResponseWriter, req *http.Request) {
			res.method = req.Method
			res.pathParams = chiURLParamsToMap(chi.RouteContext(req.Context()))
			res.handlerMark = mark
		}
	}

	r := NewRouter()
	r.Group("/boards/{id}", func() {
		r.Get("", h("view-board"))
		r.Group("", func() {
			r.Get("/members", h("list-members"))
		}, func(resp http.ResponseWriter, req *http.Request) {
			if stop := req.FormValue("stop"); stop != "" {
				h(stop)(resp, req)
				resp.WriteHeader(http.StatusOK)
			}
		})
		r.Group("/members/{userID}", func() {
			r.Put("", h("add-member"))
			r.Delete("", h("remove-member"))
		})
	})

	m := NewRouter()
	r.Mount("/api/v1", m)
	m.Group("/tasks", func() {
		m.Get("", h())
		m.Post("", h())
		m.Group("/{id}", func() {
			m.Get("", h())
			m.Patch("", h())
			m.Delete("", h())
		})
	})

	testRoute := func(methodPath string, expected resultStruct) {
		t.Run(methodPath, func(t *testing.T) {
			res = resultStruct{}
			methodPathFields := strings.Fields(methodPath)
			req, err := http.NewRequest(methodPathFields[0], methodPathFields[1], nil)
			assert.NoError(t, err)
			r.ServeHTTP(recorder, req)
			assert.EqualValues(t, expected, res)
		})
	}

	t.Run("Root Router", func(t *testing.T) {
		testRoute("GET /boards/1/other", resultStruct{})
		testRoute("GET /boards/1", resultStruct{
			method:      "GET",
			pathParams:  map[string]string{"id": "1"},
			handlerMark: "view-board",
		})
		testRoute("GET /boards/1/members", resultStruct{
			method:      "GET",
			pathParams:  map[string]string{"id": "1"},
			handlerMark: "list-members",
		})
		testRoute("GET /boards/1/members?stop=hijack", resultStruct{
			method:      "GET",
			pathParams:  map[string]string{"id": "1"},
			handlerMark: "hijack",
		})
		testRoute("PUT /boards/1/members/2", resultStruct{
			method:      "PUT",
			pathParams:  map[string]string{"id": "1", "userID": "2"},
			handlerMark: "add-member",
		})
		testRoute("DELETE /boards/1/members/2", resultStruct{
			method:      "DELETE",
			pathParams:  map[string]string{"id": "1", "userID": "2"},
			handlerMark: "remove-member",
		})
	})

	t.Run("Sub Router", func(t *testing.T) {
		testRoute("GET /api/v1/tasks", resultStruct{
			method:     "GET",
			pathParams: map[string]string{},
		})

		testRoute("POST /api/v1/tasks", resultStruct{
			method:     "POST",
			pathParams: map[string]string{},
		})

		testRoute("GET /api/v1/tasks/5", resultStruct{
			method:     "GET",
			pathParams: map[string]string{"id": "5"},
		})

		testRoute("PATCH /api/v1/tasks/5", resultStruct{
			method:     "PATCH",
			pathParams: map[string]string{"id": "5"},
		})

		testRoute("DELETE /api/v1/tasks/5", resultStruct{
			method:     "DELETE",
			pathParams: map[string]string{"id": "5"},
		})
	})
}
