// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package routers boots the application state and assembles the router tree.
package routers

import (
	"context"
	"reflect"
	"runtime"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/modules/log"
	"github.com/taskbrd/taskbrd/modules/setting"
	"github.com/taskbrd/taskbrd/modules/web"
	apiv1 "github.com/taskbrd/taskbrd/routers/api/v1"
	"github.com/taskbrd/taskbrd/routers/common"
	"github.com/taskbrd/taskbrd/routers/healthcheck"
)

func mustInitCtx(ctx context.Context, fn func(ctx context.Context) error) {
	err := fn(ctx)
	if err != nil {
		ptr := reflect.ValueOf(fn).Pointer()
		fi := runtime.FuncForPC(ptr)
		log.Fatal("%s(ctx) failed: %v", fi.Name(), err)
	}
}

// Init prepares everything serving requests depends on: the mapped
// configuration, the logger and the database engine with the schema of
// every registered model.
func Init(ctx context.Context) {
	setting.LoadCommonSettings()

	mustInitCtx(ctx, db.InitEngineWithSync)
	log.Info("ORM engine initialization successful!")
}

// NormalRoutes registers the chain of middlewares and mounts the API routes
func NormalRoutes() *web.Router {
	r := web.NewRouter()
	for _, mw := range common.Middlewares() {
		r.Use(mw)
	}

	r.Get("/api/healthz", healthcheck.Check)
	r.Mount("/api/v1", apiv1.Routes())

	return r
}
