// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package unittest provides the in-memory test database and the fixture
// loading used by the model and service test suites.
package unittest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/modules/setting"

	"xorm.io/xorm"
	"xorm.io/xorm/names"
)

// GetXORMEngine returns the XORM engine, exposed for tests that need to reach
// below the db package helpers.
func GetXORMEngine() *xorm.Engine {
	return db.DefaultContext.(*db.Context).Engine().(*xorm.Engine)
}

// InitSettings resets the global settings to the built-in defaults. Tests must
// not depend on a configuration file on disk.
func InitSettings() {
	setting.IsInTesting = true
	setting.InitWorkPathAndCfg(os.TempDir(), filepath.Join(os.TempDir(), "taskbrd-test-nonexistent.ini"))
	setting.LoadCommonSettings()
}

// TestOptions represents test options
type TestOptions struct {
	TaskbrdRootPath string
	FixtureFiles    []string
	SetUp           func() error // SetUp will be executed before all tests in this package
	TearDown        func() error // TearDown will be executed after all tests in this package
}

// MainTest a reusable TestMain(..) function for unit tests that need to use a
// test database. Creates the test database, syncs all model tables and loads
// the named fixture files.
func MainTest(m *testing.M, testOptsArg ...*TestOptions) {
	opts := TestOptions{}
	if len(testOptsArg) > 0 && testOptsArg[0] != nil {
		opts = *testOptsArg[0]
	}
	if opts.TaskbrdRootPath == "" {
		opts.TaskbrdRootPath = filepath.Join("..", "..")
	}

	InitSettings()

	fixturesOpts := FixturesOptions{
		Dir:   filepath.Join(opts.TaskbrdRootPath, "models", "fixtures"),
		Files: opts.FixtureFiles,
	}
	if err := CreateTestEngine(fixturesOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating test engine: %v\n", err)
		os.Exit(1)
	}

	if opts.SetUp != nil {
		if err := opts.SetUp(); err != nil {
			fmt.Fprintf(os.Stderr, "set up failed: %v\n", err)
			os.Exit(1)
		}
	}

	exitStatus := m.Run()

	if opts.TearDown != nil {
		if err := opts.TearDown(); err != nil {
			fmt.Fprintf(os.Stderr, "tear down failed: %v\n", err)
			os.Exit(1)
		}
	}

	db.UnsetDefaultEngine()
	os.Exit(exitStatus)
}

// CreateTestEngine creates an in-memory sqlite database, syncs all model
// tables into it and prepares the fixtures from fixturesDir.
func CreateTestEngine(opts FixturesOptions) error {
	x, err := xorm.NewEngine("sqlite3", "file::memory:?cache=shared&_busy_timeout=500")
	if err != nil {
		if strings.Contains(err.Error(), "unknown driver") {
			return fmt.Errorf(`sqlite3 requires: import _ "github.com/mattn/go-sqlite3": %w`, err)
		}
		return err
	}
	x.SetMapper(names.GonicMapper{})
	db.SetDefaultEngine(context.Background(), x)

	if err = db.SyncAllTables(); err != nil {
		return err
	}
	switch os.Getenv("TASKBRD_UNIT_TESTS_LOG_SQL") {
	case "true", "1":
		x.ShowSQL(true)
	}

	return InitFixtures(opts)
}

// PrepareTestDatabase load test fixtures into test database
func PrepareTestDatabase() error {
	return LoadFixtures()
}
