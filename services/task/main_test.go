// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package task_test

import (
	"path/filepath"
	"testing"

	"github.com/taskbrd/taskbrd/models/unittest"

	_ "github.com/taskbrd/taskbrd/models/board"
	_ "github.com/taskbrd/taskbrd/models/task"
	_ "github.com/taskbrd/taskbrd/models/user"
)

func TestMain(m *testing.M) {
	unittest.MainTest(m, &unittest.TestOptions{
		TaskbrdRootPath: filepath.Join("..", ".."),
	})
}
