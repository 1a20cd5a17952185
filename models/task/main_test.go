// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package task

import (
	"path/filepath"
	"testing"

	"github.com/taskbrd/taskbrd/models/unittest"

	_ "github.com/taskbrd/taskbrd/models/board"
)

func TestMain(m *testing.M) {
	unittest.MainTest(m, &unittest.TestOptions{
		TaskbrdRootPath: filepath.Join("..", ".."),
		FixtureFiles: []string{
			"user.yml",
			"board.yml",
			"board_member.yml",
			"task.yml",
			"comment.yml",
		},
	})
}
