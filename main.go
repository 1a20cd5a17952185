// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/taskbrd/taskbrd/cmd"
	"github.com/taskbrd/taskbrd/modules/setting"
)

// Version holds the current Taskbrd version, filled in by the build flags:
// -ldflags "-X main.Version=..."
var Version = "development"

func init() {
	setting.AppVer = Version
}

func main() {
	app := cmd.NewMainApp()
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to run with %s: %v\n", strings.Join(os.Args, " "), err)
		os.Exit(1)
	}
}
