// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"github.com/taskbrd/taskbrd/modules/log"

	ini "gopkg.in/ini.v1"
)

// Log settings
var Log struct {
	Level    log.Level
	Colorize bool
	// DisableRouterLog turns off the per-request routing log lines
	DisableRouterLog bool
}

func loadLogFrom(rootCfg *ini.File) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString("info"))
	Log.Colorize = sec.Key("COLORIZE").MustBool(log.CanColorStderr)
	Log.DisableRouterLog = sec.Key("DISABLE_ROUTER_LOG").MustBool(false)

	log.SetConsoleLogger(Log.Level, Log.Colorize)
}
