// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"time"

	"github.com/taskbrd/taskbrd/modules/log"

	ini "gopkg.in/ini.v1"
)

// CORSConfig defines CORS settings
var CORSConfig = struct {
	Enabled          bool
	AllowDomain      []string // this option works as "AllowedOrigins"
	Methods          []string
	Headers          []string
	MaxAge           time.Duration
	AllowCredentials bool
}{
	AllowDomain: []string{"*"},
	Methods:     []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
	Headers:     []string{"Content-Type", "User-Agent"},
	MaxAge:      10 * time.Minute,
}

func loadCorsFrom(rootCfg *ini.File) {
	mustMapSetting(rootCfg, "cors", &CORSConfig)
	if CORSConfig.Enabled {
		log.Info("CORS Service Enabled")
	}
}
