// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package setting reads the application configuration from an ini file and
// exposes it as package level variables, one section per file in this package.
package setting

import (
	"os"
	"path/filepath"

	"github.com/taskbrd/taskbrd/modules/log"

	ini "gopkg.in/ini.v1"
)

// App settings
var (
	// AppVer is the version of the current build, set by main from linker flags
	AppVer string
	// AppName is the application name, used in page titles and the log banner
	AppName string
	// AppWorkPath is the base path for relative paths in the configuration
	AppWorkPath string
	// CustomConf is the path of the configuration file that was loaded
	CustomConf string

	// RunMode is either "dev" or "prod"
	RunMode string
	// IsProd is true when RunMode is "prod"
	IsProd bool

	// Cfg is the root of the loaded configuration
	Cfg *ini.File
)

// IsInTesting is true when the current process is running under "go test"
var IsInTesting = false

// InitWorkPathAndCfg resolves the work path and loads the configuration file.
// Missing files are not an error: every key has a default.
func InitWorkPathAndCfg(workPath, customConf string) {
	if workPath == "" {
		workPath, _ = os.Getwd()
	}
	var err error
	if AppWorkPath, err = filepath.Abs(workPath); err != nil {
		log.Fatal("Unable to resolve work path %q: %v", workPath, err)
	}

	if customConf == "" {
		customConf = filepath.Join(AppWorkPath, "custom/conf/app.ini")
	} else if !filepath.IsAbs(customConf) {
		customConf = filepath.Join(AppWorkPath, customConf)
	}
	CustomConf = customConf

	loadCfg()
}

func loadCfg() {
	var err error
	if _, statErr := os.Stat(CustomConf); statErr == nil {
		Cfg, err = ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, CustomConf)
		if err != nil {
			log.Fatal("Failed to parse %q: %v", CustomConf, err)
		}
	} else {
		Cfg = ini.Empty()
	}
}

// LoadCommonSettings maps every configuration section into its variables
func LoadCommonSettings() {
	if Cfg == nil {
		Cfg = ini.Empty()
	}

	AppName = Cfg.Section("").Key("APP_NAME").MustString("Taskbrd")
	RunMode = Cfg.Section("").Key("RUN_MODE").MustString("prod")
	IsProd = RunMode != "dev"

	loadLogFrom(Cfg)
	loadServerFrom(Cfg)
	loadDBSetting(Cfg)
	loadSecurityFrom(Cfg)
	loadCorsFrom(Cfg)
}

// LoadSettingsForInstall is the minimal subset needed before a database exists
func LoadSettingsForInstall() {
	if Cfg == nil {
		Cfg = ini.Empty()
	}
	loadLogFrom(Cfg)
	loadDBSetting(Cfg)
	loadSecurityFrom(Cfg)
}

func mustMapSetting(rootCfg *ini.File, sectionName string, setting any) {
	if err := rootCfg.Section(sectionName).MapTo(setting); err != nil {
		log.Fatal("Failed to map %s settings: %v", sectionName, err)
	}
}
