// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"net/url"
	"strings"

	"github.com/taskbrd/taskbrd/modules/log"

	ini "gopkg.in/ini.v1"
)

// Scheme describes protocol types
type Scheme string

// enumerates all the scheme types
const (
	HTTP  Scheme = "http"
	HTTPS Scheme = "https"
)

// Server settings
var (
	Protocol Scheme
	Domain   string
	HTTPAddr string
	HTTPPort string
	// AppURL is the full public root URL. It always has a '/' suffix.
	// It maps to ini:"ROOT_URL"
	AppURL string
	// GracefulShutdownTimeout is how long the server waits for in-flight
	// requests when stopping
	GracefulShutdownTimeout int
)

func loadServerFrom(rootCfg *ini.File) {
	sec := rootCfg.Section("server")

	Protocol = HTTP
	if sec.Key("PROTOCOL").MustString("http") == "https" {
		Protocol = HTTPS
	}
	Domain = sec.Key("DOMAIN").MustString("localhost")
	HTTPAddr = sec.Key("HTTP_ADDR").MustString("0.0.0.0")
	HTTPPort = sec.Key("HTTP_PORT").MustString("8000")
	GracefulShutdownTimeout = sec.Key("GRACEFUL_SHUTDOWN_TIMEOUT").MustInt(30)

	defaultAppURL := string(Protocol) + "://" + Domain + ":" + HTTPPort + "/"
	AppURL = sec.Key("ROOT_URL").MustString(defaultAppURL)
	if !strings.HasSuffix(AppURL, "/") {
		AppURL += "/"
	}
	if _, err := url.Parse(AppURL); err != nil {
		log.Fatal("Invalid ROOT_URL %q: %v", AppURL, err)
	}
}
