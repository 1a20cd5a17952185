// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package healthcheck

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/taskbrd/taskbrd/models/db"
	"github.com/taskbrd/taskbrd/modules/json"
	"github.com/taskbrd/taskbrd/modules/log"
	"github.com/taskbrd/taskbrd/modules/setting"
)

type status string

// Values and response layout follow the IETF health check draft
// (draft-inadarei-api-health-check): "pass" maps to a 2xx response,
// "fail" to a 4xx-5xx one.
const (
	pass status = "pass"
	fail status = "fail"
)

func (s status) ToHTTPStatus() int {
	if s == pass {
		return http.StatusOK
	}
	return http.StatusFailedDependency
}

type checks map[string][]componentStatus

// response is the data returned by the health endpoint
type response struct {
	Status      status `json:"status"`
	Description string `json:"description"`
	Checks      checks `json:"checks,omitempty"`
}

// componentStatus is the status of a single downstream dependency
type componentStatus struct {
	Status status `json:"status"`
	Time   string `json:"time"`             // ISO8601
	Output string `json:"output,omitempty"` // omitted for "pass"
}

// Check is the health check handler
func Check(w http.ResponseWriter, r *http.Request) {
	rsp := response{
		Status:      pass,
		Description: setting.AppName,
		Checks:      make(checks),
	}

	if checkDatabase(r.Context(), rsp.Checks) != pass {
		rsp.Status = fail
	}

	data, _ := json.MarshalIndent(rsp, "", "  ")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Status.ToHTTPStatus())
	_, _ = w.Write(data)
}

func checkDatabase(ctx context.Context, checks checks) status {
	st := componentStatus{Status: pass, Time: getCheckTime()}
	if err := db.GetEngine(ctx).Ping(); err != nil {
		st.Status = fail
		log.Error("database ping failed with error: %v", err)
	} else if setting.Database.Type == "sqlite3" && !setting.IsInTesting {
		// sqlite creates a missing file on open, so Ping alone cannot
		// tell a vanished database from a healthy one
		if _, err := os.Stat(setting.Database.Path); err != nil {
			st.Status = fail
			log.Error("sqlite3 file check failed with error: %v", err)
		}
	}

	checks["database:ping"] = []componentStatus{st}
	return st.Status
}

func getCheckTime() string {
	return time.Now().UTC().Format(time.RFC3339)
}
