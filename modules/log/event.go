// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Event represents a logging event
type Event struct {
	Time time.Time

	Caller   string
	Filename string
	Line     int

	Level Level
}

// formatEvent renders an event into the console line format:
// 2009/01/23 01:23:23 d.go:23:runTask() [I] message
func formatEvent(event *Event, colorize bool, msg string) []byte {
	buf := make([]byte, 0, 128)
	buf = append(buf, event.Time.Format("2006/01/02 15:04:05 ")...)
	if event.Filename != "" {
		buf = append(buf, fmt.Sprintf("%s:%d:", event.Filename, event.Line)...)
		if event.Caller != "" {
			buf = append(buf, event.Caller...)
			buf = append(buf, "() "...)
		} else {
			buf = append(buf, ' ')
		}
	}
	label := fmt.Sprintf("[%c] ", strings.ToUpper(event.Level.String())[0])
	if colorize {
		buf = append(buf, ColorBytes(event.Level.ColorAttributes()...)...)
		buf = append(buf, label...)
		buf = append(buf, resetBytes...)
	} else {
		buf = append(buf, label...)
	}
	buf = append(buf, msg...)
	if !bytes.HasSuffix(buf, []byte{'\n'}) {
		buf = append(buf, '\n')
	}
	return buf
}
