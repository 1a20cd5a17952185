// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"io"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LoggerImpl writes formatted events to a single output, synchronously.
// Rotation and multi-writer dispatch are not needed for a single console
// destination, so there is no event queue behind it.
type LoggerImpl struct {
	level atomic.Int32

	mu       sync.Mutex
	out      io.Writer
	colorize bool
}

var _ BaseLogger = (*LoggerImpl)(nil)

// NewLoggerImpl creates a synchronous logger writing to out at the given level
func NewLoggerImpl(out io.Writer, level Level, colorize bool) *LoggerImpl {
	l := &LoggerImpl{out: out, colorize: colorize}
	l.level.Store(int32(level))
	return l
}

// GetLevel returns the logger's level
func (l *LoggerImpl) GetLevel() Level {
	return Level(l.level.Load())
}

// SetLevel changes the logger's level
func (l *LoggerImpl) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// IsColorize reports whether the logger writes color codes
func (l *LoggerImpl) IsColorize() bool {
	return l.colorize
}

// Log prepares an event from the caller's frame and writes it out
func (l *LoggerImpl) Log(skip int, level Level, format string, v ...any) {
	if level < l.GetLevel() {
		return
	}
	event := &Event{Time: time.Now(), Level: level}
	pc, filename, line, ok := runtime.Caller(skip + 1)
	if ok {
		fn := runtime.FuncForPC(pc)
		if fn != nil {
			fnName := fn.Name()
			if pos := strings.LastIndexByte(fnName, '/'); pos >= 0 {
				fnName = fnName[pos+1:]
			}
			event.Caller = fnName
		}
		if pos := strings.LastIndexByte(filename, '/'); pos >= 0 {
			filename = filename[pos+1:]
		}
		event.Filename, event.Line = filename, line
	}

	msg := format
	if len(v) > 0 {
		msg = colorSprintf(l.colorize, format, v...)
	}
	buf := formatEvent(event, l.colorize, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(buf)
}
