// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

// Package log provides logging capabilities for Taskbrd.
//
// A Logger provides leveled logging functions (Trace … Critical) on top of a
// BaseLogger, which formats an event from the caller's frame and writes it to
// its destination. The process carries one default logger writing to stderr;
// its level and colorization come from the [log] configuration section.
package log

import (
	"os"
	"sync/atomic"
)

// CanColorStdout and CanColorStderr report whether the process writes to a
// terminal that interprets color codes. They are assigned per-platform in the
// console init functions, which run before the default logger is created.
var (
	CanColorStdout = true
	CanColorStderr = true
)

var defaultLogger atomic.Pointer[LoggerImpl]

func init() {
	defaultLogger.Store(NewLoggerImpl(os.Stderr, INFO, CanColorStderr))
}

// GetLogger returns the default logger
func GetLogger() Logger {
	return BaseLoggerToGeneralLogger(defaultLogger.Load())
}

// GetLevel returns the default logger's level
func GetLevel() Level {
	return defaultLogger.Load().GetLevel()
}

// SetConsoleLogger replaces the default logger with one at the given level
func SetConsoleLogger(level Level, colorize bool) {
	defaultLogger.Store(NewLoggerImpl(os.Stderr, level, colorize))
}

// SetLevel changes the default logger's level
func SetLevel(level Level) {
	defaultLogger.Load().SetLevel(level)
}

// IsDebug returns true if the default logger logs at DEBUG or lower
func IsDebug() bool {
	return GetLevel() <= DEBUG
}

// Log records a log event at the given level, attributing it to the caller
// "skip" frames up the stack
func Log(skip int, level Level, format string, v ...any) {
	defaultLogger.Load().Log(skip+1, level, format, v...)
}

// Trace records trace log
func Trace(format string, v ...any) {
	defaultLogger.Load().Log(1, TRACE, format, v...)
}

// Debug records debug log
func Debug(format string, v ...any) {
	defaultLogger.Load().Log(1, DEBUG, format, v...)
}

// Info records info log
func Info(format string, v ...any) {
	defaultLogger.Load().Log(1, INFO, format, v...)
}

// Warn records warning log
func Warn(format string, v ...any) {
	defaultLogger.Load().Log(1, WARN, format, v...)
}

// Error records error log
func Error(format string, v ...any) {
	defaultLogger.Load().Log(1, ERROR, format, v...)
}

// Critical records critical log
func Critical(format string, v ...any) {
	defaultLogger.Load().Log(1, CRITICAL, format, v...)
}

// Fatal records fatal log and exits the process
func Fatal(format string, v ...any) {
	defaultLogger.Load().Log(1, FATAL, format, v...)
	os.Exit(1)
}
