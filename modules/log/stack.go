// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
)

var (
	unknown = []byte("???")
	dot     = []byte(".")
	// runtime renders anonymous functions with a center dot
	centerDot = []byte("·")
)

// Stack returns the stack trace skipping the provided number of frames,
// quoting the offending source line where the file is readable. A skip of 0
// starts at the caller of Stack.
func Stack(skip int) string {
	buf := new(bytes.Buffer)

	// the preceding stack frame is likely in the same file, keep the last
	// one read
	var lines [][]byte
	var lastFilename string
	for i := skip + 1; ; i++ {
		programCounter, filename, lineNumber, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fmt.Fprintf(buf, "%s:%d (0x%x)\n", filename, lineNumber, programCounter)
		if filename != lastFilename {
			data, err := os.ReadFile(filename)
			if err != nil {
				// no source available, e.g. a stripped binary
				continue
			}
			lines = bytes.Split(data, []byte{'\n'})
			lastFilename = filename
		}
		fmt.Fprintf(buf, "\t%s: %s\n", functionName(programCounter), source(lines, lineNumber))
	}
	return buf.String()
}

func functionName(programCounter uintptr) []byte {
	function := runtime.FuncForPC(programCounter)
	if function == nil {
		return unknown
	}
	name := []byte(function.Name())
	if lastSlash := bytes.LastIndex(name, []byte("/")); lastSlash >= 0 {
		name = name[lastSlash+1:]
	}
	if period := bytes.Index(name, dot); period >= 0 {
		name = name[period+1:]
	}
	return bytes.ReplaceAll(name, centerDot, dot)
}

func source(lines [][]byte, n int) []byte {
	n-- // stack traces are 1-indexed
	if n < 0 || n >= len(lines) {
		return unknown
	}
	return bytes.TrimSpace(lines[n])
}
