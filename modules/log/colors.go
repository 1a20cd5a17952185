// Copyright 2024 The Taskbrd Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"strconv"
	"strings"
)

const escape = "\033"

// ColorAttribute defines a single SGR Code
type ColorAttribute int

// Base ColorAttributes
const (
	Reset ColorAttribute = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors
const (
	FgBlack ColorAttribute = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Background text colors
const (
	BgBlack ColorAttribute = iota + 40
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
)

// String returns the SGR sequence for the attribute
func (c ColorAttribute) String() string {
	return strconv.Itoa(int(c))
}

// ColorString converts a list of ColorAttributes to a color string
func ColorString(attrs ...ColorAttribute) string {
	return string(ColorBytes(attrs...))
}

// ColorBytes converts a list of ColorAttributes to a byte array
func ColorBytes(attrs ...ColorAttribute) []byte {
	bytes := make([]byte, 0, 20)
	bytes = append(bytes, escape[0], '[')
	if len(attrs) > 0 {
		strs := make([]string, 0, len(attrs))
		for _, a := range attrs {
			strs = append(strs, a.String())
		}
		bytes = append(bytes, strings.Join(strs, ";")...)
	}
	bytes = append(bytes, 'm')
	return bytes
}

var resetBytes = ColorBytes(Reset)

// ColoredValue wraps a value for colored log output. The color codes are
// only emitted when the logger writes to a colorized destination.
type ColoredValue struct {
	v      any
	colors []ColorAttribute
}

var _ fmt.Formatter = (*ColoredValue)(nil)

// Format implements the fmt.Formatter interface
func (c *ColoredValue) Format(f fmt.State, verb rune) {
	_, _ = f.Write(ColorBytes(c.colors...))
	s := fmt.Sprintf(fmt.FormatString(f, verb), c.v)
	_, _ = f.Write([]byte(s))
	_, _ = f.Write(resetBytes)
}

// Value returns the wrapped value
func (c *ColoredValue) Value() any {
	return c.v
}

// NewColoredValue wraps a value with the given color attributes
func NewColoredValue(v any, color ...ColorAttribute) *ColoredValue {
	return &ColoredValue{v: v, colors: color}
}

// colorSprintf formats the message, stripping the color wrappers when the
// output does not accept color codes.
func colorSprintf(colorize bool, format string, args ...any) string {
	hasColorValue := false
	for _, v := range args {
		if _, hasColorValue = v.(*ColoredValue); hasColorValue {
			break
		}
	}
	if colorize || !hasColorValue {
		return fmt.Sprintf(format, args...)
	}

	noColors := make([]any, len(args))
	copy(noColors, args)
	for i, v := range args {
		if cv, ok := v.(*ColoredValue); ok {
			noColors[i] = cv.v
		}
	}
	return fmt.Sprintf(format, noColors...)
}
