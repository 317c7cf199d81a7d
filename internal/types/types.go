// Package types defines common type-safe enums used across the codebase.
package types

import "strings"

// LogLevel is a log verbosity name as written in config files and flags.
type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Normalize lowercases l and resolves the "warning" alias to LogLevelWarn.
func (l LogLevel) Normalize() LogLevel {
	n := LogLevel(strings.ToLower(string(l)))
	if n == "warning" {
		return LogLevelWarn
	}
	return n
}

// Valid returns true if the LogLevel is known after normalization.
// Empty means the default (info).
func (l LogLevel) Valid() bool {
	switch l.Normalize() {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, "":
		return true
	}
	return false
}

// Format selects how a color is written as text.
type Format string

const (
	// FormatHex prints six lowercase hex digits, e.g. "ff8000".
	FormatHex Format = "hex"
	// FormatRGB prints "rgb(R, G, B)" with unrounded channels.
	FormatRGB Format = "rgb"
	// FormatHSV prints "hsv(H, S, V)".
	FormatHSV Format = "hsv"
	// FormatTable prints aligned hex, rgb and hsv columns. Convert only.
	FormatTable Format = "table"
)

// Valid returns true if the Format is a known value.
func (f Format) Valid() bool {
	switch f {
	case FormatHex, FormatRGB, FormatHSV, FormatTable:
		return true
	}
	return false
}

// IsTable reports whether f is the multi-column table format.
func (f Format) IsTable() bool {
	return f == FormatTable
}

// AllFormats lists every format in display order.
func AllFormats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSV, FormatTable}
}

// Foreground chooses the text color drawn on top of a swatch.
type Foreground string

const (
	ForegroundBlack Foreground = "black"
	ForegroundWhite Foreground = "white"
	// ForegroundAuto picks black or white by contrast with the swatch.
	ForegroundAuto Foreground = "auto"
)

// Valid returns true if the Foreground is a known value.
func (f Foreground) Valid() bool {
	return f == ForegroundBlack || f == ForegroundWhite || f == ForegroundAuto
}
