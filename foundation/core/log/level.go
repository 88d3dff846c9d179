// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output of the command line tool and
//              of the object mapper diagnostics.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-10-19 v0.2.0: Dropped audit level and console colors

package log

import (
	"strings"
)

// Level is the importance of a log message.
type Level int

const (
	// LevelTrace is the most verbose level.
	LevelTrace Level = iota
	// LevelDebug is for diagnostics such as mapper cache misses.
	LevelDebug
	// LevelInfo is the default.
	LevelInfo
	// LevelWarn flags recoverable problems.
	LevelWarn
	// LevelError flags failed operations.
	LevelError
	// LevelFatal is logged right before the process exits.
	LevelFatal
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns a three letter tag used by the text formatter.
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// ShouldLog reports whether l passes the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name or its short form.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError is returned for an unknown level or format name.
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}
