// File: logger.go
// Title: Structured Logger
// Description: Logger with immutable With* configuration, used by the command
//              line tool and optionally by the object mapper. Library
//              functions never log unless a logger is handed to them.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-19 v0.2.0: Removed async mode, added Nop logger

package log

import (
	"io"
	"os"
	"sync"
	"time"

	ulterror "github.com/satish049/Ultimate.Utilities/foundation/core/error"
)

// Logger writes structured entries to an io.Writer.
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	correlationID string
	fields        Fields

	// guards writes to output
	mu *sync.Mutex
}

// Config configures NewWithConfig.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New returns an info-level JSON logger writing to stderr.
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatJSON})
}

// NewWithConfig creates a logger from config. A nil Output means stderr.
func NewWithConfig(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    out,
		name:      config.Name,
		fields:    make(Fields),
		mu:        &sync.Mutex{},
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

// WithLevel returns a copy with a new minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy using the formatter for format.
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithFormatter returns a copy using formatter.
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a copy writing to output.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	c.mu = &sync.Mutex{}
	return c
}

// WithName returns a copy with a logger name.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key=value to every entry.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a copy that adds fields to every entry.
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// WithCorrelationID returns a copy tagging entries with id.
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := l.clone()
	c.correlationID = id
	return c
}

// Level returns the minimum level.
func (l *Logger) Level() Level { return l.level }

// IsLevelEnabled reports whether entries at level are written.
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// Trace logs at trace level.
func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, 0, fields) }

// Debug logs at debug level.
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, 0, fields) }

// Info logs at info level.
func (l *Logger) Info(message string, fields ...Fields) { l.log(LevelInfo, message, nil, 0, fields) }

// Warn logs at warn level.
func (l *Logger) Warn(message string, fields ...Fields) { l.log(LevelWarn, message, nil, 0, fields) }

// Error logs at error level.
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, 0, fields) }

// ErrorWithErr logs message with err attached.
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, 0, fields)
}

// LogError logs err at a level derived from its severity. Structured errors
// contribute their code, operation and details as fields.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	e, ok := err.(*ulterror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err, 0, nil)
		return
	}

	fields := Fields{
		"error_code":     e.Code().String(),
		"error_severity": e.Severity().String(),
	}
	if e.Operation() != "" {
		fields["error_operation"] = e.Operation()
	}
	for k, v := range e.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch e.Severity() {
	case ulterror.SeverityLow:
		level = LevelInfo
	case ulterror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, e.Message(), err, 0, []Fields{fields})
}

func (l *Logger) log(level Level, message string, err error, d time.Duration, fields []Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = d
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	out, fErr := l.formatter.Format(entry)
	if fErr != nil {
		return
	}
	l.mu.Lock()
	_, _ = l.output.Write(out)
	l.mu.Unlock()
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return &c
}
