// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation took and logs the duration.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timers
// - 2025-10-19 v0.2.0: Reduced to start/stop

package log

import (
	"time"
)

// Timer measures one operation.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	now       func() time.Time
}

// StartTimer starts timing operation.
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now(), now: time.Now}
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Stop logs the elapsed time at debug level and returns it.
func (t *Timer) Stop(fields ...Fields) time.Duration {
	d := t.Elapsed()
	all := append([]Fields{{"operation": t.operation}}, fields...)
	t.logger.log(LevelDebug, t.operation+" completed", nil, d, all)
	return d
}
