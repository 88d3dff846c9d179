// Package log provides structured logging for the Ultimate.Utilities tools.
//
// Package: log
// Title: Structured Logging
// Description: JSON or text output, immutable With* configuration, error
//              severity aware reporting and operation timers. The utility
//              packages stay silent by default; a Logger is passed in where
//              diagnostics are wanted.
// Author: satish049
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-19
//
// Usage:
//
//	logger := log.New().WithFormat(log.FormatText).WithName("ultimate")
//	logger.Info("split done", log.Fields{"tokens": 3})
//
//	timer := logger.StartTimer("abbreviate")
//	defer timer.Stop()
package log
