// Package log provides structured logging for the pwoli interpreter.
//
// Package: log
// Title: Structured Logging
// Description: Contextual, levelled logging with JSON and text output. The API
//              (Fields, WithField, Debug/Info/Warn/Error, timers) is shared by
//              the parser, executor, engine and command-line host.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON}).
//		WithField("component", "parser")
//
//	logger.Debug("parsing started", log.Fields{"length": len(src)})
//
//	timer := logger.StartTimer("execute")
//	// ...
//	timer.Stop()
package log
