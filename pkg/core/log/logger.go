// File: logger.go
// Title: Core Logger Implementation
// Description: Structured logger with contextual fields, level filtering and
//              JSON/text output. Keeps the platform's Fields-based API and
//              delegates formatting and output to logrus.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-15 v0.2.0: logrus backend, interpreter error integration

package log

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
)

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Logger is an immutable structured logger. Every With* call returns a
// new logger sharing the same output.
type Logger struct {
	entry *logrus.Entry
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a logger writing text at info level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatText})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	base := logrus.New()
	base.SetLevel(config.Level.logrusLevel())
	base.SetFormatter(formatterFor(config.Format))
	if config.Output != nil {
		base.SetOutput(config.Output)
	} else {
		base.SetOutput(os.Stderr)
	}

	entry := logrus.NewEntry(base)
	if config.Name != "" {
		entry = entry.WithField("logger", config.Name)
	}
	return &Logger{entry: entry}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelError, Output: io.Discard})
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	return l.WithField("logger", name)
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs an error, choosing the level from its severity when it is
// a structured error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	e, ok := err.(*pwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     e.Code(),
		"error_severity": e.Severity().String(),
	}
	if op := e.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range e.Details() {
		fields["error_"+k] = v
	}

	switch e.Severity() {
	case pwerror.SeverityLow:
		l.log(LevelInfo, err.Error(), err, fields)
	case pwerror.SeverityMedium:
		l.log(LevelWarn, err.Error(), err, fields)
	default:
		l.log(LevelError, err.Error(), err, fields)
	}
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.entry.Logger.IsLevelEnabled(level.logrusLevel())
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return fromLogrusLevel(l.entry.Logger.GetLevel())
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}

	entry := l.entry
	for _, set := range fields {
		entry = entry.WithFields(logrus.Fields(set))
	}
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(level.logrusLevel(), message)
}

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}
