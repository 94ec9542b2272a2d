// File: codes.go
// Title: Error Codes and Severities
// Description: Error codes used by the interpreter host, executor and
//              configuration layer, with their default severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial platform error codes
// - 2026-10-15 v0.2.0: Interpreter codes (lexical, syntax, runtime)

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCancelled    Code = "CANCELLED"

	// Front end
	CodeLexical Code = "LEXICAL"
	CodeSyntax  Code = "SYNTAX"

	// Runtime
	CodeUndeclaredVariable Code = "UNDECLARED_VARIABLE"
	CodeLoopLimit          Code = "LOOP_LIMIT"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"
)

// Detail keys shared by producers and renderers of span-carrying errors
const (
	DetailSpanStart = "span_start"
	DetailSpanEnd   = "span_end"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax:
		return "frontend"
	case CodeUndeclaredVariable, CodeLoopLimit, CodeCancelled:
		return "runtime"
	case CodeConfigError:
		return "configuration"
	case CodeInvalidInput, CodeNotFound:
		return "input"
	default:
		return "generic"
	}
}

// Severity returns the default severity for the code
func (c Code) Severity() Severity {
	switch c {
	case CodeInvalidInput, CodeNotFound, CodeLexical, CodeSyntax, CodeCancelled:
		return SeverityLow
	case CodeUndeclaredVariable, CodeLoopLimit, CodeConfigError:
		return SeverityMedium
	case CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a user mistake such as malformed source text
	SeverityLow Severity = iota
	// SeverityMedium indicates a failed operation the caller can recover from
	SeverityMedium
	// SeverityHigh indicates a fault in the interpreter itself
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}
