// File: errors.go
// Title: Front-End Errors
// Description: Error types returned by the lexer and parser. Both carry the
//              byte span of the offending input for diagnostics.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: LexError and ParseError

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pwast "github.com/msto63/pwoli/pkg/lang/ast"
)

// LexError reports input the lexer could not classify
type LexError struct {
	Offset int    // byte offset of the offending input
	Width  int    // byte length of the offending input
	Char   rune   // offending character, unset for malformed literals
	Reason string // optional explanation
}

func newUnexpectedCharError(input string, offset int) *LexError {
	r, size := utf8.DecodeRuneInString(input[offset:])
	return &LexError{Offset: offset, Width: size, Char: r}
}

func newMalformedLiteralError(offset int, literal, reason string) *LexError {
	return &LexError{Offset: offset, Width: len(literal), Reason: reason}
}

func (e *LexError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("lex error at offset %d: unexpected character %q", e.Offset, e.Char)
}

// Span returns the byte range of the offending input. A zero Width is
// treated as one byte.
func (e *LexError) Span() pwast.Span {
	width := e.Width
	if width < 1 {
		width = 1
	}
	return pwast.Span{Start: e.Offset, End: e.Offset + width}
}

// ParseError reports a token that does not fit the grammar at the current
// point. Expected lists the acceptable kinds; it holds a single kind for a
// plain expect failure.
type ParseError struct {
	Expected []Kind
	Found    Kind
	Span     pwast.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: expected %s, found %s",
		e.Span.Start, describeKinds(e.Expected), e.Found)
}

func describeKinds(kinds []Kind) string {
	switch len(kinds) {
	case 0:
		return "nothing"
	case 1:
		return kinds[0].String()
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "one of " + strings.Join(names, ", ")
}
