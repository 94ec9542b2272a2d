// File: lexer.go
// Title: Lexical Analyzer (Tokenizer)
// Description: Converts pwoli source text into tokens with exact byte spans.
//              Single pass over the input; tokens are produced on demand.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-15 v0.2.0: pwoli keywords, integer payloads, LexError

package parser

import (
	"strconv"

	pwast "github.com/msto63/pwoli/pkg/lang/ast"
)

// TokenSource produces tokens in source order. After end of input it keeps
// returning a KindEOF token.
type TokenSource interface {
	Next() (Token, error)
}

// Lexer performs lexical analysis of pwoli source text
type Lexer struct {
	input    string
	position int // next unread byte
}

// NewLexer creates a new, independent lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token from the input
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	start := l.position
	if start >= len(l.input) {
		return Token{Kind: KindEOF, Span: pwast.Span{Start: start, End: start}}, nil
	}

	ch := l.input[start]
	switch {
	case isLetter(ch):
		word := l.readWhile(isIdentChar)
		return Token{Kind: LookupIdent(word), Span: l.spanFrom(start), Text: word}, nil

	case isDigit(ch):
		digits := l.readWhile(isDigit)
		value, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Token{}, newMalformedLiteralError(start, digits, "integer literal out of range")
		}
		return Token{Kind: KindNumber, Span: l.spanFrom(start), Text: digits, Value: value}, nil
	}

	if kind, ok := punctuation[ch]; ok {
		l.position++
		return Token{Kind: kind, Span: l.spanFrom(start), Text: l.input[start:l.position]}, nil
	}

	return Token{}, newUnexpectedCharError(l.input, start)
}

// Tokenize returns all tokens up to and including KindEOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

// Tokenize is a convenience function that tokenizes input in one call
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

func (l *Lexer) spanFrom(start int) pwast.Span {
	return pwast.Span{Start: start, End: l.position}
}

func (l *Lexer) readWhile(accept func(byte) bool) string {
	start := l.position
	for l.position < len(l.input) && accept(l.input[l.position]) {
		l.position++
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.position < len(l.input) {
		switch l.input[l.position] {
		case ' ', '\t', '\n', '\r':
			l.position++
		default:
			return
		}
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
