// File: parser.go
// Title: Recursive Descent Parser
// Description: Builds a span-annotated pwoli AST from a token source with
//              one token of lookahead. Parsing is fail-fast: the first lexical
//              or grammatical error aborts the parse and no partial tree is
//              returned.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-15 v0.2.0: pwoli statement and expression grammar

package parser

import (
	"fmt"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
	pwlog "github.com/msto63/pwoli/pkg/core/log"
	pwast "github.com/msto63/pwoli/pkg/lang/ast"
)

var statementStarts = []Kind{KindDeclare, KindIdentifier, KindIf, KindWhile, KindPrint}

// Parse parses source into a SourceUnit, pulling tokens from tokens. The
// error is a *LexError or a *ParseError.
func Parse(source string, tokens TokenSource) (*pwast.SourceUnit, error) {
	p := &parser{tokens: tokens}
	if err := p.advance(); err != nil {
		return nil, err
	}

	parts, err := p.parseParts()
	if err != nil {
		return nil, err
	}
	// The top-level unit ends at an unmatched '}' as well; only EOF may follow.
	if p.current.Kind != KindEOF {
		return nil, p.unexpected(KindEOF)
	}

	return &pwast.SourceUnit{
		Span:  pwast.Span{Start: 0, End: len(source)},
		Parts: parts,
	}, nil
}

// ParseString parses source with a fresh lexer
func ParseString(source string) (*pwast.SourceUnit, error) {
	return Parse(source, NewLexer(source))
}

// Parser is a configured entry point that adds input limits and logging
// around Parse
type Parser struct {
	logger  *pwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger          *pwlog.Logger
	MaxSourceLength int // zero means unlimited
}

// New creates a new parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = pwlog.GetDefault()
	}
	if opts.MaxSourceLength < 0 {
		return nil, fmt.Errorf("max source length must not be negative: %d", opts.MaxSourceLength)
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "pwoli-parser"),
		options: opts,
	}, nil
}

// Parse parses a complete program
func (p *Parser) Parse(source string) (*pwast.SourceUnit, error) {
	if limit := p.options.MaxSourceLength; limit > 0 && len(source) > limit {
		return nil, pwerror.New(fmt.Sprintf("source exceeds maximum length: %d > %d", len(source), limit)).
			WithCode(pwerror.CodeInvalidInput).
			WithOperation("parser.Parse").
			WithDetail("length", len(source))
	}

	p.logger.Debug("Starting parse", pwlog.Fields{"length": len(source)})

	unit, err := Parse(source, NewLexer(source))
	if err != nil {
		p.logger.Debug("Parse failed", pwlog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("Parse completed", pwlog.Fields{"statements": len(unit.Parts)})
	return unit, nil
}

type parser struct {
	tokens  TokenSource
	current Token
}

// advance loads the next token into current
func (p *parser) advance() error {
	tok, err := p.tokens.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// expect consumes the current token if it has the given kind
func (p *parser) expect(kind Kind) (Token, error) {
	if p.current.Kind != kind {
		return Token{}, p.unexpected(kind)
	}
	return p.consume()
}

// consume returns the current token and moves past it
func (p *parser) consume() (Token, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *parser) unexpected(expected ...Kind) *ParseError {
	return &ParseError{Expected: expected, Found: p.current.Kind, Span: p.current.Span}
}

// parseParts reads statements up to EOF or an unmatched '}'
func (p *parser) parseParts() ([]pwast.SourceUnitPart, error) {
	parts := []pwast.SourceUnitPart{}
	for p.current.Kind != KindEOF && p.current.Kind != KindRightBrace {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		parts = append(parts, &pwast.StatementPart{Statement: stmt})
	}
	return parts, nil
}

// parseBlock parses '{' Statement* '}'
func (p *parser) parseBlock() (*pwast.SourceUnit, error) {
	open, err := p.expect(KindLeftBrace)
	if err != nil {
		return nil, err
	}
	parts, err := p.parseParts()
	if err != nil {
		return nil, err
	}
	closing, err := p.expect(KindRightBrace)
	if err != nil {
		return nil, err
	}
	return &pwast.SourceUnit{
		Span:  pwast.Span{Start: open.Span.Start, End: closing.Span.End},
		Parts: parts,
	}, nil
}

func (p *parser) parseStatement() (pwast.Statement, error) {
	switch p.current.Kind {
	case KindDeclare:
		return p.parseDeclaration()
	case KindIdentifier:
		return p.parseAssignment()
	case KindIf:
		return p.parseConditional()
	case KindWhile:
		return p.parseLoop()
	case KindPrint:
		return p.parseWrite()
	default:
		return nil, p.unexpected(statementStarts...)
	}
}

// parseDeclaration parses DECL_KW IDENT ';'
func (p *parser) parseDeclaration() (pwast.Statement, error) {
	kw, err := p.consume()
	if err != nil {
		return nil, err
	}
	ident, err := p.expect(KindIdentifier)
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(KindSemicolon)
	if err != nil {
		return nil, err
	}
	return &pwast.Declaration{
		Span:   pwast.Span{Start: kw.Span.Start, End: semi.Span.End},
		Symbol: symbolFrom(ident),
	}, nil
}

// parseAssignment parses IDENT '=' Expression ';'
func (p *parser) parseAssignment() (pwast.Statement, error) {
	ident, err := p.consume()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindAssign); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(KindSemicolon)
	if err != nil {
		return nil, err
	}
	return &pwast.Assignment{
		Span:   pwast.Span{Start: ident.Span.Start, End: semi.Span.End},
		Symbol: symbolFrom(ident),
		Value:  value,
	}, nil
}

// parseConditional parses IF_KW Condition Block (ELSE_KW Block)?
func (p *parser) parseConditional() (pwast.Statement, error) {
	kw, err := p.consume()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &pwast.Conditional{
		Span:      pwast.Span{Start: kw.Span.Start, End: then.Span.End},
		Condition: cond,
		Then:      then,
	}
	if p.current.Kind != KindElse {
		return stmt, nil
	}

	if _, err := p.consume(); err != nil {
		return nil, err
	}
	otherwise, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt.Else = otherwise
	stmt.Span.End = otherwise.Span.End
	return stmt, nil
}

// parseLoop parses WHILE_KW Condition Block
func (p *parser) parseLoop() (pwast.Statement, error) {
	kw, err := p.consume()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &pwast.Loop{
		Span:      pwast.Span{Start: kw.Span.Start, End: body.Span.End},
		Condition: cond,
		Body:      body,
	}, nil
}

// parseWrite parses PRINT_KW Expression ';'
func (p *parser) parseWrite() (pwast.Statement, error) {
	kw, err := p.consume()
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(KindSemicolon)
	if err != nil {
		return nil, err
	}
	return &pwast.Write{
		Span:  pwast.Span{Start: kw.Span.Start, End: semi.Span.End},
		Value: value,
	}, nil
}

// parseCondition parses Expression RELATOR Expression RELATOR BLOCK_MARKER,
// which always denotes a not-equal comparison. The node's span is taken
// from the block marker, excluding its last byte.
func (p *parser) parseCondition() (pwast.Expression, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindRelator); err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(KindRelator); err != nil {
		return nil, err
	}
	marker, err := p.expect(KindBlockMarker)
	if err != nil {
		return nil, err
	}
	return &pwast.NotEquals{
		Span:  pwast.Span{Start: marker.Span.Start, End: marker.Span.End - 1},
		Left:  left,
		Right: right,
	}, nil
}

// parseExpression parses UnaryExpr ('-' UnaryExpr)*, folding to the left
func (p *parser) parseExpression() (pwast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current.Kind == KindMinus {
		op, err := p.consume()
		if err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &pwast.Subtract{Span: op.Span, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary parses '-' UnaryExpr | Primary
func (p *parser) parseUnary() (pwast.Expression, error) {
	if p.current.Kind != KindMinus {
		return p.parsePrimary()
	}
	op, err := p.consume()
	if err != nil {
		return nil, err
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &pwast.UnaryMinus{Span: op.Span, Operand: operand}, nil
}

// parsePrimary parses IDENT | NUMBER
func (p *parser) parsePrimary() (pwast.Expression, error) {
	switch p.current.Kind {
	case KindIdentifier:
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}
		return symbolFrom(tok), nil
	case KindNumber:
		tok, err := p.consume()
		if err != nil {
			return nil, err
		}
		return &pwast.Integer{Span: tok.Span, Value: tok.Value}, nil
	default:
		return nil, p.unexpected(KindIdentifier, KindNumber, KindMinus)
	}
}

// symbolFrom builds a zero-width symbol at the identifier's start
func symbolFrom(tok Token) *pwast.Symbol {
	return &pwast.Symbol{
		Span: pwast.Span{Start: tok.Span.Start, End: tok.Span.Start},
		Name: tok.Text,
	}
}
