// File: nodes.go
// Title: AST Node Definitions
// Description: Span-annotated node types for pwoli programs: the source unit,
//              its statements and integer expressions. Statement and
//              Expression are closed sets sealed by unexported marker methods.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-15 v0.2.0: Statement/expression model of the pwoli language

package ast

import "fmt"

// Span is a (Start, End) pair of byte offsets into the source text.
//
// Tokens, literals, statements and blocks use a half-open range. Identifier
// references are zero width (End == Start). Operator nodes cover their
// operator token only, not their operands.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// String returns the span as "start..end"
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Node is implemented by every AST node
type Node interface {
	// Pos returns the source span of the node
	Pos() Span
}

// SourceUnit is an ordered sequence of parts: a whole program or the body
// of a block. It may be empty.
type SourceUnit struct {
	Span  Span
	Parts []SourceUnitPart
}

// SourceUnitPart is one element of a SourceUnit. StatementPart is the only
// variant.
type SourceUnitPart interface {
	Node
	sourceUnitPart()
}

// StatementPart wraps a statement inside a SourceUnit
type StatementPart struct {
	Statement Statement
}

// Statement is one of Declaration, Assignment, Conditional, Loop or Write
type Statement interface {
	Node
	statementNode()
}

// Expression is one of Symbol, Integer, NotEquals, UnaryMinus or Subtract
type Expression interface {
	Node
	expressionNode()
}

// Declaration introduces a variable; it has no initializer
type Declaration struct {
	Span   Span
	Symbol *Symbol
}

// Assignment binds Symbol to the value of Value
type Assignment struct {
	Span   Span
	Symbol *Symbol
	Value  Expression
}

// Conditional runs Then when Condition holds, Else otherwise. Else is nil
// when the source has no else branch.
type Conditional struct {
	Span      Span
	Condition Expression
	Then      *SourceUnit
	Else      *SourceUnit
}

// Loop runs Body for as long as Condition holds, testing before each pass
type Loop struct {
	Span      Span
	Condition Expression
	Body      *SourceUnit
}

// Write prints the value of Value
type Write struct {
	Span  Span
	Value Expression
}

// Symbol is a variable reference
type Symbol struct {
	Span Span
	Name string
}

// Integer is an integer literal
type Integer struct {
	Span  Span
	Value int64
}

// NotEquals compares Left and Right; it is the only relational operator
type NotEquals struct {
	Span  Span
	Left  Expression
	Right Expression
}

// UnaryMinus negates Operand
type UnaryMinus struct {
	Span    Span
	Operand Expression
}

// Subtract is Left minus Right
type Subtract struct {
	Span  Span
	Left  Expression
	Right Expression
}

func (u *SourceUnit) Pos() Span    { return u.Span }
func (p *StatementPart) Pos() Span { return p.Statement.Pos() }
func (d *Declaration) Pos() Span   { return d.Span }
func (a *Assignment) Pos() Span    { return a.Span }
func (c *Conditional) Pos() Span   { return c.Span }
func (l *Loop) Pos() Span          { return l.Span }
func (w *Write) Pos() Span         { return w.Span }
func (s *Symbol) Pos() Span        { return s.Span }
func (i *Integer) Pos() Span       { return i.Span }
func (n *NotEquals) Pos() Span     { return n.Span }
func (u *UnaryMinus) Pos() Span    { return u.Span }
func (s *Subtract) Pos() Span      { return s.Span }

func (*StatementPart) sourceUnitPart() {}

func (*Declaration) statementNode() {}
func (*Assignment) statementNode()  {}
func (*Conditional) statementNode() {}
func (*Loop) statementNode()        {}
func (*Write) statementNode()       {}

func (*Symbol) expressionNode()     {}
func (*Integer) expressionNode()    {}
func (*NotEquals) expressionNode()  {}
func (*UnaryMinus) expressionNode() {}
func (*Subtract) expressionNode()   {}

// Statements returns the statements of the unit in order
func (u *SourceUnit) Statements() []Statement {
	out := make([]Statement, 0, len(u.Parts))
	for _, part := range u.Parts {
		if sp, ok := part.(*StatementPart); ok {
			out = append(out, sp.Statement)
		}
	}
	return out
}

// NewSourceUnit builds a unit from statements, wrapping each in a
// StatementPart
func NewSourceUnit(span Span, statements ...Statement) *SourceUnit {
	parts := make([]SourceUnitPart, len(statements))
	for i, stmt := range statements {
		parts[i] = &StatementPart{Statement: stmt}
	}
	return &SourceUnit{Span: span, Parts: parts}
}
