// File: doc.go
// Title: Abstract Syntax Tree Package Documentation
// Description: Node definitions, traversal and encoding for parsed pwoli
//              programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-15 v0.2.0: pwoli statements and expressions

/*
Package ast defines the Abstract Syntax Tree of pwoli programs.

A program is a SourceUnit of statements (declaration, assignment,
conditional, loop, write) over integer expressions (symbol, integer,
not-equals, unary minus, subtract). Every node records the byte span it was
built from; see Span for the conventions.

Nodes are built once by the parser and never mutated. Consumers dispatch
with a type switch over the closed Statement and Expression sets.
*/
package ast
