// File: doc.go
// Title: Parser Package Documentation
// Description: Lexer and recursive descent parser for pwoli source text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-15 v0.2.0: pwoli grammar

/*
Package parser turns pwoli source text into an ast.SourceUnit.

The Lexer produces tokens on demand from a string; Parse consumes any
TokenSource with a single token of lookahead. The grammar is:

	SourceUnit  := Statement*
	Statement   := DECL IDENT ';'
	             | IDENT '=' Expression ';'
	             | IF Condition Block (ELSE Block)?
	             | WHILE Condition Block
	             | PRINT Expression ';'
	Condition   := Expression RELATOR Expression RELATOR BLOCK_MARKER
	Block       := '{' Statement* '}'
	Expression  := UnaryExpr ('-' UnaryExpr)*
	UnaryExpr   := '-' UnaryExpr | IDENT | NUMBER

Parsing stops at the first problem. Lexical problems surface as *LexError
and grammatical ones as *ParseError, both carrying byte offsets.

Basic usage:

	unit, err := parser.ParseString("pwoli_sadhanam x; x = 3; dhe_pidicho x;")
	if err != nil {
		return err
	}
	fmt.Print(ast.Dump(unit))
*/
package parser
