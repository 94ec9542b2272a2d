// File: doc.go
// Title: pwoli Language Package Documentation
// Description: Entry point to the pwoli front end and reference runtime.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-15 v0.2.0: pwoli language

/*
Package lang is the entry point to pwoli, a small keyword-driven language
with integer variables, a single not-equal comparison, conditionals, loops
and printing.

Subpackages:

  - parser: lexer and recursive descent parser
  - ast: span-annotated syntax tree, traversal and encoding
  - executor: tree-walking interpreter

Basic usage:

	engine, err := lang.New(lang.Options{})
	if err != nil {
		return err
	}
	_, err = engine.Run(ctx, "pwoli_sadhanam x; x = 2; dhe_pidicho x;")
*/
package lang
