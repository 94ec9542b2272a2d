// File: visitor.go
// Title: AST Traversal and Printing
// Description: Pre-order traversal over pwoli ASTs, symbol collection and
//              an indented tree printer that shows every node with its span.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-15 v0.2.0: Type-switch traversal over the closed node set

package ast

import (
	"fmt"
	"strings"
)

// Children returns the direct children of node in source order
func Children(node Node) []Node {
	switch n := node.(type) {
	case *SourceUnit:
		out := make([]Node, len(n.Parts))
		for i, part := range n.Parts {
			out[i] = part
		}
		return out
	case *StatementPart:
		return []Node{n.Statement}
	case *Declaration:
		return []Node{n.Symbol}
	case *Assignment:
		return []Node{n.Symbol, n.Value}
	case *Conditional:
		if n.Else != nil {
			return []Node{n.Condition, n.Then, n.Else}
		}
		return []Node{n.Condition, n.Then}
	case *Loop:
		return []Node{n.Condition, n.Body}
	case *Write:
		return []Node{n.Value}
	case *NotEquals:
		return []Node{n.Left, n.Right}
	case *UnaryMinus:
		return []Node{n.Operand}
	case *Subtract:
		return []Node{n.Left, n.Right}
	default:
		return nil
	}
}

// Walk traverses the tree rooted at node in pre-order. When fn returns
// false the children of that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// CollectSymbols returns every Symbol in the tree in source order,
// including the targets of declarations and assignments
func CollectSymbols(node Node) []*Symbol {
	var out []*Symbol
	Walk(node, func(n Node) bool {
		if s, ok := n.(*Symbol); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}

// Dump renders the tree as an indented listing, one node per line
func Dump(node Node) string {
	var b strings.Builder
	dump(&b, node, 0, "")
	return b.String()
}

func dump(b *strings.Builder, node Node, depth int, label string) {
	if part, ok := node.(*StatementPart); ok {
		dump(b, part.Statement, depth, label)
		return
	}

	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(label)
	b.WriteString(describe(node))
	b.WriteString(" [")
	b.WriteString(node.Pos().String())
	b.WriteString("]\n")

	switch n := node.(type) {
	case *Conditional:
		dump(b, n.Condition, depth+1, "")
		dump(b, n.Then, depth+1, "then: ")
		if n.Else != nil {
			dump(b, n.Else, depth+1, "else: ")
		}
	case *Loop:
		dump(b, n.Condition, depth+1, "")
		dump(b, n.Body, depth+1, "body: ")
	default:
		for _, child := range Children(node) {
			dump(b, child, depth+1, "")
		}
	}
}

func describe(node Node) string {
	switch n := node.(type) {
	case *Symbol:
		return "Symbol " + n.Name
	case *Integer:
		return fmt.Sprintf("Integer %d", n.Value)
	default:
		return describeType(node)
	}
}
