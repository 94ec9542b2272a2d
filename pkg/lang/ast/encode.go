// File: encode.go
// Title: AST Encoding
// Description: Converts trees into plain maps and slices for the JSON and
//              YAML output of the parse command.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: ToMap

package ast

// ToMap converts a tree into nested maps and slices suitable for JSON or
// YAML encoding. Every node becomes a map with a "type" and a "span" key.
func ToMap(node Node) map[string]interface{} {
	if part, ok := node.(*StatementPart); ok {
		return ToMap(part.Statement)
	}

	span := node.Pos()
	m := map[string]interface{}{
		"type": describeType(node),
		"span": []int{span.Start, span.End},
	}

	switch n := node.(type) {
	case *SourceUnit:
		parts := make([]interface{}, len(n.Parts))
		for i, part := range n.Parts {
			parts[i] = ToMap(part)
		}
		m["statements"] = parts
	case *Declaration:
		m["symbol"] = ToMap(n.Symbol)
	case *Assignment:
		m["symbol"] = ToMap(n.Symbol)
		m["value"] = ToMap(n.Value)
	case *Conditional:
		m["condition"] = ToMap(n.Condition)
		m["then"] = ToMap(n.Then)
		if n.Else != nil {
			m["else"] = ToMap(n.Else)
		}
	case *Loop:
		m["condition"] = ToMap(n.Condition)
		m["body"] = ToMap(n.Body)
	case *Write:
		m["value"] = ToMap(n.Value)
	case *Symbol:
		m["name"] = n.Name
	case *Integer:
		m["value"] = n.Value
	case *NotEquals:
		m["left"] = ToMap(n.Left)
		m["right"] = ToMap(n.Right)
	case *UnaryMinus:
		m["operand"] = ToMap(n.Operand)
	case *Subtract:
		m["left"] = ToMap(n.Left)
		m["right"] = ToMap(n.Right)
	}
	return m
}

func describeType(node Node) string {
	switch node.(type) {
	case *SourceUnit:
		return "SourceUnit"
	case *Declaration:
		return "Declaration"
	case *Assignment:
		return "Assignment"
	case *Conditional:
		return "Conditional"
	case *Loop:
		return "Loop"
	case *Write:
		return "Write"
	case *Symbol:
		return "Symbol"
	case *Integer:
		return "Integer"
	case *NotEquals:
		return "NotEquals"
	case *UnaryMinus:
		return "UnaryMinus"
	case *Subtract:
		return "Subtract"
	default:
		return "Unknown"
	}
}
