// File: visitor_test.go
// Title: AST Traversal Tests
// Description: Tests for Walk, CollectSymbols, Dump and ToMap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor tests
// - 2026-10-15 v0.2.0: pwoli node set

package ast

import (
	"reflect"
	"strings"
	"testing"
)

// countdown is "pwoli_sadhanam n; n = 2; repeat_adi n um 0 um same_alle { n = n - 1; } dhe_pidicho -n;"
func countdown() *SourceUnit {
	return NewSourceUnit(Span{0, 86},
		&Declaration{Span: Span{0, 17}, Symbol: &Symbol{Span: Span{15, 15}, Name: "n"}},
		&Assignment{
			Span:   Span{18, 24},
			Symbol: &Symbol{Span: Span{18, 18}, Name: "n"},
			Value:  &Integer{Span: Span{22, 23}, Value: 2},
		},
		&Loop{
			Span: Span{25, 70},
			Condition: &NotEquals{
				Span:  Span{46, 54},
				Left:  &Symbol{Span: Span{36, 36}, Name: "n"},
				Right: &Integer{Span: Span{41, 42}, Value: 0},
			},
			Body: NewSourceUnit(Span{56, 70},
				&Assignment{
					Span:   Span{58, 68},
					Symbol: &Symbol{Span: Span{58, 58}, Name: "n"},
					Value: &Subtract{
						Span:  Span{64, 65},
						Left:  &Symbol{Span: Span{62, 62}, Name: "n"},
						Right: &Integer{Span: Span{66, 67}, Value: 1},
					},
				},
			),
		},
		&Write{
			Span:  Span{71, 86},
			Value: &UnaryMinus{Span: Span{83, 84}, Operand: &Symbol{Span: Span{84, 84}, Name: "n"}},
		},
	)
}

func TestWalk_PreOrder(t *testing.T) {
	var visited []string
	Walk(countdown(), func(n Node) bool {
		if _, ok := n.(*StatementPart); ok {
			return true
		}
		visited = append(visited, describeType(n))
		return true
	})

	expected := []string{
		"SourceUnit",
		"Declaration", "Symbol",
		"Assignment", "Symbol", "Integer",
		"Loop", "NotEquals", "Symbol", "Integer",
		"SourceUnit", "Assignment", "Symbol", "Subtract", "Symbol", "Integer",
		"Write", "UnaryMinus", "Symbol",
	}
	if !reflect.DeepEqual(visited, expected) {
		t.Errorf("Expected %v, got %v", expected, visited)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	count := 0
	Walk(countdown(), func(n Node) bool {
		count++
		_, isLoop := n.(*Loop)
		return !isLoop
	})
	// The ten nodes below the loop are skipped
	if count != 14 {
		t.Errorf("Expected 14 visited nodes, got %d", count)
	}
}

func TestWalk_Nil(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	if called {
		t.Error("Expected callback not to run for nil node")
	}
}

func TestCollectSymbols(t *testing.T) {
	symbols := CollectSymbols(countdown())
	if len(symbols) != 6 {
		t.Fatalf("Expected 6 symbols, got %d", len(symbols))
	}
	starts := make([]int, len(symbols))
	for i, s := range symbols {
		starts[i] = s.Span.Start
		if s.Name != "n" {
			t.Errorf("Expected symbol n, got %s", s.Name)
		}
		if s.Span.Len() != 0 {
			t.Errorf("Expected zero-width symbol span, got %s", s.Span)
		}
	}
	if !reflect.DeepEqual(starts, []int{15, 18, 36, 58, 62, 84}) {
		t.Errorf("Unexpected symbol order: %v", starts)
	}
}

func TestChildren_ConditionalWithoutElse(t *testing.T) {
	cond := &Conditional{
		Condition: &NotEquals{Left: &Integer{Value: 1}, Right: &Integer{Value: 2}},
		Then:      NewSourceUnit(Span{}),
	}
	if got := len(Children(cond)); got != 2 {
		t.Errorf("Expected 2 children, got %d", got)
	}
	cond.Else = NewSourceUnit(Span{})
	if got := len(Children(cond)); got != 3 {
		t.Errorf("Expected 3 children, got %d", got)
	}
}

func TestDump(t *testing.T) {
	expected := strings.Join([]string{
		"SourceUnit [0..86]",
		"  Declaration [0..17]",
		"    Symbol n [15..15]",
		"  Assignment [18..24]",
		"    Symbol n [18..18]",
		"    Integer 2 [22..23]",
		"  Loop [25..70]",
		"    NotEquals [46..54]",
		"      Symbol n [36..36]",
		"      Integer 0 [41..42]",
		"    body: SourceUnit [56..70]",
		"      Assignment [58..68]",
		"        Symbol n [58..58]",
		"        Subtract [64..65]",
		"          Symbol n [62..62]",
		"          Integer 1 [66..67]",
		"  Write [71..86]",
		"    UnaryMinus [83..84]",
		"      Symbol n [84..84]",
	}, "\n") + "\n"

	if got := Dump(countdown()); got != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestDump_ConditionalLabels(t *testing.T) {
	cond := &Conditional{
		Span:      Span{0, 10},
		Condition: &NotEquals{Span: Span{1, 2}, Left: &Integer{Value: 1}, Right: &Integer{Value: 2}},
		Then:      NewSourceUnit(Span{3, 5}),
		Else:      NewSourceUnit(Span{8, 10}),
	}
	out := Dump(cond)
	if !strings.Contains(out, "  then: SourceUnit [3..5]\n") {
		t.Errorf("Missing then label in:\n%s", out)
	}
	if !strings.Contains(out, "  else: SourceUnit [8..10]\n") {
		t.Errorf("Missing else label in:\n%s", out)
	}
}

func TestToMap(t *testing.T) {
	m := ToMap(countdown())
	if m["type"] != "SourceUnit" {
		t.Errorf("Expected SourceUnit, got %v", m["type"])
	}
	statements := m["statements"].([]interface{})
	if len(statements) != 4 {
		t.Fatalf("Expected 4 statements, got %d", len(statements))
	}

	loop := statements[2].(map[string]interface{})
	if loop["type"] != "Loop" {
		t.Errorf("Expected Loop, got %v", loop["type"])
	}
	if !reflect.DeepEqual(loop["span"], []int{25, 70}) {
		t.Errorf("Expected span [25 70], got %v", loop["span"])
	}
	body := loop["body"].(map[string]interface{})
	assign := body["statements"].([]interface{})[0].(map[string]interface{})
	value := assign["value"].(map[string]interface{})
	if value["type"] != "Subtract" {
		t.Errorf("Expected Subtract, got %v", value["type"])
	}
	if value["right"].(map[string]interface{})["value"] != int64(1) {
		t.Errorf("Expected integer value 1, got %v", value["right"])
	}

	write := statements[3].(map[string]interface{})
	operand := write["value"].(map[string]interface{})["operand"].(map[string]interface{})
	if operand["name"] != "n" {
		t.Errorf("Expected symbol n, got %v", operand["name"])
	}
}

func TestToMap_OmitsMissingElse(t *testing.T) {
	cond := &Conditional{
		Condition: &NotEquals{Left: &Integer{}, Right: &Integer{}},
		Then:      NewSourceUnit(Span{}),
	}
	if _, ok := ToMap(cond)["else"]; ok {
		t.Error("Expected no else key")
	}
}
