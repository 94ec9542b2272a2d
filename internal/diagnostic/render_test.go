package diagnostic

import (
	"errors"
	"strings"
	"testing"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
	pwast "github.com/msto63/pwoli/pkg/lang/ast"
	pwparser "github.com/msto63/pwoli/pkg/lang/parser"
)

func TestLocate(t *testing.T) {
	source := "ab\ncdé\nf"
	tests := []struct {
		offset   int
		expected Position
	}{
		{0, Position{1, 1}},
		{2, Position{1, 3}},
		{3, Position{2, 1}},
		{7, Position{2, 4}}, // after the two-byte é
		{8, Position{3, 1}},
		{100, Position{3, 2}},
		{-4, Position{1, 1}},
	}
	for _, tt := range tests {
		if got := Locate(source, tt.offset); got != tt.expected {
			t.Errorf("Locate(%d): expected %s, got %s", tt.offset, tt.expected, got)
		}
	}
}

func TestSpanOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected pwast.Span
		ok       bool
	}{
		{"Lex error", &pwparser.LexError{Offset: 3, Width: 1, Char: '+'}, pwast.Span{Start: 3, End: 4}, true},
		{"Parse error", &pwparser.ParseError{Span: pwast.Span{Start: 5, End: 6}}, pwast.Span{Start: 5, End: 6}, true},
		{"Structured error", pwerror.New("x").WithSpan(1, 9), pwast.Span{Start: 1, End: 9}, true},
		{"Plain error", errors.New("boom"), pwast.Span{}, false},
		{"Structured without span", pwerror.New("x"), pwast.Span{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, ok := SpanOf(tt.err)
			if ok != tt.ok || span != tt.expected {
				t.Errorf("Expected %s/%v, got %s/%v", tt.expected, tt.ok, span, ok)
			}
		})
	}
}

func TestRender_ParseError(t *testing.T) {
	source := "pwoli_sadhanam x;\nx = ;\n"
	_, err := pwparser.ParseString(source)
	if err == nil {
		t.Fatal("Expected parse error")
	}

	got := Render(source, err, Options{Filename: "demo.pw", NoColor: true})
	expected := "demo.pw:2:5: parse error at offset 22: expected one of identifier, number, '-', found ';'\n" +
		"   2 | x = ;\n" +
		"           ^\n"
	if got != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestRender_RuntimeSpan(t *testing.T) {
	source := "total = 1;"
	err := pwerror.New(`variable "total" is not declared`).WithSpan(0, 5)

	got := Render(source, err, Options{NoColor: true})
	expected := "1:1: variable \"total\" is not declared\n" +
		"   1 | total = 1;\n" +
		"       ^^^^^\n"
	if got != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestRender_MultiLineSpanIsClipped(t *testing.T) {
	source := "repeat_adi i um 0 um same_alle {\n}"
	err := pwerror.New("loop exceeded 1 iterations").WithSpan(0, len(source))

	got := Render(source, err, Options{NoColor: true})
	expected := "1:1: loop exceeded 1 iterations\n" +
		"   1 | repeat_adi i um 0 um same_alle {\n" +
		"       " + "^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^^" + "\n"
	if got != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestRender_NoSpan(t *testing.T) {
	got := Render("", errors.New("file not found"), Options{Filename: "x.pw", NoColor: true})
	if got != "x.pw: file not found\n" {
		t.Errorf("Unexpected output %q", got)
	}
	if Render("", nil, Options{}) != "" {
		t.Error("Expected empty output for nil error")
	}
}

func TestRender_EOFError(t *testing.T) {
	source := "dhe_pidicho 1"
	_, err := pwparser.ParseString(source)
	got := Render(source, err, Options{NoColor: true})
	expected := "1:14: parse error at offset 13: expected ';', found end of input\n" +
		"   1 | dhe_pidicho 1\n" +
		"                    ^\n"
	if got != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, got)
	}
}

func TestRender_IntegerOverflow(t *testing.T) {
	source := "x = 99999999999999999999;"
	_, err := pwparser.ParseString(source)
	got := Render(source, err, Options{NoColor: true})
	expected := "1:5: lex error at offset 4: integer literal out of range\n" +
		"   1 | x = 99999999999999999999;\n" +
		"           " + strings.Repeat("^", 20) + "\n"
	if got != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, got)
	}
}
