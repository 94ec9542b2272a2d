// Package diagnostic formats pwoli errors against the source they refer to
package diagnostic

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	pwerror "github.com/msto63/pwoli/pkg/core/error"
	pwast "github.com/msto63/pwoli/pkg/lang/ast"
	pwparser "github.com/msto63/pwoli/pkg/lang/parser"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorCaret = lipgloss.Color("#F59E0B")
)

// Position is a 1-based line and column; columns count runes
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Options controls rendering
type Options struct {
	Filename string // shown as a prefix when set
	NoColor  bool
}

// Locate converts a byte offset into a line and column. Offsets past the
// end of source are clamped to the end.
func Locate(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}
	prefix := source[:offset]
	line := strings.Count(prefix, "\n") + 1
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	return Position{Line: line, Column: utf8.RuneCountInString(prefix[lineStart:]) + 1}
}

// SpanOf extracts the source span an error refers to
func SpanOf(err error) (pwast.Span, bool) {
	var lexErr *pwparser.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Span(), true
	}
	var parseErr *pwparser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Span, true
	}
	var pwErr *pwerror.Error
	if errors.As(err, &pwErr) {
		if start, end, ok := pwErr.Span(); ok {
			return pwast.Span{Start: start, End: end}, true
		}
	}
	return pwast.Span{}, false
}

// Render formats err as "file:line:col: message" followed by the offending
// source line and a caret underline. Errors without a span render as the
// message alone.
func Render(source string, err error, opts Options) string {
	if err == nil {
		return ""
	}

	errStyle := lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)
	caretStyle := lipgloss.NewStyle().Foreground(colorCaret).Bold(true)
	if opts.NoColor {
		errStyle = lipgloss.NewStyle()
		mutedStyle = lipgloss.NewStyle()
		caretStyle = lipgloss.NewStyle()
	}

	span, ok := SpanOf(err)
	if !ok {
		header := err.Error()
		if opts.Filename != "" {
			header = opts.Filename + ": " + header
		}
		return errStyle.Render(header) + "\n"
	}

	pos := Locate(source, span.Start)
	location := pos.String()
	if opts.Filename != "" {
		location = opts.Filename + ":" + location
	}

	var b strings.Builder
	b.WriteString(errStyle.Render(location + ": " + err.Error()))
	b.WriteString("\n")

	line := lineAt(source, span.Start)
	gutter := fmt.Sprintf("%4d | ", pos.Line)
	b.WriteString(mutedStyle.Render(gutter))
	b.WriteString(line)
	b.WriteString("\n")

	width := underlineWidth(source, span, line, pos.Column)
	b.WriteString(strings.Repeat(" ", len(gutter)+pos.Column-1))
	b.WriteString(caretStyle.Render(strings.Repeat("^", width)))
	b.WriteString("\n")
	return b.String()
}

// lineAt returns the full line containing offset without its newline
func lineAt(source string, offset int) string {
	if offset > len(source) {
		offset = len(source)
	}
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		return strings.TrimRight(source[start:], "\r")
	}
	return strings.TrimRight(source[start:offset+end], "\r")
}

// underlineWidth counts the runes of span that fall on the first line,
// with a minimum of one
func underlineWidth(source string, span pwast.Span, line string, column int) int {
	end := span.End
	if end > len(source) {
		end = len(source)
	}
	if end <= span.Start {
		return 1
	}
	covered := source[span.Start:end]
	if i := strings.IndexByte(covered, '\n'); i >= 0 {
		covered = covered[:i]
	}
	width := utf8.RuneCountInString(covered)
	if rest := utf8.RuneCountInString(line) - (column - 1); width > rest && rest > 0 {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	return width
}
