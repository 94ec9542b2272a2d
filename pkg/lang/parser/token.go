// File: token.go
// Title: Token Definitions
// Description: Token kinds of the pwoli language, the fixed keyword table
//              and the Token value produced by the lexer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial token types
// - 2026-10-15 v0.2.0: pwoli vocabulary

package parser

import (
	"fmt"

	pwast "github.com/msto63/pwoli/pkg/lang/ast"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// Special tokens
	KindEOF Kind = iota

	// Keywords
	KindDeclare     // pwoli_sadhanam
	KindIf          // seriyano_mwone
	KindElse        // seri_allel
	KindWhile       // repeat_adi
	KindPrint       // dhe_pidicho
	KindRelator     // um
	KindBlockMarker // same_alle

	// Identifiers and literals
	KindIdentifier
	KindNumber

	// Punctuation
	KindAssign     // =
	KindMinus      // -
	KindSemicolon  // ;
	KindLeftBrace  // {
	KindRightBrace // }
)

// Keyword spellings
const (
	KeywordDeclare     = "pwoli_sadhanam"
	KeywordIf          = "seriyano_mwone"
	KeywordElse        = "seri_allel"
	KeywordWhile       = "repeat_adi"
	KeywordPrint       = "dhe_pidicho"
	KeywordRelator     = "um"
	KeywordBlockMarker = "same_alle"
)

var keywords = map[string]Kind{
	KeywordDeclare:     KindDeclare,
	KeywordIf:          KindIf,
	KeywordElse:        KindElse,
	KeywordWhile:       KindWhile,
	KeywordPrint:       KindPrint,
	KeywordRelator:     KindRelator,
	KeywordBlockMarker: KindBlockMarker,
}

var punctuation = map[byte]Kind{
	'=': KindAssign,
	'-': KindMinus,
	';': KindSemicolon,
	'{': KindLeftBrace,
	'}': KindRightBrace,
}

// String returns a human readable name of the kind, as used in error
// messages
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of input"
	case KindDeclare:
		return "'" + KeywordDeclare + "'"
	case KindIf:
		return "'" + KeywordIf + "'"
	case KindElse:
		return "'" + KeywordElse + "'"
	case KindWhile:
		return "'" + KeywordWhile + "'"
	case KindPrint:
		return "'" + KeywordPrint + "'"
	case KindRelator:
		return "'" + KeywordRelator + "'"
	case KindBlockMarker:
		return "'" + KeywordBlockMarker + "'"
	case KindIdentifier:
		return "identifier"
	case KindNumber:
		return "number"
	case KindAssign:
		return "'='"
	case KindMinus:
		return "'-'"
	case KindSemicolon:
		return "';'"
	case KindLeftBrace:
		return "'{'"
	case KindRightBrace:
		return "'}'"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsKeyword reports whether the kind is one of the reserved words
func (k Kind) IsKeyword() bool {
	return k >= KindDeclare && k <= KindBlockMarker
}

// Token is an atomic lexical unit. Text is the exact source slice; Value
// holds the parsed value of KindNumber tokens.
type Token struct {
	Kind  Kind
	Span  pwast.Span
	Text  string
	Value int64
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return fmt.Sprintf("EOF@%s", t.Span)
	case KindIdentifier, KindNumber:
		return fmt.Sprintf("%s(%s)@%s", t.Kind, t.Text, t.Span)
	default:
		return fmt.Sprintf("%s@%s", t.Kind, t.Span)
	}
}

// LookupIdent returns the keyword kind for word, or KindIdentifier
func LookupIdent(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return KindIdentifier
}
