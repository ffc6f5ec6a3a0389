package parser

import (
	"fmt"
	"unicode/utf8"
)

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Keywords
	TokenDef
	TokenExtern

	// Literals
	TokenIdent
	TokenNumber

	// Any other single character: operators, punctuation, and
	// everything the lexer does not recognize. The parser decides
	// whether the character is meaningful.
	TokenSymbol
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenDef:    "def",
	TokenExtern: "extern",
	TokenIdent:  "Identifier",
	TokenNumber: "Number",
	TokenSymbol: "Symbol",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
	Value   float64 // set for TokenNumber
}

// Rune returns the raw character of a TokenSymbol token, 0 for any
// other kind.
func (t Token) Rune() rune {
	if t.Kind != TokenSymbol || t.Literal == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.Literal)
	return r
}

// IsSymbol reports whether t is the single-character token r.
func (t Token) IsSymbol(r rune) bool {
	return t.Kind == TokenSymbol && t.Rune() == r
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Span.Start, t.Kind, t.Literal)
}

var keywords = map[string]TokenKind{
	"def":    TokenDef,
	"extern": TokenExtern,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
