package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer reads characters from r one at a time and classifies them into
// tokens. It keeps exactly one character of carry-over state between
// calls to NextToken; the state is scoped to the instance, so
// independent lexers never interfere with each other.
type Lexer struct {
	r    *bufio.Reader
	file string
	ch   rune     // most recently read, not yet classified character
	pos  Position // position of ch
	eof  bool
}

func NewLexer(r io.Reader, file string) *Lexer {
	l := &Lexer{
		r:    bufio.NewReader(r),
		file: file,
		pos:  Position{File: file, Line: 1, Column: 1},
	}
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
	} else {
		l.ch = ch
	}
	return l
}

// Position returns the position of the next character to be classified.
func (l *Lexer) Position() Position {
	return l.pos
}

func (l *Lexer) advance() {
	if l.eof {
		return
	}
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Offset += utf8.RuneLen(l.ch)
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}
	l.ch = ch
}

func (l *Lexer) NextToken() Token {
	for !l.eof && isSpace(l.ch) {
		l.advance()
	}

	start := l.pos

	switch {
	case l.eof:
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	case isAlpha(l.ch):
		return l.scanIdentOrKeyword(start)
	case isDigit(l.ch) || l.ch == '.':
		return l.scanNumber(start)
	case l.ch == '#':
		l.skipLineComment()
		return l.NextToken()
	default:
		ch := l.ch
		l.advance()
		return Token{
			Kind:    TokenSymbol,
			Span:    Span{Start: start, End: l.pos},
			Literal: string(ch),
		}
	}
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	var sb strings.Builder
	for !l.eof && isAlnum(l.ch) {
		sb.WriteRune(l.ch)
		l.advance()
	}
	literal := sb.String()
	return Token{
		Kind:    LookupKeyword(literal),
		Span:    Span{Start: start, End: l.pos},
		Literal: literal,
	}
}

// scanNumber consumes the maximal run of digits and dots. The scan is
// deliberately lenient: "1.2.3" is a single number token whose value is
// the longest convertible prefix (1.2), matching strtod semantics.
func (l *Lexer) scanNumber(start Position) Token {
	var sb strings.Builder
	for !l.eof && (isDigit(l.ch) || l.ch == '.') {
		sb.WriteRune(l.ch)
		l.advance()
	}
	literal := sb.String()
	return Token{
		Kind:    TokenNumber,
		Span:    Span{Start: start, End: l.pos},
		Literal: literal,
		Value:   parseNumber(literal),
	}
}

func parseNumber(text string) float64 {
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v
	}
	for i := len(text) - 1; i > 0; i-- {
		if v, err := strconv.ParseFloat(text[:i], 64); err == nil {
			return v
		}
	}
	return 0
}

func (l *Lexer) skipLineComment() {
	for !l.eof && l.ch != '\n' && l.ch != '\r' {
		l.advance()
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isAlnum(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
