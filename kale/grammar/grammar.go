// Package grammar embeds the EBNF grammar of the kale language and
// provides grammar-driven token classification, used to cross-check
// the hand-written lexer.
package grammar

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Source is the grammar text as shipped.
//
//go:embed kale.ebnf
var Source string

// Start is the root production.
const Start = "Program"

// TokenProductions are the lexical productions the classifier tries,
// in no particular order; the longest match wins.
var TokenProductions = []string{"identifier", "number", "operator"}

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("kale.ebnf", strings.NewReader(Source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

type visitKey struct {
	name   string
	offset int
}

// Classifier matches input against the grammar's lexical productions.
type Classifier struct {
	grammar  ebnf.Grammar
	visiting map[visitKey]bool // cycle guard
}

func NewClassifier(g ebnf.Grammar) *Classifier {
	return &Classifier{grammar: g}
}

// Classify returns the name of the longest token production matching
// input at offset, with the match length. Returns ("", 0) when no
// production matches.
func (c *Classifier) Classify(input string, offset int) (string, int) {
	var bestKind string
	var bestLen int

	for _, name := range TokenProductions {
		prod, ok := c.grammar[name]
		if !ok || prod.Expr == nil {
			continue
		}
		c.visiting = make(map[visitKey]bool)
		n, ok := c.match(prod.Expr, input, offset)
		if ok && n > bestLen {
			bestKind = name
			bestLen = n
		}
	}

	return bestKind, bestLen
}

// match reports whether expr matches at offset and the match length.
// A match may legitimately be empty (repetitions and options), so a
// zero length with ok == true is not a failure.
func (c *Classifier) match(expr ebnf.Expression, input string, offset int) (int, bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		if strings.HasPrefix(input[offset:], e.String) {
			return len(e.String), true
		}
		return 0, false

	case *ebnf.Range:
		if offset >= len(input) {
			return 0, false
		}
		begin, end := e.Begin.String, e.End.String
		if len(begin) != 1 || len(end) != 1 {
			return 0, false
		}
		if ch := input[offset]; ch >= begin[0] && ch <= end[0] {
			return 1, true
		}
		return 0, false

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := c.match(item, input, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, matched := 0, false
		for _, alt := range e {
			if n, ok := c.match(alt, input, offset); ok {
				matched = true
				if n > best {
					best = n
				}
			}
		}
		return best, matched

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := c.match(e.Body, input, offset+total)
			if !ok || n == 0 {
				return total, true
			}
			total += n
		}

	case *ebnf.Option:
		if n, ok := c.match(e.Body, input, offset); ok {
			return n, true
		}
		return 0, true

	case *ebnf.Group:
		return c.match(e.Body, input, offset)

	case *ebnf.Name:
		return c.matchName(e.String, input, offset)
	}

	return 0, false
}

func (c *Classifier) matchName(name string, input string, offset int) (int, bool) {
	key := visitKey{name: name, offset: offset}
	if c.visiting[key] {
		return 0, false
	}
	prod, ok := c.grammar[name]
	if !ok || prod.Expr == nil {
		return 0, false
	}

	c.visiting[key] = true
	n, matched := c.match(prod.Expr, input, offset)
	delete(c.visiting, key)

	return n, matched
}
