package grammar

import (
	"strings"
	"testing"

	"github.com/dhamidi/kale/kale/parser"
)

func TestGrammarLoads(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, name := range TokenProductions {
		if _, ok := g[name]; !ok {
			t.Errorf("token production %q missing from grammar", name)
		}
	}
	if _, ok := g[Start]; !ok {
		t.Errorf("start production %q missing from grammar", Start)
	}
}

func TestClassify(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := NewClassifier(g)

	tests := []struct {
		input string
		kind  string
		n     int
	}{
		{"x", "identifier", 1},
		{"7", "number", 1},
		{"fib123", "identifier", 6},
		{"def", "identifier", 3},
		{"42", "number", 2},
		{"1.25", "number", 4},
		{".5", "number", 2},
		{"1.2.3", "number", 5},
		{"+", "operator", 1},
		{"<", "operator", 1},
		{"foo(1)", "identifier", 3},
		{"$", "", 0},
		{"", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, n := c.Classify(tt.input, 0)
			if kind != tt.kind || n != tt.n {
				t.Errorf("Classify(%q) = (%q, %d), want (%q, %d)", tt.input, kind, n, tt.kind, tt.n)
			}
		})
	}
}

// The grammar-driven classifier and the hand-written lexer must agree
// on token boundaries and shape.
func TestClassifierAgreesWithLexer(t *testing.T) {
	g, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := NewClassifier(g)

	kindFor := map[parser.TokenKind]string{
		parser.TokenIdent:  "identifier",
		parser.TokenDef:    "identifier", // keywords are identifiers lexically
		parser.TokenExtern: "identifier",
		parser.TokenNumber: "number",
	}

	inputs := []string{"x", "7", "foo", "fib123", "def", "extern", "42", "1.25", ".5", "1.2.3"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			lex := parser.NewLexer(strings.NewReader(input), "test.kale")
			tok := lex.NextToken()

			kind, n := c.Classify(input, 0)
			if want := kindFor[tok.Kind]; kind != want {
				t.Errorf("classifier kind = %q, lexer says %q", kind, want)
			}
			if n != len(tok.Literal) {
				t.Errorf("classifier length = %d, lexer consumed %d", n, len(tok.Literal))
			}
		})
	}
}
