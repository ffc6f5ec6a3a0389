package parser

import "testing"

func TestNodeStrings(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"number", &NumberExpr{Value: 42}, "42"},
		{"fractional number", &NumberExpr{Value: 2.5}, "2.5"},
		{"variable", &VariableExpr{Name: "x"}, "x"},
		{
			"binary",
			&BinaryExpr{Op: '+', Left: &NumberExpr{Value: 1}, Right: &VariableExpr{Name: "y"}},
			"(+ 1 y)",
		},
		{
			"call",
			&CallExpr{Callee: "foo", Args: []Expr{&NumberExpr{Value: 1}, &NumberExpr{Value: 2}}},
			"foo(1, 2)",
		},
		{"empty call", &CallExpr{Callee: "foo"}, "foo()"},
		{"prototype", &Prototype{Name: "fib", Params: []string{"n"}}, "fib(n)"},
		{
			"function",
			&Function{
				Proto: &Prototype{Name: "id", Params: []string{"x"}},
				Body:  &VariableExpr{Name: "x"},
			},
			"def id(x) x",
		},
		{
			"anonymous function",
			&Function{Proto: &Prototype{}, Body: &NumberExpr{Value: 7}},
			"def () 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodeSpan(t *testing.T) {
	span := Span{
		Start: Position{Line: 1, Column: 1},
		End:   Position{Line: 1, Column: 4},
	}
	nodes := []Node{
		&NumberExpr{Span: span},
		&VariableExpr{Span: span},
		&BinaryExpr{Span: span},
		&CallExpr{Span: span},
		&Prototype{Span: span},
		&Function{Span: span},
	}
	for _, n := range nodes {
		if got := NodeSpan(n); got != span {
			t.Errorf("%T: got %v, want %v", n, got, span)
		}
	}
}

func TestPrototypeAnonymous(t *testing.T) {
	if (&Prototype{Name: "foo"}).Anonymous() {
		t.Error("named prototype reported anonymous")
	}
	if !(&Prototype{}).Anonymous() {
		t.Error("unnamed prototype not reported anonymous")
	}
}
