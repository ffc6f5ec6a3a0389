package parser

import (
	"strconv"
	"strings"
)

// Node is implemented by every syntax tree node. The set of
// implementations is closed: no further variants exist at this layer.
type Node interface {
	String() string
	node()
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Span  Span
	Value float64
}

// VariableExpr refers to a parameter or a defined value by name. No
// scope resolution is performed at this layer.
type VariableExpr struct {
	Span Span
	Name string
}

// BinaryExpr applies a single-character binary operator to two
// operands. It exclusively owns both children.
type BinaryExpr struct {
	Span        Span
	Op          rune
	Left, Right Expr
}

// CallExpr calls a named function with arguments in source order.
type CallExpr struct {
	Span   Span
	Callee string
	Args   []Expr
}

// Prototype is a function signature: its name and parameter names. It
// serves both extern declarations and the head of a def.
type Prototype struct {
	Span   Span
	Name   string
	Params []string
}

// Function pairs a prototype with a body expression. Bare top-level
// expressions are wrapped in a Function with an anonymous
// zero-parameter prototype.
type Function struct {
	Span  Span
	Proto *Prototype
	Body  Expr
}

func (*NumberExpr) node()   {}
func (*VariableExpr) node() {}
func (*BinaryExpr) node()   {}
func (*CallExpr) node()     {}
func (*Prototype) node()    {}
func (*Function) node()     {}

func (*NumberExpr) exprNode()   {}
func (*VariableExpr) exprNode() {}
func (*BinaryExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}

// Anonymous reports whether p is the synthesized prototype of a
// top-level expression.
func (p *Prototype) Anonymous() bool {
	return p.Name == ""
}

// NodeSpan returns the source span covered by n.
func NodeSpan(n Node) Span {
	switch n := n.(type) {
	case *NumberExpr:
		return n.Span
	case *VariableExpr:
		return n.Span
	case *BinaryExpr:
		return n.Span
	case *CallExpr:
		return n.Span
	case *Prototype:
		return n.Span
	case *Function:
		return n.Span
	}
	return Span{}
}

func (e *NumberExpr) String() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

func (e *VariableExpr) String() string {
	return e.Name
}

func (e *BinaryExpr) String() string {
	return "(" + string(e.Op) + " " + e.Left.String() + " " + e.Right.String() + ")"
}

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return e.Callee + "(" + strings.Join(args, ", ") + ")"
}

func (p *Prototype) String() string {
	return p.Name + "(" + strings.Join(p.Params, " ") + ")"
}

func (f *Function) String() string {
	return "def " + f.Proto.String() + " " + f.Body.String()
}
