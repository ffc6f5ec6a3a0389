package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/kale/kale/parser"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

// EncodeAll writes a JSON array of all top-level nodes of a program.
func (e *ASTJSONEncoder) EncodeAll(nodes []parser.Node) error {
	out := make([]*astJSONNode, len(nodes))
	for i, n := range nodes {
		out[i] = nodeToJSON(n)
	}
	text, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText(node parser.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind   string         `json:"kind"`
	Span   *astJSONSpan   `json:"span,omitempty"`
	Value  *float64       `json:"value,omitempty"`
	Name   string         `json:"name,omitempty"`
	Op     string         `json:"op,omitempty"`
	Callee string         `json:"callee,omitempty"`
	Params []string       `json:"params,omitempty"`
	Left   *astJSONNode   `json:"left,omitempty"`
	Right  *astJSONNode   `json:"right,omitempty"`
	Args   []*astJSONNode `json:"args,omitempty"`
	Proto  *astJSONNode   `json:"proto,omitempty"`
	Body   *astJSONNode   `json:"body,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(n parser.Node) *astJSONNode {
	if n == nil {
		return nil
	}

	jn := &astJSONNode{}
	span := parser.NodeSpan(n)
	if span.Start.Line != 0 || span.End.Line != 0 {
		jn.Span = &astJSONSpan{
			Start: astJSONPosition{Line: span.Start.Line, Column: span.Start.Column},
			End:   astJSONPosition{Line: span.End.Line, Column: span.End.Column},
		}
	}

	switch n := n.(type) {
	case *parser.NumberExpr:
		jn.Kind = "NumberExpr"
		value := n.Value
		jn.Value = &value
	case *parser.VariableExpr:
		jn.Kind = "VariableExpr"
		jn.Name = n.Name
	case *parser.BinaryExpr:
		jn.Kind = "BinaryExpr"
		jn.Op = string(n.Op)
		jn.Left = nodeToJSON(n.Left)
		jn.Right = nodeToJSON(n.Right)
	case *parser.CallExpr:
		jn.Kind = "CallExpr"
		jn.Callee = n.Callee
		for _, arg := range n.Args {
			jn.Args = append(jn.Args, nodeToJSON(arg))
		}
	case *parser.Prototype:
		jn.Kind = "Prototype"
		jn.Name = n.Name
		jn.Params = n.Params
	case *parser.Function:
		jn.Kind = "Function"
		jn.Proto = nodeToJSON(n.Proto)
		jn.Body = nodeToJSON(n.Body)
	}

	return jn
}
