package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/kale/kale/parser"
)

// TreeEncoder writes an indented textual rendering of a syntax tree,
// one node per line.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node parser.Node) error {
	var sb strings.Builder
	writeTree(&sb, node, 0)
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func writeTree(sb *strings.Builder, node parser.Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *parser.NumberExpr:
		fmt.Fprintf(sb, "%sNumberExpr %s\n", prefix, strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *parser.VariableExpr:
		fmt.Fprintf(sb, "%sVariableExpr %s\n", prefix, n.Name)
	case *parser.BinaryExpr:
		fmt.Fprintf(sb, "%sBinaryExpr %c\n", prefix, n.Op)
		writeTree(sb, n.Left, indent+1)
		writeTree(sb, n.Right, indent+1)
	case *parser.CallExpr:
		fmt.Fprintf(sb, "%sCallExpr %s\n", prefix, n.Callee)
		for _, arg := range n.Args {
			writeTree(sb, arg, indent+1)
		}
	case *parser.Prototype:
		fmt.Fprintf(sb, "%sPrototype %s\n", prefix, n.String())
	case *parser.Function:
		fmt.Fprintf(sb, "%sFunction\n", prefix)
		writeTree(sb, n.Proto, indent+1)
		writeTree(sb, n.Body, indent+1)
	}
}
