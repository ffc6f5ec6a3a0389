// Package format renders kale syntax trees for external consumers.
package format

import (
	"github.com/dhamidi/kale/kale/parser"
)

// Encoder writes a rendering of one syntax tree node.
type Encoder interface {
	Encode(node parser.Node) error
}
