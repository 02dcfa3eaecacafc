package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/encode"
)

type JSON any

// Tree renders a node as an indented kind tree when formatted.
type Tree struct{ ast.Node }

func (t Tree) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t.Node, buf); err != nil {
		return fmt.Sprintf("[raw ast.Node] %v", t.Node)
	}
	return buf.String()
}

// Logf writes to stderr. Nodes among args are rendered as kind trees and
// JSON values as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			args[i] = Tree{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
