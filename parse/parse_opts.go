package parse

import (
	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/token"
)

// MaxDepth is the default bound on grammar recursion.
const MaxDepth = 256

type parseOpts struct {
	maxDepth  int
	fileName  string
	positions map[ast.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// WithMaxDepth bounds grammar recursion; input nested deeper fails with
// ErrTooDeep. Values below 1 restore the default.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = MaxDepth
		}
		o.maxDepth = n
	}
}

// FileName sets the name recorded in the SourceFile produced by ParseFile.
func FileName(name string) ParseOption {
	return func(o *parseOpts) { o.fileName = name }
}

// ParsePositions records the starting position of each parsed node in m.
func ParsePositions(m map[ast.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: MaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
