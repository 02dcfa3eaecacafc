// Package patch edits ASTs through their JSON encoding with RFC 6902 JSON
// patches and RFC 7386 merge patches.
//
// Patched documents are decoded again, so a patch which leaves something
// other than a well formed node fails. Values in patches may give kinds by
// number or by name.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/debug"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 patch p to n.
func Apply(n ast.Node, p []byte, opts ...ast.DecodeOption) (ast.Node, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode patch: %w", ErrPatch, err)
	}
	d, err := ast.Marshal(n)
	if err != nil {
		return nil, err
	}
	if debug.Codec() {
		debug.Logf("applying %d patch ops to %s\n", len(ops), n.Kind())
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return decode(out, opts)
}

// Merge applies the RFC 7386 merge patch p to n.
func Merge(n ast.Node, p []byte, opts ...ast.DecodeOption) (ast.Node, error) {
	d, err := ast.Marshal(n)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return decode(out, opts)
}

// CreateMerge returns the merge patch turning from into to.
func CreateMerge(from, to ast.Node) ([]byte, error) {
	fd, err := ast.Marshal(from)
	if err != nil {
		return nil, err
	}
	td, err := ast.Marshal(to)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return p, nil
}

func decode(d []byte, opts []ast.DecodeOption) (ast.Node, error) {
	n, err := ast.Unmarshal(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: patched document: %w", ErrPatch, err)
	}
	return n, nil
}
