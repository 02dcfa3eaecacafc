package libdiff

import (
	"reflect"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one edit. Changes returned by Diff apply in order: each Path
// addresses the tree as it stands after the changes before it.
//
// From and To hold an ast.Node, a []ast.Node for a whole list member, or
// a scalar field value. From is nil for an insert and To for a delete.
type Change struct {
	Op   Op
	Path string
	From any
	To   any
	// Text is the character diff of a replaced string.
	Text []diffpatch.Diff
}

// MakeChange returns an insert when from is nil, a delete when to is nil
// and a replace otherwise.
func MakeChange(path string, from, to any) Change {
	switch {
	case isNil(from):
		return Change{Op: OpInsert, Path: path, To: to}
	case isNil(to):
		return Change{Op: OpDelete, Path: path, From: from}
	}
	c := Change{Op: OpReplace, Path: path, From: from, To: to}
	fs, fok := from.(string)
	ts, tok := to.(string)
	if fok && tok {
		c.Text = DiffString(fs, ts)
	}
	return c
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
