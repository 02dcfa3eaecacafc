// Package libdiff computes structural differences between ASTs.
package libdiff

import (
	"strconv"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/debug"
)

// Diff returns the changes which turn from into to. Nodes of differing
// kinds are replaced whole; nodes of the same kind are compared member by
// member and lists are aligned element by element.
func Diff(from, to ast.Node) []Change {
	d := &differ{}
	d.node("$", from, to)
	if debug.Codec() {
		debug.Logf("diff: %d changes\n", len(d.res))
	}
	return d.res
}

type differ struct {
	res []Change
}

func (d *differ) add(c Change) {
	d.res = append(d.res, c)
}

func (d *differ) node(path string, from, to ast.Node) {
	switch {
	case isNil(from) && isNil(to):
		return
	case isNil(from):
		d.add(MakeChange(path, nil, to))
		return
	case isNil(to):
		d.add(MakeChange(path, from, nil))
		return
	case from.Kind() != to.Kind():
		d.add(MakeChange(path, from, to))
		return
	}
	fFields, tFields := ast.Fields(from), ast.Fields(to)
	tMap := make(map[string]ast.Field, len(tFields))
	for _, f := range tFields {
		tMap[f.Name] = f
	}
	seen := make(map[string]bool, len(fFields))
	for _, f := range fFields {
		seen[f.Name] = true
		p := path + "." + f.Name
		t, ok := tMap[f.Name]
		if !ok {
			d.add(MakeChange(p, value(f), nil))
			continue
		}
		switch {
		case f.IsList:
			d.list(p, f.List, t.List)
		case f.Node != nil || t.Node != nil:
			d.node(p, f.Node, t.Node)
		case f.Value != t.Value:
			d.add(MakeChange(p, f.Value, t.Value))
		}
	}
	for _, t := range tFields {
		if !seen[t.Name] {
			d.add(MakeChange(path+"."+t.Name, nil, value(t)))
		}
	}
}

func value(f ast.Field) any {
	switch {
	case f.IsList:
		return f.List
	case f.Node != nil:
		return f.Node
	default:
		return f.Value
	}
}

func at(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}
