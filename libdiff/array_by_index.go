package libdiff

import (
	"unicode/utf8"

	"github.com/signadot/dts/ast"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// list aligns from and to by diffing the sequences of element summaries.
//
//  1. every element is summarized by its kind and its name or text
//  2. each distinct summary is mapped to a rune and the rune sequences
//     are diffed
//  3. aligned elements, and deleted elements followed by inserted ones,
//     are compared recursively
//  4. the rest become inserts and deletes
//
// Indices in the resulting paths count the list as it stands after the
// preceding changes.
func (d *differ) list(path string, from, to []ast.Node) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffEqual:
			for range n {
				d.node(at(path, ri), from[fi], to[ti])
				fi++
				ti++
				ri++
			}
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			pairs := min(n, ins)
			for range pairs {
				d.node(at(path, ri), from[fi], to[ti])
				fi++
				ti++
				ri++
			}
			for range n - pairs {
				d.add(MakeChange(at(path, ri), from[fi], nil))
				fi++
			}
			for range ins - pairs {
				d.add(MakeChange(at(path, ri), nil, to[ti]))
				ti++
				ri++
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(MakeChange(at(path, ri), nil, to[ti]))
				ti++
				ri++
			}
		}
	}
}

func mapValues(m map[string]rune, nodes []ast.Node) []rune {
	rs := make([]rune, len(nodes))
	for i, n := range nodes {
		sum := summaryStr(n)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(n ast.Node) string {
	sum := n.Kind().String()
	if s, ok := ast.Text(n); ok {
		return sum + "-" + s
	}
	for _, f := range ast.Fields(n) {
		if id, ok := f.Node.(*ast.Identifier); ok {
			return sum + "-" + id.Text
		}
	}
	return sum
}
