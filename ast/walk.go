package ast

import (
	"bytes"
	"reflect"
)

// Children returns the direct child nodes of n in field order, base
// fields (modifiers, documentation) first.
func Children(n Node) []Node {
	if isNil(n) {
		return nil
	}
	var res []Node
	collectChildren(reflect.ValueOf(n).Elem(), &res)
	return res
}

func collectChildren(v reflect.Value, res *[]Node) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		switch {
		case f.Anonymous:
			collectChildren(fv, res)
		case !f.IsExported():
		case isNodeType(f.Type):
			if n, ok := fv.Interface().(Node); ok && !isNil(n) {
				*res = append(*res, n)
			}
		case isNodeList(f.Type):
			for j := 0; j < fv.Len(); j++ {
				if n, ok := fv.Index(j).Interface().(Node); ok && !isNil(n) {
					*res = append(*res, n)
				}
			}
		}
	}
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the children of the node just visited.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	c := 0
	Walk(n, func(Node) bool {
		c++
		return true
	})
	return c
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Node) bool {
	da, err := Marshal(a)
	if err != nil {
		return false
	}
	db, err := Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(da, db)
}
