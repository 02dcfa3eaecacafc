package ast

import "reflect"

// Field is a member of a node as written by Marshal. Exactly one of Node,
// List (when IsList) or Value is meaningful.
type Field struct {
	Name   string
	Node   Node
	List   []Node
	IsList bool
	Value  any
}

// Fields returns the members of n in encoding order, base fields first.
// Empty optional members are left out.
func Fields(n Node) []Field {
	if isNil(n) {
		return nil
	}
	var res []Field
	collectFields(reflect.ValueOf(n).Elem(), &res)
	return res
}

func collectFields(v reflect.Value, res *[]Field) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous {
			collectFields(fv, res)
			continue
		}
		if !f.IsExported() {
			continue
		}
		name, omitEmpty, skip := jsonName(f)
		if skip || (omitEmpty && isEmptyValue(fv)) {
			continue
		}
		fld := Field{Name: name}
		switch {
		case isNodeType(f.Type):
			if n, ok := fv.Interface().(Node); ok && !isNil(n) {
				fld.Node = n
			}
		case isNodeList(f.Type):
			fld.IsList = true
			fld.List = make([]Node, 0, fv.Len())
			for j := 0; j < fv.Len(); j++ {
				if n, ok := fv.Index(j).Interface().(Node); ok && !isNil(n) {
					fld.List = append(fld.List, n)
				}
			}
		default:
			fld.Value = fv.Interface()
		}
		*res = append(*res, fld)
	}
}

// Text returns the text payload of a leaf that carries one (identifiers,
// literals and documentation) and whether it has one.
func Text(n Node) (string, bool) {
	switch x := n.(type) {
	case *Identifier:
		return x.Text, true
	case *StringLiteral:
		return x.Text, true
	case *NumericLiteral:
		return x.Text, true
	case *NoSubstitutionTemplateLiteral:
		return x.Text, true
	case *JSDoc:
		return x.Comment, true
	case *JSDocText:
		return x.Text, true
	}
	return "", false
}
