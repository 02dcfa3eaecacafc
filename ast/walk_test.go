package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kindsOf(ns []Node) []Kind {
	res := make([]Kind, len(ns))
	for i, n := range ns {
		res[i] = n.Kind()
	}
	return res
}

func TestChildren(t *testing.T) {
	alias := samples()[KindTypeAliasDeclaration]
	got := kindsOf(Children(alias))
	want := []Kind{
		KindExportKeyword, KindDeclareKeyword,
		KindJSDoc,
		KindIdentifier,
		KindTypeParameter,
		KindTypeReference,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	if Children(nil) != nil {
		t.Error("nil node has children")
	}
	if len(Children(&StringKeyword{})) != 0 {
		t.Error("keyword has children")
	}
}

func TestWalk(t *testing.T) {
	// (A | null)[]
	n := &ArrayType{ElementType: &ParenthesizedType{Type: &UnionType{Types: []Node{ref("A"), &NullKeyword{}}}}}
	var got []Kind
	Walk(n, func(n Node) bool {
		got = append(got, n.Kind())
		return true
	})
	want := []Kind{
		KindArrayType, KindParenthesizedType, KindUnionType,
		KindTypeReference, KindIdentifier, KindNullKeyword,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk (-want +got):\n%s", diff)
	}

	got = got[:0]
	Walk(n, func(n Node) bool {
		got = append(got, n.Kind())
		return n.Kind() != KindUnionType
	})
	if diff := cmp.Diff(want[:3], got); diff != "" {
		t.Errorf("pruned walk (-want +got):\n%s", diff)
	}
	if c := Count(n); c != 6 {
		t.Errorf("count %d", c)
	}
}

func TestEqual(t *testing.T) {
	a := &UnionType{Types: []Node{ref("A"), ref("B")}}
	b := &UnionType{Types: []Node{ref("A"), ref("B")}}
	c := &UnionType{Types: []Node{ref("B"), ref("A")}}
	if !Equal(a, b) {
		t.Error("a != b")
	}
	if Equal(a, c) {
		t.Error("member order is significant")
	}
	if !Equal(nil, nil) {
		t.Error("nil != nil")
	}
	if Equal(a, nil) {
		t.Error("a == nil")
	}
}

func TestFields(t *testing.T) {
	n := &TypeOperator{Operator: KindKeyOfKeyword, Type: ref("T")}
	fs := Fields(n)
	if len(fs) != 2 {
		t.Fatalf("got %d fields", len(fs))
	}
	if fs[0].Name != "operator" || fs[0].Value != KindKeyOfKeyword {
		t.Errorf("operator field %+v", fs[0])
	}
	if fs[1].Name != "type" || fs[1].Node == nil || fs[1].Node.Kind() != KindTypeReference {
		t.Errorf("type field %+v", fs[1])
	}
	fs = Fields(&UnionType{})
	if len(fs) != 1 || !fs[0].IsList || len(fs[0].List) != 0 {
		t.Errorf("union fields %+v", fs)
	}
	if s, ok := Text(NewIdentifier("x")); !ok || s != "x" {
		t.Errorf("Text = %q, %t", s, ok)
	}
	if _, ok := Text(&UnionType{}); ok {
		t.Error("UnionType has no text")
	}
}
