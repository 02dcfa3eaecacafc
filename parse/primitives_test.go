package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/signadot/dts/ast"
)

func TestParseName(t *testing.T) {
	n, err := ParseName([]byte("a.b.C"))
	if err != nil {
		t.Fatal(err)
	}
	if n.Text != "a.b.C" {
		t.Errorf("got %q", n.Text)
	}
	if _, err := ParseName([]byte("default")); !errors.Is(err, ErrParse) {
		t.Errorf("reserved word: %v", err)
	}
	if _, err := ParseName([]byte("a.")); !errors.Is(err, ErrTrailing) {
		t.Errorf("dangling dot: %v", err)
	}
}

func TestParseParameter(t *testing.T) {
	p, err := ParseParameter([]byte("...xs?: T[]"))
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.Parameter{
		DotDotDotToken: &ast.DotDotDotToken{},
		Name:           id("xs"),
		QuestionToken:  &ast.QuestionToken{},
		Type:           &ast.ArrayType{ElementType: ref("T")},
	}
	if diff := cmp.Diff(want, p, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseParameter([]byte("x:")); !errors.Is(err, ErrParse) {
		t.Errorf("missing type: %v", err)
	}
}

func TestParseTypeParameter(t *testing.T) {
	tp, err := ParseTypeParameter([]byte(`K extends string = "a"`))
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.TypeParameter{Name: id("K"), Constraint: &ast.StringKeyword{}, Default: strLit("a")}
	if diff := cmp.Diff(want, tp, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParsePropertySignature(t *testing.T) {
	ps, err := ParsePropertySignature([]byte("readonly a?: number;"))
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.PropertySignature{
		NodeBase:      ast.NodeBase{Modifiers: []ast.Node{&ast.ReadonlyKeyword{}}},
		Name:          id("a"),
		QuestionToken: &ast.QuestionToken{},
		Type:          &ast.NumberKeyword{},
	}
	if diff := cmp.Diff(want, ps, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, in := range []string{"[k: string]: T", "m(): void", "a: string b"} {
		if _, err := ParsePropertySignature([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestParseComment(t *testing.T) {
	doc, err := ParseComment([]byte("/** hi\n * there */ type A = B"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Comment != "hi\nthere" {
		t.Errorf("got %q", doc.Comment)
	}
	for _, in := range []string{"", "type", "/* plain */ x"} {
		if _, err := ParseComment([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%q: %v", in, err)
		}
	}
}
