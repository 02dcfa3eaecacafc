package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/format"
)

func sample() ast.Node {
	return &ast.UnionType{Types: []ast.Node{
		&ast.TypeOperator{Operator: ast.KindKeyOfKeyword, Type: ast.NewTypeReference("T")},
		&ast.NullKeyword{},
	}}
}

func TestEncodeTree(t *testing.T) {
	want := `UnionType
  types:
    - TypeOperator
      operator: KeyOfKeyword
      type: TypeReference
        typeName: Identifier "T"
    - NullKeyword
`
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeTreeEmpty(t *testing.T) {
	got := MustString(&ast.TupleType{})
	want := "TupleType\n  elements: []"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	got = MustString(&ast.MappedType{TypeParameter: &ast.TypeParameter{Name: ast.NewIdentifier("K")}})
	if !strings.Contains(got, "type: null") {
		t.Errorf("missing null type in\n%s", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(sample(), buf, EncodeFormat(format.JSONFormat), EncodeCompact(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":192,"types":[{"kind":198,"operator":143,"type":{"kind":183,"typeName":{"kind":80,"text":"T"}}},{"kind":106}]}` + "\n"
	if buf.String() != want {
		t.Errorf("got %s", buf.String())
	}
	n, err := ast.Unmarshal(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(n, sample()) {
		t.Error("JSON output does not decode to the input")
	}
}

func TestKindNames(t *testing.T) {
	d, err := ast.MarshalIndent(sample(), "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	named := KindNames(d)
	if !bytes.Contains(named, []byte(`"kind": "UnionType"`)) {
		t.Errorf("no kind name in\n%s", named)
	}
	// operator values are kinds too but are not discriminators
	if !bytes.Contains(named, []byte(`"operator": 143`)) {
		t.Errorf("operator rewritten in\n%s", named)
	}
	n, err := ast.Unmarshal(named)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(n, sample()) {
		t.Error("named kinds do not decode to the input")
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"kind: UnionType", "kind: TypeOperator", "text: T", "kind: NullKeyword"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in\n%s", want, out)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	c := NewColors()
	c.Map = map[ColorAttr]func(string, ...any) string{
		KindColor: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	got := MustString(ast.NewTypeReference("T"), EncodeColors(c))
	want := "<TypeReference>\n  typeName: <Identifier> \"T\""
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
