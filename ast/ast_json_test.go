package ast

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func ref(name string, args ...Node) *TypeReference {
	return NewTypeReference(name, args...)
}

func param(name string, typ Node) *Parameter {
	return &Parameter{Name: NewIdentifier(name), Type: typ}
}

// samples holds one populated node per kind.
func samples() map[Kind]Node {
	res := map[Kind]Node{}
	for _, k := range Kinds() {
		if k.IsKeyword() || k.IsToken() || k == KindThisType {
			res[k] = New(k)
		}
	}
	tp := &TypeParameter{Name: NewIdentifier("K"), Constraint: &StringKeyword{}, Default: &AnyKeyword{}}
	res[KindIdentifier] = NewIdentifier("x")
	res[KindStringLiteral] = &StringLiteral{Text: "a"}
	res[KindNumericLiteral] = &NumericLiteral{Text: "42"}
	res[KindNoSubstitutionTemplateLiteral] = &NoSubstitutionTemplateLiteral{Text: "a${b}"}
	res[KindTypeReference] = ref("Map", &StringKeyword{}, ref("V"))
	res[KindUnionType] = &UnionType{Types: []Node{ref("A"), ref("B")}}
	res[KindIntersectionType] = &IntersectionType{Types: []Node{ref("A"), ref("B"), ref("C")}}
	res[KindArrayType] = &ArrayType{ElementType: ref("T")}
	res[KindTupleType] = &TupleType{Elements: []Node{ref("T"), &OptionalType{Type: ref("V")}, &RestType{Type: &ArrayType{ElementType: ref("W")}}}}
	res[KindRestType] = &RestType{Type: ref("T")}
	res[KindOptionalType] = &OptionalType{Type: ref("T")}
	res[KindFunctionType] = &FunctionType{
		TypeParameters: []*TypeParameter{{Name: NewIdentifier("T")}},
		Parameters:     []*Parameter{param("x", ref("T")), {DotDotDotToken: &DotDotDotToken{}, Name: NewIdentifier("rest"), Type: &ArrayType{ElementType: &AnyKeyword{}}}},
		Type:           &VoidKeyword{},
	}
	res[KindConstructorType] = &ConstructorType{Parameters: []*Parameter{param("x", &StringKeyword{})}, Type: ref("T")}
	res[KindTypeOperator] = &TypeOperator{Operator: KindKeyOfKeyword, Type: ref("T")}
	res[KindMappedType] = &MappedType{
		ReadonlyToken: &MinusToken{},
		TypeParameter: &TypeParameter{Name: NewIdentifier("P"), Constraint: &TypeOperator{Operator: KindKeyOfKeyword, Type: ref("T")}},
		NameType:      ref("N"),
		QuestionToken: &QuestionToken{},
		Type:          &IndexedAccessType{ObjectType: ref("T"), IndexType: ref("P")},
	}
	res[KindIndexedAccessType] = &IndexedAccessType{ObjectType: ref("T"), IndexType: &LiteralType{Literal: &StringLiteral{Text: "k"}}}
	res[KindTypeLiteral] = &TypeLiteral{Members: []Node{
		&PropertySignature{NodeBase: NodeBase{Modifiers: []Node{&ReadonlyKeyword{}}}, Name: NewIdentifier("a"), QuestionToken: &QuestionToken{}, Type: &NumberKeyword{}},
		&IndexSignature{Parameters: []*Parameter{param("k", &StringKeyword{})}, Type: &AnyKeyword{}},
	}}
	res[KindLiteralType] = &LiteralType{Literal: &TrueKeyword{}}
	res[KindParenthesizedType] = &ParenthesizedType{Type: &UnionType{Types: []Node{ref("A"), &NullKeyword{}}}}
	res[KindTypeQuery] = &TypeQuery{ExprName: NewIdentifier("console.log")}
	res[KindConditionalType] = &ConditionalType{
		CheckType:   ref("T"),
		ExtendsType: &ArrayType{ElementType: &InferType{TypeParameter: &TypeParameter{Name: NewIdentifier("U")}}},
		TrueType:    ref("U"),
		FalseType:   &NeverKeyword{},
	}
	res[KindInferType] = &InferType{TypeParameter: &TypeParameter{Name: NewIdentifier("U")}}
	res[KindParameter] = &Parameter{Name: NewIdentifier("x"), QuestionToken: &QuestionToken{}, Type: &NumberKeyword{}}
	res[KindTypeParameter] = tp
	res[KindPropertySignature] = &PropertySignature{Name: NewIdentifier("p"), Type: &StringKeyword{}}
	res[KindIndexSignature] = &IndexSignature{Parameters: []*Parameter{param("k", &NumberKeyword{})}, Type: ref("V")}
	res[KindMethodSignature] = &MethodSignature{Name: NewIdentifier("m"), Parameters: []*Parameter{param("a", ref("A"))}, Type: &VoidKeyword{}}
	res[KindCallSignature] = &CallSignature{Parameters: []*Parameter{param("a", ref("A"))}, Type: ref("R")}
	res[KindConstructSignature] = &ConstructSignature{Type: ref("R")}
	res[KindTypeAliasDeclaration] = &TypeAliasDeclaration{
		NodeBase: NodeBase{
			Modifiers: []Node{&ExportKeyword{}, &DeclareKeyword{}},
			JSDoc:     DocList{&JSDoc{Comment: "an enum value"}},
		},
		Name:           NewIdentifier("EnumValue"),
		TypeParameters: []*TypeParameter{{Name: NewIdentifier("E"), Default: &AnyKeyword{}}},
		Type:           ref("EnumCls", ref("E")),
	}
	res[KindSourceFile] = &SourceFile{FileName: "a.d.ts", Statements: []Node{res[KindTypeAliasDeclaration]}}
	res[KindJSDoc] = &JSDoc{Comment: "doc"}
	res[KindJSDocText] = &JSDocText{Text: "text"}
	return res
}

func TestSamplesCoverKinds(t *testing.T) {
	s := samples()
	for _, k := range Kinds() {
		n, ok := s[k]
		if !ok {
			t.Errorf("no sample for %s", k)
			continue
		}
		if n.Kind() != k {
			t.Errorf("sample for %s has kind %s", k, n.Kind())
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for k, n := range samples() {
		t.Run(k.String(), func(t *testing.T) {
			d, err := Marshal(n)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Unmarshal(d)
			if err != nil {
				t.Fatalf("unmarshal %s: %v", d, err)
			}
			if diff := cmp.Diff(n, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
			if !Equal(n, got) {
				t.Errorf("Equal reports a difference for %s", d)
			}
		})
	}
}

func TestMarshalShape(t *testing.T) {
	d, err := Marshal(&ArrayType{ElementType: ref("T")})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":188,"elementType":{"kind":183,"typeName":{"kind":80,"text":"T"}}}`
	if string(d) != want {
		t.Errorf("got %s\nwant %s", d, want)
	}
	d, err = Marshal(&UnionType{})
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `{"kind":192,"types":[]}` {
		t.Errorf("got %s", d)
	}
}

func TestMarshalNil(t *testing.T) {
	d, err := Marshal(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "null" {
		t.Errorf("got %s", d)
	}
	var id *Identifier
	d, err = Marshal(id)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "null" {
		t.Errorf("got %s", d)
	}
	n, err := Unmarshal([]byte("null"))
	if err != nil || n != nil {
		t.Errorf("got %v, %v", n, err)
	}
}

func TestJSDocStringBecomesList(t *testing.T) {
	in := `{"kind":"TypeAliasDeclaration","jsDoc":"Some docs","name":{"kind":80,"text":"A"},"type":{"kind":154}}`
	n, err := Unmarshal([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	alias, ok := n.(*TypeAliasDeclaration)
	if !ok {
		t.Fatalf("got %T", n)
	}
	want := DocList{&JSDocText{Text: "Some docs"}}
	if diff := cmp.Diff(want, alias.JSDoc); diff != "" {
		t.Errorf("jsDoc (-want +got):\n%s", diff)
	}
	once, err := Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(once), `"jsDoc":[{"kind":321,"text":"Some docs"}]`) {
		t.Errorf("jsDoc not written in list form: %s", once)
	}
	n2, err := Unmarshal(once)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Marshal(n2)
	if err != nil {
		t.Fatal(err)
	}
	if string(once) != string(twice) {
		t.Errorf("list form not stable:\n%s\n%s", once, twice)
	}
}

func TestDocListJSON(t *testing.T) {
	var l DocList
	if err := json.Unmarshal([]byte(`"hello"`), &l); err != nil {
		t.Fatal(err)
	}
	if l.Text() != "hello" {
		t.Errorf("got %q", l.Text())
	}
	d, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `[{"kind":321,"text":"hello"}]` {
		t.Errorf("got %s", d)
	}
}

func TestUnknownKind(t *testing.T) {
	in := `{"kind":9999,"modifiers":[{"kind":95}],"jsDoc":"doc","whatever":1}`
	_, err := Unmarshal([]byte(in))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	n, err := Unmarshal([]byte(in), AllowUnknownKinds())
	if err != nil {
		t.Fatal(err)
	}
	u, ok := n.(*UnknownNode)
	if !ok {
		t.Fatalf("got %T", n)
	}
	if u.Kind() != Kind(9999) {
		t.Errorf("kind %d", int(u.Kind()))
	}
	if len(u.Modifiers) != 1 || u.Modifiers[0].Kind() != KindExportKeyword {
		t.Errorf("modifiers %v", u.Modifiers)
	}
	if u.JSDoc.Text() != "doc" {
		t.Errorf("jsDoc %q", u.JSDoc.Text())
	}

	nested := `{"kind":188,"elementType":{"kind":"Bogus"}}`
	if _, err := Unmarshal([]byte(nested)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("nested unknown: %v", err)
	}
	n, err = Unmarshal([]byte(nested), AllowUnknownKinds())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := n.(*ArrayType).ElementType.(*UnknownNode); !ok {
		t.Errorf("got %T", n.(*ArrayType).ElementType)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{in: ``, err: ErrDecode},
		{in: `[1]`, err: ErrDecode},
		{in: `{"text":"x"}`, err: ErrDecode},
		{in: `{"kind":0}`, err: ErrUnknownKind},
		// a TypeReference's typeName must be an Identifier
		{in: `{"kind":183,"typeName":{"kind":154}}`, err: ErrKindMismatch},
		{in: `{"kind":192,"types":{}}`, err: ErrDecode},
		{in: `{"kind":80,"text":3}`, err: ErrDecode},
	}
	for _, tt := range tests {
		_, err := Unmarshal([]byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: got %v want %v", tt.in, err, tt.err)
		}
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	n, err := Unmarshal([]byte(`{"Kind":"TypeReference","TypeName":{"Kind":80,"Text":"T"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Node(ref("T")), n); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestBox(t *testing.T) {
	type doc struct {
		File string `json:"file"`
		Root Box    `json:"root"`
	}
	in := doc{File: "a.d.ts", Root: Box{Node: &ArrayType{ElementType: &StringKeyword{}}}}
	d, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out doc
	if err := json.Unmarshal(d, &out); err != nil {
		t.Fatal(err)
	}
	if !Equal(in.Root.Node, out.Root.Node) {
		t.Errorf("box round trip: %s", d)
	}
}
