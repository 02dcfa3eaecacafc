package ast

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestKindNamesMatchTypes(t *testing.T) {
	for _, k := range Kinds() {
		n := New(k)
		if n == nil {
			t.Errorf("New(%s) = nil", k)
			continue
		}
		if n.Kind() != k {
			t.Errorf("New(%s).Kind() = %s", k, n.Kind())
		}
		name := reflect.TypeOf(n).Elem().Name()
		if name != k.String() {
			t.Errorf("kind %d is named %q but builds %s", int(k), k.String(), name)
		}
		pk, err := ParseKind(name)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", name, err)
			continue
		}
		if pk != k {
			t.Errorf("ParseKind(%q) = %s, want %s", name, pk, k)
		}
	}
}

func TestKindInvalid(t *testing.T) {
	for _, k := range []Kind{KindUnknown, -1, 5, 170, kindCount, 1000} {
		if k.Valid() {
			t.Errorf("%d should not be valid", int(k))
		}
		if New(k) != nil {
			t.Errorf("New(%d) should be nil", int(k))
		}
	}
	if KindUnknown.String() != "Unknown" {
		t.Errorf("got %q", KindUnknown.String())
	}
	if s := Kind(1000).String(); s != "Kind(1000)" {
		t.Errorf("got %q", s)
	}
	if _, err := ParseKind("Unknown"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(Unknown) err = %v", err)
	}
	if _, err := ParseKind("unionType"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("kind names are case sensitive, err = %v", err)
	}
}

func TestKindSyntaxKindValues(t *testing.T) {
	tests := []struct {
		k    Kind
		want int
	}{
		{KindNumericLiteral, 9},
		{KindStringLiteral, 11},
		{KindQuestionToken, 58},
		{KindIdentifier, 80},
		{KindNullKeyword, 106},
		{KindStringKeyword, 154},
		{KindTypeReference, 183},
		{KindUnionType, 192},
		{KindLiteralType, 201},
		{KindTypeAliasDeclaration, 265},
		{KindSourceFile, 307},
		{KindJSDoc, 320},
	}
	for _, tt := range tests {
		if int(tt.k) != tt.want {
			t.Errorf("%s = %d, want %d", tt.k, int(tt.k), tt.want)
		}
	}
	if k := Kind(170); k.String() != "Kind(170)" || k.IsKeyword() || k.IsToken() {
		t.Errorf("Decorator is not a declaration type kind: %s", k)
	}
}

func TestKindUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		err  bool
	}{
		{in: `192`, want: KindUnionType},
		{in: `"UnionType"`, want: KindUnionType},
		{in: `"ArrayType"`, want: KindArrayType},
		{in: `"NoSuchType"`, err: true},
		{in: `{}`, err: true},
	}
	for _, tt := range tests {
		var k Kind
		err := json.Unmarshal([]byte(tt.in), &k)
		if tt.err {
			if err == nil {
				t.Errorf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if k != tt.want {
			t.Errorf("%s: got %s want %s", tt.in, k, tt.want)
		}
	}
}

func TestKindClasses(t *testing.T) {
	if !KindStringKeyword.IsKeyword() || KindStringKeyword.IsToken() {
		t.Error("StringKeyword is a keyword")
	}
	if !KindQuestionToken.IsToken() || KindQuestionToken.IsKeyword() {
		t.Error("QuestionToken is a token")
	}
	if !KindIdentifier.IsLeaf() || KindUnionType.IsLeaf() {
		t.Error("leaf classification")
	}
}

func TestTypeKeyword(t *testing.T) {
	for _, w := range []string{"void", "null", "undefined", "number", "string", "any", "boolean"} {
		n := TypeKeyword(w)
		if n == nil {
			t.Errorf("%s: not a type keyword", w)
			continue
		}
		if KeywordText(n.Kind()) != w {
			t.Errorf("%s: KeywordText = %q", w, KeywordText(n.Kind()))
		}
	}
	if TypeKeyword("Number") != nil {
		t.Error("keywords are case sensitive")
	}
}
