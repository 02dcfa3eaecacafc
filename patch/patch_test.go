package patch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/libdiff"
	"github.com/signadot/dts/parse"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	n, err := parse.ParseType([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestApply(t *testing.T) {
	tests := []struct {
		in, patch, want string
	}{
		{
			in:    "A | B",
			patch: `[{"op": "add", "path": "/types/-", "value": {"kind": "NullKeyword"}}]`,
			want:  "A | B | null",
		},
		{
			in:    "A | B",
			patch: `[{"op": "replace", "path": "/types/0/typeName/text", "value": "X"}]`,
			want:  "X | B",
		},
		{
			in:    "A | B",
			patch: `[{"op": "replace", "path": "/kind", "value": 193}]`,
			want:  "A & B",
		},
		{
			in:    "T[]",
			patch: `[{"op": "move", "from": "/elementType", "path": "/type"}, {"op": "replace", "path": "/kind", "value": "TypeOperator"}, {"op": "add", "path": "/operator", "value": 143}]`,
			want:  "keyof T",
		},
	}
	for _, tt := range tests {
		got, err := Apply(mustParse(t, tt.in), []byte(tt.patch))
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if want := mustParse(t, tt.want); !ast.Equal(want, got) {
			t.Errorf("%s patched with %s: got %s", tt.in, tt.patch, mustJSON(t, got))
		}
	}
}

func mustJSON(t *testing.T, n ast.Node) string {
	t.Helper()
	d, err := ast.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestApplyErrors(t *testing.T) {
	n := mustParse(t, "A | B")
	tests := []struct {
		patch string
		err   error
	}{
		{patch: `{"op": "add"}`, err: ErrPatch},
		{patch: `[{"op": "remove", "path": "/types/7"}]`, err: ErrPatch},
		{patch: `[{"op": "replace", "path": "/kind", "value": 999}]`, err: ast.ErrUnknownKind},
	}
	for _, tt := range tests {
		if _, err := Apply(n, []byte(tt.patch)); !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v want %v", tt.patch, err, tt.err)
		}
	}
	got, err := Apply(n, []byte(`[{"op": "replace", "path": "/types/1/kind", "value": 999}]`), ast.AllowUnknownKinds())
	if err != nil {
		t.Fatal(err)
	}
	if k := got.(*ast.UnionType).Types[1].Kind(); k != 999 {
		t.Errorf("lenient decode kept kind %d", k)
	}
}

func TestMerge(t *testing.T) {
	n := mustParse(t, "Promise<T>")
	got, err := Merge(n, []byte(`{"typeName": {"text": "Array"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(mustParse(t, "Array<T>"), got) {
		t.Errorf("got %s", mustJSON(t, got))
	}
	got, err = Merge(n, []byte(`{"typeArguments": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(mustParse(t, "Promise"), got) {
		t.Errorf("got %s", mustJSON(t, got))
	}
	if _, err := Merge(n, []byte(`{`)); !errors.Is(err, ErrPatch) {
		t.Errorf("bad merge patch: %v", err)
	}

	from, to := mustParse(t, "{ a: string }"), mustParse(t, "{ a?: number }")
	p, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	got, err = Merge(from, p)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(to, got) {
		t.Errorf("merge patch %s gave %s", p, mustJSON(t, got))
	}
}

func TestChangesRoundTrip(t *testing.T) {
	for _, pair := range [][2]string{
		{"A | B", "A | B | null"},
		{"A | B", "A | C"},
		{"[A, B, C]", "[C, D]"},
		{"[A, B, C]", "[X, A, Y, C, Z]"},
		{"{ a?: string }", "{ a: string; b: number }"},
		{"Promise<T>", "Promise"},
		{"Promise", "Promise<T, U>"},
		{"Map<K, V>", "Map<K, string>"},
		{"keyof T", "unique T"},
		{"(x: A) => B", "(x: A, y?: C) => B | D"},
		{"A", "A[]"},
	} {
		from, to := mustParse(t, pair[0]), mustParse(t, pair[1])
		changes := libdiff.Diff(from, to)
		got, err := ApplyChanges(from, changes)
		if err != nil {
			t.Errorf("%s -> %s: %v", pair[0], pair[1], err)
			continue
		}
		if !ast.Equal(to, got) {
			t.Errorf("%s -> %s: got %s", pair[0], pair[1], mustJSON(t, got))
		}
		back, err := ApplyChanges(got, libdiff.Reverse(changes))
		if err != nil {
			t.Errorf("%s <- %s: %v", pair[0], pair[1], err)
			continue
		}
		if !ast.Equal(from, back) {
			t.Errorf("%s <- %s: got %s", pair[0], pair[1], mustJSON(t, back))
		}
	}
}

func TestFromChanges(t *testing.T) {
	changes := libdiff.Diff(mustParse(t, "A | B"), mustParse(t, "A | null"))
	p, err := FromChanges(changes)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"op":"replace","path":"/types/1","value":{"kind":106}}]`
	if diff := cmp.Diff(want, string(p)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := FromChanges(libdiff.Diff(mustParse(t, "A"), mustParse(t, "B[]"))); !errors.Is(err, ErrPatch) {
		t.Errorf("root change: %v", err)
	}
}

func TestPointer(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"$", ""},
		{"$.types[1]", "/types/1"},
		{"$.types[1].typeName.text", "/types/1/typeName/text"},
		{"$.a/b", "/a~1b"},
	}
	for _, tt := range tests {
		got, err := Pointer(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %q want %q", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"types", "$.", "$[]", "$x"} {
		if _, err := Pointer(bad); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: %v", bad, err)
		}
	}
}
