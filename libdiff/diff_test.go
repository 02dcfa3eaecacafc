package libdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/dts/ast"
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

type change struct {
	Op   Op
	Path string
}

func summarize(cs []Change) []change {
	res := make([]change, len(cs))
	for i, c := range cs {
		res[i] = change{c.Op, c.Path}
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		from, to string
		want     []change
	}{
		{from: "A | B", to: "A | B", want: []change{}},
		{from: "A | B", to: "A | B | null", want: []change{{OpInsert, "$.types[2]"}}},
		{from: "A | B", to: "A | C", want: []change{{OpReplace, "$.types[1].typeName.text"}}},
		{from: "A", to: "A[]", want: []change{{OpReplace, "$"}}},
		{
			from: "[A, B, C]",
			to:   "[C]",
			want: []change{{OpDelete, "$.elements[0]"}, {OpDelete, "$.elements[0]"}},
		},
		{from: "{ a?: string }", to: "{ a: string }", want: []change{{OpDelete, "$.members[0].questionToken"}}},
		{from: "Promise<T>", to: "Promise", want: []change{{OpDelete, "$.typeArguments"}}},
		{from: "Map<K, V>", to: "Map<K, string>", want: []change{{OpReplace, "$.typeArguments[1]"}}},
	}
	for _, tt := range tests {
		got := summarize(Diff(mustParse(t, tt.from), mustParse(t, tt.to)))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s -> %s (-want +got):\n%s", tt.from, tt.to, diff)
		}
	}
}

func TestDiffValues(t *testing.T) {
	cs := Diff(mustParse(t, "A | B"), mustParse(t, "A | C"))
	if len(cs) != 1 {
		t.Fatalf("got %d changes", len(cs))
	}
	if cs[0].From != "B" || cs[0].To != "C" {
		t.Errorf("from %v to %v", cs[0].From, cs[0].To)
	}
	if len(cs[0].Text) != 2 {
		t.Errorf("text diff %v", cs[0].Text)
	}
	cs = Diff(mustParse(t, "keyof T"), mustParse(t, "unique T"))
	if len(cs) != 1 || cs[0].From != ast.KindKeyOfKeyword || cs[0].To != ast.KindUniqueKeyword {
		t.Errorf("operator change %+v", cs)
	}
}

func TestReverse(t *testing.T) {
	cs := Diff(mustParse(t, "[A, B, C]"), mustParse(t, "[C, D]"))
	rev := Reverse(cs)
	if len(rev) != len(cs) {
		t.Fatalf("got %d reversed changes", len(rev))
	}
	for i := range cs {
		c, r := cs[i], rev[len(rev)-1-i]
		if c.Path != r.Path {
			t.Errorf("path %s reversed to %s", c.Path, r.Path)
		}
		switch c.Op {
		case OpInsert:
			if r.Op != OpDelete || r.From != c.To {
				t.Errorf("insert reversed to %+v", r)
			}
		case OpDelete:
			if r.Op != OpInsert || r.To != c.From {
				t.Errorf("delete reversed to %+v", r)
			}
		}
	}
}

func TestWrite(t *testing.T) {
	var cs []Change
	cs = append(cs, Diff(mustParse(t, "A | B"), mustParse(t, "A | B | null"))...)
	cs = append(cs, Diff(mustParse(t, "A | B"), mustParse(t, "A | C"))...)
	cs = append(cs, Diff(mustParse(t, "[A, B]"), mustParse(t, "[B]"))...)
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, cs, nil); err != nil {
		t.Fatal(err)
	}
	want := `+ $.types[2] NullKeyword
~ $.types[1].typeName.text "B" -> "C" ~ [-B-]{+C+}
- $.elements[0] TypeReference
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffJSON(t *testing.T) {
	a, b := mustParse(t, "A | B"), mustParse(t, "A | C")
	out, err := DiffJSON(a, a)
	if err != nil || out != "" {
		t.Errorf("equal trees: %q %v", out, err)
	}
	out, err = DiffJSON(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var del, ins []string
	for _, ln := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(ln, "- "):
			del = append(del, strings.TrimSpace(ln[2:]))
		case strings.HasPrefix(ln, "+ "):
			ins = append(ins, strings.TrimSpace(ln[2:]))
		}
	}
	if diff := cmp.Diff([]string{`"text": "B"`}, del); diff != "" {
		t.Errorf("deleted lines (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{`"text": "C"`}, ins); diff != "" {
		t.Errorf("inserted lines (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, `"kind": "UnionType"`) {
		t.Errorf("kinds not named:\n%s", out)
	}
}
