package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/config"
	"github.com/signadot/dts/format"
	"github.com/signadot/dts/parse"
)

func testConfig() *MainConfig {
	return &MainConfig{
		Config: config.Default(),
		Main:   cli.NewCommand("dts"),
	}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		src  string
		mode inputMode
		want ast.Kind
	}{
		{"A | B", typeMode, ast.KindUnionType},
		{"type A = B", aliasMode, ast.KindTypeAliasDeclaration},
		{"type A = B;\ntype C = D;", fileMode, ast.KindSourceFile},
	}
	for _, tt := range tests {
		n, err := parseText([]byte(tt.src), tt.mode, nil)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if n.Kind() != tt.want {
			t.Errorf("%s: got %s want %s", tt.src, n.Kind(), tt.want)
		}
	}
	n, err := parseText([]byte("type A = ;\ntype B = C;"), fileMode, nil)
	if n == nil || len(parse.AliasErrors(err)) != 1 {
		t.Errorf("partial file: %v %v", n, err)
	}
	if n, err := parseText([]byte("type A = "), aliasMode, nil); n != nil || !errors.Is(err, parse.ErrParse) {
		t.Errorf("bad alias: %v %v", n, err)
	}
}

func TestModeOf(t *testing.T) {
	if _, err := modeOf(true, true); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
	if m, _ := modeOf(false, true); m != aliasMode {
		t.Errorf("got mode %d", m)
	}
	if m, _ := modeOf(false, false); m != fileMode {
		t.Errorf("got mode %d", m)
	}
}

func TestWriteInputs(t *testing.T) {
	cfg := testConfig()
	f := format.JSONFormat
	cfg.OutFormat = &f
	cfg.Compact = true
	cfg.Names = true
	var ins []*input
	for _, src := range []string{"string", "A[]"} {
		n, err := parseText([]byte(src), typeMode, nil)
		if err != nil {
			t.Fatal(err)
		}
		ins = append(ins, &input{name: src, node: n})
	}
	buf := bytes.NewBuffer(nil)
	if err := writeInputs(cfg, buf, ins); err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"StringKeyword"}
---
{"kind":"ArrayType","elementType":{"kind":"TypeReference","typeName":{"kind":"Identifier","text":"A"}}}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiffTrees(t *testing.T) {
	a, err := parseText([]byte("A | B"), typeMode, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parseText([]byte("A | null"), typeMode, nil)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		cfg  DiffConfig
		want string
	}{
		{DiffConfig{}, "~ $.types[1] TypeReference -> NullKeyword\n"},
		{DiffConfig{Patch: true}, `[{"op":"replace","path":"/types/1","value":{"kind":106}}]` + "\n"},
		{DiffConfig{Patch: true, Reverse: true}, `"path":"/types/1","value":{"kind":183,`},
	}
	for _, tt := range tests {
		cfg := tt.cfg
		cfg.MainConfig = testConfig()
		buf := bytes.NewBuffer(nil)
		differs, err := diffTrees(&cfg, buf, a, b)
		if err != nil || !differs {
			t.Errorf("%+v: %t %v", tt.cfg, differs, err)
			continue
		}
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("got %q want %q", buf.String(), tt.want)
		}
	}
	cfg := &DiffConfig{MainConfig: testConfig(), JSON: true}
	if differs, err := diffTrees(cfg, bytes.NewBuffer(nil), a, a); err != nil || differs {
		t.Errorf("equal trees: %t %v", differs, err)
	}
}
