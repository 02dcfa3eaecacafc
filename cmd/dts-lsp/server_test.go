package main

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/config"
)

const sample = `/** A pair. */
type Pair<T> = [T, T];
declare function f(): void;
type Bad = ;
type Maybe<T> = T | null;
`

func TestDiagnostics(t *testing.T) {
	doc := parseDocument("file:///a.d.ts", sample, 1, nil)
	ds := diagnostics(doc)
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics: %+v", len(ds), ds)
	}
	if ds[0].Range.Start.Line != 3 {
		t.Errorf("diagnostic on line %d", ds[0].Range.Start.Line)
	}
	if strings.Contains(ds[0].Message, "line=") {
		t.Errorf("message carries position: %s", ds[0].Message)
	}
	if ds := diagnostics(parseDocument("file:///b.d.ts", "type A = B;", 1, nil)); len(ds) != 0 {
		t.Errorf("clean file: %+v", ds)
	}
	doc = parseDocument("file:///c.d.ts", "type A = \"oops", 1, nil)
	if ds := diagnostics(doc); len(ds) != 1 || doc.file != nil {
		t.Errorf("untokenizable file: %+v", ds)
	}
}

func TestApplyChanges(t *testing.T) {
	tests := []struct {
		content string
		changes []protocol.TextDocumentContentChangeEvent
		want    string
	}{
		{
			content: "type A = B;",
			changes: []protocol.TextDocumentContentChangeEvent{{Text: "type C = D;"}},
			want:    "type C = D;",
		},
		{
			content: "type A = B;\ntype C = D;",
			changes: []protocol.TextDocumentContentChangeEvent{{
				Range: protocol.Range{
					Start: protocol.Position{Line: 1, Character: 9},
					End:   protocol.Position{Line: 1, Character: 10},
				},
				Text: "E | F",
			}},
			want: "type A = B;\ntype C = E | F;",
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, applyChanges(tt.content, tt.changes)); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	}
}

func TestFindNodeAtPosition(t *testing.T) {
	doc := parseDocument("file:///a.d.ts", sample, 1, nil)
	tests := []struct {
		line, col int
		alias     string
		kind      ast.Kind
	}{
		{1, 0, "Pair", ast.KindTypeAliasDeclaration},
		{1, 5, "Pair", ast.KindIdentifier},
		{1, 15, "Pair", ast.KindTupleType},
		{1, 17, "Pair", ast.KindIdentifier},
		{4, 16, "Maybe", ast.KindIdentifier},
		{4, 20, "Maybe", ast.KindNullKeyword},
		{2, 3, "Pair", ast.KindTypeAliasDeclaration},
	}
	for _, tt := range tests {
		decl, n := findNodeAtPosition(doc, tt.line, tt.col)
		if decl == nil || n == nil {
			t.Errorf("%d:%d: nothing found", tt.line, tt.col)
			continue
		}
		if decl.Name.Text != tt.alias || n.Kind() != tt.kind {
			t.Errorf("%d:%d: got %s %s want %s %s", tt.line, tt.col, decl.Name.Text, n.Kind(), tt.alias, tt.kind)
		}
	}
	if decl, n := findNodeAtPosition(doc, 0, 0); decl != nil || n != nil {
		t.Errorf("before any alias: %v %v", decl, n)
	}
}

func TestHover(t *testing.T) {
	s := newServer(config.Default())
	uri := protocol.DocumentURI("file:///a.d.ts")
	ctx := context.Background()
	err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Text: sample, Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	h, err := s.Hover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 1, Character: 0},
		},
	})
	if err != nil || h == nil {
		t.Fatalf("hover: %v %v", h, err)
	}
	for _, want := range []string{"**TypeAliasDeclaration** in `type Pair`", "A pair.", "TupleType"} {
		if !strings.Contains(h.Contents.Value, want) {
			t.Errorf("hover missing %q:\n%s", want, h.Contents.Value)
		}
	}
	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get(string(uri)) != nil {
		t.Errorf("document kept after close")
	}
}

func TestCompletions(t *testing.T) {
	doc := parseDocument("file:///a.d.ts", sample+"type X = Ma", 1, nil)
	prefix := wordBefore(doc, 5, 11)
	if prefix != "Ma" {
		t.Fatalf("prefix %q", prefix)
	}
	var labels []string
	for _, item := range completions(doc, prefix) {
		labels = append(labels, item.Label)
	}
	if diff := cmp.Diff([]string{"Maybe"}, labels); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	labels = nil
	for _, item := range completions(doc, "un") {
		labels = append(labels, item.Label)
	}
	if diff := cmp.Diff([]string{"undefined", "unique", "unknown"}, labels); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
