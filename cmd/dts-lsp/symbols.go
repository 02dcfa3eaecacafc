package main

import (
	"context"
	"sort"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/dts/ast"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.file == nil {
		return nil, nil
	}
	var res []interface{}
	for _, alias := range aliases(doc) {
		line, col := 0, 0
		if p := doc.positions[alias]; p != nil {
			line, col = p.LineCol()
		}
		res = append(res, protocol.SymbolInformation{
			Name: alias.Name.Text,
			Kind: protocol.SymbolKindClass,
			Location: protocol.Location{
				URI: params.TextDocument.URI,
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
					End:   protocol.Position{Line: uint32(line), Character: uint32(col)},
				},
			},
		})
	}
	return res, nil
}

func aliases(doc *document) []*ast.TypeAliasDeclaration {
	var res []*ast.TypeAliasDeclaration
	for _, stmt := range doc.file.Statements {
		if alias, ok := stmt.(*ast.TypeAliasDeclaration); ok && alias.Name != nil {
			res = append(res, alias)
		}
	}
	return res
}

// typeWords are the keywords which may begin a type.
var typeWords = func() []string {
	var res []string
	for _, k := range ast.Kinds() {
		if !k.IsKeyword() {
			continue
		}
		switch k {
		case ast.KindExportKeyword, ast.KindDeclareKeyword:
			continue
		}
		if w := ast.KeywordText(k); w != "" {
			res = append(res, w)
		}
	}
	sort.Strings(res)
	return res
}()

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	prefix := wordBefore(doc, int(params.Position.Line), int(params.Position.Character))
	return &protocol.CompletionList{Items: completions(doc, prefix)}, nil
}

// wordBefore returns the identifier characters ending at line, col.
func wordBefore(doc *document, line, col int) string {
	end := doc.pd.Offset(line, col)
	start := end
	for start > 0 && isWordByte(doc.content[start-1]) {
		start--
	}
	return doc.content[start:end]
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// completions offers type keywords and the aliases of doc starting with
// prefix.
func completions(doc *document, prefix string) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	for _, w := range typeWords {
		if strings.HasPrefix(w, prefix) {
			items = append(items, protocol.CompletionItem{
				Label: w,
				Kind:  protocol.CompletionItemKindKeyword,
			})
		}
	}
	if doc.file == nil {
		return items
	}
	seen := map[string]bool{}
	for _, alias := range aliases(doc) {
		name := alias.Name.Text
		if seen[name] || !strings.HasPrefix(name, prefix) {
			continue
		}
		seen[name] = true
		items = append(items, protocol.CompletionItem{
			Label:         name,
			Kind:          protocol.CompletionItemKindClass,
			Detail:        "type " + name,
			Documentation: alias.JSDoc.Text(),
		})
	}
	return items
}
