package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/encode"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.file == nil {
		return nil, nil
	}
	pos := params.Position
	decl, target := findNodeAtPosition(doc, int(pos.Line), int(pos.Character))
	if target == nil {
		return nil, nil
	}
	hoverText := buildHoverText(decl, target)
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// findNodeAtPosition returns the alias declaration at line and, within
// it, the most specific node starting on that line at or before col.
// When no node starts on the line, the alias itself is the target.
func findNodeAtPosition(doc *document, line, col int) (*ast.TypeAliasDeclaration, ast.Node) {
	var (
		decl *ast.TypeAliasDeclaration
		best ast.Node
	)
	bestCol := -1
	for _, stmt := range doc.file.Statements {
		alias, ok := stmt.(*ast.TypeAliasDeclaration)
		if !ok {
			continue
		}
		start := doc.positions[alias]
		if start == nil || start.Line() > line {
			continue
		}
		if best == nil {
			// the last alias starting before line encloses it
			decl = alias
		}
		ast.Walk(alias, func(n ast.Node) bool {
			p := doc.positions[n]
			if p == nil {
				return true
			}
			l, c := p.LineCol()
			if l == line && c <= col && c >= bestCol {
				decl, best, bestCol = alias, n, c
			}
			return true
		})
	}
	if best == nil && decl != nil {
		return decl, decl
	}
	return decl, best
}

func buildHoverText(decl *ast.TypeAliasDeclaration, node ast.Node) string {
	if node == nil {
		return ""
	}
	var parts []string
	head := fmt.Sprintf("**%s**", node.Kind())
	if decl != nil && decl.Name != nil {
		head += fmt.Sprintf(" in `type %s`", decl.Name.Text)
	}
	parts = append(parts, head)
	if decl != nil && node == ast.Node(decl) {
		if docs := decl.JSDoc.Text(); docs != "" {
			parts = append(parts, docs)
		}
	}
	buf := &strings.Builder{}
	if err := encode.Encode(node, buf); err == nil {
		parts = append(parts, "```\n"+strings.TrimRight(buf.String(), "\n")+"\n```")
	}
	return strings.Join(parts, "\n\n")
}
