package main

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/debug"
	"github.com/signadot/dts/parse"
	"github.com/signadot/dts/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	opts []parse.ParseOption
}

type document struct {
	uri       string
	content   string
	version   int32
	pd        *token.PosDoc
	file      *ast.SourceFile
	positions map[ast.Node]*token.Pos
	// errs holds one error per alias which failed to parse, or the
	// error which stopped the whole file from parsing.
	errs []error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := parseDocument(uri, content, version, ds.opts)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func parseDocument(uri, content string, version int32, opts []parse.ParseOption) *document {
	d := []byte(content)
	positions := make(map[ast.Node]*token.Pos)
	pOpts := append([]parse.ParseOption{parse.FileName(uri), parse.ParsePositions(positions)}, opts...)
	file, err := parse.ParseFile(d, pOpts...)
	doc := &document{
		uri:       uri,
		content:   content,
		version:   version,
		pd:        token.NewPosDoc(d),
		file:      file,
		positions: positions,
		errs:      parse.AliasErrors(err),
	}
	if debug.LSP() {
		n := 0
		if file != nil {
			n = len(file.Statements)
		}
		debug.Logf("parsed %s v%d: %d aliases, %d errors\n", uri, version, n, len(doc.errs))
	}
	return doc
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	for _, err := range doc.errs {
		line, col := errLineCol(err)
		res = append(res, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
				End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  errMessage(err),
			Source:   "dts",
		})
	}
	return res
}

// errLineCol returns the 0-based position of a parse or tokenize error,
// or 0, 0 if it has none.
func errLineCol(err error) (int, int) {
	var pos *token.Pos
	if pe := (*parse.Error)(nil); errors.As(err, &pe) {
		pos = &pe.Pos
	} else if te := (*token.TokenizeErr)(nil); errors.As(err, &te) {
		pos = &te.Pos
	}
	if pos == nil || pos.D == nil {
		return 0, 0
	}
	return pos.LineCol()
}

// errMessage drops the position from err's message, which the diagnostic
// range already carries.
func errMessage(err error) string {
	if pe := (*parse.Error)(nil); errors.As(err, &pe) {
		return pe.Err.Error()
	}
	if te := (*token.TokenizeErr)(nil); errors.As(err, &te) {
		return te.Err.Error()
	}
	return err.Error()
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := applyChanges(doc.content, params.ContentChanges)
	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// applyChanges applies incremental edits in order. An edit with a zero
// range replaces the whole content.
func applyChanges(content string, changes []protocol.TextDocumentContentChangeEvent) string {
	for _, change := range changes {
		r := change.Range
		if r.Start == (protocol.Position{}) && r.End == (protocol.Position{}) {
			content = change.Text
			continue
		}
		pd := token.NewPosDoc([]byte(content))
		start := pd.Offset(int(r.Start.Line), int(r.Start.Character))
		end := pd.Offset(int(r.End.Line), int(r.End.Character))
		if start > end {
			continue
		}
		content = content[:start] + change.Text + content[end:]
	}
	return content
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
