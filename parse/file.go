package parse

import (
	"errors"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/debug"
	"github.com/signadot/dts/token"
)

// statement keywords which, at the start of a line, end a statement
// that was not terminated by ';'.
var statementStarts = map[string]bool{
	"abstract": true, "class": true, "const": true, "declare": true,
	"enum": true, "export": true, "function": true, "import": true,
	"interface": true, "let": true, "module": true, "namespace": true,
	"type": true, "var": true,
}

// ParseFile scans a whole declaration file and parses every type alias in
// it, including those nested in `declare module` and `namespace` bodies.
// Other statements are skipped.
//
// Aliases which fail to parse are left out of the result and reported
// together in the returned error, which then unwraps to one *Error per
// failed alias. The SourceFile is returned even when some aliases fail.
func ParseFile(d []byte, opts ...ParseOption) (*ast.SourceFile, error) {
	st, err := newState(d, opts)
	if err != nil {
		return nil, err
	}
	toks := st.toks
	sf := &ast.SourceFile{FileName: st.opts.fileName, Statements: []ast.Node{}}
	var errs []error
	i := 0
	for i < len(toks) {
		switch {
		case is(toks, i, token.TSemi):
			i++
		case is(toks, i, token.TRCurl):
			// closes a module body, or is stray
			i++
		case isAliasStart(toks, i):
			st.far, st.fatal, st.depth = nil, nil, 0
			start := i
			decl, err := parseTypeAlias(toks, &i, st)
			if err == nil && !statementEnd(toks, i, st) {
				err = st.fail(i, "expected ;")
			}
			if err != nil {
				errs = append(errs, st.failure(err))
				i = skipStatement(toks, start, st)
				continue
			}
			if debug.Parse() {
				debug.Logf("parsed alias %s\n", decl.Name.Text)
			}
			sf.Statements = append(sf.Statements, decl)
		default:
			if j, ok := moduleBody(toks, i); ok {
				i = j
				continue
			}
			i = skipStatement(toks, i, st)
		}
	}
	if len(errs) != 0 {
		return sf, errors.Join(errs...)
	}
	return sf, nil
}

// AliasErrors splits an error returned by ParseFile into its per-alias
// errors.
func AliasErrors(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func skipModifiers(toks []token.Token, i int) int {
	for isWord(toks, i, "export") || isWord(toks, i, "declare") {
		i++
	}
	return i
}

func isAliasStart(toks []token.Token, i int) bool {
	i = skipModifiers(toks, i)
	return isWord(toks, i, "type") && is(toks, i+1, token.TIdent)
}

// moduleBody recognizes `declare module "m" {`, `namespace a.b {` and
// `declare global {` and returns the index just past the '{'.
func moduleBody(toks []token.Token, i int) (int, bool) {
	i = skipModifiers(toks, i)
	switch {
	case isWord(toks, i, "global"):
		if is(toks, i+1, token.TLCurl) {
			return i + 2, true
		}
		return 0, false
	case isWord(toks, i, "module"), isWord(toks, i, "namespace"):
	default:
		return 0, false
	}
	i++
	for is(toks, i, token.TIdent) || is(toks, i, token.TString) || is(toks, i, token.TDot) {
		i++
	}
	if is(toks, i, token.TLCurl) {
		return i + 1, true
	}
	return 0, false
}

func statementEnd(toks []token.Token, i int, st *state) bool {
	return i >= len(toks) || is(toks, i-1, token.TSemi) || is(toks, i, token.TRCurl) || st.lineBreakBefore(i)
}

// skipStatement returns the index just past the statement starting at
// toks[i]. A statement ends at a ';' outside brackets, after a '}' that
// closes a block it opened, before a '}' it did not open, or at a line
// starting with a statement keyword.
func skipStatement(toks []token.Token, i int, st *state) int {
	depth := 0
	first := i
	for i < len(toks) {
		t := &toks[i]
		switch t.Type {
		case token.TLCurl, token.TLParen, token.TLSquare:
			depth++
		case token.TRParen, token.TRSquare:
			if depth > 0 {
				depth--
			}
		case token.TRCurl:
			if depth == 0 {
				if i == first {
					return i + 1
				}
				return i
			}
			depth--
			if depth == 0 {
				return i + 1
			}
		case token.TSemi:
			if depth == 0 {
				return i + 1
			}
		case token.TIdent:
			if depth == 0 && i > first && st.lineBreakBefore(i) && statementStarts[string(t.Bytes)] {
				return i
			}
		}
		i++
	}
	return i
}
