package parse

import (
	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/token"
)

// parseTypeAlias parses
//
//	[doc] ['export'] ['declare'] 'type' Name ['<' TypeParameter, ... '>'] '=' Type [';']
func parseTypeAlias(toks []token.Token, pi *int, st *state) (*ast.TypeAliasDeclaration, error) {
	start := *pi
	fail := func(err error) (*ast.TypeAliasDeclaration, error) {
		*pi = start
		return nil, err
	}
	decl := &ast.TypeAliasDeclaration{}
	decl.JSDoc = st.docList(start)
	if acceptWord(toks, pi, "export") {
		decl.Modifiers = append(decl.Modifiers, &ast.ExportKeyword{})
	}
	if acceptWord(toks, pi, "declare") {
		decl.Modifiers = append(decl.Modifiers, &ast.DeclareKeyword{})
	}
	if err := expectWord(toks, pi, st, "type"); err != nil {
		return fail(err)
	}
	name, err := parseBindingName(toks, pi, st)
	if err != nil {
		return fail(err)
	}
	decl.Name = name
	if is(toks, *pi, token.TLAngle) {
		tps, err := parseTypeParameters(toks, pi, st)
		if err != nil {
			return fail(err)
		}
		decl.TypeParameters = tps
	}
	if err := expect(toks, pi, st, token.TEq, "="); err != nil {
		return fail(err)
	}
	t, err := parseType(toks, pi, st)
	if err != nil {
		return fail(err)
	}
	decl.Type = t
	accept(toks, pi, token.TSemi)
	st.track(decl, start)
	return decl, nil
}
