package parse

import (
	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/token"
)

// isMappedPrefix reports whether toks[i:] starts with
// `{ [+|-]readonly? [ name in`.
func isMappedPrefix(toks []token.Token, i int) bool {
	if !is(toks, i, token.TLCurl) {
		return false
	}
	i++
	if is(toks, i, token.TPlus) || is(toks, i, token.TMinus) {
		if !isWord(toks, i+1, "readonly") {
			return false
		}
		i += 2
	} else if isWord(toks, i, "readonly") {
		i++
	}
	return is(toks, i, token.TLSquare) && is(toks, i+1, token.TIdent) && isWord(toks, i+2, "in")
}

// parseMappedType parses
//
//	'{' [('+'|'-')] ['readonly'] '[' Name 'in' Type ['as' Type] ']' [('+'|'-')] ['?'] [':' Type] [';'] '}'
func parseMappedType(toks []token.Token, pi *int, st *state) (*ast.MappedType, error) {
	start := *pi
	fail := func(err error) (*ast.MappedType, error) {
		*pi = start
		return nil, err
	}
	if err := st.enter(start); err != nil {
		return nil, err
	}
	defer st.leave()
	if err := expect(toks, pi, st, token.TLCurl, "{"); err != nil {
		return fail(err)
	}
	mt := &ast.MappedType{}
	mt.ReadonlyToken = modifierToken(toks, pi, "readonly")
	if err := expect(toks, pi, st, token.TLSquare, "["); err != nil {
		return fail(err)
	}
	tpStart := *pi
	name, err := parseBindingName(toks, pi, st)
	if err != nil {
		return fail(err)
	}
	if err := expectWord(toks, pi, st, "in"); err != nil {
		return fail(err)
	}
	c, err := parseType(toks, pi, st)
	if err != nil {
		return fail(err)
	}
	mt.TypeParameter = &ast.TypeParameter{Name: name, Constraint: c}
	st.track(mt.TypeParameter, tpStart)
	if acceptWord(toks, pi, "as") {
		nt, err := parseType(toks, pi, st)
		if err != nil {
			return fail(err)
		}
		mt.NameType = nt
	}
	if err := expect(toks, pi, st, token.TRSquare, "]"); err != nil {
		return fail(err)
	}
	mt.QuestionToken = modifierToken(toks, pi, "?")
	if accept(toks, pi, token.TColon) {
		t, err := parseType(toks, pi, st)
		if err != nil {
			return fail(err)
		}
		mt.Type = t
	}
	if !accept(toks, pi, token.TSemi) {
		accept(toks, pi, token.TComma)
	}
	if err := expect(toks, pi, st, token.TRCurl, "}"); err != nil {
		return fail(err)
	}
	st.track(mt, start)
	return mt, nil
}

// modifierToken consumes an optional mapped type modifier, `readonly` or
// `?`, possibly signed. A signed modifier is represented by its sign.
func modifierToken(toks []token.Token, pi *int, mod string) ast.Node {
	matches := func(i int) bool {
		if mod == "?" {
			return is(toks, i, token.TQuestion)
		}
		return isWord(toks, i, mod)
	}
	switch {
	case is(toks, *pi, token.TPlus) && matches(*pi+1):
		*pi += 2
		return &ast.PlusToken{}
	case is(toks, *pi, token.TMinus) && matches(*pi+1):
		*pi += 2
		return &ast.MinusToken{}
	case matches(*pi):
		*pi++
		if mod == "?" {
			return &ast.QuestionToken{}
		}
		return &ast.ReadonlyKeyword{}
	}
	return nil
}
