package parse

import (
	"fmt"
	"strings"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/token"
)

// reserved words cannot name a type, parameter or type parameter.
var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true,
}

// ParseName parses an identifier, possibly qualified (`a.b.C`).
func ParseName(d []byte, opts ...ParseOption) (*ast.Identifier, error) {
	n, _, err := run(d, opts, true, parseName)
	return n, err
}

// ParseParameter parses a function parameter such as `...xs?: T[]`.
func ParseParameter(d []byte, opts ...ParseOption) (*ast.Parameter, error) {
	n, _, err := run(d, opts, true, parseParameter)
	return n, err
}

// ParseTypeParameter parses a type parameter such as `K extends string = "a"`.
func ParseTypeParameter(d []byte, opts ...ParseOption) (*ast.TypeParameter, error) {
	n, _, err := run(d, opts, true, parseTypeParameter)
	return n, err
}

// ParsePropertySignature parses a single type literal member.
func ParsePropertySignature(d []byte, opts ...ParseOption) (*ast.PropertySignature, error) {
	n, _, err := run(d, opts, true, func(toks []token.Token, pi *int, st *state) (*ast.PropertySignature, error) {
		start := *pi
		m, err := parseMember(toks, pi, st)
		if err != nil {
			return nil, err
		}
		ps, ok := m.(*ast.PropertySignature)
		if !ok {
			*pi = start
			return nil, st.fail(start, "expected a property signature, got %s", m.Kind())
		}
		accept(toks, pi, token.TSemi)
		return ps, nil
	})
	return n, err
}

// ParseComment parses the documentation comment at the start of d.
func ParseComment(d []byte) (*ast.JSDoc, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 || toks[0].Type != token.TDocComment {
		pos := token.NewPosDoc(d).Pos(0)
		if len(toks) > 0 {
			pos = toks[0].Pos
		}
		return nil, &Error{Err: fmt.Errorf("%w: expected a doc comment", ErrParse), Pos: *pos}
	}
	return &ast.JSDoc{Comment: toks[0].String()}, nil
}

func parseName(toks []token.Token, pi *int, st *state) (*ast.Identifier, error) {
	start := *pi
	t := peek(toks, start)
	if t == nil || t.Type != token.TIdent || reserved[string(t.Bytes)] {
		return nil, st.fail(start, "expected a name")
	}
	parts := []string{string(t.Bytes)}
	*pi++
	for is(toks, *pi, token.TDot) && is(toks, *pi+1, token.TIdent) {
		parts = append(parts, string(toks[*pi+1].Bytes))
		*pi += 2
	}
	id := ast.NewIdentifier(strings.Join(parts, "."))
	st.track(id, start)
	return id, nil
}

// parseBindingName parses an unqualified name.
func parseBindingName(toks []token.Token, pi *int, st *state) (*ast.Identifier, error) {
	t := peek(toks, *pi)
	if t == nil || t.Type != token.TIdent || reserved[string(t.Bytes)] {
		return nil, st.fail(*pi, "expected a name")
	}
	id := ast.NewIdentifier(string(t.Bytes))
	st.track(id, *pi)
	*pi++
	return id, nil
}

// parsePropertyName accepts any identifier, including reserved words,
// or a string or numeric literal.
func parsePropertyName(toks []token.Token, pi *int, st *state) (*ast.Identifier, error) {
	t := peek(toks, *pi)
	if t == nil {
		return nil, st.fail(*pi, "expected a property name")
	}
	switch t.Type {
	case token.TIdent, token.TString, token.TNumber:
	default:
		return nil, st.fail(*pi, "expected a property name")
	}
	id := ast.NewIdentifier(t.String())
	st.track(id, *pi)
	*pi++
	return id, nil
}

func parseParameter(toks []token.Token, pi *int, st *state) (*ast.Parameter, error) {
	start := *pi
	p := &ast.Parameter{}
	if accept(toks, pi, token.TEllipsis) {
		p.DotDotDotToken = &ast.DotDotDotToken{}
	}
	if isWord(toks, *pi, "this") {
		p.Name = ast.NewIdentifier("this")
		*pi++
	} else {
		name, err := parseBindingName(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		p.Name = name
	}
	if accept(toks, pi, token.TQuestion) {
		p.QuestionToken = &ast.QuestionToken{}
	}
	if accept(toks, pi, token.TColon) {
		typ, err := parseType(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		p.Type = typ
	}
	st.track(p, start)
	return p, nil
}

// parseParameters parses a parenthesized, comma separated parameter
// list. A trailing comma is allowed.
func parseParameters(toks []token.Token, pi *int, st *state) ([]*ast.Parameter, error) {
	start := *pi
	if err := expect(toks, pi, st, token.TLParen, "("); err != nil {
		return nil, err
	}
	var res []*ast.Parameter
	for !accept(toks, pi, token.TRParen) {
		p, err := parseParameter(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		res = append(res, p)
		if accept(toks, pi, token.TComma) {
			continue
		}
		if err := expect(toks, pi, st, token.TRParen, ", or )"); err != nil {
			*pi = start
			return nil, err
		}
		break
	}
	return res, nil
}

func parseTypeParameter(toks []token.Token, pi *int, st *state) (*ast.TypeParameter, error) {
	start := *pi
	name, err := parseBindingName(toks, pi, st)
	if err != nil {
		return nil, err
	}
	tp := &ast.TypeParameter{Name: name}
	if acceptWord(toks, pi, "extends") {
		c, err := parseType(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		tp.Constraint = c
	}
	if accept(toks, pi, token.TEq) {
		d, err := parseType(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		tp.Default = d
	}
	st.track(tp, start)
	return tp, nil
}

// parseTypeParameters parses `<TypeParameter, ...>` with at least one
// parameter.
func parseTypeParameters(toks []token.Token, pi *int, st *state) ([]*ast.TypeParameter, error) {
	start := *pi
	if err := expect(toks, pi, st, token.TLAngle, "<"); err != nil {
		return nil, err
	}
	var res []*ast.TypeParameter
	for {
		tp, err := parseTypeParameter(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		res = append(res, tp)
		if accept(toks, pi, token.TComma) {
			if accept(toks, pi, token.TRAngle) {
				return res, nil
			}
			continue
		}
		if err := expect(toks, pi, st, token.TRAngle, ", or >"); err != nil {
			*pi = start
			return nil, err
		}
		return res, nil
	}
}

// parseTypeArguments parses `<Type, ...>` with at least one argument.
func parseTypeArguments(toks []token.Token, pi *int, st *state) ([]ast.Node, error) {
	start := *pi
	if err := expect(toks, pi, st, token.TLAngle, "<"); err != nil {
		return nil, err
	}
	var res []ast.Node
	for {
		t, err := parseType(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		res = append(res, t)
		if accept(toks, pi, token.TComma) {
			continue
		}
		if err := expect(toks, pi, st, token.TRAngle, ", or >"); err != nil {
			*pi = start
			return nil, err
		}
		return res, nil
	}
}

// parseMember parses one type literal member: an index signature, a call
// or construct signature, a method signature or a property signature.
func parseMember(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	start := *pi
	if err := st.enter(start); err != nil {
		return nil, err
	}
	defer st.leave()
	docs := st.docList(start)
	var mods []ast.Node
	if isWord(toks, *pi, "readonly") && startsMemberName(toks, *pi+1) {
		mods = append(mods, &ast.ReadonlyKeyword{})
		*pi++
	}
	m, err := parseMemberBody(toks, pi, st)
	if err != nil {
		*pi = start
		return nil, err
	}
	b := m.Base()
	b.Modifiers = mods
	b.JSDoc = docs
	st.track(m, start)
	return m, nil
}

func startsMemberName(toks []token.Token, i int) bool {
	t := peek(toks, i)
	if t == nil {
		return false
	}
	switch t.Type {
	case token.TIdent, token.TString, token.TNumber, token.TLSquare:
		return true
	}
	return false
}

func parseMemberBody(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	start := *pi
	switch {
	case is(toks, start, token.TLSquare):
		sig, err := parseIndexSignature(toks, pi, st)
		if err != nil {
			return nil, err
		}
		return sig, nil
	case is(toks, start, token.TLParen), is(toks, start, token.TLAngle):
		tps, params, typ, err := parseSignature(toks, pi, st, token.TColon)
		if err != nil {
			return nil, err
		}
		return &ast.CallSignature{TypeParameters: tps, Parameters: params, Type: typ}, nil
	case isWord(toks, start, "new") && (is(toks, start+1, token.TLParen) || is(toks, start+1, token.TLAngle)):
		*pi++
		tps, params, typ, err := parseSignature(toks, pi, st, token.TColon)
		if err != nil {
			*pi = start
			return nil, err
		}
		return &ast.ConstructSignature{TypeParameters: tps, Parameters: params, Type: typ}, nil
	}
	name, err := parsePropertyName(toks, pi, st)
	if err != nil {
		return nil, err
	}
	var q ast.Node
	if accept(toks, pi, token.TQuestion) {
		q = &ast.QuestionToken{}
	}
	if is(toks, *pi, token.TLParen) || is(toks, *pi, token.TLAngle) {
		tps, params, typ, err := parseSignature(toks, pi, st, token.TColon)
		if err != nil {
			*pi = start
			return nil, err
		}
		return &ast.MethodSignature{
			Name:           name,
			QuestionToken:  q,
			TypeParameters: tps,
			Parameters:     params,
			Type:           typ,
		}, nil
	}
	ps := &ast.PropertySignature{Name: name, QuestionToken: q}
	if accept(toks, pi, token.TColon) {
		typ, err := parseType(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		ps.Type = typ
	}
	return ps, nil
}

// parseSignature parses `<TypeParameters>? (Parameters) (sep Type)?`. The
// return type is required when sep is token.TArrow.
func parseSignature(toks []token.Token, pi *int, st *state, sep token.TokenType) ([]*ast.TypeParameter, []*ast.Parameter, ast.Node, error) {
	start := *pi
	var tps []*ast.TypeParameter
	if is(toks, *pi, token.TLAngle) {
		var err error
		tps, err = parseTypeParameters(toks, pi, st)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	params, err := parseParameters(toks, pi, st)
	if err != nil {
		*pi = start
		return nil, nil, nil, err
	}
	if !accept(toks, pi, sep) {
		if sep == token.TArrow {
			err := st.fail(*pi, "expected =>")
			*pi = start
			return nil, nil, nil, err
		}
		return tps, params, nil, nil
	}
	typ, err := parseType(toks, pi, st)
	if err != nil {
		*pi = start
		return nil, nil, nil, err
	}
	return tps, params, typ, nil
}

// parseIndexSignature parses `[name: Type]: Type`.
func parseIndexSignature(toks []token.Token, pi *int, st *state) (*ast.IndexSignature, error) {
	start := *pi
	fail := func(err error) (*ast.IndexSignature, error) {
		*pi = start
		return nil, err
	}
	if err := expect(toks, pi, st, token.TLSquare, "["); err != nil {
		return fail(err)
	}
	pStart := *pi
	name, err := parseBindingName(toks, pi, st)
	if err != nil {
		return fail(err)
	}
	if err := expect(toks, pi, st, token.TColon, ":"); err != nil {
		return fail(err)
	}
	kt, err := parseType(toks, pi, st)
	if err != nil {
		return fail(err)
	}
	param := &ast.Parameter{Name: name, Type: kt}
	st.track(param, pStart)
	if err := expect(toks, pi, st, token.TRSquare, "]"); err != nil {
		return fail(err)
	}
	if err := expect(toks, pi, st, token.TColon, ":"); err != nil {
		return fail(err)
	}
	vt, err := parseType(toks, pi, st)
	if err != nil {
		return fail(err)
	}
	return &ast.IndexSignature{Parameters: []*ast.Parameter{param}, Type: vt}, nil
}
