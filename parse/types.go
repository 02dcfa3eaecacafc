package parse

import (
	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/token"
)

// parseType is the full type rule:
//
//	Type  = Union ['extends' Union '?' Type ':' Type]
//	Union = ['|'] Intersection {'|' Intersection}
//
// A conditional suffix that does not parse is left unconsumed.
func parseType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	start := *pi
	if err := st.enter(start); err != nil {
		return nil, err
	}
	defer st.leave()
	check, err := parseUnion(toks, pi, st)
	if err != nil {
		return nil, err
	}
	if !isWord(toks, *pi, "extends") {
		return check, nil
	}
	mark := *pi
	ct, err := parseConditional(toks, pi, st, check)
	if err != nil {
		*pi = mark
		if st.fatal != nil {
			return nil, st.fatal
		}
		return check, nil
	}
	st.track(ct, start)
	return ct, nil
}

func parseConditional(toks []token.Token, pi *int, st *state, check ast.Node) (*ast.ConditionalType, error) {
	*pi++ // extends
	ext, err := parseUnion(toks, pi, st)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pi, st, token.TQuestion, "?"); err != nil {
		return nil, err
	}
	tt, err := parseType(toks, pi, st)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pi, st, token.TColon, ":"); err != nil {
		return nil, err
	}
	ft, err := parseType(toks, pi, st)
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalType{CheckType: check, ExtendsType: ext, TrueType: tt, FalseType: ft}, nil
}

func parseUnion(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	return parseList(toks, pi, st, token.TPipe, parseIntersection, func(ts []ast.Node) ast.Node {
		return &ast.UnionType{Types: ts}
	})
}

func parseIntersection(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	return parseList(toks, pi, st, token.TAmp, parseOperatorType, func(ts []ast.Node) ast.Node {
		return &ast.IntersectionType{Types: ts}
	})
}

// parseList parses one or more operands separated by sep, with an
// optional leading sep. A single operand is returned as is.
func parseList(toks []token.Token, pi *int, st *state, sep token.TokenType,
	operand func([]token.Token, *int, *state) (ast.Node, error),
	mk func([]ast.Node) ast.Node) (ast.Node, error) {
	start := *pi
	accept(toks, pi, sep)
	first, err := operand(toks, pi, st)
	if err != nil {
		*pi = start
		return nil, err
	}
	ts := []ast.Node{first}
	for is(toks, *pi, sep) {
		mark := *pi
		*pi++
		t, err := operand(toks, pi, st)
		if err != nil {
			*pi = mark
			if st.fatal != nil {
				return nil, st.fatal
			}
			break
		}
		ts = append(ts, t)
	}
	if len(ts) == 1 {
		return first, nil
	}
	n := mk(ts)
	st.track(n, start)
	return n, nil
}

var typeOperators = map[string]ast.Kind{
	"keyof":    ast.KindKeyOfKeyword,
	"readonly": ast.KindReadonlyKeyword,
	"unique":   ast.KindUniqueKeyword,
}

// parseOperatorType parses `keyof`, `readonly` and `unique` applied to
// an operand at the postfix level, so `keyof T[]` is `keyof (T[])`.
func parseOperatorType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	start := *pi
	t := peek(toks, start)
	if t != nil && t.Type == token.TIdent {
		if op, ok := typeOperators[string(t.Bytes)]; ok {
			if err := st.enter(start); err != nil {
				return nil, err
			}
			*pi++
			operand, err := parseOperatorType(toks, pi, st)
			st.leave()
			if err == nil {
				n := &ast.TypeOperator{Operator: op, Type: operand}
				st.track(n, start)
				return n, nil
			}
			*pi = start
			if st.fatal != nil {
				return nil, st.fatal
			}
		}
	}
	return parsePostfix(toks, pi, st)
}

// parsePostfix parses a primary type followed by any number of `[]`
// (ArrayType) and `[Type]` (IndexedAccessType) suffixes. A suffix must
// start on the same line as the type it applies to.
func parsePostfix(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	start := *pi
	n, err := parsePrimary(toks, pi, st)
	if err != nil {
		return nil, err
	}
	for is(toks, *pi, token.TLSquare) && !st.lineBreakBefore(*pi) {
		mark := *pi
		*pi++
		if accept(toks, pi, token.TRSquare) {
			n = &ast.ArrayType{ElementType: n}
			st.track(n, start)
			continue
		}
		idx, err := parseType(toks, pi, st)
		if err == nil {
			err = expect(toks, pi, st, token.TRSquare, "]")
		}
		if err != nil {
			*pi = mark
			if st.fatal != nil {
				return nil, st.fatal
			}
			break
		}
		n = &ast.IndexedAccessType{ObjectType: n, IndexType: idx}
		st.track(n, start)
	}
	return n, nil
}

type primaryRule func([]token.Token, *int, *state) (ast.Node, error)

// parsePrimary tries the primary forms in order. Each form either
// succeeds or fails without consuming input; the bare name fallback is
// last since every other form begins with something a name could match.
func parsePrimary(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	start := *pi
	if err := st.enter(start); err != nil {
		return nil, err
	}
	defer st.leave()
	for _, r := range []primaryRule{
		keywordType,
		literalType,
		braceType,
		functionType,
		parenthesizedType,
		constructorType,
		typeQuery,
		inferType,
		tupleType,
		genericType,
		nameType,
	} {
		n, err := r(toks, pi, st)
		if err == nil {
			st.track(n, start)
			return n, nil
		}
		*pi = start
		if st.fatal != nil {
			return nil, st.fatal
		}
	}
	return nil, st.fail(start, "expected a type")
}

func keywordType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	t := peek(toks, *pi)
	if t == nil || t.Type != token.TIdent || is(toks, *pi+1, token.TDot) {
		return nil, st.fail(*pi, "expected a type keyword")
	}
	if t.Is("this") {
		*pi++
		return &ast.ThisType{}, nil
	}
	n := ast.TypeKeyword(string(t.Bytes))
	if n == nil {
		return nil, st.fail(*pi, "expected a type keyword")
	}
	*pi++
	return n, nil
}

func literalType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	t := peek(toks, *pi)
	if t == nil {
		return nil, st.fail(*pi, "expected a literal")
	}
	var lit ast.Node
	switch {
	case t.Type == token.TString:
		lit = &ast.StringLiteral{Text: t.String()}
	case t.Type == token.TTemplate:
		if hasSubstitution(t.Bytes) {
			return nil, st.unsupported(*pi, "template literal types with ${} placeholders")
		}
		s, err := token.Unquote(string(t.Bytes))
		if err != nil {
			return nil, st.fail(*pi, err.Error())
		}
		lit = &ast.NoSubstitutionTemplateLiteral{Text: s}
	case t.Type == token.TNumber:
		lit = &ast.NumericLiteral{Text: t.String()}
	case t.Type == token.TMinus && is(toks, *pi+1, token.TNumber) && toks[*pi+1].Pos.I == t.End():
		*pi++
		lit = &ast.NumericLiteral{Text: "-" + toks[*pi].String()}
	case t.Is("true"):
		lit = &ast.TrueKeyword{}
	case t.Is("false"):
		lit = &ast.FalseKeyword{}
	default:
		return nil, st.fail(*pi, "expected a literal")
	}
	*pi++
	return &ast.LiteralType{Literal: lit}, nil
}

// braceType dispatches `{` to a mapped type when the mapped type prefix
// is present and to a type literal otherwise.
func braceType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	if !is(toks, *pi, token.TLCurl) {
		return nil, st.fail(*pi, "expected {")
	}
	if isMappedPrefix(toks, *pi) {
		n, err := parseMappedType(toks, pi, st)
		if err != nil {
			return nil, err
		}
		return n, nil
	}
	n, err := parseTypeLiteral(toks, pi, st)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// parseTypeLiteral parses `{ member; member, ... }`. Members are
// separated by ';', ',' or a line break.
func parseTypeLiteral(toks []token.Token, pi *int, st *state) (*ast.TypeLiteral, error) {
	start := *pi
	if err := expect(toks, pi, st, token.TLCurl, "{"); err != nil {
		return nil, err
	}
	members := []ast.Node{}
	for !accept(toks, pi, token.TRCurl) {
		m, err := parseMember(toks, pi, st)
		if err != nil {
			*pi = start
			return nil, err
		}
		members = append(members, m)
		if accept(toks, pi, token.TSemi) || accept(toks, pi, token.TComma) {
			continue
		}
		if is(toks, *pi, token.TRCurl) || st.lineBreakBefore(*pi) {
			continue
		}
		err = st.fail(*pi, "expected ; or }")
		*pi = start
		return nil, err
	}
	return &ast.TypeLiteral{Members: members}, nil
}

// functionType parses `<T>(params) => Type`.
func functionType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	if !is(toks, *pi, token.TLParen) && !is(toks, *pi, token.TLAngle) {
		return nil, st.fail(*pi, "expected ( or <")
	}
	tps, params, typ, err := parseSignature(toks, pi, st, token.TArrow)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionType{TypeParameters: tps, Parameters: params, Type: typ}, nil
}

func parenthesizedType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	if err := expect(toks, pi, st, token.TLParen, "("); err != nil {
		return nil, err
	}
	t, err := parseType(toks, pi, st)
	if err != nil {
		return nil, err
	}
	if err := expect(toks, pi, st, token.TRParen, ")"); err != nil {
		return nil, err
	}
	return &ast.ParenthesizedType{Type: t}, nil
}

// constructorType parses `new <T>(params) => Type`.
func constructorType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	if err := expectWord(toks, pi, st, "new"); err != nil {
		return nil, err
	}
	tps, params, typ, err := parseSignature(toks, pi, st, token.TArrow)
	if err != nil {
		return nil, err
	}
	return &ast.ConstructorType{TypeParameters: tps, Parameters: params, Type: typ}, nil
}

func typeQuery(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	if err := expectWord(toks, pi, st, "typeof"); err != nil {
		return nil, err
	}
	name, err := parseName(toks, pi, st)
	if err != nil {
		return nil, err
	}
	return &ast.TypeQuery{ExprName: name}, nil
}

func inferType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	if err := expectWord(toks, pi, st, "infer"); err != nil {
		return nil, err
	}
	tpStart := *pi
	name, err := parseBindingName(toks, pi, st)
	if err != nil {
		return nil, err
	}
	tp := &ast.TypeParameter{Name: name}
	st.track(tp, tpStart)
	return &ast.InferType{TypeParameter: tp}, nil
}

// tupleType parses `[T, ...U[], V?]` of any arity. A trailing comma is
// allowed.
func tupleType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	if err := expect(toks, pi, st, token.TLSquare, "["); err != nil {
		return nil, err
	}
	elts := []ast.Node{}
	for !accept(toks, pi, token.TRSquare) {
		e, err := tupleElement(toks, pi, st)
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
		if accept(toks, pi, token.TComma) {
			continue
		}
		if err := expect(toks, pi, st, token.TRSquare, ", or ]"); err != nil {
			return nil, err
		}
		break
	}
	return &ast.TupleType{Elements: elts}, nil
}

func tupleElement(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	start := *pi
	if accept(toks, pi, token.TEllipsis) {
		t, err := parseType(toks, pi, st)
		if err != nil {
			return nil, err
		}
		n := &ast.RestType{Type: t}
		st.track(n, start)
		return n, nil
	}
	t, err := parseType(toks, pi, st)
	if err != nil {
		return nil, err
	}
	if accept(toks, pi, token.TQuestion) {
		n := &ast.OptionalType{Type: t}
		st.track(n, start)
		return n, nil
	}
	return t, nil
}

// genericType parses `Name<Type, ...>`.
func genericType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	name, err := parseName(toks, pi, st)
	if err != nil {
		return nil, err
	}
	if !is(toks, *pi, token.TLAngle) {
		return nil, st.fail(*pi, "expected <")
	}
	args, err := parseTypeArguments(toks, pi, st)
	if err != nil {
		return nil, err
	}
	return &ast.TypeReference{TypeName: name, TypeArguments: args}, nil
}

func nameType(toks []token.Token, pi *int, st *state) (ast.Node, error) {
	name, err := parseName(toks, pi, st)
	if err != nil {
		return nil, err
	}
	return &ast.TypeReference{TypeName: name}, nil
}

// hasSubstitution reports whether the backquoted template q contains an
// unescaped ${.
func hasSubstitution(q []byte) bool {
	for i := 0; i+1 < len(q); i++ {
		switch q[i] {
		case '\\':
			i++
		case '$':
			if q[i+1] == '{' {
				return true
			}
		}
	}
	return false
}
