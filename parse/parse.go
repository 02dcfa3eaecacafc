package parse

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/debug"
	"github.com/signadot/dts/token"
)

// ParseType parses d as a single type expression. All of d must be
// consumed.
func ParseType(d []byte, opts ...ParseOption) (ast.Node, error) {
	n, _, err := run(d, opts, true, parseType)
	return n, err
}

// ParseTypePrefix parses the type expression at the start of d and
// returns it with the offset just past its last token. Input after the
// type is left alone.
func ParseTypePrefix(d []byte, opts ...ParseOption) (ast.Node, int, error) {
	return run(d, opts, false, parseType)
}

// ParseMappedType parses d as a mapped type `{ [K in C]: T }`.
func ParseMappedType(d []byte, opts ...ParseOption) (*ast.MappedType, error) {
	n, _, err := run(d, opts, true, parseMappedType)
	return n, err
}

// ParseTypeAlias parses a single, optionally documented and exported,
// type alias declaration.
func ParseTypeAlias(d []byte, opts ...ParseOption) (*ast.TypeAliasDeclaration, error) {
	n, _, err := run(d, opts, true, parseTypeAlias)
	return n, err
}

type rule[T ast.Node] func([]token.Token, *int, *state) (T, error)

func run[T ast.Node](d []byte, opts []ParseOption, whole bool, r rule[T]) (T, int, error) {
	var zero T
	st, err := newState(d, opts)
	if err != nil {
		return zero, 0, err
	}
	i := 0
	res, err := r(st.toks, &i, st)
	if err != nil {
		return zero, 0, st.failure(err)
	}
	if whole && i < len(st.toks) {
		return zero, 0, st.trailing(i)
	}
	end := 0
	if i > 0 {
		end = st.toks[i-1].End()
	}
	if debug.Parse() {
		debug.Logf("parsed %d bytes:\n%s\n", end, ast.Node(res))
	}
	return res, end, nil
}

// state is the per-call parser state: the token stream without doc
// comments, the doc comments preceding each token, and failure tracking.
type state struct {
	src   []byte
	pd    *token.PosDoc
	toks  []token.Token
	docs  map[int][]token.Token
	opts  *parseOpts
	depth int
	far   *Error
	farI  int
	fatal error
}

func newState(d []byte, opts []ParseOption) (*state, error) {
	all, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		token.PrintTokens(os.Stderr, all, "parse")
	}
	st := &state{
		src:  d,
		pd:   token.NewPosDoc(d),
		opts: newParseOpts(opts),
		toks: make([]token.Token, 0, len(all)),
		docs: map[int][]token.Token{},
	}
	for i := range all {
		t := all[i]
		if t.Type == token.TDocComment {
			j := len(st.toks)
			st.docs[j] = append(st.docs[j], t)
			continue
		}
		st.toks = append(st.toks, t)
	}
	return st, nil
}

func (st *state) pos(i int) *token.Pos {
	if i < len(st.toks) {
		return st.toks[i].Pos
	}
	return st.pd.End()
}

// fail records a failure at token i. The failure furthest into the input
// is kept as the one to report.
func (st *state) fail(i int, format string, args ...any) error {
	e := &Error{
		Err: fmt.Errorf("%w: "+format, append([]any{ErrParse}, args...)...),
		Pos: *st.pos(i),
	}
	if st.far == nil || i >= st.farI {
		st.far = e
		st.farI = i
	}
	return e
}

func (st *state) failure(err error) error {
	if st.fatal != nil {
		return st.fatal
	}
	if st.far != nil {
		return st.far
	}
	return err
}

// unsupported stops the parse at token i; no alternative is tried after
// it.
func (st *state) unsupported(i int, what string) error {
	st.fatal = &Error{
		Err: fmt.Errorf("%w: %s are not supported", ErrParse, what),
		Pos: *st.pos(i),
	}
	return st.fatal
}

func (st *state) trailing(i int) error {
	if st.far != nil && st.farI > i {
		return st.far
	}
	return &Error{
		Err: fmt.Errorf("%w: %q", ErrTrailing, st.toks[i].Bytes),
		Pos: *st.pos(i),
	}
}

// enter bounds recursion. Every successful enter must be paired with a
// leave.
func (st *state) enter(i int) error {
	if st.fatal != nil {
		return st.fatal
	}
	st.depth++
	if st.depth > st.opts.maxDepth {
		st.depth--
		st.fatal = &Error{
			Err: fmt.Errorf("%w: more than %d levels", ErrTooDeep, st.opts.maxDepth),
			Pos: *st.pos(i),
		}
		return st.fatal
	}
	return nil
}

func (st *state) leave() {
	st.depth--
}

func (st *state) track(n ast.Node, i int) {
	if st.opts.positions == nil || i >= len(st.toks) {
		return
	}
	st.opts.positions[n] = st.toks[i].Pos
}

// docList returns the doc comments immediately preceding token i.
func (st *state) docList(i int) ast.DocList {
	docs := st.docs[i]
	if len(docs) == 0 {
		return nil
	}
	res := make(ast.DocList, len(docs))
	for j := range docs {
		res[j] = &ast.JSDoc{Comment: docs[j].String()}
	}
	return res
}

// lineBreakBefore reports whether a newline separates token i from the
// token before it.
func (st *state) lineBreakBefore(i int) bool {
	if i <= 0 || i >= len(st.toks) {
		return false
	}
	return bytes.IndexByte(st.src[st.toks[i-1].End():st.toks[i].Pos.I], '\n') != -1
}

func peek(toks []token.Token, i int) *token.Token {
	if i < 0 || i >= len(toks) {
		return nil
	}
	return &toks[i]
}

func is(toks []token.Token, i int, typ token.TokenType) bool {
	t := peek(toks, i)
	return t != nil && t.Type == typ
}

func isWord(toks []token.Token, i int, word string) bool {
	t := peek(toks, i)
	return t != nil && t.Is(word)
}

func accept(toks []token.Token, pi *int, typ token.TokenType) bool {
	if !is(toks, *pi, typ) {
		return false
	}
	*pi++
	return true
}

func acceptWord(toks []token.Token, pi *int, word string) bool {
	if !isWord(toks, *pi, word) {
		return false
	}
	*pi++
	return true
}

func expect(toks []token.Token, pi *int, st *state, typ token.TokenType, what string) error {
	if accept(toks, pi, typ) {
		return nil
	}
	return st.fail(*pi, "expected %s", what)
}

func expectWord(toks []token.Token, pi *int, st *state, word string) error {
	if acceptWord(toks, pi, word) {
		return nil
	}
	return st.fail(*pi, "expected %q", word)
}
