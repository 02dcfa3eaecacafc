// Package query selects AST nodes with expr-lang predicates.
//
// A predicate is evaluated once per node with an environment describing
// that node:
//
//	kind      kind name, e.g. "UnionType"
//	text      text of identifiers, literals and docs
//	path      location from the root, e.g. "$.type.types[1]"
//	depth     distance from the root
//	parent    kind name of the parent node, "" at the root
//	<field>   each encoded member of the node, named as in JSON; child
//	          nodes appear as nested maps two levels down
//
// and the functions has(field), size(), descendants(kind), docs(),
// isKeyword(kind) and kindNum(kind). size counts the nodes of the subtree
// rooted at the node, and descendants counts the nodes of a kind below it.
// Names taken by expr builtins or operators, such as count and contains,
// are not usable for node helpers.
package query

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/debug"
)

var ErrQuery = errors.New("query error")

// viewDepth is how far below a node its environment describes children.
const viewDepth = 2

type Query struct {
	src string
	prg *vm.Program
}

type Match struct {
	Node  ast.Node
	Path  string
	Depth int
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Find compiles src and runs it over root.
func Find(root ast.Node, src string) ([]Match, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Find(root)
}

// Match evaluates q at n as if n were a root.
func (q *Query) Match(n ast.Node) (bool, error) {
	return q.eval(n, nil, "$", 0)
}

// Find returns the nodes under root, root included, for which q holds, in
// pre-order.
func (q *Query) Find(root ast.Node) ([]Match, error) {
	var res []Match
	err := q.find(root, nil, "$", 0, &res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (q *Query) find(n, parent ast.Node, path string, depth int, res *[]Match) error {
	ok, err := q.eval(n, parent, path, depth)
	if err != nil {
		return err
	}
	if ok {
		*res = append(*res, Match{Node: n, Path: path, Depth: depth})
	}
	for _, f := range ast.Fields(n) {
		switch {
		case f.IsList:
			for i, c := range f.List {
				if err := q.find(c, n, path+"."+f.Name+"["+strconv.Itoa(i)+"]", depth+1, res); err != nil {
					return err
				}
			}
		case f.Node != nil:
			if err := q.find(f.Node, n, path+"."+f.Name, depth+1, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func (q *Query) eval(n, parent ast.Node, path string, depth int) (bool, error) {
	env := nodeEnv(n, parent, path, depth)
	out, err := expr.Run(q.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: %s at %s: %w", ErrQuery, q.src, path, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s gave %T, not bool", ErrQuery, q.src, out)
	}
	if debug.Query() && b {
		debug.Logf("query %s matched at %s\n", q.src, path)
	}
	return b, nil
}

func nodeEnv(n, parent ast.Node, path string, depth int) map[string]any {
	env := view(n, viewDepth)
	env["path"] = path
	env["depth"] = depth
	env["parent"] = ""
	if parent != nil {
		env["parent"] = parent.Kind().String()
	}
	if _, ok := env["text"]; !ok {
		env["text"] = ""
	}
	present := map[string]bool{}
	for _, f := range ast.Fields(n) {
		if f.IsList && len(f.List) == 0 {
			continue
		}
		present[f.Name] = true
	}
	env["has"] = func(field string) bool {
		return present[field]
	}
	env["size"] = func() int {
		return ast.Count(n)
	}
	env["descendants"] = func(kind string) int {
		c := 0
		ast.Walk(n, func(d ast.Node) bool {
			if d != n && d.Kind().String() == kind {
				c++
			}
			return true
		})
		return c
	}
	env["docs"] = func() string {
		return n.Base().JSDoc.Text()
	}
	return env
}

// view describes n as a map of its kind, text and fields, with child
// nodes described down to depth more levels.
func view(n ast.Node, depth int) map[string]any {
	m := map[string]any{"kind": n.Kind().String()}
	if s, ok := ast.Text(n); ok {
		m["text"] = s
	}
	if depth == 0 {
		return m
	}
	for _, f := range ast.Fields(n) {
		if _, ok := m[f.Name]; ok {
			continue
		}
		switch {
		case f.IsList:
			l := make([]any, len(f.List))
			for i, c := range f.List {
				l[i] = view(c, depth-1)
			}
			m[f.Name] = l
		case f.Node != nil:
			m[f.Name] = view(f.Node, depth-1)
		default:
			m[f.Name] = scalar(f.Value)
		}
	}
	return m
}

func scalar(v any) any {
	if k, ok := v.(ast.Kind); ok {
		return k.String()
	}
	return v
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("isKeyword", func(params ...any) (any, error) {
			k, err := ast.ParseKind(params[0].(string))
			if err != nil {
				return false, nil
			}
			return k.IsKeyword(), nil
		},
			new(func(string) bool)),
		expr.Function("kindNum", func(params ...any) (any, error) {
			k, err := ast.ParseKind(params[0].(string))
			if err != nil {
				return nil, err
			}
			return int(k), nil
		},
			new(func(string) int)),
	}
}
