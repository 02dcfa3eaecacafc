package patch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/libdiff"
)

type operation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// FromChanges converts changes from libdiff.Diff into an RFC 6902 patch.
// A change replacing the root cannot be expressed and is an error.
func FromChanges(changes []libdiff.Change) ([]byte, error) {
	ops := make([]operation, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		ptr, err := Pointer(c.Path)
		if err != nil {
			return nil, err
		}
		if ptr == "" {
			return nil, fmt.Errorf("%w: cannot %s the root", ErrPatch, c.Op)
		}
		op := operation{Path: ptr}
		switch c.Op {
		case libdiff.OpInsert:
			op.Op = "add"
			op.Value, err = marshalValue(c.To)
		case libdiff.OpDelete:
			op.Op = "remove"
		default:
			op.Op = "replace"
			op.Value, err = marshalValue(c.To)
		}
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return json.Marshal(ops)
}

// ApplyChanges applies changes from libdiff.Diff to n.
func ApplyChanges(n ast.Node, changes []libdiff.Change, opts ...ast.DecodeOption) (ast.Node, error) {
	for len(changes) > 0 && changes[0].Path == "$" {
		c := changes[0]
		changes = changes[1:]
		to, ok := c.To.(ast.Node)
		if !ok {
			return nil, fmt.Errorf("%w: cannot %s the root", ErrPatch, c.Op)
		}
		n = to
	}
	if len(changes) == 0 {
		return n, nil
	}
	p, err := FromChanges(changes)
	if err != nil {
		return nil, err
	}
	return Apply(n, p, opts...)
}

func marshalValue(v any) (json.RawMessage, error) {
	switch x := v.(type) {
	case ast.Node:
		return ast.Marshal(x)
	case []ast.Node:
		parts := make([]string, len(x))
		for i, n := range x {
			d, err := ast.Marshal(n)
			if err != nil {
				return nil, err
			}
			parts[i] = string(d)
		}
		return json.RawMessage("[" + strings.Join(parts, ",") + "]"), nil
	case ast.Kind:
		return json.Marshal(int(x))
	default:
		return json.Marshal(x)
	}
}

// Pointer converts a path such as "$.types[1].typeName" into the JSON
// pointer "/types/1/typeName". The root "$" is "".
func Pointer(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "$")
	if !ok {
		return "", fmt.Errorf("%w: path %q does not start at $", ErrPatch, path)
	}
	buf := &strings.Builder{}
	for rest != "" {
		switch rest[0] {
		case '.':
			rest = rest[1:]
			end := strings.IndexAny(rest, ".[")
			if end == -1 {
				end = len(rest)
			}
			if end == 0 {
				return "", fmt.Errorf("%w: empty field in %q", ErrPatch, path)
			}
			buf.WriteByte('/')
			buf.WriteString(escape(rest[:end]))
			rest = rest[end:]
		case '[':
			end := strings.IndexByte(rest, ']')
			if end < 2 {
				return "", fmt.Errorf("%w: bad index in %q", ErrPatch, path)
			}
			buf.WriteByte('/')
			buf.WriteString(rest[1:end])
			rest = rest[end+1:]
		default:
			return "", fmt.Errorf("%w: unexpected %q in %q", ErrPatch, rest[0], path)
		}
	}
	return buf.String(), nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(s string) string {
	return pointerEscaper.Replace(s)
}
