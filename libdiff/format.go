package libdiff

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Write writes one line per change:
//
//	+ $.types[2] NullKeyword
//	- $.types[0] TypeReference "A"
//	~ $.typeName.text "A" -> "B"
//
// color may be nil.
func Write(w io.Writer, changes []Change, color func(encode.ColorAttr, string) string) error {
	if color == nil {
		color = func(_ encode.ColorAttr, s string) string { return s }
	}
	for i := range changes {
		c := &changes[i]
		line := color(encode.SepColor, c.Op.Sigil()) + " " + color(encode.FieldColor, c.Path) + " "
		switch c.Op {
		case OpInsert:
			line += describe(c.To, color)
		case OpDelete:
			line += describe(c.From, color)
		default:
			line += describe(c.From, color) + color(encode.SepColor, " -> ") + describe(c.To, color)
		}
		if len(c.Text) > 1 {
			line += color(encode.SepColor, " ~ ") + color(encode.TextColor, textDiff(c.Text))
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func describe(v any, color func(encode.ColorAttr, string) string) string {
	switch x := v.(type) {
	case nil:
		return color(encode.ValueColor, "null")
	case ast.Node:
		s := color(encode.KindColor, x.Kind().String())
		if text, ok := ast.Text(x); ok {
			s += " " + color(encode.TextColor, strconv.Quote(text))
		}
		return s
	case []ast.Node:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = describe(n, color)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case string:
		return color(encode.TextColor, strconv.Quote(x))
	case ast.Kind:
		return color(encode.KeywordColor, x.String())
	default:
		return color(encode.ValueColor, fmt.Sprint(x))
	}
}

// textDiff renders a character diff inline, with deletions as [-x-] and
// insertions as {+x+}.
func textDiff(diffs []diffpatch.Diff) string {
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		default:
			buf.WriteString(d.Text)
		}
	}
	return buf.String()
}
