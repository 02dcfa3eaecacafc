package encode

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/format"
)

type EncState struct {
	depth, indent int
	compact       bool
	kindNames     bool

	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes node to w in the format selected by the options, the
// tree view by default. Output ends with a newline.
func Encode(node ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return encodeTree(node, w, es, es.depth, "")
	}
}

func encodeJSON(node ast.Node, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.compact {
		d, err = ast.Marshal(node)
	} else {
		d, err = ast.MarshalIndent(node, "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return err
	}
	if es.kindNames {
		d = KindNames(d)
	}
	if es.Color != nil {
		d = []byte(es.Color(ValueColor, string(d)))
	}
	return writeString(w, string(d)+"\n")
}

func encodeYAML(node ast.Node, w io.Writer) error {
	d, err := ast.Marshal(node)
	if err != nil {
		return err
	}
	y, err := yaml.JSONToYAML(KindNames(d))
	if err != nil {
		return fmt.Errorf("%w: %w", ast.ErrEncode, err)
	}
	_, err = w.Write(y)
	return err
}

var kindNumber = regexp.MustCompile(`\{(\s*)"kind":(\s*)(\d+)`)

// KindNames rewrites the numeric discriminators of JSON produced by
// ast.Marshal into kind names. The result still decodes with
// ast.Unmarshal.
func KindNames(d []byte) []byte {
	return kindNumber.ReplaceAllFunc(d, func(m []byte) []byte {
		sub := kindNumber.FindSubmatch(m)
		n, err := strconv.Atoi(string(sub[3]))
		if err != nil || !ast.Kind(n).Valid() {
			return m
		}
		buf := bytes.NewBuffer(nil)
		buf.WriteByte('{')
		buf.Write(sub[1])
		buf.WriteString(`"kind":`)
		buf.Write(sub[2])
		buf.WriteString(strconv.Quote(ast.Kind(n).String()))
		return buf.Bytes()
	})
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", depth*es.indent)
}

// encodeTree writes n's kind on one line, prefixed with label, and its
// fields below it one level deeper.
func encodeTree(n ast.Node, w io.Writer, es *EncState, depth int, label string) error {
	line := es.pad(depth) + label
	if n == nil {
		return writeString(w, line+es.color(ValueColor, "null")+"\n")
	}
	k := n.Kind()
	attr := KindColor
	if k.IsKeyword() || k.IsToken() {
		attr = KeywordColor
	}
	line += es.color(attr, k.String())
	text, hasText := ast.Text(n)
	if hasText {
		a := TextColor
		if k == ast.KindJSDoc || k == ast.KindJSDocText {
			a = DocColor
		}
		line += " " + es.color(a, strconv.Quote(text))
	}
	if err := writeString(w, line+"\n"); err != nil {
		return err
	}
	for _, f := range ast.Fields(n) {
		if hasText && f.Value != nil {
			if _, ok := f.Value.(string); ok {
				continue
			}
		}
		if err := encodeField(f, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(f ast.Field, w io.Writer, es *EncState, depth int) error {
	label := es.color(FieldColor, f.Name) + es.color(SepColor, ":")
	switch {
	case f.IsList:
		if len(f.List) == 0 {
			return writeString(w, es.pad(depth)+label+" []\n")
		}
		if err := writeString(w, es.pad(depth)+label+"\n"); err != nil {
			return err
		}
		for _, c := range f.List {
			if err := encodeTree(c, w, es, depth+1, es.color(SepColor, "- ")); err != nil {
				return err
			}
		}
		return nil
	case f.Node != nil:
		return encodeTree(f.Node, w, es, depth, label+" ")
	default:
		return writeString(w, es.pad(depth)+label+" "+es.color(ValueColor, scalar(f.Value))+"\n")
	}
}

func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case ast.Kind:
		return x.String()
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
