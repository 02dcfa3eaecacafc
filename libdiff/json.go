package libdiff

import (
	"strings"

	"github.com/signadot/dts/ast"
	"github.com/signadot/dts/encode"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffJSON diffs the indented JSON of from and to, with kinds written by
// name, line by line. Output lines are prefixed "+ ", "- " or "  ". The
// result is empty when the trees are equal.
func DiffJSON(from, to ast.Node) (string, error) {
	a, err := canonical(from)
	if err != nil {
		return "", err
	}
	b, err := canonical(to)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), lines)
	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
		}
	}
	return buf.String(), nil
}

func canonical(n ast.Node) (string, error) {
	d, err := ast.MarshalIndent(n, "", "  ")
	if err != nil {
		return "", err
	}
	return string(encode.KindNames(d)) + "\n", nil
}
