package encode

import "github.com/signadot/dts/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Depth sets the indentation level the tree view starts at.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeKindNames writes kinds by name instead of number in JSON output.
// YAML output always uses names.
func EncodeKindNames(v bool) EncodeOption {
	return func(es *EncState) { es.kindNames = v }
}

// EncodeCompact writes JSON on a single line.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}
