// Package encode renders syntax trees for people and tools.
//
// # Usage
//
//	n, _ := parse.ParseType([]byte("keyof T | null"))
//
//	// indented kind tree (the default)
//	err := encode.Encode(n, os.Stdout)
//
//	// JSON wire form, or YAML with kind names
//	err = encode.Encode(n, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//	err = encode.Encode(n, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// The tree view is a debugging aid; it is not TypeScript source.
//
// # Related Packages
//
//   - github.com/signadot/dts/ast - the node model and JSON codec
//   - github.com/signadot/dts/parse - parse declaration text into nodes
package encode
