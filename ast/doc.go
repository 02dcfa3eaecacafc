// Package ast provides the syntax tree for TypeScript declaration types.
//
// # Overview
//
// Every node implements [Node]. A node's [Kind] identifies its concrete
// type, and Kind.String() is exactly the name of that type, so
// KindUnionType names *UnionType, KindArrayType names *ArrayType and so on.
// Kind values are the numeric discriminator used on the wire.
//
// Composite nodes own their children: the tree has no sharing and no parent
// links. Nodes produced by the parser are not modified after construction.
//
// Every node embeds [NodeBase], which carries optional modifiers (such as
// ExportKeyword and DeclareKeyword leaves) and optional documentation.
//
// # JSON
//
// [Marshal] writes a node as an object whose "kind" member is the numeric
// discriminator followed by the fields of the concrete type:
//
//	{"kind":183,"typeName":{"kind":80,"text":"T"}}
//
// [Unmarshal] reads "kind" and decodes the rest of the object into the
// concrete type named by it, through a closed table of kinds. An unknown
// kind is an error wrapping [ErrUnknownKind] unless [AllowUnknownKinds] is
// given, in which case the node decodes to an *UnknownNode holding only the
// base fields.
//
// Documentation ([DocList]) may be read from a bare JSON string, which is
// wrapped as a single JSDocText leaf, but is always written as a list.
//
// # Related Packages
//
//   - github.com/signadot/dts/parse - parses declaration text into nodes
//   - github.com/signadot/dts/encode - renders nodes as trees, JSON or YAML
package ast
