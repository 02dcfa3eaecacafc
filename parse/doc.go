// Package parse parses TypeScript declaration text into [ast] nodes.
//
// # Entry Points
//
//   - [ParseType] parses a type expression such as `Map<string, T[]> | null`.
//   - [ParseTypePrefix] parses the type at the start of its input and
//     reports where it ended, leaving the rest alone.
//   - [ParseMappedType] parses `{ [K in keyof T]?: T[K] }`.
//   - [ParseTypeAlias] parses `export type Name<T> = Type;` with an
//     optional leading doc comment.
//   - [ParseFile] collects the type aliases of a whole .d.ts file.
//
// The primitive rules the grammar is built from are also exported:
// [ParseName], [ParseParameter], [ParseTypeParameter],
// [ParsePropertySignature] and [ParseComment].
//
// # Grammar
//
// From loosest to tightest binding:
//
//	Type         = Union ['extends' Union '?' Type ':' Type]
//	Union        = ['|'] Intersection {'|' Intersection}
//	Intersection = ['&'] Operator {'&' Operator}
//	Operator     = ('keyof' | 'readonly' | 'unique') Operator | Postfix
//	Postfix      = Primary {'[' ']' | '[' Type ']'}
//
// A Primary is the first of these forms to succeed: a keyword, a literal,
// a mapped type or type literal, a function type, a parenthesized type, a
// constructor type, `typeof` and `infer` forms, a tuple, a generic
// instantiation and finally a bare, possibly qualified, name.
//
// Alternatives that fail consume no input. When all of them fail, the
// error reported is the one furthest into the input. Errors wrap
// [ErrParse] and carry a position; nesting deeper than the configured
// depth (see [WithMaxDepth]) fails with [ErrTooDeep].
//
// Parsing has no shared state: any number of inputs may be parsed
// concurrently.
package parse
