// Package token provides tokenization of TypeScript declaration text.
//
// [Tokenize] turns source bytes into a slice of [Token]. Whitespace and
// ordinary comments are dropped; documentation comments (`/** ... */`) are
// kept as [TDocComment] tokens so that parsers may attach them to the
// declaration that follows.
//
// Every token records its [Pos], which can render a line and column for
// error messages.
package token
