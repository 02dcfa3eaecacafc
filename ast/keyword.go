package ast

// Keyword and token leaves carry no payload.

type AnyKeyword struct{ NodeBase }
type BigIntKeyword struct{ NodeBase }
type BooleanKeyword struct{ NodeBase }
type NeverKeyword struct{ NodeBase }
type NullKeyword struct{ NodeBase }
type NumberKeyword struct{ NodeBase }
type ObjectKeyword struct{ NodeBase }
type StringKeyword struct{ NodeBase }
type SymbolKeyword struct{ NodeBase }
type UndefinedKeyword struct{ NodeBase }
type UnknownKeyword struct{ NodeBase }
type VoidKeyword struct{ NodeBase }
type TrueKeyword struct{ NodeBase }
type FalseKeyword struct{ NodeBase }
type KeyOfKeyword struct{ NodeBase }
type ReadonlyKeyword struct{ NodeBase }
type UniqueKeyword struct{ NodeBase }
type ExportKeyword struct{ NodeBase }
type DeclareKeyword struct{ NodeBase }

type QuestionToken struct{ NodeBase }
type PlusToken struct{ NodeBase }
type MinusToken struct{ NodeBase }
type DotDotDotToken struct{ NodeBase }

func (*AnyKeyword) Kind() Kind       { return KindAnyKeyword }
func (*BigIntKeyword) Kind() Kind    { return KindBigIntKeyword }
func (*BooleanKeyword) Kind() Kind   { return KindBooleanKeyword }
func (*NeverKeyword) Kind() Kind     { return KindNeverKeyword }
func (*NullKeyword) Kind() Kind      { return KindNullKeyword }
func (*NumberKeyword) Kind() Kind    { return KindNumberKeyword }
func (*ObjectKeyword) Kind() Kind    { return KindObjectKeyword }
func (*StringKeyword) Kind() Kind    { return KindStringKeyword }
func (*SymbolKeyword) Kind() Kind    { return KindSymbolKeyword }
func (*UndefinedKeyword) Kind() Kind { return KindUndefinedKeyword }
func (*UnknownKeyword) Kind() Kind   { return KindUnknownKeyword }
func (*VoidKeyword) Kind() Kind      { return KindVoidKeyword }
func (*TrueKeyword) Kind() Kind      { return KindTrueKeyword }
func (*FalseKeyword) Kind() Kind     { return KindFalseKeyword }
func (*KeyOfKeyword) Kind() Kind     { return KindKeyOfKeyword }
func (*ReadonlyKeyword) Kind() Kind  { return KindReadonlyKeyword }
func (*UniqueKeyword) Kind() Kind    { return KindUniqueKeyword }
func (*ExportKeyword) Kind() Kind    { return KindExportKeyword }
func (*DeclareKeyword) Kind() Kind   { return KindDeclareKeyword }

func (*QuestionToken) Kind() Kind  { return KindQuestionToken }
func (*PlusToken) Kind() Kind      { return KindPlusToken }
func (*MinusToken) Kind() Kind     { return KindMinusToken }
func (*DotDotDotToken) Kind() Kind { return KindDotDotDotToken }

// typeKeywords maps the keywords usable as types to their kinds.
var typeKeywords = map[string]Kind{
	"any":       KindAnyKeyword,
	"bigint":    KindBigIntKeyword,
	"boolean":   KindBooleanKeyword,
	"never":     KindNeverKeyword,
	"null":      KindNullKeyword,
	"number":    KindNumberKeyword,
	"object":    KindObjectKeyword,
	"string":    KindStringKeyword,
	"symbol":    KindSymbolKeyword,
	"undefined": KindUndefinedKeyword,
	"unknown":   KindUnknownKeyword,
	"void":      KindVoidKeyword,
}

// TypeKeyword returns the keyword leaf for a type keyword such as
// "string", or nil if word is not one.
func TypeKeyword(word string) Node {
	k, ok := typeKeywords[word]
	if !ok {
		return nil
	}
	return New(k)
}

// KeywordText returns the source spelling of a keyword or token kind.
func KeywordText(k Kind) string {
	for word, kk := range typeKeywords {
		if kk == k {
			return word
		}
	}
	switch k {
	case KindTrueKeyword:
		return "true"
	case KindFalseKeyword:
		return "false"
	case KindKeyOfKeyword:
		return "keyof"
	case KindReadonlyKeyword:
		return "readonly"
	case KindUniqueKeyword:
		return "unique"
	case KindExportKeyword:
		return "export"
	case KindDeclareKeyword:
		return "declare"
	case KindQuestionToken:
		return "?"
	case KindPlusToken:
		return "+"
	case KindMinusToken:
		return "-"
	case KindDotDotDotToken:
		return "..."
	}
	return ""
}

// NewKeyword returns the leaf for a keyword or token kind, or nil when k
// is neither.
func NewKeyword(k Kind) Node {
	if !k.IsKeyword() && !k.IsToken() {
		return nil
	}
	return New(k)
}
