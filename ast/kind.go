package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind is the node discriminator. Its numeric value is the wire
// discriminator and its String() is the name of the concrete node type.
// Values follow TypeScript's SyntaxKind enumeration (TypeScript 5.5 and
// later), so JSON written by the TypeScript compiler API decodes here.
// Only the kinds which occur in declaration types are defined.
type Kind int

const (
	KindUnknown Kind = 0

	KindNumericLiteral                Kind = 9
	KindStringLiteral                 Kind = 11
	KindNoSubstitutionTemplateLiteral Kind = 15

	KindDotDotDotToken Kind = 26
	KindPlusToken      Kind = 40
	KindMinusToken     Kind = 41
	KindQuestionToken  Kind = 58

	KindIdentifier Kind = 80

	KindExportKeyword    Kind = 95
	KindFalseKeyword     Kind = 97
	KindNullKeyword      Kind = 106
	KindTrueKeyword      Kind = 112
	KindVoidKeyword      Kind = 116
	KindAnyKeyword       Kind = 133
	KindBooleanKeyword   Kind = 136
	KindDeclareKeyword   Kind = 138
	KindKeyOfKeyword     Kind = 143
	KindNeverKeyword     Kind = 146
	KindReadonlyKeyword  Kind = 148
	KindNumberKeyword    Kind = 150
	KindObjectKeyword    Kind = 151
	KindStringKeyword    Kind = 154
	KindSymbolKeyword    Kind = 155
	KindUndefinedKeyword Kind = 157
	KindUniqueKeyword    Kind = 158
	KindUnknownKeyword   Kind = 159
	KindBigIntKeyword    Kind = 163

	KindTypeParameter      Kind = 168
	KindParameter          Kind = 169
	KindPropertySignature  Kind = 171
	KindMethodSignature    Kind = 173
	KindCallSignature      Kind = 179
	KindConstructSignature Kind = 180
	KindIndexSignature     Kind = 181

	KindTypeReference     Kind = 183
	KindFunctionType      Kind = 184
	KindConstructorType   Kind = 185
	KindTypeQuery         Kind = 186
	KindTypeLiteral       Kind = 187
	KindArrayType         Kind = 188
	KindTupleType         Kind = 189
	KindOptionalType      Kind = 190
	KindRestType          Kind = 191
	KindUnionType         Kind = 192
	KindIntersectionType  Kind = 193
	KindConditionalType   Kind = 194
	KindInferType         Kind = 195
	KindParenthesizedType Kind = 196
	KindThisType          Kind = 197
	KindTypeOperator      Kind = 198
	KindIndexedAccessType Kind = 199
	KindMappedType        Kind = 200
	KindLiteralType       Kind = 201

	KindTypeAliasDeclaration Kind = 265
	KindSourceFile           Kind = 307

	KindJSDoc     Kind = 320
	KindJSDocText Kind = 321

	kindCount = KindJSDocText + 1
)

// SyntaxKind ranges.
const (
	firstPunctuation Kind = 19
	lastPunctuation  Kind = 79
	firstKeyword     Kind = 83
	lastKeyword      Kind = 165
)

type kindInfo struct {
	name string
	new  func() Node
}

// kinds is the closed Kind -> concrete node table used by the codec.
var kinds = [kindCount]kindInfo{
	KindUnknown:    {name: "Unknown"},
	KindIdentifier: {"Identifier", func() Node { return &Identifier{} }},

	KindAnyKeyword:       {"AnyKeyword", func() Node { return &AnyKeyword{} }},
	KindBigIntKeyword:    {"BigIntKeyword", func() Node { return &BigIntKeyword{} }},
	KindBooleanKeyword:   {"BooleanKeyword", func() Node { return &BooleanKeyword{} }},
	KindNeverKeyword:     {"NeverKeyword", func() Node { return &NeverKeyword{} }},
	KindNullKeyword:      {"NullKeyword", func() Node { return &NullKeyword{} }},
	KindNumberKeyword:    {"NumberKeyword", func() Node { return &NumberKeyword{} }},
	KindObjectKeyword:    {"ObjectKeyword", func() Node { return &ObjectKeyword{} }},
	KindStringKeyword:    {"StringKeyword", func() Node { return &StringKeyword{} }},
	KindSymbolKeyword:    {"SymbolKeyword", func() Node { return &SymbolKeyword{} }},
	KindUndefinedKeyword: {"UndefinedKeyword", func() Node { return &UndefinedKeyword{} }},
	KindUnknownKeyword:   {"UnknownKeyword", func() Node { return &UnknownKeyword{} }},
	KindVoidKeyword:      {"VoidKeyword", func() Node { return &VoidKeyword{} }},
	KindTrueKeyword:      {"TrueKeyword", func() Node { return &TrueKeyword{} }},
	KindFalseKeyword:     {"FalseKeyword", func() Node { return &FalseKeyword{} }},
	KindKeyOfKeyword:     {"KeyOfKeyword", func() Node { return &KeyOfKeyword{} }},
	KindReadonlyKeyword:  {"ReadonlyKeyword", func() Node { return &ReadonlyKeyword{} }},
	KindUniqueKeyword:    {"UniqueKeyword", func() Node { return &UniqueKeyword{} }},
	KindExportKeyword:    {"ExportKeyword", func() Node { return &ExportKeyword{} }},
	KindDeclareKeyword:   {"DeclareKeyword", func() Node { return &DeclareKeyword{} }},

	KindQuestionToken:  {"QuestionToken", func() Node { return &QuestionToken{} }},
	KindPlusToken:      {"PlusToken", func() Node { return &PlusToken{} }},
	KindMinusToken:     {"MinusToken", func() Node { return &MinusToken{} }},
	KindDotDotDotToken: {"DotDotDotToken", func() Node { return &DotDotDotToken{} }},

	KindStringLiteral:                 {"StringLiteral", func() Node { return &StringLiteral{} }},
	KindNumericLiteral:                {"NumericLiteral", func() Node { return &NumericLiteral{} }},
	KindNoSubstitutionTemplateLiteral: {"NoSubstitutionTemplateLiteral", func() Node { return &NoSubstitutionTemplateLiteral{} }},

	KindTypeReference:     {"TypeReference", func() Node { return &TypeReference{} }},
	KindUnionType:         {"UnionType", func() Node { return &UnionType{} }},
	KindIntersectionType:  {"IntersectionType", func() Node { return &IntersectionType{} }},
	KindArrayType:         {"ArrayType", func() Node { return &ArrayType{} }},
	KindTupleType:         {"TupleType", func() Node { return &TupleType{} }},
	KindFunctionType:      {"FunctionType", func() Node { return &FunctionType{} }},
	KindConstructorType:   {"ConstructorType", func() Node { return &ConstructorType{} }},
	KindTypeOperator:      {"TypeOperator", func() Node { return &TypeOperator{} }},
	KindMappedType:        {"MappedType", func() Node { return &MappedType{} }},
	KindIndexedAccessType: {"IndexedAccessType", func() Node { return &IndexedAccessType{} }},
	KindTypeLiteral:       {"TypeLiteral", func() Node { return &TypeLiteral{} }},
	KindLiteralType:       {"LiteralType", func() Node { return &LiteralType{} }},
	KindParenthesizedType: {"ParenthesizedType", func() Node { return &ParenthesizedType{} }},
	KindTypeQuery:         {"TypeQuery", func() Node { return &TypeQuery{} }},
	KindConditionalType:   {"ConditionalType", func() Node { return &ConditionalType{} }},
	KindInferType:         {"InferType", func() Node { return &InferType{} }},
	KindRestType:          {"RestType", func() Node { return &RestType{} }},
	KindOptionalType:      {"OptionalType", func() Node { return &OptionalType{} }},
	KindThisType:          {"ThisType", func() Node { return &ThisType{} }},

	KindParameter:            {"Parameter", func() Node { return &Parameter{} }},
	KindTypeParameter:        {"TypeParameter", func() Node { return &TypeParameter{} }},
	KindPropertySignature:    {"PropertySignature", func() Node { return &PropertySignature{} }},
	KindIndexSignature:       {"IndexSignature", func() Node { return &IndexSignature{} }},
	KindMethodSignature:      {"MethodSignature", func() Node { return &MethodSignature{} }},
	KindCallSignature:        {"CallSignature", func() Node { return &CallSignature{} }},
	KindConstructSignature:   {"ConstructSignature", func() Node { return &ConstructSignature{} }},
	KindTypeAliasDeclaration: {"TypeAliasDeclaration", func() Node { return &TypeAliasDeclaration{} }},
	KindSourceFile:           {"SourceFile", func() Node { return &SourceFile{} }},

	KindJSDoc:     {"JSDoc", func() Node { return &JSDoc{} }},
	KindJSDocText: {"JSDocText", func() Node { return &JSDocText{} }},
}

var kindsByName = func() map[string]Kind {
	res := make(map[string]Kind)
	for k, info := range kinds {
		if info.name != "" {
			res[info.name] = Kind(k)
		}
	}
	return res
}()

func (k Kind) String() string {
	if k >= KindUnknown && k < kindCount && kinds[k].name != "" {
		return kinds[k].name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k names a concrete node type.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < kindCount && kinds[k].new != nil
}

func (k Kind) IsKeyword() bool {
	return k.Valid() && k >= firstKeyword && k <= lastKeyword
}

func (k Kind) IsToken() bool {
	return k.Valid() && k >= firstPunctuation && k <= lastPunctuation
}

// IsLeaf reports whether nodes of kind k carry no child nodes.
func (k Kind) IsLeaf() bool {
	switch {
	case k.IsKeyword(), k.IsToken():
		return true
	}
	switch k {
	case KindIdentifier, KindStringLiteral, KindNumericLiteral, KindNoSubstitutionTemplateLiteral,
		KindThisType, KindJSDoc, KindJSDocText:
		return true
	}
	return false
}

// Kinds returns all valid kinds in numeric order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(kindsByName))
	for k := KindUnknown + 1; k < kindCount; k++ {
		if k.Valid() {
			res = append(res, k)
		}
	}
	return res
}

// ParseKind maps a kind name such as "UnionType" to its Kind.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[name]
	if !ok || k == KindUnknown {
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// New returns a zero node of kind k, or nil if k is not valid.
func New(k Kind) Node {
	if !k.Valid() {
		return nil
	}
	return kinds[k].new()
}

// UnmarshalJSON accepts either the numeric discriminator or the kind name.
func (k *Kind) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) > 0 && d[0] == '"' {
		var name string
		if err := json.Unmarshal(d, &name); err != nil {
			return err
		}
		kk, err := ParseKind(name)
		if err != nil {
			return err
		}
		*k = kk
		return nil
	}
	var n int
	if err := json.Unmarshal(d, &n); err != nil {
		return fmt.Errorf("%w: bad kind %s", ErrDecode, d)
	}
	*k = Kind(n)
	return nil
}
