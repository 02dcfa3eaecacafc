package ast

// Node is implemented by every AST node. Kind reports the discriminator
// of the concrete type and Base gives access to the fields every node
// carries.
type Node interface {
	Kind() Kind
	Base() *NodeBase
}

// NodeBase holds the optional modifiers and documentation shared by all
// nodes. It is embedded in every concrete node.
type NodeBase struct {
	Modifiers []Node  `json:"modifiers,omitempty"`
	JSDoc     DocList `json:"jsDoc,omitempty"`
}

func (b *NodeBase) Base() *NodeBase { return b }

type Identifier struct {
	NodeBase
	Text string `json:"text"`
}

func (*Identifier) Kind() Kind { return KindIdentifier }

func NewIdentifier(text string) *Identifier {
	return &Identifier{Text: text}
}

type StringLiteral struct {
	NodeBase
	Text string `json:"text"`
}

func (*StringLiteral) Kind() Kind { return KindStringLiteral }

type NumericLiteral struct {
	NodeBase
	Text string `json:"text"`
}

func (*NumericLiteral) Kind() Kind { return KindNumericLiteral }

// NoSubstitutionTemplateLiteral is a backquoted string without ${}
// placeholders. Text is unescaped.
type NoSubstitutionTemplateLiteral struct {
	NodeBase
	Text string `json:"text"`
}

func (*NoSubstitutionTemplateLiteral) Kind() Kind { return KindNoSubstitutionTemplateLiteral }

type TypeReference struct {
	NodeBase
	TypeName      *Identifier `json:"typeName"`
	TypeArguments []Node      `json:"typeArguments,omitempty"`
}

func (*TypeReference) Kind() Kind { return KindTypeReference }

func NewTypeReference(name string, args ...Node) *TypeReference {
	return &TypeReference{TypeName: NewIdentifier(name), TypeArguments: args}
}

// UnionType has at least two members.
type UnionType struct {
	NodeBase
	Types []Node `json:"types"`
}

func (*UnionType) Kind() Kind { return KindUnionType }

// IntersectionType has at least two members.
type IntersectionType struct {
	NodeBase
	Types []Node `json:"types"`
}

func (*IntersectionType) Kind() Kind { return KindIntersectionType }

type ArrayType struct {
	NodeBase
	ElementType Node `json:"elementType"`
}

func (*ArrayType) Kind() Kind { return KindArrayType }

type TupleType struct {
	NodeBase
	Elements []Node `json:"elements"`
}

func (*TupleType) Kind() Kind { return KindTupleType }

// RestType is a `...T` tuple element.
type RestType struct {
	NodeBase
	Type Node `json:"type"`
}

func (*RestType) Kind() Kind { return KindRestType }

// OptionalType is a `T?` tuple element.
type OptionalType struct {
	NodeBase
	Type Node `json:"type"`
}

func (*OptionalType) Kind() Kind { return KindOptionalType }

type FunctionType struct {
	NodeBase
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Type           Node             `json:"type"`
}

func (*FunctionType) Kind() Kind { return KindFunctionType }

// ConstructorType is a function type introduced by `new`.
type ConstructorType struct {
	NodeBase
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Type           Node             `json:"type"`
}

func (*ConstructorType) Kind() Kind { return KindConstructorType }

// TypeOperator applies keyof, readonly or unique to its operand.
type TypeOperator struct {
	NodeBase
	Operator Kind `json:"operator"`
	Type     Node `json:"type"`
}

func (*TypeOperator) Kind() Kind { return KindTypeOperator }

// MappedType is `{ readonly? [K in C as N]?: T }`. ReadonlyToken and
// QuestionToken are a ReadonlyKeyword/QuestionToken leaf or a Plus/Minus
// token leaf when the modifier carries an explicit sign.
type MappedType struct {
	NodeBase
	ReadonlyToken Node           `json:"readonlyToken,omitempty"`
	TypeParameter *TypeParameter `json:"typeParameter"`
	NameType      Node           `json:"nameType,omitempty"`
	QuestionToken Node           `json:"questionToken,omitempty"`
	Type          Node           `json:"type"`
}

func (*MappedType) Kind() Kind { return KindMappedType }

type IndexedAccessType struct {
	NodeBase
	ObjectType Node `json:"objectType"`
	IndexType  Node `json:"indexType"`
}

func (*IndexedAccessType) Kind() Kind { return KindIndexedAccessType }

// TypeLiteral is an object type; members are PropertySignature,
// IndexSignature, MethodSignature, CallSignature or ConstructSignature.
type TypeLiteral struct {
	NodeBase
	Members []Node `json:"members"`
}

func (*TypeLiteral) Kind() Kind { return KindTypeLiteral }

// LiteralType wraps a StringLiteral, NumericLiteral,
// NoSubstitutionTemplateLiteral, TrueKeyword or FalseKeyword.
type LiteralType struct {
	NodeBase
	Literal Node `json:"literal"`
}

func (*LiteralType) Kind() Kind { return KindLiteralType }

type ParenthesizedType struct {
	NodeBase
	Type Node `json:"type"`
}

func (*ParenthesizedType) Kind() Kind { return KindParenthesizedType }

// TypeQuery is `typeof name`.
type TypeQuery struct {
	NodeBase
	ExprName *Identifier `json:"exprName"`
}

func (*TypeQuery) Kind() Kind { return KindTypeQuery }

type ConditionalType struct {
	NodeBase
	CheckType   Node `json:"checkType"`
	ExtendsType Node `json:"extendsType"`
	TrueType    Node `json:"trueType"`
	FalseType   Node `json:"falseType"`
}

func (*ConditionalType) Kind() Kind { return KindConditionalType }

type InferType struct {
	NodeBase
	TypeParameter *TypeParameter `json:"typeParameter"`
}

func (*InferType) Kind() Kind { return KindInferType }

type ThisType struct{ NodeBase }

func (*ThisType) Kind() Kind { return KindThisType }

type Parameter struct {
	NodeBase
	DotDotDotToken Node        `json:"dotDotDotToken,omitempty"`
	Name           *Identifier `json:"name"`
	QuestionToken  Node        `json:"questionToken,omitempty"`
	Type           Node        `json:"type,omitempty"`
}

func (*Parameter) Kind() Kind { return KindParameter }

type TypeParameter struct {
	NodeBase
	Name       *Identifier `json:"name"`
	Constraint Node        `json:"constraint,omitempty"`
	Default    Node        `json:"default,omitempty"`
}

func (*TypeParameter) Kind() Kind { return KindTypeParameter }

type PropertySignature struct {
	NodeBase
	Name          *Identifier `json:"name"`
	QuestionToken Node        `json:"questionToken,omitempty"`
	Type          Node        `json:"type,omitempty"`
}

func (*PropertySignature) Kind() Kind { return KindPropertySignature }

type IndexSignature struct {
	NodeBase
	Parameters []*Parameter `json:"parameters"`
	Type       Node         `json:"type"`
}

func (*IndexSignature) Kind() Kind { return KindIndexSignature }

type MethodSignature struct {
	NodeBase
	Name           *Identifier      `json:"name"`
	QuestionToken  Node             `json:"questionToken,omitempty"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Type           Node             `json:"type,omitempty"`
}

func (*MethodSignature) Kind() Kind { return KindMethodSignature }

type CallSignature struct {
	NodeBase
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Type           Node             `json:"type,omitempty"`
}

func (*CallSignature) Kind() Kind { return KindCallSignature }

type ConstructSignature struct {
	NodeBase
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Parameters     []*Parameter     `json:"parameters,omitempty"`
	Type           Node             `json:"type,omitempty"`
}

func (*ConstructSignature) Kind() Kind { return KindConstructSignature }

type TypeAliasDeclaration struct {
	NodeBase
	Name           *Identifier      `json:"name"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	Type           Node             `json:"type"`
}

func (*TypeAliasDeclaration) Kind() Kind { return KindTypeAliasDeclaration }

// SourceFile holds the declarations recognized in a whole file.
type SourceFile struct {
	NodeBase
	FileName   string `json:"fileName,omitempty"`
	Statements []Node `json:"statements"`
}

func (*SourceFile) Kind() Kind { return KindSourceFile }

// JSDoc is a documentation comment with its delimiters removed.
type JSDoc struct {
	NodeBase
	Comment string `json:"comment,omitempty"`
}

func (*JSDoc) Kind() Kind { return KindJSDoc }

// JSDocText is the text leaf used when documentation arrives as a bare
// string.
type JSDocText struct {
	NodeBase
	Text string `json:"text"`
}

func (*JSDocText) Kind() Kind { return KindJSDocText }

// UnknownNode is the base shape produced by lenient decoding when the
// discriminator names no known kind.
type UnknownNode struct {
	NodeBase
	RawKind Kind `json:"-"`
}

func (n *UnknownNode) Kind() Kind { return n.RawKind }
