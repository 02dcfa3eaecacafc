package token

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	TIdent TokenType = iota
	TString
	TNumber
	TTemplate
	TDocComment
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
	TLAngle
	TRAngle
	TComma
	TColon
	TSemi
	TPipe
	TAmp
	TArrow
	TEq
	TQuestion
	TDot
	TEllipsis
	TPlus
	TMinus
	TPunct
)

var typeNames = map[TokenType]string{
	TIdent:      "TIdent",
	TString:     "TString",
	TNumber:     "TNumber",
	TTemplate:   "TTemplate",
	TDocComment: "TDocComment",
	TLCurl:      "TLCurl",
	TRCurl:      "TRCurl",
	TLSquare:    "TLSquare",
	TRSquare:    "TRSquare",
	TLParen:     "TLParen",
	TRParen:     "TRParen",
	TLAngle:     "TLAngle",
	TRAngle:     "TRAngle",
	TComma:      "TComma",
	TColon:      "TColon",
	TSemi:       "TSemi",
	TPipe:       "TPipe",
	TAmp:        "TAmp",
	TArrow:      "TArrow",
	TEq:         "TEq",
	TQuestion:   "TQuestion",
	TDot:        "TDot",
	TEllipsis:   "TEllipsis",
	TPlus:       "TPlus",
	TMinus:      "TMinus",
	TPunct:      "TPunct",
}

func (t TokenType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// punct maps single byte punctuation to its token type. Multi byte
// punctuation ("=>", "...") is handled by the tokenizer. '>' is always a
// single token so that nested type argument lists close one at a time.
var punct = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'[': TLSquare,
	']': TRSquare,
	'(': TLParen,
	')': TRParen,
	'<': TLAngle,
	'>': TRAngle,
	',': TComma,
	':': TColon,
	';': TSemi,
	'|': TPipe,
	'&': TAmp,
	'=': TEq,
	'?': TQuestion,
	'.': TDot,
	'+': TPlus,
	'-': TMinus,
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value: the unquoted text of a string, the
// comment body of a doc comment and the source bytes otherwise.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes)
		}
		return s
	case TDocComment:
		return DocText(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

// Is reports whether t is the identifier word.
func (t *Token) Is(word string) bool {
	return t.Type == TIdent && string(t.Bytes) == word
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}

// DocText strips the delimiters and leading '*' gutters from a
// documentation comment.
func DocText(d []byte) string {
	s := string(d)
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimSuffix(s, "*/")
	lines := strings.Split(s, "\n")
	res := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if strings.HasPrefix(ln, "*") {
			ln = strings.TrimSpace(ln[1:])
		}
		res = append(res, ln)
	}
	for len(res) > 0 && res[0] == "" {
		res = res[1:]
	}
	for len(res) > 0 && res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	return strings.Join(res, "\n")
}
