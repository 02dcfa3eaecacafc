package token

import (
	"bytes"
	"unicode/utf8"
)

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	pd := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			i++
			continue
		case '/':
			if i+1 < n && src[i+1] == '/' {
				end := bytes.IndexByte(src[i:], '\n')
				if end == -1 {
					i = n
				} else {
					i += end + 1
				}
				continue
			}
			if i+1 < n && src[i+1] == '*' {
				end := bytes.Index(src[i+2:], []byte("*/"))
				if end == -1 {
					return nil, NewTokenizeErr(ErrUnterminated, pd.Pos(i))
				}
				j := i + 2 + end + 2
				if isDocComment(src[i:j]) {
					dst = append(dst, Token{Type: TDocComment, Pos: pd.Pos(i), Bytes: src[i:j]})
				}
				i = j
				continue
			}
		case '"', '\'', '`':
			sz, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i+sz))
			}
			typ := TString
			if c == '`' {
				typ = TTemplate
			}
			dst = append(dst, Token{Type: typ, Pos: pd.Pos(i), Bytes: src[i : i+sz]})
			i += sz
			continue
		case '.':
			if i+2 < n && src[i+1] == '.' && src[i+2] == '.' {
				dst = append(dst, Token{Type: TEllipsis, Pos: pd.Pos(i), Bytes: src[i : i+3]})
				i += 3
				continue
			}
			if i+1 < n && asciiDigit(src[i+1]) {
				sz, err := number(src[i:])
				if err != nil {
					return nil, NewTokenizeErr(err, pd.Pos(i))
				}
				dst = append(dst, Token{Type: TNumber, Pos: pd.Pos(i), Bytes: src[i : i+sz]})
				i += sz
				continue
			}
		case '=':
			if i+1 < n && src[i+1] == '>' {
				dst = append(dst, Token{Type: TArrow, Pos: pd.Pos(i), Bytes: src[i : i+2]})
				i += 2
				continue
			}
		}
		if t, ok := punct[c]; ok {
			dst = append(dst, Token{Type: t, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
			continue
		}
		if asciiDigit(c) {
			sz, err := number(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, pd.Pos(i))
			}
			dst = append(dst, Token{Type: TNumber, Pos: pd.Pos(i), Bytes: src[i : i+sz]})
			i += sz
			continue
		}
		sz, err := ident(src[i:])
		if err != nil {
			return nil, NewTokenizeErr(err, pd.Pos(i+sz))
		}
		if sz > 0 {
			dst = append(dst, Token{Type: TIdent, Pos: pd.Pos(i), Bytes: src[i : i+sz]})
			i += sz
			continue
		}
		r, rsz := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && rsz <= 1 {
			return nil, NewTokenizeErr(ErrBadUTF8, pd.Pos(i))
		}
		if r < utf8.RuneSelf && isOtherPunct(c) {
			dst = append(dst, Token{Type: TPunct, Pos: pd.Pos(i), Bytes: src[i : i+1]})
			i++
			continue
		}
		if r == '\u00a0' || r == '\ufeff' || r == '\u2028' || r == '\u2029' {
			i += rsz
			continue
		}
		return nil, UnexpectedErr(string(r), pd.Pos(i))
	}
	return dst, nil
}

func isDocComment(d []byte) bool {
	// "/**/" is an empty ordinary comment
	return len(d) > 4 && d[2] == '*' && d[3] != '/'
}

func isOtherPunct(c byte) bool {
	switch c {
	case '*', '/', '!', '@', '#', '%', '^', '~', '\\':
		return true
	}
	return false
}
