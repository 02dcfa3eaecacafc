package token

import (
	"unicode"
	"unicode/utf8"
)

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\u200c' || r == '\u200d'
}

// ident returns the length of the identifier at the start of d, or 0.
func ident(d []byte) (int, error) {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i, ErrBadUTF8
		}
		if i == 0 && !isIdentStart(r) {
			return 0, nil
		}
		if !isIdentPart(r) {
			break
		}
		i += sz
	}
	return i, nil
}

// IsIdentifier reports whether s is a valid identifier.
func IsIdentifier(s string) bool {
	n, err := ident([]byte(s))
	return err == nil && n > 0 && n == len(s)
}
