package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// quoted returns the length of the string literal at the start of d,
// including both quotes. The quote character is d[0].
func quoted(d []byte) (int, error) {
	q := d[0]
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case q:
			return i + 1, nil
		case '\\':
			if i+1 >= len(d) {
				return i, ErrUnterminated
			}
			i += 2
			continue
		case '\n':
			if q != '`' {
				return i, ErrUnterminated
			}
		}
		i++
	}
	return i, ErrUnterminated
}

// Unquote decodes a single or double quoted string literal.
func Unquote(v string) (string, error) {
	if len(v) < 2 || v[0] != v[len(v)-1] || (v[0] != '"' && v[0] != '\'' && v[0] != '`') {
		return "", fmt.Errorf("%w: %q is not quoted", ErrUnterminated, v)
	}
	body := v[1 : len(v)-1]
	if !strings.ContainsRune(body, '\\') {
		if !utf8.ValidString(body) {
			return "", ErrBadUTF8
		}
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", ErrBadEscape
		}
		i++
		switch e := body[i]; e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if i+3 > len(body) {
				return "", ErrBadEscape
			}
			r, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrBadEscape, err)
			}
			b.WriteRune(rune(r))
			i += 2
		case 'u':
			r, n, err := unicodeEscape(body[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			b.WriteByte(e)
		}
		i++
	}
	return b.String(), nil
}

// unicodeEscape decodes the part of a \u escape after the 'u', either
// four hex digits or a braced code point.
func unicodeEscape(s string) (rune, int, error) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, ErrBadUnicode
		}
		r, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || r > utf8.MaxRune {
			return 0, 0, ErrBadUnicode
		}
		return rune(r), end + 1, nil
	}
	if len(s) < 4 {
		return 0, 0, ErrBadUnicode
	}
	r, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, ErrBadUnicode
	}
	return rune(r), 4, nil
}

// Quote returns v as a double quoted literal.
func Quote(v string) string {
	return strconv.Quote(v)
}
