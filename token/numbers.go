package token

// number returns the length of the numeric literal at the start of d.
// It accepts decimal literals with fraction and exponent, the 0x, 0o and
// 0b radix forms, '_' separators and a trailing bigint 'n'.
func number(d []byte) (int, error) {
	if len(d) > 1 && d[0] == '0' {
		switch d[1] {
		case 'x', 'X':
			return radix(d, isHexDigit)
		case 'o', 'O':
			return radix(d, isOctalDigit)
		case 'b', 'B':
			return radix(d, isBinaryDigit)
		}
	}
	digits := asciiDigits(d)
	if digits == 0 {
		if fract(d) == 0 {
			return 0, ErrNumber
		}
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	n := digits + f + e
	if f+e == 0 {
		if digits > 1 && d[0] == '0' {
			return n, ErrNumberLeadingZero
		}
		if n < len(d) && d[n] == 'n' {
			n++
		}
	}
	if n < len(d) && isIdentPart(rune(d[n])) {
		return n, ErrNumber
	}
	return n, nil
}

func radix(d []byte, ok func(byte) bool) (int, error) {
	i := 2
	for i < len(d) && (ok(d[i]) || d[i] == '_') {
		i++
	}
	if i == 2 {
		return i, ErrNumber
	}
	if i < len(d) && d[i] == 'n' {
		i++
	}
	return i, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) && !(d[i] == '_' && i > 0) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return asciiDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
