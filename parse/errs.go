package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/dts/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrTooDeep  = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrTrailing = fmt.Errorf("%w: trailing input", ErrParse)
)

// Error is a parse failure at a position.
type Error struct {
	Err error
	Pos token.Pos
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
