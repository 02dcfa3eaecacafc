package ast

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown kind")
	ErrKindMismatch = errors.New("kind mismatch")
	ErrDecode       = errors.New("decode error")
	ErrEncode       = errors.New("encode error")
)
