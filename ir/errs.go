package ir

import "errors"

var (
	ErrDecode = errors.New("decode error")
	ErrNull   = errors.New("null not representable")
)
