package resolve

import (
	"errors"
	"fmt"

	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/token"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrExists       = errors.New("already exists")
)

// Error describes a failed operation: which operation, the sub-path resolved
// when the failure was detected, and the failure kind. Type mismatches carry
// the expected and actual value kinds.
type Error struct {
	Op       Op
	Path     token.Path
	Expected ir.Type
	Actual   ir.Type
	Err      error
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrTypeMismatch) {
		return fmt.Sprintf("%s %q: %v: expected %s, got %s",
			e.Op, e.Path.String(), e.Err, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path.String(), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func notFound(op Op, p token.Path) error {
	return &Error{Op: op, Path: p, Err: ErrNotFound}
}

func typeMismatch(op Op, p token.Path, want, got ir.Type) error {
	return &Error{Op: op, Path: p, Expected: want, Actual: got, Err: ErrTypeMismatch}
}

func alreadyExists(op Op, p token.Path) error {
	return &Error{Op: op, Path: p, Err: ErrExists}
}
