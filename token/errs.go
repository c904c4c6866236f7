package token

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	ErrEmptyQuery      = fmt.Errorf("%w: empty query", ErrParse)
	ErrEmptyKey        = fmt.Errorf("%w: empty key", ErrParse)
	ErrBadIndex        = fmt.Errorf("%w: bad array index", ErrParse)
	ErrUnterminated    = fmt.Errorf("%w: unterminated bracket", ErrParse)
	ErrAppendNotLast   = fmt.Errorf("%w: append marker before end of path", ErrParse)
	ErrKeyAfterBracket = fmt.Errorf("%w: key directly after bracket", ErrParse)
)

// ParseError reports where in the query string tokenizing failed.
type ParseError struct {
	Query  string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v in %q at offset %d", e.Err, e.Query, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(query string, offset int, err error) error {
	return &ParseError{Query: query, Offset: offset, Err: err}
}
