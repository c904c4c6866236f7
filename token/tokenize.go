package token

import (
	"strconv"
	"strings"
)

type options struct {
	sep rune
}

type Option func(*options)

// WithSeparator sets the segment separator. The default is '.'. The
// separator must not be a digit or a bracket character.
func WithSeparator(r rune) Option {
	return func(o *options) {
		o.sep = r
	}
}

// Tokenize converts a query string into a Path. The grammar is
// separator-joined chunks of the form `key? bracket*`, where a bracket is
// "[N]" (N a non-negative decimal) or "[]" (append marker). Brackets attach
// directly to the preceding key, as in "a.b[0].c[]". A chunk with no key is
// legal only as the very first chunk, for addressing a root-level array.
//
// Tokenize is pure: the same input always yields the same Path.
func Tokenize(query string, opts ...Option) (Path, error) {
	opt := &options{sep: '.'}
	for _, o := range opts {
		o(opt)
	}
	if query == "" {
		return nil, parseErr(query, 0, ErrEmptyQuery)
	}

	var path Path
	pos := 0
	chunks := strings.Split(query, string(opt.sep))
	for ci, chunk := range chunks {
		rest := chunk
		b := strings.IndexByte(rest, '[')
		if b != 0 {
			var key string
			if b == -1 {
				key, rest = rest, ""
			} else {
				key, rest = rest[:b], rest[b:]
			}
			if key == "" {
				return nil, parseErr(query, pos, ErrEmptyKey)
			}
			if strings.IndexByte(key, ']') != -1 {
				return nil, parseErr(query, pos, ErrUnterminated)
			}
			path = append(path, KeySegment(key))
		} else if ci != 0 {
			// "[...]" with no preceding key attaches to nothing.
			return nil, parseErr(query, pos, ErrEmptyKey)
		}

		off := len(chunk) - len(rest)
		for rest != "" {
			if rest[0] != '[' {
				return nil, parseErr(query, pos+off, ErrKeyAfterBracket)
			}
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, parseErr(query, pos+off, ErrUnterminated)
			}
			content := rest[1:end]
			if content == "" {
				path = append(path, AppendSegment())
			} else {
				idx, err := parseIndex(content)
				if err != nil {
					return nil, parseErr(query, pos+off, ErrBadIndex)
				}
				path = append(path, IndexSegment(idx))
			}
			rest = rest[end+1:]
			off = len(chunk) - len(rest)
		}
		pos += len(chunk) + len(string(opt.sep))
	}

	for i, s := range path {
		if s.Append && i != len(path)-1 {
			return nil, parseErr(query, 0, ErrAppendNotLast)
		}
	}
	return path, nil
}

func parseIndex(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrBadIndex
		}
	}
	return strconv.Atoi(s)
}
