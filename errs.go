package tomlquery

import (
	"github.com/ehuss/toml-query/resolve"
	"github.com/ehuss/toml-query/token"
)

var (
	ErrParse        = token.ErrParse
	ErrNotFound     = resolve.ErrNotFound
	ErrTypeMismatch = resolve.ErrTypeMismatch
	ErrExists       = resolve.ErrExists
)
