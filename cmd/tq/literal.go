package main

import (
	"strconv"
	"time"

	"github.com/ehuss/toml-query/ir"
)

// parseLiteral reads a command line value argument the way a config
// decoder would: booleans, then integers, then floats, then RFC 3339
// datetimes, with anything else taken as a string.
func parseLiteral(s string) *ir.Node {
	switch s {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return ir.FromFloat(f)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return ir.FromDatetime(t)
	}
	return ir.FromString(s)
}
