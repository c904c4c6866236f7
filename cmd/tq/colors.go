package main

import (
	"github.com/ehuss/toml-query/ir"

	"github.com/fatih/color"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ir.Type]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ir.Type]func(string, ...any) string{},
	}
	colors.Map[ir.StringType] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ir.IntegerType] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ir.FloatType] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[ir.BoolType] = color.CyanString
	colors.Map[ir.DatetimeType] = color.RGB(198, 198, 46).SprintfFunc()
	return colors
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

func (c *Colors) Sprintf(t ir.Type, f string, args ...any) string {
	fn, ok := c.Map[t]
	if !ok {
		fn = c.Default
	}
	return fn(f, args...)
}
