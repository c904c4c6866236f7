package main

import (
	"fmt"

	tomlquery "github.com/ehuss/toml-query"
	"github.com/ehuss/toml-query/resolve"

	"github.com/scott-cotton/cli"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string, op resolve.Op) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: %s requires a value path, a value, and optionally a file", cli.ErrUsage, op)
	}
	path, lit := args[0], args[1]
	arg := "-"
	if len(args) == 3 {
		arg = args[2]
	}
	root, err := getObjFile(cc, arg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	doc := tomlquery.New(root)
	v := parseLiteral(lit)
	switch op {
	case resolve.OpInsert:
		err = doc.Insert(path, v)
	case resolve.OpUpdate:
		err = doc.Update(path, v)
	case resolve.OpSet:
		err = doc.Set(path, v)
	default:
		return fmt.Errorf("unsupported edit operation %q", op)
	}
	if err != nil {
		return fmt.Errorf("error applying %s to %s: %w", op, arg, err)
	}
	return writeObj(cfg.MainConfig, cc.Out, doc.Root())
}
