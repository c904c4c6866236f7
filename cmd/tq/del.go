package main

import (
	"fmt"

	tomlquery "github.com/ehuss/toml-query"

	"github.com/scott-cotton/cli"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: del requires a value path and optionally a file", cli.ErrUsage)
	}
	path := args[0]
	arg := "-"
	if len(args) == 2 {
		arg = args[1]
	}
	root, err := getObjFile(cc, arg)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	doc := tomlquery.New(root)
	if _, err := doc.Delete(path); err != nil {
		return fmt.Errorf("error deleting %s from %s: %w", path, arg, err)
	}
	return writeObj(cfg.MainConfig, cc.Out, doc.Root())
}
