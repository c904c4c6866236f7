package main

import (
	"fmt"

	tomlquery "github.com/ehuss/toml-query"
	"github.com/ehuss/toml-query/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a value path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cfg, cc, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, cc *cli.Context, arg, path string) error {
	root, err := getObjFile(cc, arg)
	if err != nil {
		return err
	}
	doc := tomlquery.New(root)
	n, err := doc.Read(path)
	if cfg.Type != "" {
		var t ir.Type
		if uerr := t.UnmarshalText([]byte(cfg.Type)); uerr != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, uerr)
		}
		n, err = tomlquery.As(n, err, t)
	}
	if err != nil {
		return err
	}
	if n.Type.IsLeaf() && cfg.colorEnabled(cc.Out) {
		d, err := ir.EncodeYAML(n)
		if err != nil {
			return err
		}
		fmt.Fprint(cc.Out, NewColors().Sprintf(n.Type, "%s", d))
		return nil
	}
	return writeObj(cfg.MainConfig, cc.Out, n)
}
