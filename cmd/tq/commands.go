package main

import (
	"github.com/scott-cotton/cli"

	"github.com/ehuss/toml-query/resolve"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tq").
		WithSynopsis("tq [opts] command [opts]").
		WithDescription("tq reads and edits config documents addressed by paths like server.listeners[0].port.").
		WithOpts(opts...).
		WithSubs(
			GetCommand(cfg),
			EditCommand(cfg, "set", resolve.OpSet),
			EditCommand(cfg, "insert", resolve.OpInsert),
			EditCommand(cfg, "update", resolve.OpUpdate),
			DelCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-t kind] <path> [files]").
		WithDescription("get the value at a path in config files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func EditCommand(mainCfg *MainConfig, name string, op resolve.Op) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand(name).
		WithSynopsis(name + " <path> <value> [file]").
		WithDescription(name + " the value at a path in a config file").
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args, op)
		})
	cfg.Edit = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("del").
		WithAliases("rm").
		WithSynopsis("del <path> [file]").
		WithDescription("delete the value at a path in a config file").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("decode and re-encode config files").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two config documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patch.json> [files]").
		WithDescription("apply an RFC 6902 patch to config documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
