package main

import (
	"fmt"

	"github.com/ehuss/toml-query/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// patch applies an RFC 6902 patch by round-tripping documents through
// the json bridge. Field order survives the round trip for fields the
// patch does not touch.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file and optionally files to which to apply it", cli.ErrUsage)
	}
	pd, err := readArg(cc, args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		target, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		td, err := target.MarshalJSON()
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		res, err := p.Apply(td)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		out, err := ir.DecodeJSON(res)
		if err != nil {
			return fmt.Errorf("error decoding patched %s: %w", arg, err)
		}
		if i > 0 && !cfg.J {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := writeObj(cfg.MainConfig, cc.Out, out); err != nil {
			return err
		}
	}
	return nil
}
