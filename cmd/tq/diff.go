package main

import (
	"fmt"

	"github.com/ehuss/toml-query/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(y1, y2) {
		return nil
	}
	if err := diffInputs(cfg, cc, y1, y2); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func diffInputs(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) error {
	da, err := ir.EncodeYAML(a)
	if err != nil {
		return err
	}
	db, err := ir.EncodeYAML(b)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(string(da), string(db))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)
	if cfg.colorEnabled(cc.Out) {
		_, err := fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		if _, err := fmt.Fprint(cc.Out, prefixLines(prefix, d.Text)); err != nil {
			return err
		}
	}
	return nil
}

func prefixLines(prefix, text string) string {
	res := make([]byte, 0, len(text)+len(prefix))
	atStart := true
	for i := 0; i < len(text); i++ {
		if atStart {
			res = append(res, prefix...)
			atStart = false
		}
		res = append(res, text[i])
		if text[i] == '\n' {
			atStart = true
		}
	}
	return string(res)
}
