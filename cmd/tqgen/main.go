// Command tqgen generates Go path constants for every leaf of a config
// document, so callers can query documents with checked identifiers
// instead of raw strings.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/ehuss/toml-query/ir"
	"github.com/ehuss/toml-query/token"

	"github.com/scott-cotton/cli"
)

type Config struct {
	Package string `cli:"name=pkg desc='package name for the generated file'"`
	Prefix  string `cli:"name=prefix desc='prefix for generated constant names'"`

	Main *cli.Command
}

func main() {
	cfg := &Config{Package: "paths"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommandAt(&cfg.Main, "tqgen").
		WithSynopsis("tqgen [-pkg name] [-prefix P] [file]").
		WithDescription("generate Go constants for the leaf paths of a config document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cli.MainContext(context.Background(), cmd)
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("%w: tqgen takes at most one file", cli.ErrUsage)
	}
	var r io.Reader = cc.In
	if arg != "-" {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %q: %w", arg, err)
	}
	root, err := ir.DecodeYAML(d)
	if err != nil {
		return fmt.Errorf("error decoding %q: %w", arg, err)
	}
	return Generate(cc.Out, cfg.Package, cfg.Prefix, root)
}

func Generate(w io.Writer, pkg, prefix string, root *ir.Node) error {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by tqgen. DO NOT EDIT.\n\npackage %s\n\nconst (\n", pkg)
	if err := leaves(buf, prefix, nil, root); err != nil {
		return err
	}
	fmt.Fprintf(buf, ")\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func leaves(buf *bytes.Buffer, prefix string, p token.Path, y *ir.Node) error {
	switch y.Type {
	case ir.TableType:
		for i, f := range y.Fields {
			if err := leaves(buf, prefix, append(p, token.KeySegment(f)), y.Values[i]); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, v := range y.Values {
			if err := leaves(buf, prefix, append(p, token.IndexSegment(i)), v); err != nil {
				return err
			}
		}
	default:
		name := prefix + constName(p)
		if name == prefix {
			return fmt.Errorf("cannot name the root document")
		}
		fmt.Fprintf(buf, "\t%s = %q\n", name, p.String())
	}
	return nil
}

// constName turns a path into an exported Go identifier, eg
// server.listeners[0].port becomes ServerListeners0Port.
func constName(p token.Path) string {
	var sb strings.Builder
	for _, seg := range p {
		switch {
		case seg.Key != nil:
			up := true
			for _, r := range *seg.Key {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					up = true
					continue
				}
				if up {
					r = unicode.ToUpper(r)
					up = false
				}
				sb.WriteRune(r)
			}
		case seg.Index != nil:
			fmt.Fprintf(&sb, "%d", *seg.Index)
		}
	}
	return sb.String()
}
