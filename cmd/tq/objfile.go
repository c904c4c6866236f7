package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ehuss/toml-query/ir"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return ir.DecodeYAML(d)
}

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func writeObj(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	var (
		d   []byte
		err error
	)
	if cfg.J {
		d, err = y.MarshalJSON()
		d = append(d, '\n')
	} else {
		d, err = ir.EncodeYAML(y)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
