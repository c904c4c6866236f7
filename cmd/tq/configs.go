package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='write documents as json'"`
	Color bool `cli:"name=color desc='force color output'"`

	Main *cli.Command
}

func (cfg *MainConfig) colorEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Type string `cli:"name=t desc='narrow the result to a kind: String, Integer, Float, Boolean, Datetime, Array, Table'"`
	Get  *cli.Command
}

type EditConfig struct {
	*MainConfig

	Edit *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
