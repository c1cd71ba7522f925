package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/nodecfg/kdlgen/encode"
	"github.com/nodecfg/kdlgen/eval"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.useColor(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type GenConfig struct {
	*MainConfig

	Expand  bool   `cli:"name=x desc='expand $[expr] and .[expr] expressions in the input'"`
	Write   string `cli:"name=w desc='write the config file atomically at this path'"`
	Trailer string `cli:"name=trailer desc='file with raw lines appended after the document'"`

	Env     eval.Env
	Patches []string

	Gen *cli.Command
}

type CheckConfig struct {
	*MainConfig

	File string `cli:"name=f desc='config file to compare against'"`

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
