package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	kdlgen "github.com/nodecfg/kdlgen"
	"github.com/nodecfg/kdlgen/configfile"
	"github.com/nodecfg/kdlgen/textdiff"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: check requires -f <configfile>", cli.ErrUsage)
	}
	doc, err := inputDoc(cc, args)
	if err != nil {
		return err
	}
	rendered, err := kdlgen.Render(doc)
	if err != nil {
		return err
	}
	current, err := configfile.Current(cfg.File)
	if err != nil {
		return err
	}
	if current == rendered {
		return nil
	}
	var out string
	if cfg.useColor(cc.Out) {
		out = textdiff.ColorLines(current, rendered)
	} else {
		out = textdiff.Lines(current, rendered)
	}
	if _, err := fmt.Fprint(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
