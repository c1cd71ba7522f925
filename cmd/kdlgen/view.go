package main

import (
	"github.com/scott-cotton/cli"

	"github.com/nodecfg/kdlgen/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	doc, err := inputDoc(cc, args)
	if err != nil {
		return err
	}
	return encode.Encode(doc, cc.Out, encode.EncodeColors(encode.NewColors()))
}
