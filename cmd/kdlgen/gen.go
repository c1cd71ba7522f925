package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/nodecfg/kdlgen/configfile"
	"github.com/nodecfg/kdlgen/encode"
	"github.com/nodecfg/kdlgen/eval"
	"github.com/nodecfg/kdlgen/ir"
	"github.com/nodecfg/kdlgen/load"
	"github.com/nodecfg/kdlgen/merge"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		cfg.Gen.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	doc, err := inputDoc(cc, args)
	if err != nil {
		return err
	}
	doc, err = applyPatches(doc, cfg.Patches)
	if err != nil {
		return err
	}
	if cfg.Expand {
		if err := eval.Expand(doc, cfg.Env); err != nil {
			return err
		}
	}
	opts, err := cfg.renderOpts(cc)
	if err != nil {
		return err
	}
	if cfg.Write != "" {
		return configfile.Write(cfg.Write, doc, opts...)
	}
	return encode.Encode(doc, cc.Out, opts...)
}

func (cfg *GenConfig) renderOpts(cc *cli.Context) ([]encode.EncodeOption, error) {
	var opts []encode.EncodeOption
	if cfg.Trailer != "" {
		d, err := os.ReadFile(cfg.Trailer)
		if err != nil {
			return nil, fmt.Errorf("could not read trailer: %w", err)
		}
		opts = append(opts, encode.Trailer(string(d)))
	}
	// no color escapes in files the consumer reads
	if cfg.Write == "" {
		opts = append(opts, cfg.encOpts(cc.Out)...)
	}
	return opts, nil
}

// applyPatches overlays each patch file in order; a file whose content
// starts with '[' is treated as an RFC 6902 patch, anything else as a
// merge patch value.
func applyPatches(doc *ir.Node, files []string) (*ir.Node, error) {
	for _, file := range files {
		d, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("could not read patch %s: %w", file, err)
		}
		if strings.HasPrefix(strings.TrimSpace(string(d)), "[") {
			doc, err = merge.ApplyJSONPatch(doc, d)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			continue
		}
		patch, err := load.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		doc = merge.Merge(doc, patch)
	}
	return doc, nil
}
