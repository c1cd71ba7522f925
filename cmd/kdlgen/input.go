package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/nodecfg/kdlgen/ir"
	"github.com/nodecfg/kdlgen/load"
	"github.com/nodecfg/kdlgen/merge"
)

// inputDoc loads the input value from the file args, stdin when none
// are given, merging multiple inputs left to right.
func inputDoc(cc *cli.Context, args []string) (*ir.Node, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var doc *ir.Node
	for _, arg := range args {
		next, err := getDocFile(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if doc == nil {
			doc = next
			continue
		}
		doc = merge.Merge(doc, next)
	}
	return doc, nil
}

func getDocFile(cc *cli.Context, path string) (*ir.Node, error) {
	var r io.Reader
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
	return load.Parse(d)
}
