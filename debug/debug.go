// Package debug provides env-gated debug logging for the generation
// pipeline.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load  bool
	Eval  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("KDLGEN_DEBUG_LOAD")
	d.Eval = boolEnv("KDLGEN_DEBUG_EVAL")
	d.Patch = boolEnv("KDLGEN_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Load() bool {
	return d.Load
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
