// Package kdlgen renders hierarchical configuration values as
// node-based configuration text, the dialect read by KDL-configured
// compositors: node name, positional arguments, key=value properties,
// and tab-indented brace children.
//
// The ir package holds the value model, encode does the rendering, load
// produces values from YAML or JSON, merge overlays values, eval
// expands computed expressions, and configfile writes the result where
// the consuming program reads it.
package kdlgen

import (
	"bytes"

	"github.com/nodecfg/kdlgen/encode"
	"github.com/nodecfg/kdlgen/ir"
)

// Render encodes root as a configuration document.
func Render(root *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(root, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
