// Package load decodes host-configuration documents (YAML or JSON)
// into ir value trees, preserving mapping order.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/nodecfg/kdlgen/debug"
	"github.com/nodecfg/kdlgen/ir"
)

// Parse decodes a single document. YAML is a superset of JSON, so one
// decoder covers both input formats.
func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("could not decode input: %w", err)
	}
	node, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	if debug.Load() {
		debug.Logf("loaded document:\n%v", node)
	}
	return node, nil
}

// ParseAll decodes a multi-document stream, one node per document.
func ParseAll(d []byte) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	var res []*ir.Node
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not decode document %d: %w", len(res), err)
		}
		node, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(res), err)
		}
		res = append(res, node)
	}
	return res, nil
}
