package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/nodecfg/kdlgen/ir"
)

// classify picks the encoding for a (name, value) pair by the value's
// runtime kind: scalars become a single "name literal" line, objects
// become a composed node, flat sequences become one node with the
// elements as positional arguments, and non-flat sequences become
// repeated sibling nodes, one per element.
func classify(name string, v *ir.Node, w io.Writer, es *encState) error {
	switch v.Type {
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		lit, err := Literal(v)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		line := applyColor(es, v.Type, NameColor, name) +
			" " + applyColor(es, v.Type, ValueColor, lit)
		return writeString(w, line)
	case ir.ObjectType:
		if err := es.enter(v); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		defer es.leave(v)
		return composeNode(name, v, w, es)
	case ir.ArrayType:
		if isFlat(v) {
			return encodeFlat(name, v, w, es)
		}
		if err := es.enter(v); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		defer es.leave(v)
		for i, elt := range v.Values {
			if i > 0 {
				if err := writeNL(w, es); err != nil {
					return err
				}
			}
			if err := classify(name, elt, w, es); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: attribute %q has type %s",
			ErrUnsupportedAttribute, name, v.Type)
	}
}

// isFlat reports whether every element of a sequence is a scalar. A
// flat sequence encodes as one node with positional arguments; anything
// else encodes as repeated siblings. Empty sequences are flat.
func isFlat(v *ir.Node) bool {
	for _, elt := range v.Values {
		if !elt.Type.IsScalar() {
			return false
		}
	}
	return true
}

// encodeFlat writes "name lit1 lit2 ... litN", or a bare "name" for an
// empty sequence.
func encodeFlat(name string, v *ir.Node, w io.Writer, es *encState) error {
	parts := make([]string, 0, len(v.Values)+1)
	parts = append(parts, applyColor(es, ir.ArrayType, NameColor, name))
	for _, elt := range v.Values {
		lit, err := Literal(elt)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		parts = append(parts, applyColor(es, elt.Type, ValueColor, lit))
	}
	return writeString(w, strings.Join(parts, " "))
}
