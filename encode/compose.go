package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/nodecfg/kdlgen/ir"
)

// Reserved keys of a node body. They shape the node itself and are
// never emitted as children.
const (
	argsKey     = "_args"
	propsKey    = "_props"
	childrenKey = "_children"
)

// body is the structured form of a node's mapping: rendered positional
// arguments, rendered key=value properties, and the children to emit,
// explicitly ordered ones first.
type body struct {
	args  []string
	props []string
	kids  []ir.KeyVal
}

func splitBody(name string, y *ir.Node, es *encState) (*body, error) {
	b := &body{}
	var ordered, extra []ir.KeyVal
	for i := range y.Fields {
		key, val := y.Fields[i], y.Values[i]
		switch key {
		case argsKey:
			args, err := reservedArgs(name, val, es)
			if err != nil {
				return nil, err
			}
			b.args = args
		case propsKey:
			props, err := reservedProps(name, val, es)
			if err != nil {
				return nil, err
			}
			b.props = props
		case childrenKey:
			kids, err := reservedChildren(name, val)
			if err != nil {
				return nil, err
			}
			ordered = kids
		default:
			extra = append(extra, ir.KeyVal{Key: key, Val: val})
		}
	}
	b.kids = append(ordered, extra...)
	return b, nil
}

func reservedArgs(name string, val *ir.Node, es *encState) ([]string, error) {
	if val.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: %s._args must be a sequence of scalars, got %s",
			ErrInvalidReservedKey, name, val.Type)
	}
	args := make([]string, len(val.Values))
	for i, elt := range val.Values {
		if !elt.Type.IsScalar() {
			return nil, fmt.Errorf("%w: %s._args[%d] is %s, arguments must be scalars",
				ErrInvalidReservedKey, name, i, elt.Type)
		}
		lit, err := Literal(elt)
		if err != nil {
			return nil, fmt.Errorf("%s._args[%d]: %w", name, i, err)
		}
		args[i] = applyColor(es, elt.Type, ValueColor, lit)
	}
	return args, nil
}

func reservedProps(name string, val *ir.Node, es *encState) ([]string, error) {
	if val.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: %s._props must be a mapping of scalars, got %s",
			ErrInvalidReservedKey, name, val.Type)
	}
	props := make([]string, len(val.Fields))
	for i := range val.Fields {
		key, pv := val.Fields[i], val.Values[i]
		if !pv.Type.IsScalar() {
			return nil, fmt.Errorf("%w: %s._props.%s is %s, properties must be scalars",
				ErrInvalidReservedKey, name, key, pv.Type)
		}
		lit, err := Literal(pv)
		if err != nil {
			return nil, fmt.Errorf("%s._props.%s: %w", name, key, err)
		}
		props[i] = applyColor(es, ir.ObjectType, FieldColor, key) +
			applyColor(es, ir.ObjectType, SepColor, "=") +
			applyColor(es, pv.Type, ValueColor, lit)
	}
	return props, nil
}

// reservedChildren flattens _children, a sequence of single-entry
// mappings, into (name, value) pairs in sequence order. Zero or
// multiple entries in one element have no defined meaning and are
// rejected.
func reservedChildren(name string, val *ir.Node) ([]ir.KeyVal, error) {
	if val.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: %s._children must be a sequence, got %s",
			ErrInvalidReservedKey, name, val.Type)
	}
	kids := make([]ir.KeyVal, len(val.Values))
	for i, elt := range val.Values {
		if elt.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: %s._children[%d] must be a single-entry mapping, got %s",
				ErrInvalidReservedKey, name, i, elt.Type)
		}
		if len(elt.Fields) != 1 {
			return nil, fmt.Errorf("%w: %s._children[%d] must have exactly one entry, got %d",
				ErrInvalidReservedKey, name, i, len(elt.Fields))
		}
		kids[i] = ir.KeyVal{Key: elt.Fields[0], Val: elt.Values[0]}
	}
	return kids, nil
}

// composeNode assembles one node line from its body: name, positional
// arguments, properties, then a brace block with one tab stop of extra
// indentation per level. Absent segments contribute nothing, and the
// brace block is omitted entirely when there are no children.
func composeNode(name string, y *ir.Node, w io.Writer, es *encState) error {
	b, err := splitBody(name, y, es)
	if err != nil {
		return err
	}
	segs := make([]string, 0, len(b.args)+len(b.props)+2)
	segs = append(segs, applyColor(es, ir.ObjectType, NameColor, name))
	segs = append(segs, b.args...)
	segs = append(segs, b.props...)
	if len(b.kids) == 0 {
		return writeString(w, strings.Join(segs, " "))
	}
	segs = append(segs, applyColor(es, ir.ObjectType, SepColor, "{"))
	if err := writeString(w, strings.Join(segs, " ")); err != nil {
		return err
	}
	es.depth++
	for _, kid := range b.kids {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := classify(kid.Key, kid.Val, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}
