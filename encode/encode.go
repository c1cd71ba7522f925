package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/nodecfg/kdlgen/ir"
)

type encState struct {
	depth   int
	trailer string
	colors  *Colors

	// composite nodes on the current recursion path, for cycle
	// detection
	onPath map[*ir.Node]struct{}
}

// Encode renders root, which must be an object, as a node-based
// configuration document: one block per top-level entry, blocks joined
// by newlines, with a final trailing newline. The input is never
// mutated, so Encode may be called concurrently on shared trees.
func Encode(root *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{onPath: map[*ir.Node]struct{}{}}
	for _, opt := range opts {
		opt(es)
	}
	if root == nil {
		return fmt.Errorf("%w: document root is nil", ErrUnsupportedAttribute)
	}
	if root.Type != ir.ObjectType {
		return fmt.Errorf("%w: document root must be an object, got %s",
			ErrUnsupportedAttribute, root.Type)
	}
	if err := es.enter(root); err != nil {
		return err
	}
	defer es.leave(root)
	for i := range root.Fields {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := classify(root.Fields[i], root.Values[i], w, es); err != nil {
			return err
		}
	}
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	return writeTrailer(w, es)
}

func (es *encState) enter(y *ir.Node) error {
	if _, ok := es.onPath[y]; ok {
		return fmt.Errorf("%w: input mapping or sequence contains itself", ErrCyclic)
	}
	es.onPath[y] = struct{}{}
	return nil
}

func (es *encState) leave(y *ir.Node) {
	delete(es.onPath, y)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeIndent(w io.Writer, es *encState) error {
	if es.depth == 0 {
		return nil
	}
	return writeString(w, strings.Repeat("\t", es.depth))
}

// writeNL starts a new line at the current indentation level.
func writeNL(w io.Writer, es *encState) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	return writeIndent(w, es)
}

func writeTrailer(w io.Writer, es *encState) error {
	if es.trailer == "" {
		return nil
	}
	if err := writeString(w, es.trailer); err != nil {
		return err
	}
	if !strings.HasSuffix(es.trailer, "\n") {
		return writeString(w, "\n")
	}
	return nil
}
