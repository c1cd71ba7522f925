package encode

import (
	"bytes"

	"github.com/nodecfg/kdlgen/ir"
)

// MustString renders root to a string, panicking on malformed input.
// Intended for trees built programmatically, where a render error is a
// bug.
func MustString(root *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
