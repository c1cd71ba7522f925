// Package merge overlays configuration values before rendering.
package merge

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/nodecfg/kdlgen/debug"
	"github.com/nodecfg/kdlgen/ir"
	"github.com/nodecfg/kdlgen/load"
)

// Merge applies patch over doc with RFC 7396 merge-patch semantics,
// implemented directly on the ir so the field order of untouched doc
// entries is preserved: a null patch entry deletes, object entries
// merge recursively, anything else replaces, and new keys append in
// patch order. Neither input is mutated.
func Merge(doc, patch *ir.Node) *ir.Node {
	if patch == nil {
		if doc == nil {
			return ir.Null()
		}
		return doc.Clone()
	}
	if patch.Type != ir.ObjectType {
		return patch.Clone()
	}
	var res *ir.Node
	if doc == nil || doc.Type != ir.ObjectType {
		res = ir.FromKeyVals(nil)
	} else {
		res = doc.Clone()
	}
	for i := range patch.Fields {
		key, pv := patch.Fields[i], patch.Values[i]
		if pv.Type == ir.NullType {
			res.Delete(key)
			continue
		}
		res.Set(key, Merge(ir.Get(res, key), pv))
	}
	if debug.Patch() {
		debug.Logf("merge result:\n%v", res)
	}
	return res
}

// ApplyJSONPatch applies an RFC 6902 patch document to doc through its
// JSON view. The round trip goes via Go maps, so sibling order in the
// result is canonicalized (sorted); prefer Merge when order matters.
func ApplyJSONPatch(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	d, err := load.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	res, err := load.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("could not decode patched document: %w", err)
	}
	return res, nil
}
