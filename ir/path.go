package ir

import (
	"fmt"
	"strings"
)

// GetPath resolves a dotted field path like "input.keyboard.layout"
// against an object tree. It returns nil when any segment is absent.
func GetPath(y *Node, path string) *Node {
	res := y
	for _, part := range strings.Split(path, ".") {
		res = Get(res, part)
		if res == nil {
			return nil
		}
	}
	return res
}

// SetPath sets the value at a dotted field path, creating intermediate
// object nodes as needed. It errors when an intermediate segment exists
// but is not an object.
func SetPath(y *Node, path string, v *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("cannot set %q: root is %s, not an object", path, y.Type)
	}
	parts := strings.Split(path, ".")
	cur := y
	for i, part := range parts {
		if i == len(parts)-1 {
			cur.Set(part, v)
			return nil
		}
		next := Get(cur, part)
		if next == nil {
			next = FromKeyVals(nil)
			cur.Set(part, next)
		}
		if next.Type != ObjectType {
			return fmt.Errorf("cannot set %q: %q is %s, not an object",
				path, strings.Join(parts[:i+1], "."), next.Type)
		}
		cur = next
	}
	return nil
}
