// Package encode renders ir value trees as node-based configuration
// text: lines of the form
//
//	name arg1 arg2 prop1=val1 {
//		child ...
//	}
//
// with positional arguments and key=value properties drawn from the
// reserved _args and _props keys of a mapping, children drawn from
// _children (explicitly ordered) and from the remaining keys (in
// mapping order), and one tab of indentation per nesting level.
//
// Sequences are disambiguated by element kind: a sequence of scalars is
// one node's argument list, while a sequence containing any mapping or
// sequence encodes as repeated same-named sibling nodes.
//
// Encoding is a pure function of the input tree. Any malformed input
// aborts the whole render; no partial output is valid.
package encode
