package encode

import "errors"

var (
	// ErrUnsupportedLiteral reports a value in scalar position whose
	// type has no literal form.
	ErrUnsupportedLiteral = errors.New("unsupported literal type")

	// ErrUnsupportedAttribute reports an attribute value with no
	// classification rule.
	ErrUnsupportedAttribute = errors.New("unsupported attribute type")

	// ErrInvalidReservedKey reports an _args, _props or _children entry
	// of the wrong shape.
	ErrInvalidReservedKey = errors.New("invalid reserved key")

	// ErrCyclic reports an input that is not a tree.
	ErrCyclic = errors.New("cyclic structure")
)
