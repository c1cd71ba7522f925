package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nodecfg/kdlgen/ir"
)

// Literal renders a scalar node as a syntax literal: null, true/false,
// decimal numbers, or a double-quoted string. Passing an array or object
// is a caller contract violation and yields ErrUnsupportedLiteral.
func Literal(v *ir.Node) (string, error) {
	switch v.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case ir.NumberType:
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10), nil
		}
		if v.Float64 != nil {
			return strconv.FormatFloat(*v.Float64, 'g', -1, 64), nil
		}
		return "", fmt.Errorf("%w: number node carries no value", ErrUnsupportedLiteral)
	case ir.StringType:
		return quote(v.String), nil
	case ir.ArrayType, ir.ObjectType:
		return "", fmt.Errorf("%w: %s with %d entries has no literal form",
			ErrUnsupportedLiteral, v.Type, len(v.Values))
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLiteral, v.Type)
	}
}

// quote double-quotes v, escaping embedded double quotes and newlines.
// The output syntax requires no other escapes.
func quote(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(v[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
