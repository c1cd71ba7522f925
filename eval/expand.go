package eval

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nodecfg/kdlgen/debug"
	"github.com/nodecfg/kdlgen/ir"
	"github.com/nodecfg/kdlgen/load"
)

// Expand walks node and evaluates expressions in string scalars: a
// string of exactly the form ".[expr]" is replaced by the typed
// evaluation result, and "$[expr]" occurrences inside a string are
// interpolated as text. All other nodes pass through unchanged.
func Expand(node *ir.Node, env Env) error {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		for _, cy := range node.Values {
			if err := Expand(cy, env); err != nil {
				return err
			}
		}
	case ir.StringType:
		raw := rawRef(node.String)
		if raw == "" {
			v, err := ExpandString(node.String, env)
			if err != nil {
				return fmt.Errorf("error expanding %q: %w", node.String, err)
			}
			node.String = v
			return nil
		}
		x, err := EvalString(raw, env)
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", raw, err)
		}
		if debug.Eval() {
			debug.Logf("eval %q gave %#v\n", raw, x)
		}
		repl, err := load.FromAny(x)
		if err != nil {
			return fmt.Errorf("could not translate evaluation result: %w", err)
		}
		*node = *repl
	}
	return nil
}

// rawRef extracts expr from a whole-string ".[expr]" reference, or
// returns "" when v is not one.
func rawRef(v string) string {
	if len(v) < 4 || !strings.HasPrefix(v, ".[") || !strings.HasSuffix(v, "]") {
		return ""
	}
	return v[2 : len(v)-1]
}

// ExpandString interpolates $[expr] occurrences in v. A backslash
// escapes the next character inside the brackets, so "\]" embeds a
// bracket in the expression. An unclosed "$[" is left as-is.
func ExpandString(v string, env Env) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	var out strings.Builder
	i := 0
	for i < len(v) {
		j := strings.Index(v[i:], "$[")
		if j < 0 {
			out.WriteString(v[i:])
			break
		}
		out.WriteString(v[i : i+j])
		key, rest, ok := scanExpr(v[i+j+2:])
		if !ok {
			out.WriteString(v[i+j:])
			break
		}
		x, err := EvalString(strings.TrimSpace(key), env)
		if err != nil {
			return "", fmt.Errorf("error evaluating %q: %w", key, err)
		}
		if debug.Eval() {
			debug.Logf("eval %q gave %#v\n", key, x)
		}
		s, err := anyToString(x)
		if err != nil {
			return "", fmt.Errorf("could not render result of %q: %w", key, err)
		}
		out.WriteString(s)
		i = len(v) - len(rest)
	}
	return out.String(), nil
}

// scanExpr reads up to the unescaped closing bracket, returning the
// expression text, the remainder of the input, and whether the bracket
// was found.
func scanExpr(v string) (string, string, bool) {
	var key []byte
	i := 0
	for i < len(v) {
		switch v[i] {
		case '\\':
			if i+1 < len(v) {
				key = append(key, v[i+1])
				i += 2
				continue
			}
			key = append(key, v[i])
			i++
		case ']':
			return string(key), v[i+1:], true
		default:
			key = append(key, v[i])
			i++
		}
	}
	return "", "", false
}

func anyToString(x any) (string, error) {
	switch v := x.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case nil:
		return "null", nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
}
