package load

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/nodecfg/kdlgen/ir"
)

// FromAny converts a decoded host value into the ir. yaml.MapSlice
// keeps mapping order; plain maps are sorted by key so the result is
// deterministic. Go values outside the closed value set error.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows the value model", x)
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("cannot represent number %q", x.String())
		}
		return ir.FromFloat(f), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			key, err := mapKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]ir.KeyVal, 0, len(keys))
		for _, key := range keys {
			val, err := FromAny(x[key])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := FromAny(x[i])
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case []*ir.Node:
		return ir.FromSlice(x), nil
	case *ir.Node:
		return x.Clone(), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a configuration value", v)
	}
}

func mapKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		return "", fmt.Errorf("mapping key %v is %T, keys must be strings", k, k)
	}
}

// ToAny converts a node to plain Go values for JSON processing.
// Mapping order is not represented in Go maps, so round trips through
// ToAny canonicalize key order.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i]] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}
