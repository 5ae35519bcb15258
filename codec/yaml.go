package codec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/psd-format/go-psd/ir"
)

// fromYAML converts a goccy-decoded value to IR. Decoding runs with
// UseOrderedMap, so mappings arrive as yaml.MapSlice and keep their
// document order.
func fromYAML(v any) (*ir.Node, error) {
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
		if x > 1<<63-1 {
			return nil, fmt.Errorf("yaml integer %d does not fit in int64", x)
		}
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		values := make([]*ir.Node, len(x))
		for i, el := range x {
			node, err := fromYAML(el)
			if err != nil {
				return nil, err
			}
			values[i] = node
		}
		return ir.FromSlice(values), nil
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("yaml mapping key %v is not a string", item.Key)
			}
			node, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, node)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported yaml value of type %T", v)
	}
}

// toYAML converts IR to a value goccy marshals with key order
// preserved, using yaml.MapSlice for mappings.
func toYAML(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return nil, fmt.Errorf("number node has no value")
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			el, err := toYAML(v)
			if err != nil {
				return nil, err
			}
			res[i] = el
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, f := range node.Fields {
			el, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: f.String, Value: el})
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported IR type %s", node.Type)
	}
}
