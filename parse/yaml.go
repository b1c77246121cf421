package parse

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/jeyms233/vcmi/dom"
)

// YAML reads a YAML document into a dom.Node. JSON being a YAML subset,
// this also accepts strict JSON, but without the relaxed-dialect
// tolerances of Parse.
func YAML(data []byte, opts ...Option) (*dom.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	node, err := fromAny(v)
	if err != nil {
		return nil, err
	}
	if po.meta != "" {
		node.SetMeta(po.meta, true)
	}
	return node, nil
}

func fromAny(v any) (*dom.Node, error) {
	switch x := v.(type) {
	case nil:
		return dom.Null(), nil
	case bool:
		return dom.NewBool(x), nil
	case string:
		return dom.NewString(x), nil
	case int:
		return dom.NewInteger(int64(x)), nil
	case int64:
		return dom.NewInteger(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return dom.NewFloat(float64(x)), nil
		}
		return dom.NewInteger(int64(x)), nil
	case float32:
		return dom.NewFloat(float64(x)), nil
	case float64:
		return dom.NewFloat(x), nil
	case []any:
		node := dom.FromSlice(nil)
		for _, e := range x {
			c, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			node.Append(c)
		}
		return node, nil
	case map[string]any:
		node := dom.FromMap(nil)
		for k, e := range x {
			c, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			node.Struct()[k] = c
		}
		return node, nil
	case map[any]any:
		node := dom.FromMap(nil)
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string mapping key %v", ErrParse, k)
			}
			c, err := fromAny(e)
			if err != nil {
				return nil, err
			}
			node.Struct()[ks] = c
		}
		return node, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml value %T", ErrParse, v)
	}
}
