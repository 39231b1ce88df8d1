package value

import (
	stdjson "encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// FromAny converts a generic Go tree, as produced by encoding/json, go-json or
// yaml.v3 decoding into `any`, into a Value. Map keys are sorted so the result
// is deterministic.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case stdjson.Number:
		return Number(t), nil
	case float64:
		return NumberFromFloat(t), nil
	case float32:
		return NumberFromFloat(float64(t)), nil
	case int:
		return NumberFromInt(int64(t)), nil
	case int32:
		return NumberFromInt(int64(t)), nil
	case int64:
		return NumberFromInt(t), nil
	case uint:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return Number(strconv.FormatUint(t, 10)), nil
	case []any:
		arr := make(Array, len(t))
		for i, el := range t {
			cv, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			arr[i] = cv
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := make(Object, 0, len(keys))
		for _, k := range keys {
			cv, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: k, Value: cv})
		}
		return obj, nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("value: non-string map key %v", k)
			}
			m[ks] = vv
		}
		return FromAny(m)
	}
	return nil, fmt.Errorf("value: unsupported type %T", v)
}

// MustFromAny is like FromAny but panics on unsupported input.
func MustFromAny(v any) Value {
	cv, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return cv
}
