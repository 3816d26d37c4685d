package tree

import (
	"maps"
	"math"
	"slices"

	"github.com/jmgilman/go/testdirs/errors"
)

// FromValue converts a plain Go value into Content.
//
// Strings, byte slices, integers, floats, booleans and nil map onto the
// primitive types; map[string]any and map[string]Content become nested
// trees in lexical name order; Content values pass through. Anything else
// (other slices, funcs, channels, structs) is rejected with
// CodeInvalidInput instead of being treated as a directory.
func FromValue(v any) (Content, error) {
	switch v := v.(type) {
	case nil:
		return Null{}, nil
	case *Tree:
		if v == nil {
			return nil, errors.New(errors.CodeInvalidInput, "nil tree")
		}
		return v, nil
	case Content:
		return v, nil
	case string:
		return Text(v), nil
	case []byte:
		return Bytes(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return fromUint(v)
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case map[string]Content:
		return FromMap(v), nil
	case map[string]any:
		t := New()
		for _, name := range slices.Sorted(maps.Keys(v)) {
			c, err := FromValue(v[name])
			if err != nil {
				return nil, errors.WithContext(err, "entry", name)
			}
			t.Set(name, c)
		}
		return t, nil
	default:
		return nil, errors.Newf(errors.CodeInvalidInput, "unsupported entry value of type %T", v)
	}
}

func fromUint(v uint64) (Content, error) {
	if v > math.MaxInt64 {
		return Float(v), nil
	}
	return Int(v), nil
}
