package starlark

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	starlarkLib "go.starlark.net/starlark"

	"github.com/robbyt/go-pyprimer/execution/constants"
)

// convertStarlarkValueToInterface converts a Starlark value to a Go value.
// Lists and tuples become []any, dicts become map[string]any with non-string keys
// rendered through their String form, sets become []any in insertion order.
func convertStarlarkValueToInterface(v starlarkLib.Value) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch v := v.(type) {
	case starlarkLib.NoneType:
		return nil, nil
	case starlarkLib.Bool:
		return bool(v), nil
	case starlarkLib.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		return new(big.Int).Set(v.BigInt()), nil
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.String:
		return string(v), nil
	case *starlarkLib.List:
		return convertIterable(v, v.Len())
	case starlarkLib.Tuple:
		return convertIterable(v, v.Len())
	case *starlarkLib.Set:
		return convertIterable(v, v.Len())
	case *starlarkLib.Dict:
		dict := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			k, val := item[0], item[1]

			key, ok := k.(starlarkLib.String)
			if !ok {
				key = starlarkLib.String(k.String())
			}

			vv, err := convertStarlarkValueToInterface(val)
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value for key %s: %w", key, err)
			}
			dict[string(key)] = vv
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("%w: starlark %s", ErrUnsupportedType, v.Type())
	}
}

func convertIterable(v starlarkLib.Iterable, n int) ([]any, error) {
	out := make([]any, 0, n)
	iter := v.Iterate()
	defer iter.Done()

	var elem starlarkLib.Value
	for iter.Next(&elem) {
		g, err := convertStarlarkValueToInterface(elem)
		if err != nil {
			return nil, fmt.Errorf("failed to convert element %d: %w", len(out), err)
		}
		out = append(out, g)
	}
	return out, nil
}

// convertInputData wraps the provider data into the ctx global.
// Keys are inserted in sorted order so scripts iterating ctx see a stable order.
func convertInputData(inputData map[string]any) (starlarkLib.StringDict, error) {
	ctxDict := starlarkLib.NewDict(len(inputData))

	keys := make([]string, 0, len(inputData))
	for k := range inputData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errz []error
	for _, k := range keys {
		val, err := convertToStarlarkValue(inputData[k])
		if err != nil {
			errz = append(errz, fmt.Errorf("failed to convert input value for key %q: %w", k, err))
			continue
		}
		if err := ctxDict.SetKey(starlarkLib.String(k), val); err != nil {
			errz = append(errz, fmt.Errorf("failed to set ctx dict key %q: %w", k, err))
		}
	}

	if len(errz) > 0 {
		return nil, fmt.Errorf("failed to convert input data: %w", errors.Join(errz...))
	}

	return starlarkLib.StringDict{constants.Ctx: ctxDict}, nil
}

func convertToStarlarkValue(v any) (starlarkLib.Value, error) {
	if v == nil {
		return starlarkLib.None, nil
	}

	switch val := v.(type) {
	case starlarkLib.Value:
		return val, nil
	case bool:
		return starlarkLib.Bool(val), nil
	case int:
		return starlarkLib.MakeInt(val), nil
	case int64:
		return starlarkLib.MakeInt64(val), nil
	case float64:
		return starlarkLib.Float(val), nil
	case string:
		return starlarkLib.String(val), nil
	case []string:
		elems := make([]starlarkLib.Value, len(val))
		for i, s := range val {
			elems[i] = starlarkLib.String(s)
		}
		return starlarkLib.NewList(elems), nil
	case []int:
		elems := make([]starlarkLib.Value, len(val))
		for i, n := range val {
			elems[i] = starlarkLib.MakeInt(n)
		}
		return starlarkLib.NewList(elems), nil
	case []any:
		elems := make([]starlarkLib.Value, len(val))
		for i, elem := range val {
			sv, err := convertToStarlarkValue(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element %d: %w", i, err)
			}
			elems[i] = sv
		}
		return starlarkLib.NewList(elems), nil
	case []map[string]any:
		elems := make([]starlarkLib.Value, len(val))
		for i, elem := range val {
			sv, err := convertToStarlarkValue(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element %d: %w", i, err)
			}
			elems[i] = sv
		}
		return starlarkLib.NewList(elems), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		dict := starlarkLib.NewDict(len(val))
		for _, k := range keys {
			sv, err := convertToStarlarkValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value for key %q: %w", k, err)
			}
			if err := dict.SetKey(starlarkLib.String(k), sv); err != nil {
				return nil, fmt.Errorf("failed to set dict key %q: %w", k, err)
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
