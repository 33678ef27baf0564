package fileio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Dumps encodes v as JSON. An indent above zero pretty prints with that many spaces
// per level. HTML characters are not escaped. Whole floats keep a ".0" so Loads
// reads them back as floats.
func Dumps(v any, indent int) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(markFloats(v)); err != nil {
		return "", fmt.Errorf("%w: %w", errkind.ErrType, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Loads decodes JSON text into maps, slices, strings, bools, nil and numbers.
// Integers decode to int64, or to uint64 or *big.Int when int64 cannot hold them.
// Numbers with a fraction or exponent decode to float64.
func Loads(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", errkind.ErrValue, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: extra data after JSON value", errkind.ErrValue)
	}
	return normalizeNumbers(v), nil
}

func normalizeNumbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		i, err := v.Int64()
		if err == nil {
			return i
		}
		if errors.Is(err, strconv.ErrRange) {
			if u, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
				return u
			}
			if b, ok := new(big.Int).SetString(v.String(), 10); ok {
				return b
			}
		}
		f, _ := v.Float64()
		return f
	case map[string]any:
		for k, e := range v {
			v[k] = normalizeNumbers(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = normalizeNumbers(e)
		}
		return v
	default:
		return v
	}
}

// markFloats copies v with every whole, finite float replaced by a json.Number that
// ends in ".0". encoding/json would otherwise write 2.0 as 2.
func markFloats(v any) any {
	switch v := v.(type) {
	case nil, string, bool, json.Number, json.Marshaler:
		return v
	case float64:
		return wholeFloat(v, 64)
	case float32:
		return wholeFloat(float64(v), 32)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = markFloats(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = markFloats(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return wholeFloat(rv.Float(), rv.Type().Bits())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && (rv.IsNil() || rv.Type().Elem().Kind() == reflect.Uint8) {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = markFloats(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			out[it.Key().String()] = markFloats(it.Value().Interface())
		}
		return out
	default:
		return v
	}
}

// wholeFloat matches encoding/json's formatting, which switches to exponent form
// at 1e21.
func wholeFloat(f float64, bits int) any {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) >= 1e21 {
		if bits == 32 {
			return float32(f)
		}
		return f
	}
	return json.Number(strconv.FormatFloat(f, 'f', -1, bits) + ".0")
}

// Dump writes v to path as JSON.
func Dump(path string, v any, indent int) error {
	s, err := Dumps(v, indent)
	if err != nil {
		return err
	}
	return WriteText(path, s+"\n")
}

// Load decodes the JSON in path into v.
func Load(path string, v any) error {
	return WithFile(path, modeRead, 0, func(f *os.File) error {
		if err := json.NewDecoder(f).Decode(v); err != nil {
			return fmt.Errorf("%w: %s: %w", errkind.ErrValue, path, err)
		}
		return nil
	})
}

// LoadValue decodes the JSON in path the way Loads does.
func LoadValue(path string) (any, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	v, err := Loads(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
