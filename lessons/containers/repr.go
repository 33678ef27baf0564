package containers

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Repr renders v the way the lessons print values: strings in single quotes, nil as
// None, booleans as True/False, slices as lists and maps as dicts.
func Repr(v any) string {
	var b strings.Builder
	writeRepr(&b, v)
	return b.String()
}

func writeRepr(b *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		b.WriteString("None")
	case string:
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(v, "'", `\'`))
		b.WriteByte('\'')
	case bool:
		if v {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case float64:
		b.WriteString(formatFloat(v))
	case float32:
		b.WriteString(formatFloat(float64(v)))
	case fmt.Stringer:
		b.WriteString(v.String())
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			b.WriteByte('[')
			for i := range rv.Len() {
				if i > 0 {
					b.WriteString(", ")
				}
				writeRepr(b, rv.Index(i).Interface())
			}
			b.WriteByte(']')
		case reflect.Map:
			type entry struct {
				key string
				val any
			}
			entries := make([]entry, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				entries = append(entries, entry{Repr(iter.Key().Interface()), iter.Value().Interface()})
			}
			// Go maps are unordered, sort by rendered key for stable output.
			slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
			b.WriteByte('{')
			for i, e := range entries {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(e.key)
				b.WriteString(": ")
				writeRepr(b, e.val)
			}
			b.WriteByte('}')
		default:
			fmt.Fprint(b, v)
		}
	}
}

// formatFloat keeps a trailing ".0" on integral values, as Python prints them.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
