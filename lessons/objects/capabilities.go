// Package objects covers user defined types: constructors, shared state, embedding
// in place of inheritance, unexported fields, validated accessors and opt-in
// capabilities (length, iteration, indexing, string form).
package objects

import (
	"fmt"
	"iter"
	"strings"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Lengther is implemented by types that report a length.
type Lengther interface {
	Len() int
}

// Iterable is implemented by types that can be ranged over. Each call to All starts
// a fresh pass in insertion order.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Indexable is implemented by types with indexed element access.
type Indexable[T any] interface {
	At(i int) (T, error)
}

// Len returns the length of v, or errkind.ErrUnsupported if v has none.
func Len(v any) (int, error) {
	l, ok := v.(Lengther)
	if !ok {
		return 0, unsupported(v, "len()")
	}
	return l.Len(), nil
}

// Index returns element i of v, or errkind.ErrUnsupported if v is not indexable.
func Index[T any](v any, i int) (T, error) {
	x, ok := v.(Indexable[T])
	if !ok {
		var zero T
		return zero, unsupported(v, "indexing")
	}
	return x.At(i)
}

// Iterate returns the elements of v, or errkind.ErrUnsupported if v is not iterable.
func Iterate[T any](v any) (iter.Seq[T], error) {
	x, ok := v.(Iterable[T])
	if !ok {
		return nil, unsupported(v, "iteration")
	}
	return x.All(), nil
}

// Display renders v for printing, using String when v provides it.
func Display(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("<%s object>", typeName(v))
}

func typeName(v any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}

func unsupported(v any, op string) error {
	return fmt.Errorf("%w: %s does not support %s", errkind.ErrUnsupported, typeName(v), op)
}
