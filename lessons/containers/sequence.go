// Package containers covers ordered sequences, insertion-ordered mappings and
// immutable tuples: indexing, negative indexing, slicing, iteration and merging.
package containers

import (
	"iter"
	"slices"
	"strings"
)

// Sequence is an ordered, mutable, index-addressable collection.
type Sequence[T any] struct {
	items []T
}

// NewSequence returns a sequence holding a copy of items.
func NewSequence[T any](items ...T) *Sequence[T] {
	return &Sequence[T]{items: slices.Clone(items)}
}

// Append adds values to the end of the sequence in place.
func (s *Sequence[T]) Append(v ...T) {
	s.items = append(s.items, v...)
}

func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// At returns the element at i, counting from the end when i is negative.
func (s *Sequence[T]) At(i int) (T, error) {
	return Index(s.items, i)
}

// Slice returns a new sequence with the elements in [start, end).
func (s *Sequence[T]) Slice(start, end *int) *Sequence[T] {
	return &Sequence[T]{items: SliceOf(s.items, start, end)}
}

// SliceStep returns a new sequence with every step-th element in [start, end).
func (s *Sequence[T]) SliceStep(start, end *int, step int) (*Sequence[T], error) {
	items, err := SliceStepOf(s.items, start, end, step)
	if err != nil {
		return nil, err
	}
	return &Sequence[T]{items: items}, nil
}

// All yields index and value pairs. It can be ranged over more than once.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (s *Sequence[T]) Values() []T {
	return slices.Clone(s.items)
}

// Concat returns a new sequence with the elements of s followed by those of other.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	return &Sequence[T]{items: slices.Concat(s.items, other.items)}
}

func (s *Sequence[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRepr(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

// Contains reports whether v is in s.
func Contains[T comparable](s *Sequence[T], v T) bool {
	return slices.Contains(s.items, v)
}
