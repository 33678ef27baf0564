package comprehend

import (
	"iter"
	"slices"
	"strings"

	"github.com/robbyt/go-pyprimer/lessons/containers"
)

// Set is a collection of unique values. Items come back in first-insertion order so
// output is stable.
type Set[T comparable] struct {
	m *containers.Mapping[T, struct{}]
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{m: containers.NewMapping[T, struct{}]()}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

func (s *Set[T]) Add(v T) {
	s.m.Set(v, struct{}{})
}

func (s *Set[T]) Has(v T) bool {
	return s.m.Has(v)
}

func (s *Set[T]) Len() int {
	return s.m.Len()
}

func (s *Set[T]) Items() []T {
	return s.m.Keys()
}

// All yields the members in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return slices.Values(s.m.Keys())
}

func (s *Set[T]) String() string {
	if s.Len() == 0 {
		return "set()"
	}
	parts := make([]string, 0, s.Len())
	for v := range s.All() {
		parts = append(parts, containers.Repr(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
