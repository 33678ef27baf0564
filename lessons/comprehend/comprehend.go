// Package comprehend builds new sequences, mappings and sets from existing ones by
// applying a transform and/or a predicate, preserving source order.
package comprehend

import (
	"iter"

	"github.com/robbyt/go-pyprimer/lessons/containers"
)

// Map applies f to every element: [f(x) for x in src].
func Map[T, U any](src []T, f func(T) U) []U {
	out := make([]U, 0, len(src))
	for _, v := range src {
		out = append(out, f(v))
	}
	return out
}

// Filter keeps the elements matching keep: [x for x in src if keep(x)].
func Filter[T any](src []T, keep func(T) bool) []T {
	out := make([]T, 0, len(src))
	for _, v := range src {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// MapFilter transforms the elements matching keep in a single pass:
// [f(x) for x in src if keep(x)].
func MapFilter[T, U any](src []T, keep func(T) bool, f func(T) U) []U {
	out := make([]U, 0, len(src))
	for _, v := range src {
		if keep(v) {
			out = append(out, f(v))
		}
	}
	return out
}

// ToMapping builds {key(x): value(x) for x in src}. A later element with a key that
// was already produced replaces the earlier value but keeps its position.
func ToMapping[T any, K comparable, V any](src []T, key func(T) K, value func(T) V) *containers.Mapping[K, V] {
	m := containers.NewMapping[K, V]()
	for _, v := range src {
		m.Set(key(v), value(v))
	}
	return m
}

// ToSet builds {f(x) for x in src}.
func ToSet[T any, K comparable](src []T, f func(T) K) *Set[K] {
	s := NewSet[K]()
	for _, v := range src {
		s.Add(f(v))
	}
	return s
}

// Flatten concatenates the inner slices, outer then inner:
// [x for row in rows for x in row].
func Flatten[T any](rows [][]T) []T {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	out := make([]T, 0, n)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

// FlatMap applies f to each element and concatenates the results.
func FlatMap[T, U any](src []T, f func(T) []U) []U {
	var out []U
	for _, v := range src {
		out = append(out, f(v)...)
	}
	return out
}

// GroupBy collects elements under key(x), groups and members in first-seen order.
func GroupBy[T any, K comparable](src []T, key func(T) K) *containers.Mapping[K, []T] {
	m := containers.NewMapping[K, []T]()
	for _, v := range src {
		k := key(v)
		m.Set(k, append(m.GetOr(k, nil), v))
	}
	return m
}

// MapSeq is the lazy form of Map.
func MapSeq[T, U any](src iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range src {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// FilterSeq is the lazy form of Filter.
func FilterSeq[T any](src iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}
