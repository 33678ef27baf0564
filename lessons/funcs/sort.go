package funcs

import (
	"cmp"
	"slices"
)

// SortedBy returns a sorted copy of items ordered by key. Equal keys keep their
// original order.
func SortedBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return SortedFunc(items, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortedFunc returns a stably sorted copy of items using compare.
func SortedFunc[T any](items []T, compare func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out
}
