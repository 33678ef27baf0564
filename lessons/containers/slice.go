package containers

import (
	"fmt"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Idx returns a pointer to n, for use as a slice bound.
func Idx(n int) *int {
	return &n
}

// Index returns s[i]. A negative i counts from the end, so -1 is the last element.
func Index[T any](s []T, i int) (T, error) {
	n := len(s)
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		var zero T
		return zero, indexError(i, n)
	}
	return s[j], nil
}

// SliceOf returns a copy of the half-open range [start, end) of s. Nil bounds mean
// "from the beginning" and "to the end"; negative bounds count from the end and
// out-of-range bounds are clamped, so it never fails.
func SliceOf[T any](s []T, start, end *int) []T {
	out, _ := SliceStepOf(s, start, end, 1)
	return out
}

// SliceStepOf is SliceOf with a step. A negative step walks backwards; a zero step
// returns errkind.ErrValue.
func SliceStepOf[T any](s []T, start, end *int, step int) ([]T, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: slice step cannot be zero", errkind.ErrValue)
	}

	from, to := sliceIndices(len(s), start, end, step)
	out := make([]T, 0, sliceLen(from, to, step))
	if step > 0 {
		for i := from; i < to; i += step {
			out = append(out, s[i])
		}
	} else {
		for i := from; i > to; i += step {
			out = append(out, s[i])
		}
	}
	return out, nil
}

func sliceIndices(n int, start, end *int, step int) (int, int) {
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(p *int, def int) int {
		if p == nil {
			return def
		}
		v := *p
		if v < 0 {
			v += n
		}
		return min(max(v, lower), upper)
	}

	if step < 0 {
		return clamp(start, upper), clamp(end, lower)
	}
	return clamp(start, lower), clamp(end, upper)
}

func sliceLen(from, to, step int) int {
	switch {
	case step > 0 && from < to:
		return (to - from + step - 1) / step
	case step < 0 && from > to:
		return (from - to - step - 1) / -step
	default:
		return 0
	}
}
