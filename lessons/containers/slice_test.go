package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	users := []string{"Alice", "Bob", "Charlie"}

	tests := []struct {
		name    string
		i       int
		want    string
		wantErr bool
	}{
		{name: "first", i: 0, want: "Alice"},
		{name: "last by negative index", i: -1, want: "Charlie"},
		{name: "first by negative index", i: -3, want: "Alice"},
		{name: "past the end", i: 3, wantErr: true},
		{name: "before the start", i: -4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Index(users, tt.i)
			if tt.wantErr {
				require.ErrorIs(t, err, errkind.ErrIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Index([]int{}, 0)
	require.ErrorIs(t, err, errkind.ErrIndex)
}

func TestIndex_NegativeOneIsLast(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 8; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i * 10
		}
		last, err := Index(s, -1)
		require.NoError(t, err)
		assert.Equal(t, s[len(s)-1], last)
	}
}

func TestSliceOf(t *testing.T) {
	t.Parallel()

	users := []string{"Alice", "Bob", "Charlie", "David"}

	tests := []struct {
		name       string
		start, end *int
		want       []string
	}{
		{name: "middle", start: Idx(1), end: Idx(3), want: []string{"Bob", "Charlie"}},
		{name: "head", end: Idx(2), want: []string{"Alice", "Bob"}},
		{name: "tail", start: Idx(2), want: []string{"Charlie", "David"}},
		{name: "whole", want: users},
		{name: "negative start", start: Idx(-2), want: []string{"Charlie", "David"}},
		{name: "negative end", end: Idx(-1), want: []string{"Alice", "Bob", "Charlie"}},
		{name: "end past length", start: Idx(2), end: Idx(100), want: []string{"Charlie", "David"}},
		{name: "start past length", start: Idx(10), want: []string{}},
		{name: "start after end", start: Idx(3), end: Idx(1), want: []string{}},
		{name: "far negative", start: Idx(-100), end: Idx(1), want: []string{"Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SliceOf(users, tt.start, tt.end))
		})
	}
}

// Slicing s[a:b] yields max(0, min(b, len) - max(0, a)) elements for non-negative
// bounds and never fails.
func TestSliceOf_Count(t *testing.T) {
	t.Parallel()
	s := []int{0, 1, 2, 3, 4, 5}
	n := len(s)
	for a := 0; a <= 10; a++ {
		for b := 0; b <= 10; b++ {
			want := max(0, min(b, n)-max(0, a))
			assert.Len(t, SliceOf(s, Idx(a), Idx(b)), want, "s[%d:%d]", a, b)
		}
	}
}

func TestSliceStepOf(t *testing.T) {
	t.Parallel()

	nums := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name       string
		start, end *int
		step       int
		want       []int
	}{
		{name: "every other", step: 2, want: []int{0, 2, 4, 6, 8}},
		{name: "reverse", step: -1, want: []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{name: "reverse range", start: Idx(7), end: Idx(2), step: -2, want: []int{7, 5, 3}},
		{name: "step three from one", start: Idx(1), step: 3, want: []int{1, 4, 7}},
		{name: "wrong direction", start: Idx(2), end: Idx(7), step: -1, want: []int{}},
		{name: "negative bounds reversed", start: Idx(-1), end: Idx(-4), step: -1, want: []int{9, 8, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := SliceStepOf(nums, tt.start, tt.end, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := SliceStepOf(nums, nil, nil, 0)
	require.ErrorIs(t, err, errkind.ErrValue)
}
