package scripts

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-pyprimer/lessons/comprehend"
	"github.com/robbyt/go-pyprimer/lessons/containers"
	"github.com/robbyt/go-pyprimer/lessons/fileio"
	"github.com/robbyt/go-pyprimer/lessons/funcs"
)

func toAny[T any](s []T) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// The Go slicing rules must agree with the interpreter on every slice the lesson
// takes.
func TestCrossCheck_Slicing(t *testing.T) {
	t.Parallel()

	res := result(t, run(t, "containers"))
	users := []string{"Alice", "Bob", "Charlie", "David"}

	slices, ok := res["slices"].(map[string]any)
	require.True(t, ok)

	goSlices := map[string][]string{
		"1:3":   containers.SliceOf(users, containers.Idx(1), containers.Idx(3)),
		":2":    containers.SliceOf(users, nil, containers.Idx(2)),
		"2:":    containers.SliceOf(users, containers.Idx(2), nil),
		"-2:":   containers.SliceOf(users, containers.Idx(-2), nil),
		"1:100": containers.SliceOf(users, containers.Idx(1), containers.Idx(100)),
		"10:":   containers.SliceOf(users, containers.Idx(10), nil),
	}
	rev, err := containers.SliceStepOf(users, nil, nil, -1)
	require.NoError(t, err)
	goSlices["::-1"] = rev

	require.Len(t, slices, len(goSlices))
	for key, want := range goSlices {
		assert.Equal(t, toAny(want), slices[key], "users[%s]", key)
	}
}

func TestCrossCheck_Comprehensions(t *testing.T) {
	t.Parallel()

	res := result(t, run(t, "comprehensions"))

	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	byInitial := comprehend.ToMapping(words,
		func(w string) string { return w[:1] },
		func(w string) string { return w })
	want := make(map[string]any, byInitial.Len())
	for k, v := range byInitial.All() {
		want[k] = v
	}
	assert.Equal(t, want, res["by_initial"])

	ages := comprehend.ToSet([]int64{25, 30, 25, 35, 30, 40}, func(n int64) int64 { return n })
	assert.Equal(t, toAny(ages.Items()), res["unique_ages"])

	flat := comprehend.Flatten([][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	assert.Equal(t, toAny(flat), res["flat"])
}

func TestCrossCheck_Binding(t *testing.T) {
	t.Parallel()

	res := result(t, run(t, "functions"))

	b, err := funcs.FlexibleFunc.Bind(funcs.Positional("x", int64(1), int64(2)).With("debug", true))
	require.NoError(t, err)

	flexible, ok := res["flexible"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, flexible["required"], b.Get("required_arg"))
	assert.Equal(t, flexible["args"], b.Rest())
	kwargs := map[string]any{}
	for k, v := range b.Extra().All() {
		kwargs[k] = v
	}
	assert.Equal(t, flexible["kwargs"], kwargs)

	users, ok := res["users"].([]any)
	require.True(t, ok)
	calls := []funcs.Args{
		funcs.Positional("Alice", 30),
		funcs.Args{}.With("name", "Bob").With("age", 25),
		funcs.Args{}.With("age", 35).With("name", "Charlie"),
		funcs.Positional("David").With("role", "admin").With("age", 28),
	}
	for i, args := range calls {
		got, err := funcs.CreateUserFunc.Call(args)
		require.NoError(t, err)
		u := got.(funcs.UserRecord)
		assert.Equal(t, map[string]any{
			"name": u.Name,
			"age":  int64(u.Age),
			"role": u.Role,
		}, users[i], "call %d", i)
	}

	config := containers.MappingOf(
		containers.NewPair("a", 10),
		containers.NewPair("b", 20),
		containers.NewPair("c", 30),
	)
	spreads := []funcs.Args{
		funcs.Spread([]int{1, 2, 3}),
		funcs.SpreadNamed(config),
		funcs.Args{}.With("c", 30).With("a", 10).With("b", 20),
		funcs.Positional(10, 20, 30),
	}
	spread := make([]any, len(spreads))
	for i, args := range spreads {
		got, err := funcs.AddFunc.Call(args)
		require.NoError(t, err)
		spread[i] = int64(got.(int))
	}
	assert.Equal(t, res["spread"], spread)

	assert.Equal(t, res["greet"], funcs.Greet("Abhishek"))
	assert.Equal(t, toAny([]string{funcs.GreetWith("Abhishek"), funcs.GreetWith("Abhishek", "Namaste")}), res["greet_with"])
	lo, hi, err := funcs.MinMax([]int{5, 2, 8, 1, 9})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(lo), int64(hi)}, res["min_max"])
	assert.Equal(t, []any{int64(funcs.SumAll(1, 2, 3)), int64(funcs.SumAll(10, 20, 30, 40))}, res["sums"])
}

func TestCrossCheck_JSON(t *testing.T) {
	t.Parallel()

	res := result(t, run(t, "json"))

	encoded, ok := res["encoded"].(string)
	require.True(t, ok)

	decoded, err := fileio.Loads(encoded)
	require.NoError(t, err)
	assert.Equal(t, res["decoded"], decoded, "Go decodes the interpreter's JSON to the same values")

	again, err := fileio.Dumps(decoded, 2)
	require.NoError(t, err)
	back, err := fileio.Loads(again)
	require.NoError(t, err)
	assert.Equal(t, decoded, back, fmt.Sprintf("round trip of %s", again))
}
