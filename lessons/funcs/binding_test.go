package funcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-pyprimer/lessons/containers"
	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

func TestBind_NamedMatchesPositional(t *testing.T) {
	t.Parallel()

	byName, err := AddFunc.Call(Args{}.With("c", 30).With("a", 10).With("b", 20))
	require.NoError(t, err)
	byPos, err := AddFunc.Call(Positional(10, 20, 30))
	require.NoError(t, err)
	assert.Equal(t, byPos, byName)
	assert.Equal(t, 60, byName)

	b, err := AddFunc.Bind(Args{}.With("c", 30).With("a", 10).With("b", 20))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, b.Params().Keys())
	assert.Equal(t, []any{10, 20, 30}, b.Params().Values())
}

func TestBind_Variadic(t *testing.T) {
	t.Parallel()

	b, err := FlexibleFunc.Bind(Positional("x", 1, 2).With("debug", true))
	require.NoError(t, err)
	assert.Equal(t, "x", b.Get("required_arg"))
	assert.Equal(t, []any{1, 2}, b.Rest())
	assert.Equal(t, "{'debug': True}", b.Extra().String())

	out, err := FlexibleFunc.Call(Positional("hello", 1, 2, 3).With("debug", true).With("verbose", false))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Required: hello",
		"Extra positional: (1, 2, 3)",
		"Extra keyword: {'debug': True, 'verbose': False}",
	}, out)

	out, err = FlexibleFunc.Call(Positional("only"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Required: only", "Extra positional: ()", "Extra keyword: {}"}, out)
}

func TestBind_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fn      Func
		args    Args
		wantMsg string
	}{
		{
			name:    "missing required",
			fn:      AddFunc,
			args:    Positional(1, 2),
			wantMsg: "add() missing 1 required argument(s): ['c']",
		},
		{
			name:    "too many positional",
			fn:      AddFunc,
			args:    Positional(1, 2, 3, 4),
			wantMsg: "add() takes 3 positional arguments but 4 were given",
		},
		{
			name:    "unexpected keyword",
			fn:      AddFunc,
			args:    Positional(1, 2, 3).With("d", 4),
			wantMsg: "add() got an unexpected keyword argument 'd'",
		},
		{
			name:    "bound twice",
			fn:      AddFunc,
			args:    Positional(1, 2, 3).With("a", 4),
			wantMsg: "add() got multiple values for argument 'a'",
		},
		{
			name:    "missing before catch-alls",
			fn:      FlexibleFunc,
			args:    Args{}.With("debug", true),
			wantMsg: "missing 1 required argument(s): ['required_arg']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.fn.Call(tt.args)
			require.ErrorIs(t, err, errkind.ErrInvalidArguments)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBind_Defaults(t *testing.T) {
	t.Parallel()

	sig := Signature{Name: "greet_with", Params: []Param{Required("name"), Optional("greeting", "Hello")}}

	b, err := sig.Bind(Positional("Abhishek"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", b.Get("greeting"))

	b, err = sig.Bind(Positional("Abhishek", "Namaste"))
	require.NoError(t, err)
	assert.Equal(t, "Namaste", b.Get("greeting"))

	_, ok := b.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, b.Get("missing"))
}

func TestSpread(t *testing.T) {
	t.Parallel()

	got, err := AddFunc.Call(Spread([]int{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	config := containers.NewMapping[string, int]()
	config.Set("a", 10)
	config.Set("b", 20)
	config.Set("c", 30)
	got, err = AddFunc.Call(SpreadNamed(config))
	require.NoError(t, err)
	assert.Equal(t, 60, got)

	partial := containers.NewMapping[string, int]()
	partial.Set("c", 3)
	args, err := Spread([]int{1, 2}).And(SpreadNamed(partial))
	require.NoError(t, err)
	got, err = AddFunc.Call(args)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	_, err = SpreadNamed(partial).And(SpreadNamed(partial))
	require.ErrorIs(t, err, errkind.ErrInvalidArguments)
}

func TestArgs_WithDoesNotMutate(t *testing.T) {
	t.Parallel()
	base := Positional(1).With("a", 1)
	_ = base.With("b", 2)
	assert.Equal(t, 1, base.Named.Len())
}
