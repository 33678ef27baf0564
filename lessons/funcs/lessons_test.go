package funcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-pyprimer/lessons/containers"
	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

func TestGreet(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Hello, Abhishek!", Greet("Abhishek"))
	assert.Equal(t, "Hello, Abhishek!", GreetWith("Abhishek"))
	assert.Equal(t, "Namaste, Abhishek!", GreetWith("Abhishek", "Namaste"))
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	u := CreateUser("Charlie", 35)
	assert.Equal(t, UserRecord{Name: "Charlie", Age: 35, Role: "viewer"}, u)
	assert.Equal(t, "{'name': 'Charlie', 'age': 35, 'role': 'viewer'}", u.String())
	assert.Equal(t, "admin", CreateUser("David", 28, WithRole("admin")).Role)
}

func TestCreateUserFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args Args
		want UserRecord
	}{
		{
			name: "positional",
			args: Positional("Alice", 30),
			want: UserRecord{Name: "Alice", Age: 30, Role: "viewer"},
		},
		{
			name: "keyword",
			args: Args{}.With("name", "Bob").With("age", 25),
			want: UserRecord{Name: "Bob", Age: 25, Role: "viewer"},
		},
		{
			name: "keyword any order",
			args: Args{}.With("age", 35).With("name", "Charlie"),
			want: UserRecord{Name: "Charlie", Age: 35, Role: "viewer"},
		},
		{
			name: "mixed",
			args: Positional("David").With("role", "admin").With("age", 28),
			want: UserRecord{Name: "David", Age: 28, Role: "admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CreateUserFunc.Call(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := CreateUserFunc.Call(Positional(30, "Alice"))
	require.ErrorIs(t, err, errkind.ErrType)
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	lo, hi, err := MinMax([]int{5, 2, 8, 1, 9})
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)

	_, _, err = MinMax(nil)
	require.ErrorIs(t, err, errkind.ErrValue)
}

func TestVariadics(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, SumAll(1, 2, 3))
	assert.Equal(t, 100, SumAll(10, 20, 30, 40))
	assert.Equal(t, 0, SumAll())

	numbers := []int{1, 2, 3}
	assert.Equal(t, 6, SumAll(numbers...))
	assert.Equal(t, "a | b | c", JoinStrings("a", "b", "c"))
	assert.Empty(t, JoinStrings())
}

func TestStats(t *testing.T) {
	t.Parallel()

	total, avg, err := Stats([]float64{10, 20, 30, 40})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, total, 1e-9)
	assert.InDelta(t, 25.0, avg, 1e-9)

	_, _, err = Stats([]float64{})
	require.ErrorIs(t, err, errkind.ErrValue)
}

func TestProfileCardAndLogLine(t *testing.T) {
	t.Parallel()

	details := containers.NewMapping[string, any]()
	details.Set("age", 30)
	details.Set("city", "Mumbai")
	assert.Equal(t, "Alice\n  age = 30\n  city = Mumbai", ProfileCard("Alice", details))
	assert.Equal(t, "Alice", ProfileCard("Alice", nil))

	meta := containers.NewMapping[string, any]()
	meta.Set("user_id", 42)
	meta.Set("ip", "127.0.0.1")
	assert.Equal(t, []string{
		"[auth, security] User logged in",
		"  user_id: 42",
		"  ip: 127.0.0.1",
	}, LogLine("User logged in", []string{"auth", "security"}, meta))

	assert.Equal(t, []string{"[none] ping"}, LogLine("ping", nil, nil))
}

func TestSortedBy(t *testing.T) {
	t.Parallel()

	type user struct {
		Name string
		Age  int
	}
	users := []user{{"Charlie", 35}, {"Alice", 30}, {"Bob", 25}}
	name := func(u user) string { return u.Name }

	byAge := SortedBy(users, func(u user) int { return u.Age })
	assert.Equal(t, []string{"Bob", "Alice", "Charlie"}, mapNames(byAge, name))

	byName := SortedBy(users, name)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, mapNames(byName, name))
	assert.Equal(t, "Charlie", users[0].Name, "input is not reordered")

	stable := SortedFunc([]user{{"x", 1}, {"y", 0}, {"z", 1}}, func(a, b user) int { return a.Age - b.Age })
	assert.Equal(t, []string{"y", "x", "z"}, mapNames(stable, name))
}

func mapNames[T any](items []T, f func(T) string) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = f(v)
	}
	return out
}
