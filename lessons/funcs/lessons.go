// Package funcs covers defining and calling functions: defaults, named arguments,
// variadic catch-alls, multiple return values and anonymous key functions. Go binds
// arguments at compile time, so Signature and Bind model the dynamic binding rules
// for callers that build argument lists at runtime.
package funcs

import (
	"fmt"
	"strings"

	"github.com/robbyt/go-pyprimer/lessons/containers"
	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// GreetWith greets name with the first greeting given, "Hello" by default.
func GreetWith(name string, greeting ...string) string {
	g := "Hello"
	if len(greeting) > 0 {
		g = greeting[0]
	}
	return fmt.Sprintf("%s, %s!", g, name)
}

// UserRecord is what CreateUser returns.
type UserRecord struct {
	Name string
	Age  int
	Role string
}

func (u UserRecord) String() string {
	return fmt.Sprintf("{'name': %s, 'age': %d, 'role': %s}",
		containers.Repr(u.Name), u.Age, containers.Repr(u.Role))
}

// UserOption customizes a UserRecord.
type UserOption func(*UserRecord)

func WithRole(role string) UserOption {
	return func(u *UserRecord) {
		u.Role = role
	}
}

// CreateUser builds a user with the "viewer" role unless an option says otherwise.
func CreateUser(name string, age int, opts ...UserOption) UserRecord {
	u := UserRecord{Name: name, Age: age, Role: "viewer"}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

// CreateUserFunc is CreateUser behind a runtime signature, so it can be called with
// positional, named or mixed arguments.
var CreateUserFunc = Func{
	Signature: Signature{
		Name:   "create_user",
		Params: []Param{Required("name"), Required("age"), Optional("role", "viewer")},
	},
	Body: func(b *Bound) (any, error) {
		name, ok := b.Get("name").(string)
		if !ok {
			return nil, fmt.Errorf("%w: name must be a string", errkind.ErrType)
		}
		age, ok := b.Get("age").(int)
		if !ok {
			return nil, fmt.Errorf("%w: age must be an int", errkind.ErrType)
		}
		role, ok := b.Get("role").(string)
		if !ok {
			return nil, fmt.Errorf("%w: role must be a string", errkind.ErrType)
		}
		return CreateUser(name, age, WithRole(role)), nil
	},
}

// MinMax returns the smallest and largest of nums.
func MinMax(nums []int) (int, int, error) {
	if len(nums) == 0 {
		return 0, 0, fmt.Errorf("%w: MinMax of an empty sequence", errkind.ErrValue)
	}
	lo, hi := nums[0], nums[0]
	for _, n := range nums[1:] {
		lo = min(lo, n)
		hi = max(hi, n)
	}
	return lo, hi, nil
}

func SumAll(nums ...int) int {
	total := 0
	for _, n := range nums {
		total += n
	}
	return total
}

func Add3(a, b, c int) int {
	return a + b + c
}

// AddFunc is Add3 behind a runtime signature (a, b, c).
var AddFunc = Func{
	Signature: Signature{
		Name:   "add",
		Params: []Param{Required("a"), Required("b"), Required("c")},
	},
	Body: func(b *Bound) (any, error) {
		total := 0
		for name, v := range b.Params().All() {
			n, ok := v.(int)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be an int, got %T", errkind.ErrType, name, v)
			}
			total += n
		}
		return total, nil
	},
}

// FlexibleFunc takes one required argument plus catch-alls, (required_arg, *args,
// **kwargs), and returns what it received.
var FlexibleFunc = Func{
	Signature: Signature{
		Name:      "flexible_function",
		Params:    []Param{Required("required_arg")},
		VarArgs:   "args",
		VarKwargs: "kwargs",
	},
	Body: func(b *Bound) (any, error) {
		return []string{
			"Required: " + fmt.Sprint(b.Get("required_arg")),
			"Extra positional: " + tupleRepr(b.Rest()),
			"Extra keyword: " + b.Extra().String(),
		}, nil
	},
}

func tupleRepr(vals []any) string {
	switch len(vals) {
	case 0:
		return "()"
	case 1:
		return "(" + containers.Repr(vals[0]) + ",)"
	}
	s := containers.Repr(vals)
	return "(" + s[1:len(s)-1] + ")"
}

// JoinStrings joins any number of parts with " | ".
func JoinStrings(parts ...string) string {
	return strings.Join(parts, " | ")
}

// Stats returns the total and average of nums.
func Stats(nums []float64) (total, avg float64, err error) {
	if len(nums) == 0 {
		return 0, 0, fmt.Errorf("%w: Stats of an empty sequence", errkind.ErrValue)
	}
	for _, n := range nums {
		total += n
	}
	return total, total / float64(len(nums)), nil
}

// ProfileCard renders name followed by "key = value" lines for each detail.
func ProfileCard(name string, details *containers.Mapping[string, any]) string {
	var b strings.Builder
	b.WriteString(name)
	if details != nil {
		for k, v := range details.All() {
			fmt.Fprintf(&b, "\n  %s = %v", k, v)
		}
	}
	return b.String()
}

// LogLine formats a message with its tags, followed by one line per metadata entry.
func LogLine(message string, tags []string, meta *containers.Mapping[string, any]) []string {
	tagStr := "none"
	if len(tags) > 0 {
		tagStr = strings.Join(tags, ", ")
	}
	lines := []string{fmt.Sprintf("[%s] %s", tagStr, message)}
	if meta != nil {
		for k, v := range meta.All() {
			lines = append(lines, fmt.Sprintf("  %s: %v", k, v))
		}
	}
	return lines
}
