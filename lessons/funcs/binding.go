package funcs

import (
	"slices"

	"github.com/robbyt/go-pyprimer/lessons/containers"
)

// Param is one declared parameter. A parameter without a default is required.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Required declares a parameter that callers must bind.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a parameter with a default value.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Signature describes how a call's arguments bind to parameters. VarArgs and
// VarKwargs name the catch-all parameters for excess positional and named arguments;
// an empty name means the function has none.
type Signature struct {
	Name      string
	Params    []Param
	VarArgs   string
	VarKwargs string
}

// Args are the arguments of one call. Positional arguments always come before named
// ones.
type Args struct {
	Positional []any
	Named      *containers.Mapping[string, any]
}

// Positional returns arguments bound by position.
func Positional(vals ...any) Args {
	return Args{Positional: vals}
}

// Spread expands a sequence into positional arguments, like f(*seq).
func Spread[T any](seq []T) Args {
	vals := make([]any, len(seq))
	for i, v := range seq {
		vals[i] = v
	}
	return Args{Positional: vals}
}

// SpreadNamed expands a mapping into named arguments, like f(**m).
func SpreadNamed[V any](m *containers.Mapping[string, V]) Args {
	named := containers.NewMapping[string, any]()
	if m != nil {
		for k, v := range m.All() {
			named.Set(k, v)
		}
	}
	return Args{Named: named}
}

// With returns a copy of a with an extra named argument.
func (a Args) With(name string, v any) Args {
	named := containers.NewMapping[string, any]()
	if a.Named != nil {
		named = a.Named.Clone()
	}
	named.Set(name, v)
	return Args{Positional: slices.Clone(a.Positional), Named: named}
}

// And combines two argument lists, like f(*a, *b, **a, **b). Naming the same
// argument twice is an error.
func (a Args) And(b Args) (Args, error) {
	out := Args{
		Positional: slices.Concat(a.Positional, b.Positional),
		Named:      containers.NewMapping[string, any](),
	}
	for _, src := range []*containers.Mapping[string, any]{a.Named, b.Named} {
		if src == nil {
			continue
		}
		for k, v := range src.All() {
			if out.Named.Has(k) {
				return Args{}, argError("", "got multiple values for keyword argument '%s'", k)
			}
			out.Named.Set(k, v)
		}
	}
	return out, nil
}

// Bound holds the result of binding arguments to a signature.
type Bound struct {
	values *containers.Mapping[string, any]
	rest   []any
	extra  *containers.Mapping[string, any]
}

// Get returns the value bound to a declared parameter, or nil.
func (b *Bound) Get(name string) any {
	return b.values.GetOr(name, nil)
}

// Lookup is Get with a presence flag.
func (b *Bound) Lookup(name string) (any, bool) {
	if !b.values.Has(name) {
		return nil, false
	}
	return b.values.GetOr(name, nil), true
}

// Params returns the declared parameters and their bound values in declaration order.
func (b *Bound) Params() *containers.Mapping[string, any] {
	return b.values.Clone()
}

// Rest returns the excess positional arguments collected by the VarArgs parameter.
func (b *Bound) Rest() []any {
	return slices.Clone(b.rest)
}

// Extra returns the excess named arguments collected by the VarKwargs parameter.
func (b *Bound) Extra() *containers.Mapping[string, any] {
	return b.extra.Clone()
}

// Bind matches args to the signature. Positional arguments fill parameters in order,
// then named arguments fill the rest, then defaults. Every failure wraps
// errkind.ErrInvalidArguments.
func (s Signature) Bind(args Args) (*Bound, error) {
	b := &Bound{
		values: containers.NewMapping[string, any](),
		extra:  containers.NewMapping[string, any](),
	}
	bound := make(map[string]any, len(s.Params))

	for i, v := range args.Positional {
		if i < len(s.Params) {
			bound[s.Params[i].Name] = v
			continue
		}
		if s.VarArgs == "" {
			return nil, argError(s.Name, "takes %d positional arguments but %d were given",
				len(s.Params), len(args.Positional))
		}
		b.rest = append(b.rest, v)
	}

	if args.Named != nil {
		for name, v := range args.Named.All() {
			if !s.declares(name) {
				if s.VarKwargs == "" {
					return nil, argError(s.Name, "got an unexpected keyword argument '%s'", name)
				}
				b.extra.Set(name, v)
				continue
			}
			if _, dup := bound[name]; dup {
				return nil, argError(s.Name, "got multiple values for argument '%s'", name)
			}
			bound[name] = v
		}
	}

	var missing []string
	for _, p := range s.Params {
		v, ok := bound[p.Name]
		switch {
		case ok:
		case p.HasDefault:
			v = p.Default
		default:
			missing = append(missing, p.Name)
			continue
		}
		b.values.Set(p.Name, v)
	}
	if len(missing) > 0 {
		return nil, argError(s.Name, "missing %d required argument(s): %s",
			len(missing), containers.Repr(missing))
	}

	return b, nil
}

func (s Signature) declares(name string) bool {
	return slices.ContainsFunc(s.Params, func(p Param) bool { return p.Name == name })
}

// Func is a callable with a signature.
type Func struct {
	Signature
	Body func(*Bound) (any, error)
}

// Call binds args and runs the body.
func (f Func) Call(args Args) (any, error) {
	b, err := f.Bind(args)
	if err != nil {
		return nil, err
	}
	return f.Body(b)
}
