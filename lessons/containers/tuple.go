package containers

import "fmt"

// Pair is an immutable two element tuple. It is comparable when A and B are, so it
// can be used as a map key.
type Pair[A, B any] struct {
	First  A
	Second B
}

func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%s, %s)", Repr(p.First), Repr(p.Second))
}

// Triple is an immutable three element tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func NewTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("(%s, %s, %s)", Repr(t.First), Repr(t.Second), Repr(t.Third))
}
