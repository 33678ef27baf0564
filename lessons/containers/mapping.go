package containers

import (
	"iter"
	"slices"
	"strings"
)

// Mapping is a unique-keyed collection that iterates in insertion order. Setting an
// existing key replaces its value and keeps its position.
type Mapping[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewMapping returns an empty mapping.
func NewMapping[K comparable, V any]() *Mapping[K, V] {
	return &Mapping[K, V]{values: make(map[K]V)}
}

// MappingOf builds a mapping from pairs in order.
func MappingOf[K comparable, V any](pairs ...Pair[K, V]) *Mapping[K, V] {
	m := NewMapping[K, V]()
	for _, p := range pairs {
		m.Set(p.First, p.Second)
	}
	return m
}

func (m *Mapping[K, V]) Set(k K, v V) {
	if m.values == nil {
		m.values = make(map[K]V)
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value for k or an errkind.ErrKey error.
func (m *Mapping[K, V]) Get(k K) (V, error) {
	v, ok := m.values[k]
	if !ok {
		var zero V
		return zero, keyError(k)
	}
	return v, nil
}

// GetOr returns the value for k, or def when k is absent. It never modifies m.
func (m *Mapping[K, V]) GetOr(k K, def V) V {
	if v, ok := m.values[k]; ok {
		return v
	}
	return def
}

func (m *Mapping[K, V]) Has(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Delete removes k and reports whether it was present.
func (m *Mapping[K, V]) Delete(k K) bool {
	if _, ok := m.values[k]; !ok {
		return false
	}
	delete(m.values, k)
	m.keys = slices.DeleteFunc(m.keys, func(x K) bool { return x == k })
	return true
}

func (m *Mapping[K, V]) Len() int {
	return len(m.keys)
}

func (m *Mapping[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

func (m *Mapping[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// All yields key and value pairs in insertion order.
func (m *Mapping[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Mapping[K, V]) Clone() *Mapping[K, V] {
	return m.Merge()
}

// Merge returns a new mapping with the entries of m followed by each of others.
// Later values win, keys keep the position of their first insertion.
func (m *Mapping[K, V]) Merge(others ...*Mapping[K, V]) *Mapping[K, V] {
	out := NewMapping[K, V]()
	for _, src := range append([]*Mapping[K, V]{m}, others...) {
		if src == nil {
			continue
		}
		for k, v := range src.All() {
			out.Set(k, v)
		}
	}
	return out
}

func (m *Mapping[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		writeRepr(&b, k)
		b.WriteString(": ")
		writeRepr(&b, m.values[k])
	}
	b.WriteByte('}')
	return b.String()
}
