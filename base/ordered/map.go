// Package ordered provides ordered data structure.
package ordered

import "slices"

// Map is an ordered map. Iter iterates over the map
// using the same order in which the keys have been added.
type Map[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

// NewMap returns a new ordered map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// FromSlices returns a new map storing vals[i] under keys[i], in order.
// A key present more than once keeps its first position and its last value.
func FromSlices[K comparable, V any](keys []K, vals []V) *Map[K, V] {
	m := NewMap[K, V]()
	for i, k := range keys {
		m.Store(k, vals[i])
	}
	return m
}

// Store a key,value pair.
func (m *Map[K, V]) Store(k K, v V) {
	_, in := m.m[k]
	if !in {
		m.keys = append(m.keys, k)
	}
	m.m[k] = v
}

// Load returns a value given a key.
func (m *Map[K, V]) Load(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Iter returns an iterator to range over the elements of the map.
func (m *Map[K, V]) Iter() func(func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				break
			}
		}
	}
}

// Keys returns an iterator to range over the keys of the map.
func (m *Map[K, V]) Keys() func(func(K) bool) {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				break
			}
		}
	}
}

// KeySlice returns a copy of the keys in order.
func (m *Map[K, V]) KeySlice() []K {
	return slices.Clone(m.keys)
}

// SameOrder returns true if both maps have the same keys in the same order.
func (m *Map[K, V]) SameOrder(o *Map[K, V]) bool {
	return slices.Equal(m.keys, o.keys)
}

// Size returns the number of elements in the map.
func (m *Map[K, V]) Size() int {
	return len(m.keys)
}
