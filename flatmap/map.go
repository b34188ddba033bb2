package flatmap

import "iter"

// Map is a growable linear-scan map. Entries are iterated in insertion
// order, and Remove keeps that order for the entries that remain.
//
// The zero value is an empty map ready to use.
type Map[K comparable, V any] struct {
	s store[K, V]
}

// NewMap creates an empty Map. Nothing is allocated until the first insert.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// NewMapWithCapacity creates an empty Map with room for capacity entries.
func NewMapWithCapacity[K comparable, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{s: newStore[K, V](capacity)}
}

// MapFrom builds a Map from entries, checking each key as it goes.
// When a key repeats, the last value wins and the key stays at the position
// of its first occurrence.
func MapFrom[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := NewMapWithCapacity[K, V](len(entries))
	for _, e := range entries {
		m.s.put(e.Key, e.Value)
	}
	return m
}

// MapFromSeq is MapFrom for an iterator source.
func MapFromSeq[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for k, v := range seq {
		m.s.put(k, v)
	}
	return m
}

// MapFromEntriesUnchecked builds a Map without looking for duplicate keys.
//
// The caller must guarantee that no two entries have equal keys. If that
// does not hold, only the first of the equal entries is reachable by Get,
// Insert and Remove; the others still show up during iteration and in Len.
// Nothing is checked at runtime unless built with the flatmapdebug tag.
func MapFromEntriesUnchecked[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	owned := append([]Entry[K, V](nil), entries...)
	assertTrusted(len(owned), func(i int) K { return owned[i].Key })
	return &Map[K, V]{s: adopt(owned)}
}

// Insert sets the value for key. If the key was already present its old
// value is returned with true; otherwise the entry is appended.
func (m *Map[K, V]) Insert(key K, value V) (V, bool) {
	return m.s.put(key, value)
}

// Remove deletes key and returns its value. Entries after it shift left, so
// iteration order is still insertion order.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.s.remove(key)
}

// SwapRemove deletes key in constant time by moving the last entry into its
// slot. Iteration order is no longer insertion order afterwards.
func (m *Map[K, V]) SwapRemove(key K) (V, bool) {
	return m.s.swapRemove(key)
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.s.get(key)
}

// GetPtr returns a pointer to the value stored for key, or nil.
// The pointer must not be used after the map is structurally modified.
func (m *Map[K, V]) GetPtr(key K) *V {
	return m.s.getPtr(key)
}

func (m *Map[K, V]) Has(key K) bool {
	return m.s.has(key)
}

func (m *Map[K, V]) Len() int {
	return m.s.len()
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.s.len() == 0
}

func (m *Map[K, V]) Cap() int {
	return m.s.cap()
}

// All iterates key/value pairs in storage order. Do not mutate the map
// while ranging over it.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.s.all()
}

// AllPtr is All with a pointer to each value, for updating values in place.
// Do not insert or remove while ranging over it.
func (m *Map[K, V]) AllPtr() iter.Seq2[K, *V] {
	return m.s.allPtr()
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.s.keys()
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return m.s.values()
}

// Entries returns a copy of the stored entries in order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	return m.s.snapshot()
}

// Clear removes every entry but keeps the allocated storage.
func (m *Map[K, V]) Clear() {
	m.s.clear()
}

// Clip releases storage beyond Len.
func (m *Map[K, V]) Clip() {
	m.s.clip()
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{s: m.s.clone()}
}
