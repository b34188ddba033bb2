// Package flatmap provides small associative containers backed by a slice
// and searched by linear scan.
//
// For a handful of keys a linear scan over contiguous memory beats hashing,
// so these containers are meant for collections of a few dozen entries at
// most. Lookup, insert and remove are all O(n).
//
// There are two capacity disciplines. Map and Set grow by appending and
// shrink by removing. ConstantMap and ConstantSet have a key set fixed at
// construction; only values can change afterwards.
//
// None of the containers are safe for concurrent use. Callers sharing one
// across goroutines must synchronise access themselves.
package flatmap

import "iter"

// sentinel is the value type of key-only stores.
type sentinel struct{}

// Entry is a key/value pair as stored by a map container.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// E builds an Entry, handy for literal construction.
func E[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// store is the linear-scan engine shared by every container in the package.
// Entries are kept in insertion order; find always returns the first match.
type store[K comparable, V any] struct {
	entries []Entry[K, V]
}

func newStore[K comparable, V any](capacity int) store[K, V] {
	if capacity <= 0 {
		return store[K, V]{}
	}
	return store[K, V]{entries: make([]Entry[K, V], 0, capacity)}
}

// adopt wraps entries without checking them. The slice is owned afterwards.
func adopt[K comparable, V any](entries []Entry[K, V]) store[K, V] {
	return store[K, V]{entries: entries}
}

// find returns the index of the first entry whose key equals key, or -1.
func (s *store[K, V]) find(key K) int {
	for i := range s.entries {
		if s.entries[i].Key == key {
			return i
		}
	}
	return -1
}

func (s *store[K, V]) get(key K) (V, bool) {
	if i := s.find(key); i >= 0 {
		return s.entries[i].Value, true
	}
	var zero V
	return zero, false
}

// getPtr points into the backing array. The pointer is stale after the
// next append or removal.
func (s *store[K, V]) getPtr(key K) *V {
	if i := s.find(key); i >= 0 {
		return &s.entries[i].Value
	}
	return nil
}

func (s *store[K, V]) has(key K) bool {
	return s.find(key) >= 0
}

// put overwrites the value of an existing key or appends a new entry.
func (s *store[K, V]) put(key K, value V) (V, bool) {
	if i := s.find(key); i >= 0 {
		old := s.entries[i].Value
		s.entries[i].Value = value
		return old, true
	}
	s.entries = append(s.entries, Entry[K, V]{Key: key, Value: value})
	var zero V
	return zero, false
}

// removeAt shifts everything after i one slot left, keeping order.
func (s *store[K, V]) removeAt(i int) Entry[K, V] {
	e := s.entries[i]
	last := len(s.entries) - 1
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[last] = Entry[K, V]{}
	s.entries = s.entries[:last]
	return e
}

// swapRemoveAt moves the last entry into slot i. It does not keep order.
func (s *store[K, V]) swapRemoveAt(i int) Entry[K, V] {
	e := s.entries[i]
	last := len(s.entries) - 1
	s.entries[i] = s.entries[last]
	s.entries[last] = Entry[K, V]{}
	s.entries = s.entries[:last]
	return e
}

func (s *store[K, V]) remove(key K) (V, bool) {
	if i := s.find(key); i >= 0 {
		return s.removeAt(i).Value, true
	}
	var zero V
	return zero, false
}

func (s *store[K, V]) swapRemove(key K) (V, bool) {
	if i := s.find(key); i >= 0 {
		return s.swapRemoveAt(i).Value, true
	}
	var zero V
	return zero, false
}

func (s *store[K, V]) len() int {
	return len(s.entries)
}

func (s *store[K, V]) cap() int {
	return cap(s.entries)
}

// clear drops all entries but keeps the backing array for reuse.
func (s *store[K, V]) clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// clip releases unused capacity.
func (s *store[K, V]) clip() {
	if len(s.entries) == cap(s.entries) {
		return
	}
	if len(s.entries) == 0 {
		s.entries = nil
		return
	}
	clipped := make([]Entry[K, V], len(s.entries))
	copy(clipped, s.entries)
	s.entries = clipped
}

func (s *store[K, V]) clone() store[K, V] {
	if s.entries == nil {
		return store[K, V]{}
	}
	return store[K, V]{entries: append(make([]Entry[K, V], 0, len(s.entries)), s.entries...)}
}

func (s *store[K, V]) snapshot() []Entry[K, V] {
	return append([]Entry[K, V](nil), s.entries...)
}

func (s *store[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range s.entries {
			if !yield(s.entries[i].Key, s.entries[i].Value) {
				return
			}
		}
	}
}

// allPtr yields pointers into the backing array so values can be changed
// in place. Appending or removing during the range invalidates them.
func (s *store[K, V]) allPtr() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range s.entries {
			if !yield(s.entries[i].Key, &s.entries[i].Value) {
				return
			}
		}
	}
}

func (s *store[K, V]) keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range s.entries {
			if !yield(s.entries[i].Key) {
				return
			}
		}
	}
}

func (s *store[K, V]) values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range s.entries {
			if !yield(s.entries[i].Value) {
				return
			}
		}
	}
}

func (s *store[K, V]) keySlice() []K {
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]K, len(s.entries))
	for i := range s.entries {
		out[i] = s.entries[i].Key
	}
	return out
}
