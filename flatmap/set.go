package flatmap

import "iter"

// Set is a growable linear-scan set kept in insertion order.
// The zero value is an empty set ready to use.
type Set[K comparable] struct {
	s store[K, sentinel]
}

// NewSet creates an empty Set
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{}
}

// NewSetWithCapacity creates an empty Set with room for capacity keys
func NewSetWithCapacity[K comparable](capacity int) *Set[K] {
	return &Set[K]{s: newStore[K, sentinel](capacity)}
}

// SetFrom builds a Set from keys. Repeated keys collapse onto the first
// occurrence.
func SetFrom[K comparable](keys ...K) *Set[K] {
	set := NewSetWithCapacity[K](len(keys))
	for _, k := range keys {
		set.Insert(k)
	}
	return set
}

// SetFromSeq is SetFrom for an iterator source.
func SetFromSeq[K comparable](seq iter.Seq[K]) *Set[K] {
	set := NewSet[K]()
	for k := range seq {
		set.Insert(k)
	}
	return set
}

// SetFromUnchecked builds a Set without looking for duplicates.
//
// The caller must guarantee the keys are distinct. Duplicates are not
// detected; they inflate Len and appear twice in iteration, and Remove only
// takes out the first copy.
func SetFromUnchecked[K comparable](keys ...K) *Set[K] {
	assertTrusted(len(keys), func(i int) K { return keys[i] })
	return &Set[K]{s: adopt(keyEntries(keys))}
}

// Insert adds key. It returns true if the key was not already present;
// an existing key is left untouched.
func (s *Set[K]) Insert(key K) bool {
	if s.s.has(key) {
		return false
	}
	s.s.entries = append(s.s.entries, Entry[K, sentinel]{Key: key})
	return true
}

// Remove deletes key, keeping the order of the remaining keys.
// It returns false if the key was not present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.s.remove(key)
	return ok
}

// SwapRemove deletes key in constant time without keeping order.
func (s *Set[K]) SwapRemove(key K) bool {
	_, ok := s.s.swapRemove(key)
	return ok
}

// Has checks if a key is in the set
func (s *Set[K]) Has(key K) bool {
	return s.s.has(key)
}

func (s *Set[K]) Len() int {
	return s.s.len()
}

func (s *Set[K]) IsEmpty() bool {
	return s.s.len() == 0
}

func (s *Set[K]) Cap() int {
	return s.s.cap()
}

// All iterates the keys in storage order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.s.keys()
}

// Slice returns the keys in storage order as a new slice.
func (s *Set[K]) Slice() []K {
	return s.s.keySlice()
}

func (s *Set[K]) Clear() {
	s.s.clear()
}

func (s *Set[K]) Clip() {
	s.s.clip()
}

func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{s: s.s.clone()}
}

func keyEntries[K comparable](keys []K) []Entry[K, sentinel] {
	if len(keys) == 0 {
		return nil
	}
	entries := make([]Entry[K, sentinel], len(keys))
	for i, k := range keys {
		entries[i].Key = k
	}
	return entries
}
