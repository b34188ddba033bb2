package flatmap

import "iter"

// ConstantMap is a linear-scan map whose key set is fixed when it is built.
// Values can be changed through Update or GetPtr; keys can never be added or
// removed, and the type has no methods that would do so.
//
// Go cannot carry the capacity in the type, so it is recorded at
// construction and checked there by ConstantMapFrom.
type ConstantMap[K comparable, V any] struct {
	s store[K, V]
}

// ConstantMapFrom builds a ConstantMap holding exactly n entries with
// distinct keys. It returns a *WrongCountError if len(entries) != n and a
// *DuplicateKeyError naming the first two positions that share a key.
func ConstantMapFrom[K comparable, V any](n int, entries ...Entry[K, V]) (*ConstantMap[K, V], error) {
	if err := validateEntries(n, entries); err != nil {
		return nil, err
	}
	return &ConstantMap[K, V]{s: adopt(cloneEntries(entries))}, nil
}

// ConstantMapFromUnchecked builds a ConstantMap from entries without any
// validation. Its capacity is len(entries).
//
// The caller must guarantee that the keys are distinct. Breaking that is a
// logic error in the caller, not in the map: lookups then resolve to the
// first stored entry with a given key and the later ones are shadowed. It
// never panics in a normal build; with -tags flatmapdebug it checks the
// precondition and panics.
func ConstantMapFromUnchecked[K comparable, V any](entries ...Entry[K, V]) *ConstantMap[K, V] {
	owned := cloneEntries(entries)
	assertTrusted(len(owned), func(i int) K { return owned[i].Key })
	return &ConstantMap[K, V]{s: adopt(owned)}
}

// FreezeMap copies m into a ConstantMap. A Map never holds duplicate keys,
// so the copy skips validation.
func FreezeMap[K comparable, V any](m *Map[K, V]) *ConstantMap[K, V] {
	return &ConstantMap[K, V]{s: adopt(m.s.snapshot())}
}

// Update replaces the value stored for an existing key and returns the old
// one. It reports false, and changes nothing, if key is not in the map.
func (c *ConstantMap[K, V]) Update(key K, value V) (V, bool) {
	if p := c.s.getPtr(key); p != nil {
		old := *p
		*p = value
		return old, true
	}
	var zero V
	return zero, false
}

func (c *ConstantMap[K, V]) Get(key K) (V, bool) {
	return c.s.get(key)
}

// GetPtr returns a pointer to the stored value for key, or nil. Since the
// key set never changes the pointer stays valid for the life of the map.
func (c *ConstantMap[K, V]) GetPtr(key K) *V {
	return c.s.getPtr(key)
}

func (c *ConstantMap[K, V]) Has(key K) bool {
	return c.s.has(key)
}

// Len is always the capacity the map was built with.
func (c *ConstantMap[K, V]) Len() int {
	return c.s.len()
}

func (c *ConstantMap[K, V]) Cap() int {
	return c.s.len()
}

// All iterates entries in the order they were passed at construction.
func (c *ConstantMap[K, V]) All() iter.Seq2[K, V] {
	return c.s.all()
}

// AllPtr yields each key with a pointer to its value. The key set is
// fixed, so only values can be changed through it.
func (c *ConstantMap[K, V]) AllPtr() iter.Seq2[K, *V] {
	return c.s.allPtr()
}

func (c *ConstantMap[K, V]) Keys() iter.Seq[K] {
	return c.s.keys()
}

func (c *ConstantMap[K, V]) Values() iter.Seq[V] {
	return c.s.values()
}

func (c *ConstantMap[K, V]) Entries() []Entry[K, V] {
	return c.s.snapshot()
}

// Thaw copies the entries into a growable Map.
func (c *ConstantMap[K, V]) Thaw() *Map[K, V] {
	return &Map[K, V]{s: c.s.clone()}
}

func cloneEntries[K comparable, V any](entries []Entry[K, V]) []Entry[K, V] {
	return append(make([]Entry[K, V], 0, len(entries)), entries...)
}
