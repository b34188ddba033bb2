package flatmap

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectPairs[K comparable, V any](m interface{ All() iter.Seq2[K, V] }) []Entry[K, V] {
	var out []Entry[K, V]
	for k, v := range m.All() {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	return out
}

func TestMapBasicOperations(t *testing.T) {
	m := NewMap[string, int]()

	_, ok := m.Get("key")
	assert.False(t, ok, "Key 'key' should not exist yet")

	old, replaced := m.Insert("key", 42)
	assert.False(t, replaced)
	assert.Equal(t, 0, old)

	v, ok := m.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	old, replaced = m.Insert("key", 100)
	assert.True(t, replaced)
	assert.Equal(t, 42, old, "Insert should hand back the previous value")

	v, _ = m.Get("key")
	assert.Equal(t, 100, v)
	assert.Equal(t, 1, m.Len())

	removed, ok := m.Remove("key")
	assert.True(t, ok)
	assert.Equal(t, 100, removed)
	assert.False(t, m.Has("key"))

	_, ok = m.Remove("nonexistent")
	assert.False(t, ok)
	assert.True(t, m.IsEmpty())
}

func TestMapZeroValue(t *testing.T) {
	var m Map[int, string]
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0, m.Cap())

	m.Insert(1, "one")
	v, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap[string, int]()
	for i, k := range []string{"d", "a", "c", "b"} {
		m.Insert(k, i)
	}
	// overwriting does not move a key
	m.Insert("a", 10)

	assert.Equal(t, []string{"d", "a", "c", "b"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{0, 10, 2, 3}, slices.Collect(m.Values()))
}

func TestMapRemovePreservesOrder(t *testing.T) {
	m := MapFrom(E("a", 1), E("b", 2), E("c", 3), E("d", 4))

	_, ok := m.Remove("b")
	assert.True(t, ok)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []Entry[string, int]{E("a", 1), E("c", 3), E("d", 4)}, m.Entries())

	_, ok = m.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"c", "d"}, slices.Collect(m.Keys()))
}

func TestMapSwapRemove(t *testing.T) {
	m := MapFrom(E("a", 1), E("b", 2), E("c", 3), E("d", 4))

	v, ok := m.SwapRemove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	// the last entry fills the hole
	assert.Equal(t, []string{"d", "b", "c"}, slices.Collect(m.Keys()))

	_, ok = m.SwapRemove("zz")
	assert.False(t, ok)
	assert.Equal(t, 3, m.Len())
}

func TestMapFromLastValueWins(t *testing.T) {
	m := MapFrom(E("a", 1), E("b", 2), E("a", 3))

	v, _ := m.Get("a")
	assert.Equal(t, 3, v, "last value wins")
	v, _ = m.Get("b")
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"a", "b"}, slices.Collect(m.Keys()), "key keeps its first position")
}

func TestMapFromSeq(t *testing.T) {
	src := MapFrom(E("x", 10), E("y", 20))
	m := MapFromSeq(src.All())

	assert.Equal(t, src.Entries(), m.Entries())

	m.Insert("x", 11)
	v, _ := src.Get("x")
	assert.Equal(t, 10, v, "maps must not share storage")
}

func TestMapFromEntriesUnchecked(t *testing.T) {
	entries := []Entry[string, int]{E("a", 1), E("b", 2)}
	m := MapFromEntriesUnchecked(entries...)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	entries[0].Value = 99
	v, _ = m.Get("a")
	assert.Equal(t, 1, v, "the map owns a copy of its input")
}

func TestMapGetPtr(t *testing.T) {
	m := MapFrom(E("hits", 1))

	p := m.GetPtr("hits")
	if assert.NotNil(t, p) {
		*p += 41
	}
	v, _ := m.Get("hits")
	assert.Equal(t, 42, v)

	assert.Nil(t, m.GetPtr("misses"))
}

func TestMapAllPtr(t *testing.T) {
	m := MapFrom(E("a", 1), E("b", 2), E("c", 3))

	for k, v := range m.AllPtr() {
		if k != "b" {
			*v *= 10
		}
	}
	assert.Equal(t, []Entry[string, int]{E("a", 10), E("b", 2), E("c", 30)}, m.Entries())

	var seen []string
	for k := range m.AllPtr() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)

	var empty Map[string, int]
	for range empty.AllPtr() {
		t.Fatal("zero value yields nothing")
	}
}

func TestMapIterationIsRestartableAndStoppable(t *testing.T) {
	m := MapFrom(E(1, "a"), E(2, "b"), E(3, "c"))

	first := collectPairs[int, string](m)
	second := collectPairs[int, string](m)
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)

	seen := 0
	for range m.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestMapClearClipClone(t *testing.T) {
	m := NewMapWithCapacity[string, int](100)
	assert.Equal(t, 100, m.Cap())

	m.Insert("key", 42)
	m.Clip()
	assert.Equal(t, 1, m.Cap())
	v, _ := m.Get("key")
	assert.Equal(t, 42, v)

	c := m.Clone()
	c.Insert("other", 1)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 1, m.Len())
}

func TestMapUniqueAfterManyInserts(t *testing.T) {
	m := NewMap[string, int]()
	for i := 0; i < 200; i++ {
		m.Insert(fmt.Sprintf("key%d", i%17), i)
	}
	assert.Equal(t, 17, m.Len())

	seen := map[string]bool{}
	for k := range m.Keys() {
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}

	v, _ := m.Get("key16")
	assert.Equal(t, 186, v)
}

func TestMapRemoveDecrementsLen(t *testing.T) {
	m := MapFrom(E("a", 1), E("b", 2), E("c", 3))
	for _, k := range []string{"c", "a", "b"} {
		before := m.Len()
		_, ok := m.Remove(k)
		assert.True(t, ok)
		assert.False(t, m.Has(k))
		assert.Equal(t, before-1, m.Len())
	}
}
