package flatmap

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantMapFrom(t *testing.T) {
	m, err := ConstantMapFrom(2, E("a", 1), E("b", 2))
	require.NoError(t, err)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("nonexistent")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.Cap())
}

func TestConstantMapDuplicateDetection(t *testing.T) {
	m, err := ConstantMapFrom(2, E("key", 10), E("key", 20))
	assert.Nil(t, m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 0, dup.First)
	assert.Equal(t, 1, dup.Second)
	assert.Equal(t, "key", dup.Key)
}

func TestConstantMapFirstCollisionReported(t *testing.T) {
	_, err := ConstantMapFrom(5, E("a", 0), E("b", 0), E("c", 0), E("b", 0), E("a", 0))

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 0, dup.First, "pairs are checked in (i, j) order")
	assert.Equal(t, 4, dup.Second)
}

func TestConstantMapWrongCount(t *testing.T) {
	cases := []struct {
		name    string
		n       int
		entries []Entry[string, int]
	}{
		{"too few", 3, []Entry[string, int]{E("a", 1), E("b", 2)}},
		{"too many", 1, []Entry[string, int]{E("a", 1), E("b", 2)}},
		{"negative", -1, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ConstantMapFrom(tc.n, tc.entries...)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrWrongCount)
			assert.NotErrorIs(t, err, ErrDuplicateKey)

			var wc *WrongCountError
			require.True(t, errors.As(err, &wc))
			assert.Equal(t, tc.n, wc.Want)
			assert.Equal(t, len(tc.entries), wc.Got)
		})
	}
}

func TestConstantMapEmpty(t *testing.T) {
	m, err := ConstantMapFrom[string, int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has(""))
}

func TestConstantMapUpdate(t *testing.T) {
	m, err := ConstantMapFrom(2, E("x", 1), E("y", 2))
	require.NoError(t, err)

	old, ok := m.Update("x", 10)
	assert.True(t, ok)
	assert.Equal(t, 1, old)
	v, _ := m.Get("x")
	assert.Equal(t, 10, v)

	_, ok = m.Update("z", 3)
	assert.False(t, ok, "update never adds keys")
	assert.False(t, m.Has("z"))
	assert.Equal(t, 2, m.Len())

	p := m.GetPtr("y")
	require.NotNil(t, p)
	*p = 20
	v, _ = m.Get("y")
	assert.Equal(t, 20, v)
}

func TestConstantMapAllPtr(t *testing.T) {
	m, err := ConstantMapFrom(2, E("x", 1), E("y", 2))
	require.NoError(t, err)

	for _, v := range m.AllPtr() {
		*v += 100
	}
	assert.Equal(t, []int{101, 102}, slices.Collect(m.Values()))
	assert.Equal(t, 2, m.Len())
}

func TestConstantMapIterationOrderAndRoundTrip(t *testing.T) {
	entries := []Entry[string, int]{E("z", 26), E("a", 1), E("m", 13)}
	m, err := ConstantMapFrom(len(entries), entries...)
	require.NoError(t, err)

	assert.Equal(t, entries, m.Entries())
	assert.Equal(t, []string{"z", "a", "m"}, slices.Collect(m.Keys()))
	assert.Equal(t, map[string]int{"z": 26, "a": 1, "m": 13}, maps.Collect(m.All()))

	entries[0].Value = 0
	v, _ := m.Get("z")
	assert.Equal(t, 26, v, "the map owns a copy of its input")
}

func TestFreezeAndThawMap(t *testing.T) {
	dyn := MapFrom(E("one", 1), E("two", 2))
	frozen := FreezeMap(dyn)

	assert.Equal(t, dyn.Entries(), frozen.Entries())

	dyn.Insert("three", 3)
	assert.False(t, frozen.Has("three"), "freeze copies")

	thawed := frozen.Thaw()
	thawed.Insert("four", 4)
	assert.Equal(t, 2, frozen.Len())
	assert.Equal(t, []string{"one", "two", "four"}, slices.Collect(thawed.Keys()))
}
