package db

import (
	"testing"

	"github.com/fzft/go-flatmap/flatmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyspaceSetAndLookup(t *testing.T) {
	ks := New(0)
	ks.SetKey("one", NewStringObject("1"))
	ks.SetKey("two", NewStringObject("2"))

	o, exists := ks.LookupKey("one")
	assert.True(t, exists, "Key 'one' should exist")
	s, _ := o.StringValue()
	assert.Equal(t, "1", s)

	_, exists = ks.LookupKey("three")
	assert.False(t, exists, "Key 'three' should not exist")
	assert.Equal(t, 2, ks.Len())
}

func TestKeyspaceKeysInInsertionOrder(t *testing.T) {
	ks := New(0)
	for _, k := range []string{"c", "a", "b"} {
		ks.SetKey(k, NewStringObject(k))
	}
	ks.SetKey("a", NewStringObject("again"))
	assert.Equal(t, []string{"c", "a", "b"}, ks.Keys())

	assert.True(t, ks.Delete("c"))
	assert.False(t, ks.Delete("c"))
	assert.Equal(t, []string{"a", "b"}, ks.Keys())
}

func TestKeyspaceLookupType(t *testing.T) {
	ks := New(1)
	ks.SetKey("str", NewStringObject("v"))
	ks.SetKey("h", NewHashObject(flatmap.NewMap[string, string]()))

	o, err := ks.LookupType("missing", HashType)
	assert.NoError(t, err)
	assert.Nil(t, o)

	_, err = ks.LookupType("str", HashType)
	assert.ErrorIs(t, err, ErrWrongType)

	o, err = ks.LookupType("h", HashType)
	require.NoError(t, err)
	assert.Equal(t, EncodingFlatMap, o.Encoding)
}

func TestKeyspaceDeleteIfEmpty(t *testing.T) {
	ks := New(0)
	ks.SetKey("s", NewSetObject(flatmap.NewSet[string]()))
	ks.SetKey("str", NewStringObject(""))

	ks.DeleteIfEmpty("s")
	ks.DeleteIfEmpty("str")
	assert.False(t, ks.Exists("s"))
	assert.True(t, ks.Exists("str"), "empty strings are values")
}

func TestKeyspaceFlush(t *testing.T) {
	ks := New(0)
	ks.SetKey("a", NewStringObject("1"))
	ks.Flush()
	assert.Equal(t, 0, ks.Len())
	assert.Empty(t, ks.Keys())
}
