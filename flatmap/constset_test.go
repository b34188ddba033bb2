package flatmap

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantSet(t *testing.T) {
	s := ConstantSetFromUnchecked(1, 2, 3)

	assert.True(t, s.Has(1))
	assert.True(t, s.Has(2))
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(4))
	assert.Equal(t, 3, s.Cap())
}

func TestConstantSetDuplicateDetection(t *testing.T) {
	s, err := ConstantSetFrom(3, 1, 2, 1)
	assert.Nil(t, s)

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 0, dup.First)
	assert.Equal(t, 2, dup.Second)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestConstantSetWrongCount(t *testing.T) {
	_, err := ConstantSetFrom(2, "x")
	assert.ErrorIs(t, err, ErrWrongCount)
	assert.EqualError(t, err, "flatmap: wrong number of entries: want 2, got 1")
}

func TestConstantSetIteration(t *testing.T) {
	s, err := ConstantSetFrom(3, "x", "y", "z")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	items := slices.Collect(s.All())
	assert.Equal(t, []string{"x", "y", "z"}, items)
}

func TestFreezeAndThawSet(t *testing.T) {
	dyn := SetFrom("red", "green")
	frozen := FreezeSet(dyn)
	dyn.Insert("blue")

	assert.Equal(t, []string{"red", "green"}, frozen.Slice())

	thawed := frozen.Thaw()
	assert.True(t, thawed.Insert("blue"))
	assert.False(t, frozen.Has("blue"))
}

func TestDuplicateKeyErrorMessage(t *testing.T) {
	_, err := ConstantMapFrom(2, E("k", 1), E("k", 2))
	assert.EqualError(t, err, "flatmap: duplicate key k at positions 0 and 1")
}
