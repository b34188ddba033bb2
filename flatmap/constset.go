package flatmap

import "iter"

// ConstantSet is a linear-scan set whose members are fixed at construction.
type ConstantSet[K comparable] struct {
	s store[K, sentinel]
}

// ConstantSetFrom builds a ConstantSet of exactly n distinct keys.
// See ConstantMapFrom for the errors it returns.
func ConstantSetFrom[K comparable](n int, keys ...K) (*ConstantSet[K], error) {
	if err := validateKeys(n, keys); err != nil {
		return nil, err
	}
	return &ConstantSet[K]{s: adopt(keyEntries(keys))}, nil
}

// ConstantSetFromUnchecked builds a ConstantSet without validation.
// The caller must guarantee the keys are distinct; duplicates are kept and
// counted by Len.
func ConstantSetFromUnchecked[K comparable](keys ...K) *ConstantSet[K] {
	assertTrusted(len(keys), func(i int) K { return keys[i] })
	return &ConstantSet[K]{s: adopt(keyEntries(keys))}
}

// FreezeSet copies s into a ConstantSet without re-validating it.
func FreezeSet[K comparable](s *Set[K]) *ConstantSet[K] {
	return &ConstantSet[K]{s: adopt(s.s.snapshot())}
}

func (c *ConstantSet[K]) Has(key K) bool {
	return c.s.has(key)
}

func (c *ConstantSet[K]) Len() int {
	return c.s.len()
}

func (c *ConstantSet[K]) Cap() int {
	return c.s.len()
}

func (c *ConstantSet[K]) All() iter.Seq[K] {
	return c.s.keys()
}

func (c *ConstantSet[K]) Slice() []K {
	return c.s.keySlice()
}

// Thaw copies the members into a growable Set.
func (c *ConstantSet[K]) Thaw() *Set[K] {
	return &Set[K]{s: c.s.clone()}
}
