package db

import (
	"errors"

	"github.com/fzft/go-flatmap/flatmap"
)

var (
	ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")
	ErrFixed     = errors.New("value has a fixed key set")
)

type (
	Hash      = flatmap.Map[string, string]
	FixedHash = flatmap.ConstantMap[string, string]
	Members   = flatmap.Set[string]
	FixedSet  = flatmap.ConstantSet[string]
)

// Object is a value stored in the keyspace. Value holds a string, *Hash,
// *FixedHash, *Members or *FixedSet depending on Encoding.
type Object struct {
	Type     ObjectType
	Encoding EncodingType
	Value    any
}

func NewStringObject(s string) *Object {
	return &Object{Type: StringType, Encoding: EncodingRaw, Value: s}
}

func NewHashObject(h *Hash) *Object {
	return &Object{Type: HashType, Encoding: EncodingFlatMap, Value: h}
}

func NewFixedHashObject(h *FixedHash) *Object {
	return &Object{Type: HashType, Encoding: EncodingConstMap, Value: h}
}

func NewSetObject(s *Members) *Object {
	return &Object{Type: SetType, Encoding: EncodingFlatSet, Value: s}
}

func NewFixedSetObject(s *FixedSet) *Object {
	return &Object{Type: SetType, Encoding: EncodingConstSet, Value: s}
}

func (o *Object) StringValue() (string, bool) {
	s, ok := o.Value.(string)
	return s, ok
}

// Len is the number of fields or members, or the byte length of a string.
func (o *Object) Len() int {
	switch v := o.Value.(type) {
	case string:
		return len(v)
	case *Hash:
		return v.Len()
	case *FixedHash:
		return v.Len()
	case *Members:
		return v.Len()
	case *FixedSet:
		return v.Len()
	default:
		return 0
	}
}

// HashGet looks up field on either hash encoding.
func (o *Object) HashGet(field string) (string, bool) {
	switch h := o.Value.(type) {
	case *Hash:
		return h.Get(field)
	case *FixedHash:
		return h.Get(field)
	}
	return "", false
}

// HashEntries returns the fields in storage order.
func (o *Object) HashEntries() []flatmap.Entry[string, string] {
	switch h := o.Value.(type) {
	case *Hash:
		return h.Entries()
	case *FixedHash:
		return h.Entries()
	}
	return nil
}

// HashSet writes field. A growable hash appends new fields; a fixed hash only
// updates fields it already has and returns ErrFixed for anything else.
func (o *Object) HashSet(field, value string) (added bool, err error) {
	switch h := o.Value.(type) {
	case *Hash:
		_, replaced := h.Insert(field, value)
		return !replaced, nil
	case *FixedHash:
		if _, ok := h.Update(field, value); !ok {
			return false, ErrFixed
		}
		return false, nil
	}
	return false, ErrWrongType
}

func (o *Object) SetHas(member string) bool {
	switch s := o.Value.(type) {
	case *Members:
		return s.Has(member)
	case *FixedSet:
		return s.Has(member)
	}
	return false
}

func (o *Object) SetMembers() []string {
	switch s := o.Value.(type) {
	case *Members:
		return s.Slice()
	case *FixedSet:
		return s.Slice()
	}
	return nil
}

// Freeze switches a hash or set to its fixed encoding. It is a no-op for
// values that are already fixed.
func (o *Object) Freeze() error {
	switch v := o.Value.(type) {
	case *Hash:
		o.Value, o.Encoding = flatmap.FreezeMap(v), EncodingConstMap
	case *Members:
		o.Value, o.Encoding = flatmap.FreezeSet(v), EncodingConstSet
	case *FixedHash, *FixedSet:
	default:
		return ErrWrongType
	}
	return nil
}

// Thaw is the inverse of Freeze.
func (o *Object) Thaw() error {
	switch v := o.Value.(type) {
	case *FixedHash:
		o.Value, o.Encoding = v.Thaw(), EncodingFlatMap
	case *FixedSet:
		o.Value, o.Encoding = v.Thaw(), EncodingFlatSet
	case *Hash, *Members:
	default:
		return ErrWrongType
	}
	return nil
}
