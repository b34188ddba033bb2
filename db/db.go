package db

import (
	"github.com/fzft/go-flatmap/flatmap"
	"github.com/fzft/go-flatmap/log"
	"go.uber.org/zap"
)

const (
	INITIAL_DB_SIZE = 16
)

// Keyspace is a flatcli database. The keyspace itself is a flatmap.Map, so
// KEYS lists keys in the order they were first written.
type Keyspace struct {
	dict *flatmap.Map[string, *Object]
	id   int
}

func New(id int) *Keyspace {
	return &Keyspace{
		id:   id,
		dict: flatmap.NewMapWithCapacity[string, *Object](INITIAL_DB_SIZE),
	}
}

func (ks *Keyspace) ID() int {
	return ks.id
}

// LookupKey returns the object stored at key.
func (ks *Keyspace) LookupKey(key string) (*Object, bool) {
	return ks.dict.Get(key)
}

// LookupType returns the object at key if it has type t. A missing key is
// (nil, nil); a key of another type is ErrWrongType.
func (ks *Keyspace) LookupType(key string, t ObjectType) (*Object, error) {
	o, ok := ks.dict.Get(key)
	if !ok {
		return nil, nil
	}
	if o.Type != t {
		return nil, ErrWrongType
	}
	return o, nil
}

// SetKey stores o at key, replacing any previous value in place.
func (ks *Keyspace) SetKey(key string, o *Object) {
	if _, replaced := ks.dict.Insert(key, o); !replaced {
		log.Logger.Debug("key added", zap.Int("db", ks.id), zap.String("key", key), zap.Stringer("type", o.Type))
	}
}

// Delete removes key and reports whether it existed.
func (ks *Keyspace) Delete(key string) bool {
	_, ok := ks.dict.Remove(key)
	if ok {
		log.Logger.Debug("key deleted", zap.Int("db", ks.id), zap.String("key", key))
	}
	return ok
}

// DeleteIfEmpty drops an aggregate that lost its last field or member.
func (ks *Keyspace) DeleteIfEmpty(key string) {
	if o, ok := ks.dict.Get(key); ok && o.Type != StringType && o.Len() == 0 {
		ks.Delete(key)
	}
}

func (ks *Keyspace) Exists(key string) bool {
	return ks.dict.Has(key)
}

func (ks *Keyspace) Keys() []string {
	keys := make([]string, 0, ks.dict.Len())
	for k := range ks.dict.Keys() {
		keys = append(keys, k)
	}
	return keys
}

func (ks *Keyspace) Len() int {
	return ks.dict.Len()
}

// Flush empties the keyspace.
func (ks *Keyspace) Flush() {
	n := ks.dict.Len()
	ks.dict.Clear()
	log.Logger.Debug("keyspace flushed", zap.Int("db", ks.id), zap.Int("keys", n))
}
