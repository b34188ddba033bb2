package commands

import (
	"fmt"

	"github.com/fzft/go-flatmap/db"
	"github.com/fzft/go-flatmap/flatmap"
	"github.com/fzft/go-flatmap/resp"
)

func hsetCommand(ks *db.Keyspace, argv []string) resp.Node {
	if (len(argv)-2)%2 != 0 {
		return resp.Err("wrong number of arguments for 'hset' command")
	}
	key := argv[1]
	o, err := ks.LookupType(key, db.HashType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		o = db.NewHashObject(flatmap.NewMapWithCapacity[string, string]((len(argv) - 2) / 2))
		ks.SetKey(key, o)
	}

	// A fixed hash only takes updates; check every field before writing any.
	if o.Encoding.Fixed() {
		for i := 2; i < len(argv); i += 2 {
			if _, ok := o.HashGet(argv[i]); !ok {
				return resp.Err(fmt.Sprintf("field '%s' is not in fixed hash '%s'", argv[i], key))
			}
		}
	}

	added := 0
	for i := 2; i < len(argv); i += 2 {
		isNew, err := o.HashSet(argv[i], argv[i+1])
		if err != nil {
			return errorReply(err)
		}
		if isNew {
			added++
		}
	}
	return resp.Int(added)
}

func hgetCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.HashType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.NullNode
	}
	v, ok := o.HashGet(argv[2])
	if !ok {
		return resp.NullNode
	}
	return resp.Blob(v)
}

func hdelCommand(ks *db.Keyspace, argv []string) resp.Node {
	key := argv[1]
	o, err := ks.LookupType(key, db.HashType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Int(0)
	}
	h, ok := o.Value.(*db.Hash)
	if !ok {
		return fixedReply(key, "hash", "HTHAW")
	}
	deleted := 0
	for _, field := range argv[2:] {
		if _, ok := h.Remove(field); ok {
			deleted++
		}
	}
	ks.DeleteIfEmpty(key)
	return resp.Int(deleted)
}

func hexistsCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.HashType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Bool(false)
	}
	_, ok := o.HashGet(argv[2])
	return resp.Bool(ok)
}

func hlenCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.HashType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Int(0)
	}
	return resp.Int(o.Len())
}

func hkeysCommand(ks *db.Keyspace, argv []string) resp.Node {
	return hashProjection(ks, argv[1], func(e flatmap.Entry[string, string]) string { return e.Key })
}

func hvalsCommand(ks *db.Keyspace, argv []string) resp.Node {
	return hashProjection(ks, argv[1], func(e flatmap.Entry[string, string]) string { return e.Value })
}

func hashProjection(ks *db.Keyspace, key string, pick func(flatmap.Entry[string, string]) string) resp.Node {
	o, err := ks.LookupType(key, db.HashType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Array{}
	}
	entries := o.HashEntries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = pick(e)
	}
	return resp.BlobArray(out)
}

// HGETALL replies with a map; RESP2 clients see it as a flat array.
func hgetallCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.HashType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Map{}
	}
	entries := o.HashEntries()
	pairs := make([]flatmap.Entry[resp.Node, resp.Node], len(entries))
	for i, e := range entries {
		pairs[i] = flatmap.E[resp.Node, resp.Node](resp.Blob(e.Key), resp.Blob(e.Value))
	}
	return resp.Map{Elements: pairs}
}

func fixedReply(key, kind, thaw string) resp.Node {
	return resp.Err(fmt.Sprintf("key '%s' holds a fixed %s, %s it first", key, kind, thaw))
}
