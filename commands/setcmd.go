package commands

import (
	"github.com/fzft/go-flatmap/db"
	"github.com/fzft/go-flatmap/flatmap"
	"github.com/fzft/go-flatmap/resp"
)

func saddCommand(ks *db.Keyspace, argv []string) resp.Node {
	key := argv[1]
	o, err := ks.LookupType(key, db.SetType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		o = db.NewSetObject(flatmap.NewSetWithCapacity[string](len(argv) - 2))
		ks.SetKey(key, o)
	}
	s, ok := o.Value.(*db.Members)
	if !ok {
		return fixedReply(key, "set", "STHAW")
	}
	added := 0
	for _, member := range argv[2:] {
		if s.Insert(member) {
			added++
		}
	}
	return resp.Int(added)
}

func sremCommand(ks *db.Keyspace, argv []string) resp.Node {
	key := argv[1]
	o, err := ks.LookupType(key, db.SetType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Int(0)
	}
	s, ok := o.Value.(*db.Members)
	if !ok {
		return fixedReply(key, "set", "STHAW")
	}
	removed := 0
	for _, member := range argv[2:] {
		if s.Remove(member) {
			removed++
		}
	}
	ks.DeleteIfEmpty(key)
	return resp.Int(removed)
}

func sismemberCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.SetType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Bool(false)
	}
	return resp.Bool(o.SetHas(argv[2]))
}

func scardCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.SetType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Int(0)
	}
	return resp.Int(o.Len())
}

// SMEMBERS lists members in insertion order.
func smembersCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.SetType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.Set{}
	}
	members := o.SetMembers()
	elems := make([]resp.Node, len(members))
	for i, m := range members {
		elems[i] = resp.Blob(m)
	}
	return resp.Set{Elements: elems}
}
