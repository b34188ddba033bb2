package commands

import (
	"strconv"

	"github.com/fzft/go-flatmap/db"
	"github.com/fzft/go-flatmap/flatmap"
	"github.com/fzft/go-flatmap/resp"
)

// HFREEZE and SFREEZE go through the unchecked path: the source container
// already guarantees distinct keys.
func hfreezeCommand(ks *db.Keyspace, argv []string) resp.Node {
	return convert(ks, argv[1], db.HashType, (*db.Object).Freeze)
}

func hthawCommand(ks *db.Keyspace, argv []string) resp.Node {
	return convert(ks, argv[1], db.HashType, (*db.Object).Thaw)
}

func sfreezeCommand(ks *db.Keyspace, argv []string) resp.Node {
	return convert(ks, argv[1], db.SetType, (*db.Object).Freeze)
}

func sthawCommand(ks *db.Keyspace, argv []string) resp.Node {
	return convert(ks, argv[1], db.SetType, (*db.Object).Thaw)
}

func convert(ks *db.Keyspace, key string, t db.ObjectType, fn func(*db.Object) error) resp.Node {
	o, err := ks.LookupType(key, t)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return errNoSuchKey
	}
	if err := fn(o); err != nil {
		return errorReply(err)
	}
	return resp.OK
}

// HFIXED key n field value [field value ...] builds a fixed hash through the
// checked constructor, so duplicate fields or a count other than n are
// rejected and the key is left untouched.
func hfixedCommand(ks *db.Keyspace, argv []string) resp.Node {
	n, errReply := parseCount(argv[2])
	if errReply != nil {
		return errReply
	}
	rest := argv[3:]
	if len(rest)%2 != 0 {
		return resp.Err("wrong number of arguments for 'hfixed' command")
	}
	entries := make([]flatmap.Entry[string, string], 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		entries = append(entries, flatmap.E(rest[i], rest[i+1]))
	}
	h, verr := flatmap.ConstantMapFrom(n, entries...)
	if verr != nil {
		return errorReply(verr)
	}
	ks.SetKey(argv[1], db.NewFixedHashObject(h))
	return resp.OK
}

// SFIXED key n member [member ...] is the set counterpart of HFIXED.
func sfixedCommand(ks *db.Keyspace, argv []string) resp.Node {
	n, errReply := parseCount(argv[2])
	if errReply != nil {
		return errReply
	}
	s, verr := flatmap.ConstantSetFrom(n, argv[3:]...)
	if verr != nil {
		return errorReply(verr)
	}
	ks.SetKey(argv[1], db.NewFixedSetObject(s))
	return resp.OK
}

// parseCount reads the n of HFIXED and SFIXED. Zero is refused: an empty
// hash or set is never stored.
func parseCount(arg string) (int, resp.Node) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, resp.Err("value is not an integer or out of range")
	}
	if n == 0 {
		return 0, resp.Err("value is out of range, must be positive")
	}
	return n, nil
}
