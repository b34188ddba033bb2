package commands

import (
	"strings"

	"github.com/fzft/go-flatmap/db"
	"github.com/fzft/go-flatmap/resp"
)

var errNoSuchKey = resp.Err("no such key")

func pingCommand(_ *db.Keyspace, argv []string) resp.Node {
	switch len(argv) {
	case 1:
		return resp.SimpleString{Value: "PONG"}
	case 2:
		return resp.Blob(argv[1])
	}
	return resp.Err("wrong number of arguments for 'ping' command")
}

func echoCommand(_ *db.Keyspace, argv []string) resp.Node {
	return resp.Blob(argv[1])
}

func commandCommand(_ *db.Keyspace, _ []string) resp.Node {
	return resp.BlobArray(Names())
}

// SET overwrites whatever the key held, including aggregates.
func setCommand(ks *db.Keyspace, argv []string) resp.Node {
	ks.SetKey(argv[1], db.NewStringObject(argv[2]))
	return resp.OK
}

func getCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, err := ks.LookupType(argv[1], db.StringType)
	if err != nil {
		return errorReply(err)
	}
	if o == nil {
		return resp.NullNode
	}
	s, _ := o.StringValue()
	return resp.Blob(s)
}

func delCommand(ks *db.Keyspace, argv []string) resp.Node {
	deleted := 0
	for _, key := range argv[1:] {
		if ks.Delete(key) {
			deleted++
		}
	}
	return resp.Int(deleted)
}

// EXISTS counts a key once per time it is named, as redis does.
func existsCommand(ks *db.Keyspace, argv []string) resp.Node {
	count := 0
	for _, key := range argv[1:] {
		if ks.Exists(key) {
			count++
		}
	}
	return resp.Int(count)
}

func typeCommand(ks *db.Keyspace, argv []string) resp.Node {
	o, ok := ks.LookupKey(argv[1])
	if !ok {
		return resp.SimpleString{Value: "none"}
	}
	return resp.SimpleString{Value: o.Type.String()}
}

func objectCommand(ks *db.Keyspace, argv []string) resp.Node {
	if !strings.EqualFold(argv[1], "ENCODING") {
		return resp.Err("unknown subcommand '" + argv[1] + "'. Try OBJECT ENCODING")
	}
	o, ok := ks.LookupKey(argv[2])
	if !ok {
		return resp.NullNode
	}
	return resp.Blob(o.Encoding.String())
}

func keysCommand(ks *db.Keyspace, _ []string) resp.Node {
	return resp.BlobArray(ks.Keys())
}

func dbsizeCommand(ks *db.Keyspace, _ []string) resp.Node {
	return resp.Int(ks.Len())
}

func flushdbCommand(ks *db.Keyspace, _ []string) resp.Node {
	ks.Flush()
	return resp.OK
}
