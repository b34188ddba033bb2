package commands

import (
	"fmt"
	"strings"

	"github.com/fzft/go-flatmap/db"
	"github.com/fzft/go-flatmap/flatmap"
	"github.com/fzft/go-flatmap/log"
	"github.com/fzft/go-flatmap/resp"
	"go.uber.org/zap"
)

type CommandFlag int

const (
	CmdWrite CommandFlag = 1 << iota
	CmdReadOnly
	CmdFast
)

// Proc runs a command. argv[0] is the command name as typed.
type Proc func(ks *db.Keyspace, argv []string) resp.Node

type Command struct {
	Name string
	// Arity follows redis: a positive value is the exact argc including the
	// name, a negative value is the minimum.
	Arity   int
	Flags   CommandFlag
	Proc    Proc
	Summary string
}

func (c *Command) checkArity(argc int) bool {
	if c.Arity >= 0 {
		return argc == c.Arity
	}
	return argc >= -c.Arity
}

var commandList = []*Command{
	{"PING", -1, CmdFast, pingCommand, "Returns PONG, or the given message"},
	{"ECHO", 2, CmdFast, echoCommand, "Returns the given string"},
	{"COMMAND", 1, CmdReadOnly, commandCommand, "Lists the available commands"},

	{"SET", 3, CmdWrite, setCommand, "Sets the string value of a key"},
	{"GET", 2, CmdReadOnly | CmdFast, getCommand, "Returns the string value of a key"},
	{"DEL", -2, CmdWrite, delCommand, "Deletes one or more keys"},
	{"EXISTS", -2, CmdReadOnly | CmdFast, existsCommand, "Counts how many of the given keys exist"},
	{"TYPE", 2, CmdReadOnly | CmdFast, typeCommand, "Returns the type of the value stored at a key"},
	{"OBJECT", 3, CmdReadOnly, objectCommand, "OBJECT ENCODING key: returns the container encoding"},
	{"KEYS", 1, CmdReadOnly, keysCommand, "Lists all keys in insertion order"},
	{"DBSIZE", 1, CmdReadOnly | CmdFast, dbsizeCommand, "Returns the number of keys"},
	{"FLUSHDB", 1, CmdWrite, flushdbCommand, "Removes all keys"},

	{"HSET", -4, CmdWrite, hsetCommand, "Sets fields of a hash"},
	{"HGET", 3, CmdReadOnly | CmdFast, hgetCommand, "Returns the value of a hash field"},
	{"HDEL", -3, CmdWrite, hdelCommand, "Deletes fields from a hash"},
	{"HEXISTS", 3, CmdReadOnly | CmdFast, hexistsCommand, "Checks whether a hash field exists"},
	{"HLEN", 2, CmdReadOnly | CmdFast, hlenCommand, "Returns the number of fields in a hash"},
	{"HKEYS", 2, CmdReadOnly, hkeysCommand, "Returns the fields of a hash"},
	{"HVALS", 2, CmdReadOnly, hvalsCommand, "Returns the values of a hash"},
	{"HGETALL", 2, CmdReadOnly, hgetallCommand, "Returns all fields and values of a hash"},

	{"SADD", -3, CmdWrite, saddCommand, "Adds members to a set"},
	{"SREM", -3, CmdWrite, sremCommand, "Removes members from a set"},
	{"SISMEMBER", 3, CmdReadOnly | CmdFast, sismemberCommand, "Checks set membership"},
	{"SCARD", 2, CmdReadOnly | CmdFast, scardCommand, "Returns the number of members in a set"},
	{"SMEMBERS", 2, CmdReadOnly, smembersCommand, "Returns all members of a set"},

	{"HFREEZE", 2, CmdWrite, hfreezeCommand, "Fixes the field set of a hash"},
	{"HTHAW", 2, CmdWrite, hthawCommand, "Makes a fixed hash growable again"},
	{"HFIXED", -3, CmdWrite, hfixedCommand, "HFIXED key n field value ...: builds a fixed hash of exactly n distinct fields"},
	{"SFREEZE", 2, CmdWrite, sfreezeCommand, "Fixes the members of a set"},
	{"STHAW", 2, CmdWrite, sthawCommand, "Makes a fixed set growable again"},
	{"SFIXED", -3, CmdWrite, sfixedCommand, "SFIXED key n member ...: builds a fixed set of exactly n distinct members"},
}

// table is built through the checked constructor so a name listed twice in
// commandList fails at start-up.
var table *flatmap.ConstantMap[string, *Command]

func init() {
	table = mustTable(commandList)
}

func mustTable(list []*Command) *flatmap.ConstantMap[string, *Command] {
	entries := make([]flatmap.Entry[string, *Command], len(list))
	for i, c := range list {
		entries[i] = flatmap.E(c.Name, c)
	}
	t, err := flatmap.ConstantMapFrom(len(entries), entries...)
	if err != nil {
		panic(fmt.Sprintf("command table: %v", err))
	}
	return t
}

// Lookup finds a command by case-insensitive name.
func Lookup(name string) (*Command, bool) {
	return table.Get(strings.ToUpper(name))
}

// Names lists the command names in table order.
func Names() []string {
	names := make([]string, 0, table.Len())
	for name := range table.Keys() {
		names = append(names, name)
	}
	return names
}

// Exec dispatches argv against ks and returns the reply.
func Exec(ks *db.Keyspace, argv []string) resp.Node {
	if len(argv) == 0 {
		return resp.Err("empty command")
	}
	cmd, ok := Lookup(argv[0])
	if !ok {
		return resp.Err(unknownCommand(argv))
	}
	if !cmd.checkArity(len(argv)) {
		return resp.Err(fmt.Sprintf("wrong number of arguments for '%s' command", strings.ToLower(cmd.Name)))
	}
	reply := cmd.Proc(ks, argv)
	if e, isErr := reply.(resp.Error); isErr {
		log.Logger.Debug("command failed", zap.String("cmd", cmd.Name), zap.String("error", e.Message))
	} else {
		log.Logger.Debug("command executed", zap.String("cmd", cmd.Name), zap.Int("argc", len(argv)))
	}
	return reply
}

func unknownCommand(argv []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown command '%s', with args beginning with:", argv[0])
	for _, arg := range argv[1:] {
		fmt.Fprintf(&b, " '%s'", arg)
	}
	return b.String()
}

// errorReply converts a Go error from the db layer into a reply.
func errorReply(err error) resp.Node {
	if err == db.ErrWrongType {
		return resp.Error{Message: err.Error()}
	}
	return resp.Err(strings.TrimPrefix(err.Error(), "flatmap: "))
}
