package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fzft/go-flatmap/commands"
)

// replCommands are handled by the shell itself and never reach the keyspace.
var replCommands = []string{"HELP", "SELECT", "CLEAR", "QUIT", "EXIT"}

func flagNames(f commands.CommandFlag) string {
	var names []string
	if f&commands.CmdWrite != 0 {
		names = append(names, "write")
	}
	if f&commands.CmdReadOnly != 0 {
		names = append(names, "readonly")
	}
	if f&commands.CmdFast != 0 {
		names = append(names, "fast")
	}
	return strings.Join(names, ", ")
}

func arityText(arity int) string {
	if arity < 0 {
		return fmt.Sprintf("at least %d", -arity-1)
	}
	return fmt.Sprintf("%d", arity-1)
}

func (cli *FlatCli) help(w io.Writer, argv []string) {
	if len(argv) == 0 {
		fmt.Fprintf(w, "flatcli %s\n", cli.Version())
		fmt.Fprintln(w, `To get help about a command type: "help <command>"`)
		fmt.Fprintln(w, `To set a preference type: ":set output|proto|prompt <value>"`)
		fmt.Fprintln(w)
		for _, name := range commands.Names() {
			cmd, _ := commands.Lookup(name)
			fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
		}
		return
	}

	for _, name := range argv {
		cmd, ok := commands.Lookup(name)
		if !ok {
			fmt.Fprintf(w, "No help for %q\n", name)
			continue
		}
		fmt.Fprintf(w, "\n  %s\n", cmd.Name)
		fmt.Fprintf(w, "  summary: %s\n", cmd.Summary)
		fmt.Fprintf(w, "  arguments: %s\n", arityText(cmd.Arity))
		fmt.Fprintf(w, "  flags: %s\n\n", flagNames(cmd.Flags))
	}
}
