package cmd

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/fzft/go-flatmap/commands"
	"github.com/fzft/go-flatmap/db"
	"github.com/fzft/go-flatmap/deps/linenoise"
	"github.com/fzft/go-flatmap/flatmap"
	"github.com/fzft/go-flatmap/log"
	"github.com/fzft/go-flatmap/resp"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const FlatCliVersion = "1.0.0"

type BuildInfo struct {
	GitSHA1  string
	GitDirty string
}

// FlatCli is one shell session. Keyspaces are created on first SELECT and
// live as long as the session.
type FlatCli struct {
	Build BuildInfo

	config *CliConfig
	dbs    *flatmap.Map[int, *db.Keyspace]
	ks     *db.Keyspace

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	failed bool
}

func New(in io.Reader, out, errOut io.Writer) *FlatCli {
	return &FlatCli{
		in:     in,
		out:    out,
		errOut: errOut,
		dbs:    flatmap.NewMap[int, *db.Keyspace](),
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cli *FlatCli) Version() string {
	version := FlatCliVersion
	// Add git commit and working tree status when available
	if sha1Int, err := strconv.ParseUint(cli.Build.GitSHA1, 16, 64); err == nil && sha1Int != 0 {
		version = fmt.Sprintf("%s (git:%s", version, cli.Build.GitSHA1)
		if dirtyInt, err := strconv.ParseInt(cli.Build.GitDirty, 10, 64); err == nil && dirtyInt != 0 {
			version += "-dirty"
		}
		version += ")"
	}
	return version
}

func (cli *FlatCli) Usage(w io.Writer) {
	fmt.Fprintf(w, `flatcli %s

Usage: flatcli [OPTIONS] [cmd [arg [arg ...]]]
  -n, --db <db>        Keyspace number (default: 0).
  -r, --repeat <n>     Execute the command N times.
  -2, --resp2          Show replies as a RESP2 client sees them (default).
  -3, --resp3          Show replies as a RESP3 client sees them.
  -e, --exit-error     Return exit error code when command execution fails.
  --raw                Use raw formatting for replies (default when STDOUT is
                       not a tty).
  --no-raw             Force formatted output even when STDOUT is not a tty.
  --resp               Print replies in wire protocol.
  --yaml               Print each reply as a YAML document.
  --pipe               Read raw protocol or inline commands from stdin.
  --log-level <level>  Log level (default: warn).
  --log-file <file>    Log to a rotating file instead of stderr.
  -h, --help           Output this help and exit.
  -v, --version        Output version and exit.

Preferences are read from $%s or ~/%s (TOML).
History is kept in $%s or ~/%s.

Examples:
  flatcli HSET h f1 v1 f2 v2
  flatcli -r 3 SADD s member
  cat commands.txt | flatcli
  flatcli --yaml HGETALL h
`, cli.Version(), FlatCliRCFileEnv, FlatCliRCFileDefault, FlatCliHistFileEnv, FlatCliHistFileDefault)
}

// Run executes a whole session and returns the process exit code.
func (cli *FlatCli) Run(args []string) int {
	cfg, err := parseConfig(args, isTerminal(cli.out))
	if err != nil {
		fmt.Fprintf(cli.errOut, "flatcli: %v\n\n", err)
		cli.Usage(cli.errOut)
		return 1
	}
	cli.config = cfg

	if cfg.ShowHelp {
		cli.Usage(cli.out)
		return 0
	}
	if cfg.ShowVersion {
		fmt.Fprintf(cli.out, "flatcli %s\n", cli.Version())
		return 0
	}
	if err := log.InitLogger(cfg.Log); err != nil {
		fmt.Fprintf(cli.errOut, "flatcli: %v\n", err)
		return 1
	}
	defer log.Logger.Sync()

	cli.selectDB(cfg.DbNum)

	switch {
	case len(cfg.Args) > 0:
		for i := 0; i < cfg.Repeat; i++ {
			cli.execute(cfg.Args)
		}
	case cfg.Pipe:
		return cli.pipeMode()
	case isTerminal(cli.in):
		cli.repl()
	default:
		cli.lineMode()
	}
	return cli.exitCode()
}

func (cli *FlatCli) exitCode() int {
	if cli.config.ExitOnError && cli.failed {
		return 1
	}
	return 0
}

func (cli *FlatCli) selectDB(n int) {
	ks, ok := cli.dbs.Get(n)
	if !ok {
		ks = db.New(n)
		cli.dbs.Insert(n, ks)
	}
	cli.ks = ks
}

func (cli *FlatCli) prompt() string {
	p := cli.config.Prompt
	if cli.ks.ID() != 0 {
		p = fmt.Sprintf("%s[%d]", p, cli.ks.ID())
	}
	return p + "> "
}

// execute runs one command and prints its reply.
func (cli *FlatCli) execute(argv []string) {
	reply := commands.Exec(cli.ks, argv)
	switch reply.(type) {
	case resp.Error, resp.BlobError:
		cli.failed = true
	}
	cli.out.Write(cli.config.render(reply))
}

// handleLine runs one line of shell input. It reports whether the session
// should end.
func (cli *FlatCli) handleLine(line string) (quit bool) {
	argv, ok := splitArgs(line)
	if !ok {
		fmt.Fprintln(cli.errOut, "Invalid argument(s)")
		return false
	}
	if len(argv) == 0 {
		return false
	}

	// check if we have a repeat command option and need to skip the first arg
	repeat := 1
	if n, err := strconv.Atoi(argv[0]); err == nil && len(argv) > 1 {
		if n <= 0 {
			fmt.Fprintln(cli.errOut, "Invalid flatcli repeat command option value.")
			return false
		}
		repeat = n
		argv = argv[1:]
	}

	name := strings.ToLower(argv[0])
	switch {
	case name == "quit" || name == "exit":
		return true
	case strings.HasPrefix(name, ":"):
		cli.setPreference(argv)
	case name == "help":
		cli.help(cli.out, argv[1:])
	case name == "clear" && len(argv) == 1:
		linenoise.ClearScreen(cli.out)
	case name == "select" && len(argv) == 2:
		n, err := strconv.Atoi(argv[1])
		if err != nil || n < 0 {
			cli.out.Write(cli.config.render(resp.Err("invalid DB index")))
			cli.failed = true
			return false
		}
		cli.selectDB(n)
		cli.out.Write(cli.config.render(resp.OK))
	default:
		for i := 0; i < repeat; i++ {
			cli.execute(argv)
		}
	}
	return false
}

// setPreference handles ":set <name> <value>" the way an rc file entry
// would, for the rest of the session.
func (cli *FlatCli) setPreference(argv []string) {
	if !strings.EqualFold(argv[0], ":set") || len(argv) != 3 {
		fmt.Fprintln(cli.errOut, `Usage: :set output|proto|prompt <value>`)
		return
	}
	value := argv[2]
	switch strings.ToLower(argv[1]) {
	case "output":
		mode, err := ParseOutputMode(value)
		if err != nil {
			fmt.Fprintln(cli.errOut, err)
			return
		}
		cli.config.Output = mode
	case "proto":
		n, err := strconv.Atoi(value)
		if err != nil || (n != resp.RESP2 && n != resp.RESP3) {
			fmt.Fprintf(cli.errOut, "proto must be 2 or 3, got %q\n", value)
			return
		}
		cli.config.Proto = n
	case "prompt":
		cli.config.Prompt = value
	default:
		fmt.Fprintf(cli.errOut, "Unknown preference %q\n", argv[1])
	}
}

func (cli *FlatCli) repl() {
	ln := linenoise.New()
	defer ln.Close()
	ln.SetWordCompleter(append(commands.Names(), replCommands...))

	histFile := cli.config.HistFile
	if histFile != "" {
		if err := ln.HistoryLoad(histFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Logger.Warn("load history failed", zap.String("file", histFile), zap.Error(err))
		}
	}

	for {
		line, err := ln.Prompt(cli.prompt())
		if err != nil {
			// EOF or Ctrl-C
			break
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
			if histFile != "" {
				if err := ln.HistorySave(histFile); err != nil {
					log.Logger.Warn("save history failed", zap.String("file", histFile), zap.Error(err))
				}
			}
		}
		if cli.handleLine(line) {
			break
		}
	}
}

// lineMode reads one command per line from a non-interactive stdin.
func (cli *FlatCli) lineMode() {
	scanner := bufio.NewScanner(cli.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if cli.handleLine(scanner.Text()) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(cli.errOut, "flatcli: %v\n", err)
		cli.failed = true
	}
}

// pipeMode executes a stream of requests, either RESP arrays or inline
// commands, and prints only error replies and a summary.
func (cli *FlatCli) pipeMode() int {
	data, err := io.ReadAll(cli.in)
	if err != nil {
		fmt.Fprintf(cli.errOut, "flatcli: %v\n", err)
		return 1
	}

	var replies, errs int
	for len(data) > 0 {
		var argv []string
		if data[0] == '*' {
			req, rest, err := resp.Parse(data)
			if err != nil {
				fmt.Fprintf(cli.errOut, "flatcli: bad request after %d replies: %v\n", replies, err)
				return 1
			}
			data = rest
			if argv, err = resp.CommandArgs(req); err != nil {
				fmt.Fprintf(cli.errOut, "flatcli: bad request after %d replies: %v\n", replies, err)
				return 1
			}
		} else {
			line := data
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				line, data = data[:i], data[i+1:]
			} else {
				data = nil
			}
			var ok bool
			if argv, ok = splitArgs(string(line)); !ok {
				fmt.Fprintf(cli.errOut, "flatcli: invalid inline command after %d replies\n", replies)
				return 1
			}
			if len(argv) == 0 {
				continue
			}
		}

		reply := commands.Exec(cli.ks, argv)
		replies++
		if e, ok := reply.(resp.Error); ok {
			errs++
			fmt.Fprintln(cli.errOut, e.Message)
		}
	}

	fmt.Fprintf(cli.out, "All data transferred. errors: %d, replies: %d\n", errs, replies)
	log.Logger.Debug("pipe finished", zap.Int("replies", replies), zap.Int("errors", errs))
	if errs > 0 {
		return 1
	}
	return 0
}
