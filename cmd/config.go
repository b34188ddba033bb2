package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fzft/go-flatmap/log"
	"github.com/fzft/go-flatmap/resp"
	"github.com/spf13/pflag"
)

const (
	FlatCliHistFileEnv     = "FLATCLI_HISTFILE"
	FlatCliHistFileDefault = ".flatcli_history"
	FlatCliRCFileEnv       = "FLATCLI_RCFILE"
	FlatCliRCFileDefault   = ".flatclirc"

	defaultPrompt = "flat"
)

type OutputMode uint8

const (
	OutputStandard OutputMode = iota
	OutputRaw
	OutputRESP
	OutputYAML
)

var outputModeNames = [...]string{
	OutputStandard: "standard",
	OutputRaw:      "raw",
	OutputRESP:     "resp",
	OutputYAML:     "yaml",
}

func (m OutputMode) String() string {
	if int(m) < len(outputModeNames) {
		return outputModeNames[m]
	}
	return fmt.Sprintf("OutputMode(%d)", m)
}

func ParseOutputMode(s string) (OutputMode, error) {
	for i, name := range outputModeNames {
		if strings.EqualFold(s, name) {
			return OutputMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown output mode %q", s)
}

// Preferences is the shape of the rc file:
//
//	prompt = "cache"
//	output = "yaml"
//	proto = 3
//
//	[log]
//	level = "debug"
//	filename = "/tmp/flatcli.log"
type Preferences struct {
	Prompt string     `toml:"prompt"`
	Output string     `toml:"output"`
	Proto  int        `toml:"proto"`
	Log    log.Config `toml:"log"`
}

type CliConfig struct {
	Output      OutputMode
	Proto       int
	Pipe        bool
	ExitOnError bool
	DbNum       int
	Repeat      int
	Prompt      string
	HistFile    string
	RCFile      string
	Log         log.Config

	ShowHelp    bool
	ShowVersion bool

	// Args is a one-shot command. Empty means read commands from stdin.
	Args []string
}

func defaultConfig(stdoutTTY bool) *CliConfig {
	cfg := &CliConfig{
		Output: OutputStandard,
		Proto:  resp.RESP2,
		Repeat: 1,
		Prompt: defaultPrompt,
		Log:    log.DefaultConfig(),
	}
	if !stdoutTTY {
		cfg.Output = OutputRaw
	}
	return cfg
}

// parseConfig layers defaults, the rc file and then args. Every problem
// found along the way is returned in one MultiError.
func parseConfig(args []string, stdoutTTY bool) (*CliConfig, error) {
	cfg := defaultConfig(stdoutTTY)
	cfg.HistFile = getDotfilePath(FlatCliHistFileEnv, FlatCliHistFileDefault)
	cfg.RCFile = getDotfilePath(FlatCliRCFileEnv, FlatCliRCFileDefault)

	var errs MultiError
	if cfg.RCFile != "" {
		errs = append(errs, loadPreferences(cfg, cfg.RCFile)...)
	}

	var raw, noRaw, respOut, yamlOut, resp2, resp3 bool
	flags := pflag.NewFlagSet("flatcli", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SetInterspersed(false)
	flags.BoolVar(&raw, "raw", false, "")
	flags.BoolVar(&noRaw, "no-raw", false, "")
	flags.BoolVar(&respOut, "resp", false, "")
	flags.BoolVar(&yamlOut, "yaml", false, "")
	flags.BoolVarP(&resp2, "resp2", "2", false, "")
	flags.BoolVarP(&resp3, "resp3", "3", false, "")
	flags.BoolVar(&cfg.Pipe, "pipe", false, "")
	flags.BoolVarP(&cfg.ExitOnError, "exit-error", "e", false, "")
	flags.IntVarP(&cfg.DbNum, "db", "n", cfg.DbNum, "")
	flags.IntVarP(&cfg.Repeat, "repeat", "r", cfg.Repeat, "")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "")
	flags.StringVar(&cfg.Log.Filename, "log-file", cfg.Log.Filename, "")
	flags.BoolVarP(&cfg.ShowHelp, "help", "h", false, "")
	flags.BoolVarP(&cfg.ShowVersion, "version", "v", false, "")

	if err := flags.Parse(args); err != nil {
		return nil, append(errs, err)
	}
	cfg.Args = flags.Args()

	picked := 0
	for _, o := range []struct {
		set  bool
		mode OutputMode
	}{{raw, OutputRaw}, {noRaw, OutputStandard}, {respOut, OutputRESP}, {yamlOut, OutputYAML}} {
		if o.set {
			cfg.Output = o.mode
			picked++
		}
	}
	if picked > 1 {
		errs = append(errs, ErrConflictingOutput)
	}

	switch {
	case resp2 && resp3:
		errs = append(errs, errors.New("-2 and -3 are mutually exclusive"))
	case resp2:
		cfg.Proto = resp.RESP2
	case resp3:
		cfg.Proto = resp.RESP3
	}
	if cfg.Repeat <= 0 {
		errs = append(errs, fmt.Errorf("invalid repeat count %d", cfg.Repeat))
	}
	if cfg.DbNum < 0 {
		errs = append(errs, fmt.Errorf("invalid database number %d", cfg.DbNum))
	}
	if cfg.Pipe && len(cfg.Args) > 0 {
		errs = append(errs, errors.New("--pipe reads commands from stdin and takes no command arguments"))
	}

	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadPreferences applies the rc file on top of cfg. A missing file is not
// an error.
func loadPreferences(cfg *CliConfig, path string) MultiError {
	prefs := Preferences{Log: cfg.Log, Proto: cfg.Proto}
	md, err := toml.DecodeFile(path, &prefs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return MultiError{fmt.Errorf("%s: %w", path, err)}
	}

	var errs MultiError
	for _, key := range md.Undecoded() {
		errs = append(errs, fmt.Errorf("%s: unknown preference %q", path, key.String()))
	}
	if prefs.Prompt != "" {
		cfg.Prompt = prefs.Prompt
	}
	if prefs.Output != "" {
		mode, err := ParseOutputMode(prefs.Output)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		} else {
			cfg.Output = mode
		}
	}
	if prefs.Proto != resp.RESP2 && prefs.Proto != resp.RESP3 {
		errs = append(errs, fmt.Errorf("%s: proto must be 2 or 3, got %d", path, prefs.Proto))
	} else {
		cfg.Proto = prefs.Proto
	}
	cfg.Log = prefs.Log
	return errs
}

// getDotfilePath returns the path of a dotfile in $HOME, or the path named
// by envOverride. "/dev/null" in the variable disables the file.
func getDotfilePath(envOverride, dotFilename string) string {
	if path := os.Getenv(envOverride); path != "" {
		if path == os.DevNull {
			return ""
		}
		return path
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, dotFilename)
	}
	return ""
}
