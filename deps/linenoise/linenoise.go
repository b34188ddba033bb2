package linenoise

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const clearSeq = "\x1b[H\x1b[2J"

// LineNoise is the line editor behind the interactive prompt. It takes over
// the terminal when created, so it must be closed before exit.
type LineNoise struct {
	*liner.State
}

func New() *LineNoise {
	ln := &LineNoise{liner.NewLiner()}
	ln.SetCtrlCAborts(true)
	return ln
}

// SetWordCompleter completes the first word of the line from words,
// case-insensitively. The rest of the line is left alone.
func (ln *LineNoise) SetWordCompleter(words []string) {
	ln.SetCompleter(func(line string) []string {
		return Complete(words, line)
	})
}

func Complete(words []string, line string) []string {
	if line == "" || strings.ContainsAny(line, " \t") {
		return nil
	}
	upper := strings.ToUpper(line)
	var out []string
	for _, w := range words {
		if strings.HasPrefix(strings.ToUpper(w), upper) {
			out = append(out, w)
		}
	}
	return out
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

func ClearScreen(w io.Writer) error {
	_, err := fmt.Fprint(w, clearSeq)
	return err
}
