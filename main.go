package main

import (
	"os"

	"github.com/fzft/go-flatmap/cmd"
)

func main() {
	cli := cmd.New(os.Stdin, os.Stdout, os.Stderr)
	cli.Build = cmd.BuildInfo{GitSHA1: FlatGitSHA1(), GitDirty: FlatGitDirty()}
	os.Exit(cli.Run(os.Args[1:]))
}
