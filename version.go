package main

// Set at link time:
//
//	go build -ldflags "-X main.gitSHA1=$(git rev-parse --short HEAD)"
var (
	gitSHA1  string = "unknown"
	gitDirty string = "unknown"
)

func FlatGitSHA1() string {
	return gitSHA1
}

func FlatGitDirty() string {
	return gitDirty
}
