package resp

import (
	"errors"
	"strings"
)

const CRLF string = "\r\n"

// Types equivalent to RESP version 2
const (
	TypeArray   byte = '*'
	TypeBlob    byte = '$'
	TypeSimple  byte = '+'
	TypeError   byte = '-'
	TypeInteger byte = ':'
)

var (
	ErrIncomplete = errors.New("resp: incomplete message")
	ErrProtocol   = errors.New("resp: protocol error")
)

type Node interface {
}

type BlobString struct {
	Value string
}

type SimpleString struct {
	Value string
}

type Error struct {
	Message string
}

type Integer struct {
	Value int
}

type Null struct {
}

var (
	OK       = SimpleString{Value: "OK"}
	NullNode = Null{}
)

var lineBreaks = strings.NewReplacer("\r", " ", "\n", " ")

// Err builds a generic error reply. Error replies are a single line on the
// wire, so CR and LF in msg become spaces.
func Err(msg string) Error {
	return Error{Message: "ERR " + lineBreaks.Replace(msg)}
}

func Blob(s string) BlobString {
	return BlobString{Value: s}
}

func Int(n int) Integer {
	return Integer{Value: n}
}

// Bool is an Integer reply of 1 or 0.
func Bool(b bool) Integer {
	if b {
		return Integer{Value: 1}
	}
	return Integer{Value: 0}
}

// BlobArray wraps strings as an array of bulk strings.
func BlobArray(items []string) Array {
	elems := make([]Node, len(items))
	for i, s := range items {
		elems[i] = BlobString{Value: s}
	}
	return Array{Elements: elems}
}
