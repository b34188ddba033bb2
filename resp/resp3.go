package resp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fzft/go-flatmap/flatmap"
)

// RESP3 is a RESP3 protocol parser and serializer.
// https://github.com/redis/redis-specifications/blob/master/protocol/RESP3.md

// Types introduced by RESP3
const (
	TypeNull      byte = '_'
	TypeDouble    byte = ','
	TypeBoolean   byte = '#'
	TypeBlobError byte = '!'
	TypeVerbatim  byte = '='
	TypeMap       byte = '%'
	TypeSet       byte = '~'
	TypeAttribute byte = '|'
	TypePush      byte = '>'
	TypeBignum    byte = '('
)

type Double struct {
	Value float64
}

type Boolean struct {
	Value bool
}

type BlobError struct {
	Message string
}

type VerbatimString struct {
	Format string
	Value  string
}

type BigNum struct {
	Value string
}

// Array represents an array in RESP
type Array struct {
	Elements []Node
}

// Map keeps its pairs in wire order.
type Map struct {
	Elements []flatmap.Entry[Node, Node]
}

type Set struct {
	Elements []Node
}

type Push struct {
	Elements []Node
}

// Limits match the redis server defaults.
const (
	maxBulkLen      = 512 << 20
	maxAggregateLen = 1<<31 - 1
)

// Parse decodes one message from data and returns it with the unread rest.
// ErrIncomplete means data ends before the message does.
func Parse(data []byte) (Node, []byte, error) {
	if len(data) == 0 {
		return nil, data, ErrIncomplete
	}
	typ := data[0]
	line, rest, err := readLine(data[1:])
	if err != nil {
		return nil, data, err
	}

	switch typ {
	case TypeArray, TypeSet, TypePush:
		count, err := parseLength(line)
		if err != nil {
			return nil, data, err
		}
		if count < 0 {
			return Null{}, rest, nil
		}
		if err := checkCount(count, rest, 3); err != nil {
			return nil, data, err
		}
		elems := make([]Node, count)
		for i := 0; i < count; i++ {
			elems[i], rest, err = Parse(rest)
			if err != nil {
				return nil, data, err
			}
		}
		switch typ {
		case TypeSet:
			return Set{Elements: elems}, rest, nil
		case TypePush:
			return Push{Elements: elems}, rest, nil
		}
		return Array{Elements: elems}, rest, nil

	case TypeMap, TypeAttribute:
		count, err := parseLength(line)
		if err != nil || count < 0 {
			return nil, data, ErrProtocol
		}
		if err := checkCount(count, rest, 6); err != nil {
			return nil, data, err
		}
		pairs := make([]flatmap.Entry[Node, Node], count)
		for i := 0; i < count; i++ {
			if pairs[i].Key, rest, err = Parse(rest); err != nil {
				return nil, data, err
			}
			if pairs[i].Value, rest, err = Parse(rest); err != nil {
				return nil, data, err
			}
		}
		if typ == TypeMap {
			return Map{Elements: pairs}, rest, nil
		}
		// Attributes decorate the reply that follows; only the reply is kept.
		payload, tail, err := Parse(rest)
		if err != nil {
			return nil, data, err
		}
		return payload, tail, nil

	case TypeBlob, TypeBlobError, TypeVerbatim:
		length, err := parseLength(line)
		if err != nil {
			return nil, data, err
		}
		if length < 0 {
			return Null{}, rest, nil
		}
		if length > maxBulkLen {
			return nil, data, fmt.Errorf("%w: invalid bulk length %d", ErrProtocol, length)
		}
		if length > len(rest)-2 {
			return nil, data, ErrIncomplete
		}
		if !bytes.Equal(rest[length:length+2], []byte(CRLF)) {
			return nil, data, ErrProtocol
		}
		payload := string(rest[:length])
		rest = rest[length+2:]
		switch typ {
		case TypeBlobError:
			return BlobError{Message: payload}, rest, nil
		case TypeVerbatim:
			if len(payload) < 4 || payload[3] != ':' {
				return nil, data, ErrProtocol
			}
			return VerbatimString{Format: payload[:3], Value: payload[4:]}, rest, nil
		}
		return BlobString{Value: payload}, rest, nil

	case TypeInteger:
		num, err := strconv.Atoi(string(line))
		if err != nil {
			return nil, data, ErrProtocol
		}
		return Integer{Value: num}, rest, nil

	case TypeSimple:
		return SimpleString{Value: string(line)}, rest, nil

	case TypeError:
		return Error{Message: string(line)}, rest, nil

	case TypeBoolean:
		switch string(line) {
		case "t":
			return Boolean{Value: true}, rest, nil
		case "f":
			return Boolean{Value: false}, rest, nil
		}
		return nil, data, ErrProtocol

	case TypeNull:
		if len(line) != 0 {
			return nil, data, ErrProtocol
		}
		return Null{}, rest, nil

	case TypeDouble:
		value, err := strconv.ParseFloat(string(line), 64)
		if err != nil {
			return nil, data, ErrProtocol
		}
		return Double{Value: value}, rest, nil

	case TypeBignum:
		return BigNum{Value: string(line)}, rest, nil
	}
	return nil, data, fmt.Errorf("%w: unknown type byte %q", ErrProtocol, typ)
}

func readLine(data []byte) (line, rest []byte, err error) {
	i := bytes.Index(data, []byte(CRLF))
	if i < 0 {
		return nil, data, ErrIncomplete
	}
	return data[:i], data[i+2:], nil
}

// checkCount rejects counts no valid message could carry and reports
// ErrIncomplete while rest is too short to hold count elements of at least
// minSize bytes each, before anything is allocated.
func checkCount(count int, rest []byte, minSize int) error {
	if count > maxAggregateLen {
		return fmt.Errorf("%w: invalid multibulk length %d", ErrProtocol, count)
	}
	if count > len(rest)/minSize {
		return ErrIncomplete
	}
	return nil
}

func parseLength(line []byte) (int, error) {
	n, err := strconv.Atoi(string(line))
	if err != nil || n < -1 {
		return 0, ErrProtocol
	}
	return n, nil
}

// CommandArgs turns a parsed request back into argv. Requests must be arrays
// of bulk or simple strings.
func CommandArgs(n Node) ([]string, error) {
	arr, ok := n.(Array)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %T", ErrProtocol, n)
	}
	argv := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		switch v := e.(type) {
		case BlobString:
			argv[i] = v.Value
		case SimpleString:
			argv[i] = v.Value
		default:
			return nil, fmt.Errorf("%w: argument %d is %T", ErrProtocol, i, e)
		}
	}
	return argv, nil
}
