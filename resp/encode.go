package resp

import (
	"math"
	"strconv"
)

// Protocol versions understood by Encoder.
const (
	RESP2 = 2
	RESP3 = 3
)

// Encoder serializes replies. With RESP2 the RESP3-only types are lowered the
// way a redis server does for a client that never sent HELLO 3: maps and
// sets become flat arrays, booleans become integers, doubles and big numbers
// become bulk strings and null becomes a null bulk string.
type Encoder struct {
	Proto int
}

func (e Encoder) Encode(n Node) []byte {
	return e.Append(nil, n)
}

// Append appends the encoding of n to buf.
func (e Encoder) Append(buf []byte, n Node) []byte {
	resp3 := e.Proto >= RESP3
	switch v := n.(type) {
	case SimpleString:
		return appendLine(buf, TypeSimple, v.Value)
	case Error:
		return appendLine(buf, TypeError, v.Message)
	case Integer:
		return appendLine(buf, TypeInteger, strconv.Itoa(v.Value))
	case BlobString:
		return appendBlob(buf, TypeBlob, v.Value)
	case Null, nil:
		if resp3 {
			return append(buf, TypeNull, '\r', '\n')
		}
		return append(buf, "$-1\r\n"...)
	case Boolean:
		if resp3 {
			if v.Value {
				return append(buf, "#t\r\n"...)
			}
			return append(buf, "#f\r\n"...)
		}
		if v.Value {
			return appendLine(buf, TypeInteger, "1")
		}
		return appendLine(buf, TypeInteger, "0")
	case Double:
		s := formatDouble(v.Value)
		if resp3 {
			return appendLine(buf, TypeDouble, s)
		}
		return appendBlob(buf, TypeBlob, s)
	case BigNum:
		if resp3 {
			return appendLine(buf, TypeBignum, v.Value)
		}
		return appendBlob(buf, TypeBlob, v.Value)
	case BlobError:
		if resp3 {
			return appendBlob(buf, TypeBlobError, v.Message)
		}
		return appendLine(buf, TypeError, v.Message)
	case VerbatimString:
		if resp3 {
			return appendBlob(buf, TypeVerbatim, v.Format+":"+v.Value)
		}
		return appendBlob(buf, TypeBlob, v.Value)
	case Array:
		return e.appendAggregate(buf, TypeArray, v.Elements)
	case Set:
		if resp3 {
			return e.appendAggregate(buf, TypeSet, v.Elements)
		}
		return e.appendAggregate(buf, TypeArray, v.Elements)
	case Push:
		if resp3 {
			return e.appendAggregate(buf, TypePush, v.Elements)
		}
		return e.appendAggregate(buf, TypeArray, v.Elements)
	case Map:
		if resp3 {
			buf = appendLine(buf, TypeMap, strconv.Itoa(len(v.Elements)))
		} else {
			buf = appendLine(buf, TypeArray, strconv.Itoa(2*len(v.Elements)))
		}
		for _, pair := range v.Elements {
			buf = e.Append(buf, pair.Key)
			buf = e.Append(buf, pair.Value)
		}
		return buf
	}
	return appendLine(buf, TypeError, "ERR unencodable reply")
}

func (e Encoder) appendAggregate(buf []byte, typ byte, elems []Node) []byte {
	buf = appendLine(buf, typ, strconv.Itoa(len(elems)))
	for _, elem := range elems {
		buf = e.Append(buf, elem)
	}
	return buf
}

func appendLine(buf []byte, typ byte, s string) []byte {
	buf = append(buf, typ)
	buf = append(buf, s...)
	return append(buf, '\r', '\n')
}

func appendBlob(buf []byte, typ byte, s string) []byte {
	buf = append(buf, typ)
	buf = strconv.AppendInt(buf, int64(len(s)), 10)
	buf = append(buf, '\r', '\n')
	buf = append(buf, s...)
	return append(buf, '\r', '\n')
}

func formatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
