package resp

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders a reply for a terminal the way redis-cli does: quoted
// strings, typed scalars and numbered aggregates. Every line ends in '\n'.
func Format(n Node) string {
	var b strings.Builder
	formatTTY(&b, n, 0)
	return b.String()
}

// FormatRaw renders a reply with no decoration, one scalar per line, which
// is what redis-cli prints when stdout is not a terminal.
func FormatRaw(n Node) string {
	var b strings.Builder
	formatRaw(&b, n)
	return b.String()
}

func formatTTY(b *strings.Builder, n Node, indent int) {
	switch v := n.(type) {
	case Array:
		formatElements(b, v.Elements, ')', "(empty array)", indent)
	case Set:
		formatElements(b, v.Elements, '~', "(empty set)", indent)
	case Push:
		formatElements(b, v.Elements, ')', "(empty array)", indent)
	case Map:
		if len(v.Elements) == 0 {
			b.WriteString("(empty hash)\n")
			return
		}
		width := len(strconv.Itoa(len(v.Elements)))
		for i, pair := range v.Elements {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", indent))
			}
			head := fmt.Sprintf("%*d# ", width, i+1)
			key := strings.TrimSuffix(Format(pair.Key), "\n")
			b.WriteString(head)
			b.WriteString(key)
			b.WriteString(" => ")
			formatTTY(b, pair.Value, indent+len(head)+len(key)+4)
		}
	default:
		b.WriteString(formatScalar(n))
		b.WriteByte('\n')
	}
}

func formatElements(b *strings.Builder, elems []Node, sep byte, empty string, indent int) {
	if len(elems) == 0 {
		b.WriteString(empty)
		b.WriteByte('\n')
		return
	}
	width := len(strconv.Itoa(len(elems)))
	for i, elem := range elems {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", indent))
		}
		fmt.Fprintf(b, "%*d%c ", width, i+1, sep)
		formatTTY(b, elem, indent+width+2)
	}
}

func formatScalar(n Node) string {
	switch v := n.(type) {
	case SimpleString:
		return v.Value
	case BlobString:
		return strconv.Quote(v.Value)
	case VerbatimString:
		return v.Value
	case Integer:
		return "(integer) " + strconv.Itoa(v.Value)
	case Double:
		return "(double) " + formatDouble(v.Value)
	case BigNum:
		return "(big number) " + v.Value
	case Boolean:
		if v.Value {
			return "(true)"
		}
		return "(false)"
	case Error:
		return "(error) " + v.Message
	case BlobError:
		return "(error) " + v.Message
	case Null, nil:
		return "(nil)"
	}
	return fmt.Sprintf("(unknown) %v", n)
}

func formatRaw(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Array:
		for _, e := range v.Elements {
			formatRaw(b, e)
		}
	case Set:
		for _, e := range v.Elements {
			formatRaw(b, e)
		}
	case Push:
		for _, e := range v.Elements {
			formatRaw(b, e)
		}
	case Map:
		for _, pair := range v.Elements {
			formatRaw(b, pair.Key)
			formatRaw(b, pair.Value)
		}
	case SimpleString:
		b.WriteString(v.Value + "\n")
	case BlobString:
		b.WriteString(v.Value + "\n")
	case VerbatimString:
		b.WriteString(v.Value + "\n")
	case Integer:
		b.WriteString(strconv.Itoa(v.Value) + "\n")
	case Double:
		b.WriteString(formatDouble(v.Value) + "\n")
	case BigNum:
		b.WriteString(v.Value + "\n")
	case Boolean:
		if v.Value {
			b.WriteString("1\n")
		} else {
			b.WriteString("0\n")
		}
	case Error:
		b.WriteString(v.Message + "\n")
	case BlobError:
		b.WriteString(v.Message + "\n")
	default:
		b.WriteString("\n")
	}
}
