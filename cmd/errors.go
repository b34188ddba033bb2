package cmd

import (
	"errors"
	"strings"
)

// MultiError collects every configuration problem so they can be reported
// together instead of one per run.
type MultiError []error

func (m MultiError) Error() string {
	if len(m) == 1 {
		return m[0].Error()
	}
	var b strings.Builder
	b.WriteString("multiple errors:")
	for _, err := range m {
		b.WriteString("\n- " + err.Error())
	}
	return b.String()
}

// ErrOrNil returns nil when nothing was collected.
func (m MultiError) ErrOrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

var ErrConflictingOutput = errors.New("only one of --raw, --no-raw, --resp, --yaml may be given")
