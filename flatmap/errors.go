package flatmap

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey = errors.New("flatmap: duplicate key")
	ErrWrongCount   = errors.New("flatmap: wrong number of entries")
)

// DuplicateKeyError reports the first pair of positions holding equal keys.
type DuplicateKeyError struct {
	Key    any
	First  int
	Second int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("flatmap: duplicate key %v at positions %d and %d", e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// WrongCountError is returned when a fixed container is given the wrong
// number of entries.
type WrongCountError struct {
	Want int
	Got  int
}

func (e *WrongCountError) Error() string {
	return fmt.Sprintf("flatmap: wrong number of entries: want %d, got %d", e.Want, e.Got)
}

func (e *WrongCountError) Is(target error) bool {
	return target == ErrWrongCount
}
