package fixedarray

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by checked accessors when the index is outside [0, N).
	ErrOutOfRange = errors.New("index out of range")

	// ErrLength is raised by any indexed access on a zero-length array.
	ErrLength = errors.New("cannot access zero-length array")
)

// OutOfRangeError reports a checked access outside [0, Size).
//
// It wraps ErrOutOfRange, so errors.Is(err, ErrOutOfRange) holds.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Size)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// LengthError reports an indexed access on an Empty array.
//
// It wraps ErrLength, so errors.Is(err, ErrLength) holds.
type LengthError struct {
	Index int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("cannot access zero-length array: index %d", e.Index)
}

func (e *LengthError) Unwrap() error { return ErrLength }
