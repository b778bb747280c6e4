package board

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange           = errors.New("index out of range")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownDirection     = errors.New("unknown direction")
)

// OutOfRangeError reports a coordinate outside the board.
type OutOfRangeError struct {
	Axis  string // "row" or "column"
	Index int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range %d..%d", e.Axis, e.Index, e.Min, e.Max)
}

// Is lets errors.Is(err, ErrOutOfRange) match.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
