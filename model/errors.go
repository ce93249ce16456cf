package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension is returned when rows or columns are not positive.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidProbability is returned when a fill probability is outside [0, 1].
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrInvalidIterations is returned for a negative iteration limit.
	ErrInvalidIterations = errors.New("invalid iteration count")
	// ErrFormat is the sentinel behind every FormatError.
	ErrFormat = errors.New("malformed grid input")
)

// FormatError describes malformed tabular grid input
type FormatError struct {
	Line   int // 1-based row of the offending input, 0 when not tied to a row
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrFormat, e.Line, e.Reason)
	}
	return fmt.Sprintf("%v: %s", ErrFormat, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }
