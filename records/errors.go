package records

import (
	"errors"
	"fmt"
)

// ErrInvalidHeaderIndex is matched (with errors.Is) by every HeaderIndexError.
var ErrInvalidHeaderIndex = errors.New("invalid header index")

// HeaderIndexError reports a header row index outside the grid.
type HeaderIndexError struct {
	Index int
	Rows  int
}

func (e *HeaderIndexError) Error() string {
	return fmt.Sprintf("invalid header index %d - expected 0 to %d", e.Index, e.Rows-1)
}

func (e *HeaderIndexError) Unwrap() error {
	return ErrInvalidHeaderIndex
}
