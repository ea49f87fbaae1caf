package extract

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when the NEO header lacks a required column.
var ErrMissingColumn = errors.New("extract: missing column")

// ParseError reports a malformed value. Row is the zero-based index of the
// data row, not counting any header.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("extract: row %d, field %s: %v", e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("extract: row %d, field %s: invalid value %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
