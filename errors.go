package neodb

import (
	"errors"
	"fmt"
)

var (
	// ErrUnlinked is returned when a close approach references a designation
	// that no loaded NEO carries.
	ErrUnlinked = errors.New("close approach references an unknown NEO")

	// ErrAlreadyLinked is returned when New receives records that were linked before.
	ErrAlreadyLinked = errors.New("records are already linked")

	// ErrNilRecord is returned when New receives a nil NEO or close approach.
	ErrNilRecord = errors.New("nil record")
)

// ErrUnlinkedApproach identifies the first close approach that could not be
// linked. It satisfies errors.Is(err, ErrUnlinked).
type ErrUnlinkedApproach struct {
	Index       int
	Designation string
}

func (e *ErrUnlinkedApproach) Error() string {
	return fmt.Sprintf("close approach %d: no NEO with designation %q", e.Index, e.Designation)
}

func (e *ErrUnlinkedApproach) Unwrap() error { return ErrUnlinked }

// ErrQuery indicates that a filter failed while a query was running.
// Iteration stops at the failing close approach.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrQuery struct {
	// Index is the storage position of the close approach being filtered.
	Index int
	// Filter is the rendered filter that failed.
	Filter string
	cause  error
}

func (e *ErrQuery) Error() string {
	return fmt.Sprintf("query failed at close approach %d (%s): %v", e.Index, e.Filter, e.cause)
}

func (e *ErrQuery) Unwrap() error { return e.cause }
