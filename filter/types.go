package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/neodb/model"
)

var (
	// ErrNotLinked is returned when a filter needs the NEO of an approach that
	// has not been linked.
	ErrNotLinked = errors.New("filter: close approach is not linked to an NEO")

	// ErrInvalidOperator is returned for an operator outside the supported set.
	ErrInvalidOperator = errors.New("filter: invalid operator")
)

// Operator represents a comparison operator for filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpLessEqual represents the less-than-or-equal operator.
	OpLessEqual Operator = "lte"
	// OpGreaterEqual represents the greater-than-or-equal operator.
	OpGreaterEqual Operator = "gte"
)

// Symbol returns the infix symbol of the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpEqual:
		return "=="
	case OpLessEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	default:
		return string(op)
	}
}

// Valid reports whether op is a supported operator.
func (op Operator) Valid() bool {
	switch op {
	case OpEqual, OpLessEqual, OpGreaterEqual:
		return true
	default:
		return false
	}
}

// Filter is a predicate over a single attribute of a close approach.
//
// Match returns an error when the attribute cannot be extracted, for example
// when an NEO attribute is requested from an unlinked approach.
type Filter interface {
	Match(ca *model.CloseApproach) (bool, error)
	String() string
}

// FilterSet is a conjunction of filters. The empty set matches everything.
type FilterSet []Filter

// NewFilterSet creates a new filter set.
func NewFilterSet(filters ...Filter) FilterSet {
	return FilterSet(filters)
}

// Match reports whether every filter in the set matches ca.
// Evaluation stops at the first filter that does not match or fails.
func (fs FilterSet) Match(ca *model.CloseApproach) (bool, error) {
	for _, f := range fs {
		ok, err := f.Match(ca)
		if err != nil {
			return false, fmt.Errorf("%s: %w", f, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// String renders the set as "f1 AND f2".
func (fs FilterSet) String() string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, " AND ")
}
