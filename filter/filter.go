package filter

import (
	"cmp"
	"fmt"
	"time"

	"github.com/hupe1980/neodb/model"
)

// DesignationFilter compares the primary designation of the approach's NEO.
type DesignationFilter struct {
	Op    Operator
	Value string
}

// Match implements Filter.
func (f DesignationFilter) Match(ca *model.CloseApproach) (bool, error) {
	neo, err := linkedNEO(ca)
	if err != nil {
		return false, err
	}
	return compare(f.Op, neo.Designation, f.Value)
}

func (f DesignationFilter) String() string {
	return fmt.Sprintf("designation %s %q", f.Op.Symbol(), f.Value)
}

// DateFilter compares the calendar date (UTC) of the approach.
// The clock part of Value is ignored.
type DateFilter struct {
	Op    Operator
	Value time.Time
}

// Match implements Filter.
func (f DateFilter) Match(ca *model.CloseApproach) (bool, error) {
	return compareTime(f.Op, ca.Date(), model.TruncateDate(f.Value))
}

func (f DateFilter) String() string {
	return fmt.Sprintf("date %s %s", f.Op.Symbol(), f.Value.UTC().Format(model.DateLayout))
}

// DistanceFilter compares the nominal approach distance in au.
type DistanceFilter struct {
	Op    Operator
	Value float64
}

// Match implements Filter.
func (f DistanceFilter) Match(ca *model.CloseApproach) (bool, error) {
	return compare(f.Op, ca.Distance, f.Value)
}

func (f DistanceFilter) String() string {
	return fmt.Sprintf("distance %s %g", f.Op.Symbol(), f.Value)
}

// VelocityFilter compares the relative approach velocity in km/s.
type VelocityFilter struct {
	Op    Operator
	Value float64
}

// Match implements Filter.
func (f VelocityFilter) Match(ca *model.CloseApproach) (bool, error) {
	return compare(f.Op, ca.Velocity, f.Value)
}

func (f VelocityFilter) String() string {
	return fmt.Sprintf("velocity %s %g", f.Op.Symbol(), f.Value)
}

// DiameterFilter compares the diameter of the approach's NEO in km.
// An unknown (NaN) diameter never matches.
type DiameterFilter struct {
	Op    Operator
	Value float64
}

// Match implements Filter.
func (f DiameterFilter) Match(ca *model.CloseApproach) (bool, error) {
	neo, err := linkedNEO(ca)
	if err != nil {
		return false, err
	}
	return compare(f.Op, neo.Diameter, f.Value)
}

func (f DiameterFilter) String() string {
	return fmt.Sprintf("diameter %s %g", f.Op.Symbol(), f.Value)
}

// HazardousFilter compares the hazardous flag of the approach's NEO.
// For ordering operators false sorts before true.
type HazardousFilter struct {
	Op    Operator
	Value bool
}

// Match implements Filter.
func (f HazardousFilter) Match(ca *model.CloseApproach) (bool, error) {
	neo, err := linkedNEO(ca)
	if err != nil {
		return false, err
	}
	return compare(f.Op, boolRank(neo.Hazardous), boolRank(f.Value))
}

func (f HazardousFilter) String() string {
	return fmt.Sprintf("hazardous %s %t", f.Op.Symbol(), f.Value)
}

func linkedNEO(ca *model.CloseApproach) (*model.NEO, error) {
	if ca.NEO == nil {
		return nil, ErrNotLinked
	}
	return ca.NEO, nil
}

// compare evaluates "a op b". NaN operands never match.
func compare[T cmp.Ordered](op Operator, a, b T) (bool, error) {
	switch op {
	case OpEqual:
		return a == b, nil
	case OpLessEqual:
		return a <= b, nil
	case OpGreaterEqual:
		return a >= b, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}
}

func compareTime(op Operator, a, b time.Time) (bool, error) {
	switch op {
	case OpEqual:
		return a.Equal(b), nil
	case OpLessEqual:
		return !a.After(b), nil
	case OpGreaterEqual:
		return !a.Before(b), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
