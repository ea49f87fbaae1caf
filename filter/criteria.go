package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/neodb/model"
)

// Criteria holds the optional user criteria for a query. A nil field does not
// filter at all; in particular Hazardous == nil is different from a pointer
// to false, which selects non-hazardous objects.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	DistanceMin *float64
	DistanceMax *float64
	VelocityMin *float64
	VelocityMax *float64
	DiameterMin *float64
	DiameterMax *float64

	Hazardous *bool
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return len(Create(c)) == 0
}

// Create builds the filters for the set criteria.
//
// The order is fixed: date, start date, end date, distance, velocity,
// diameter (min before max) and hazardous. Contradictory criteria are allowed
// and simply match nothing.
func Create(c Criteria) FilterSet {
	var fs FilterSet

	if c.Date != nil {
		fs = append(fs, DateFilter{Op: OpEqual, Value: *c.Date})
	}
	if c.StartDate != nil {
		fs = append(fs, DateFilter{Op: OpGreaterEqual, Value: *c.StartDate})
	}
	if c.EndDate != nil {
		fs = append(fs, DateFilter{Op: OpLessEqual, Value: *c.EndDate})
	}
	if c.DistanceMin != nil {
		fs = append(fs, DistanceFilter{Op: OpGreaterEqual, Value: *c.DistanceMin})
	}
	if c.DistanceMax != nil {
		fs = append(fs, DistanceFilter{Op: OpLessEqual, Value: *c.DistanceMax})
	}
	if c.VelocityMin != nil {
		fs = append(fs, VelocityFilter{Op: OpGreaterEqual, Value: *c.VelocityMin})
	}
	if c.VelocityMax != nil {
		fs = append(fs, VelocityFilter{Op: OpLessEqual, Value: *c.VelocityMax})
	}
	if c.DiameterMin != nil {
		fs = append(fs, DiameterFilter{Op: OpGreaterEqual, Value: *c.DiameterMin})
	}
	if c.DiameterMax != nil {
		fs = append(fs, DiameterFilter{Op: OpLessEqual, Value: *c.DiameterMax})
	}
	if c.Hazardous != nil {
		fs = append(fs, HazardousFilter{Op: OpEqual, Value: *c.Hazardous})
	}

	return fs
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Date returns a pointer to the UTC calendar date of t.
func Date(t time.Time) *time.Time {
	d := model.TruncateDate(t)
	return &d
}

// ParseFloat converts a numeric criterion. An empty string yields nil.
func ParseFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return &v, nil
}

// ParseDate converts a "YYYY-MM-DD" criterion. An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &t, nil
}
