package model

import (
	"fmt"
	"math"
	"time"
)

const (
	// CalendarLayout is the time layout of close-approach source data.
	CalendarLayout = "2006-Jan-02 15:04"
	// OutputLayout is the time layout used in exported results.
	OutputLayout = "2006-01-02 15:04"
	// DateLayout is the layout of a calendar date.
	DateLayout = "2006-01-02"
)

// NEO is a near-Earth object.
//
// Name is empty when the object is unnamed. Diameter is NaN when unknown.
type NEO struct {
	Designation string
	Name        string
	Diameter    float64
	Hazardous   bool

	// Approaches is filled in by the database when it links the data set.
	Approaches []*CloseApproach
}

// NewNEO returns an unlinked NEO. An empty name marks the object as unnamed.
func NewNEO(designation, name string, diameter float64, hazardous bool) *NEO {
	return &NEO{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
	}
}

// HasName reports whether the NEO has a name.
func (n *NEO) HasName() bool {
	return n.Name != ""
}

// HasDiameter reports whether the diameter is known.
func (n *NEO) HasDiameter() bool {
	return !math.IsNaN(n.Diameter)
}

// FullName returns "designation (name)", or the designation alone for unnamed objects.
func (n *NEO) FullName() string {
	if n.HasName() {
		return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
	}
	return n.Designation
}

// String returns a human-readable description of the NEO.
func (n *NEO) String() string {
	diameter := "an unknown diameter"
	if n.HasDiameter() {
		diameter = fmt.Sprintf("a diameter of %.3f km", n.Diameter)
	}
	hazard := "is not"
	if n.Hazardous {
		hazard = "is"
	}
	return fmt.Sprintf("NEO %s has %s and %s potentially hazardous.", n.FullName(), diameter, hazard)
}

// CloseApproach is a single close approach of an NEO to Earth.
type CloseApproach struct {
	// Designation is the primary designation of the approaching NEO.
	Designation string
	// Time is the approach time in UTC.
	Time time.Time
	// Distance is the nominal approach distance in astronomical units.
	Distance float64
	// Velocity is the velocity relative to Earth in km/s.
	Velocity float64

	// NEO is nil until the approach is linked.
	NEO *NEO
}

// NewCloseApproach returns an unlinked close approach.
func NewCloseApproach(designation string, t time.Time, distance, velocity float64) *CloseApproach {
	return &CloseApproach{
		Designation: designation,
		Time:        t.UTC(),
		Distance:    distance,
		Velocity:    velocity,
	}
}

// Linked reports whether the approach references its NEO.
func (a *CloseApproach) Linked() bool {
	return a.NEO != nil
}

// TimeString formats the approach time for output.
func (a *CloseApproach) TimeString() string {
	return FormatTime(a.Time)
}

// Date returns the approach time truncated to its UTC calendar date.
func (a *CloseApproach) Date() time.Time {
	return TruncateDate(a.Time)
}

// String returns a human-readable description of the approach.
func (a *CloseApproach) String() string {
	name := a.Designation
	if a.NEO != nil {
		name = a.NEO.FullName()
	}
	return fmt.Sprintf("At %s, '%s' approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		a.TimeString(), name, a.Distance, a.Velocity)
}

// ParseTime parses a close-approach calendar time such as "2020-Jan-01 12:30".
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(CalendarLayout, s, time.UTC)
}

// FormatTime formats t as "2006-01-02 15:04" in UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(OutputLayout)
}

// ParseDate parses a calendar date such as "2020-01-01" at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// TruncateDate drops the clock part of t, keeping its UTC calendar date.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
