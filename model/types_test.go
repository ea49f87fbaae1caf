package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNEO(t *testing.T) {
	tests := []struct {
		name     string
		neo      *NEO
		fullName string
		str      string
	}{
		{
			name:     "Named",
			neo:      NewNEO("433", "Eros", 16.84, false),
			fullName: "433 (Eros)",
			str:      "NEO 433 (Eros) has a diameter of 16.840 km and is not potentially hazardous.",
		},
		{
			name:     "Unnamed",
			neo:      NewNEO("2020 XY", "", 0.25, true),
			fullName: "2020 XY",
			str:      "NEO 2020 XY has a diameter of 0.250 km and is potentially hazardous.",
		},
		{
			name:     "UnknownDiameter",
			neo:      NewNEO("2020 XY", "", math.NaN(), false),
			fullName: "2020 XY",
			str:      "NEO 2020 XY has an unknown diameter and is not potentially hazardous.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fullName, tt.neo.FullName())
			assert.Equal(t, tt.str, tt.neo.String())
			assert.Empty(t, tt.neo.Approaches)
		})
	}

	assert.False(t, NewNEO("1", "", 1, false).HasName())
	assert.False(t, NewNEO("1", "", math.NaN(), false).HasDiameter())
}

func TestCloseApproach(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ca := NewCloseApproach("2021 AB", time.Date(2021, 1, 1, 2, 0, 0, 0, loc), 0.2, 5)

	assert.Equal(t, time.UTC, ca.Time.Location())
	assert.Equal(t, "2021-01-01 00:00", ca.TimeString())
	assert.False(t, ca.Linked())
	assert.Equal(t, "At 2021-01-01 00:00, '2021 AB' approaches Earth at a distance of 0.20 au and a velocity of 5.00 km/s.", ca.String())

	ca.NEO = NewNEO("2021 AB", "Rocky", 0.5, true)
	assert.True(t, ca.Linked())
	assert.Contains(t, ca.String(), "'2021 AB (Rocky)'")
}

func TestTime(t *testing.T) {
	ts, err := ParseTime("2020-Jan-01 12:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.January, 1, 12, 30, 0, 0, time.UTC), ts)
	assert.Equal(t, "2020-01-01 12:30", FormatTime(ts))

	_, err = ParseTime("2020-01-01 12:30")
	assert.Error(t, err)

	d, err := ParseDate("2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, TruncateDate(ts), d)

	ca := NewCloseApproach("x", ts, 0, 0)
	assert.Equal(t, d, ca.Date())
}
