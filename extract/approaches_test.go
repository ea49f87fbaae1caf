package extract

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/testutil"
)

func TestLoadApproaches(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}, nil} {
		name := "default"
		if c != nil {
			name = c.Name()
		}

		t.Run(name, func(t *testing.T) {
			f, err := os.Open("testdata/cad.json")
			require.NoError(t, err)
			defer f.Close()

			approaches, report, err := LoadApproaches(f, c)
			require.NoError(t, err)
			require.Len(t, approaches, 6)

			assert.Equal(t, 7, report.Rows)
			assert.Equal(t, 6, report.Loaded)
			assert.Equal(t, []uint32{4}, report.DroppedRows())

			first := approaches[0]
			assert.Equal(t, "2021 AB", first.Designation)
			assert.Equal(t, testutil.At(2021, time.January, 1, 0, 0), first.Time)
			assert.InDelta(t, 0.2, first.Distance, 1e-9)
			assert.InDelta(t, 5.0, first.Velocity, 1e-9)
			assert.False(t, first.Linked())

			numeric := approaches[2]
			assert.Equal(t, "2020 XY", numeric.Designation)
			assert.InDelta(t, 0.05, numeric.Distance, 1e-9)
			assert.InDelta(t, 12.0, numeric.Velocity, 1e-9)

			assert.Equal(t, testutil.At(2021, time.February, 14, 0, 0), approaches[5].Time)
		})
	}
}

func TestLoadApproaches_Errors(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"BadTime", `["433","1","0","2021-13-01","0.1","0","0","1.0"]`, "cd"},
		{"BadDistance", `["433","1","0","2021-Jan-01 00:00","far","0","0","1.0"]`, "dist"},
		{"BadVelocity", `["433","1","0","2021-Jan-01 00:00","0.1","0","0",true]`, "v_rel"},
		{"ShortRow", `["433","1","0","2021-Jan-01 00:00"]`, "row"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := `{"data":[` + tt.data + `]}`

			_, _, err := LoadApproaches(strings.NewReader(in), nil)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 0, perr.Row)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestLoadApproaches_BlankDesignationDropped(t *testing.T) {
	in := `{"data":[["  ","1","0","garbage"],["433","1","0","2021-Jan-01 00:00","0.1","0","0","1.0"]]}`

	approaches, report, err := LoadApproaches(strings.NewReader(in), nil)
	require.NoError(t, err)
	require.Len(t, approaches, 1)
	assert.Equal(t, []uint32{0}, report.DroppedRows())
}

func TestLoadApproaches_KeepsRawDesignation(t *testing.T) {
	in := `{"data":[[" 433 ","1","0"," 2021-Jan-01 00:00 ","0.1","0","0","1.0"]]}`

	approaches, _, err := LoadApproaches(strings.NewReader(in), nil)
	require.NoError(t, err)
	require.Len(t, approaches, 1)
	assert.Equal(t, " 433 ", approaches[0].Designation)
	assert.Equal(t, 2021, approaches[0].Time.Year())
}

func TestLoadApproaches_InvalidJSON(t *testing.T) {
	_, _, err := LoadApproaches(strings.NewReader(`{"data": [`), nil)
	assert.Error(t, err)
}

func TestReport_String(t *testing.T) {
	r := newReport("cad.json")
	r.Rows = 3
	r.Loaded = 2
	r.drop(1)

	assert.Equal(t, "cad.json: 3 rows, 2 loaded, 1 dropped", r.String())
	assert.Equal(t, 0, Report{}.DroppedCount())
}
