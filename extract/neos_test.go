package extract

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNEOs(t *testing.T) {
	f, err := os.Open("testdata/neos.csv")
	require.NoError(t, err)
	defer f.Close()

	neos, report, err := LoadNEOs(f)
	require.NoError(t, err)
	require.Len(t, neos, 4)

	assert.Equal(t, 5, report.Rows)
	assert.Equal(t, 4, report.Loaded)
	assert.Equal(t, []uint32{4}, report.DroppedRows())

	rocky := neos[0]
	assert.Equal(t, "2021 AB", rocky.Designation)
	assert.Equal(t, "Rocky", rocky.Name)
	assert.InDelta(t, 0.5, rocky.Diameter, 1e-9)
	assert.True(t, rocky.Hazardous)

	eros := neos[1]
	assert.False(t, eros.Hazardous)

	unnamed := neos[2]
	assert.Equal(t, "2020 XY", unnamed.Designation)
	assert.False(t, unnamed.HasName())
	assert.False(t, unnamed.HasDiameter())
	assert.False(t, unnamed.Hazardous)
}

func TestLoadNEOs_ColumnOrderIndependent(t *testing.T) {
	in := "diameter,pha,name,pdes\n1.5,Y,Foo,123\n"

	neos, _, err := LoadNEOs(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, neos, 1)
	assert.Equal(t, "123", neos[0].Designation)
	assert.Equal(t, "Foo", neos[0].Name)
	assert.InDelta(t, 1.5, neos[0].Diameter, 1e-9)
	assert.True(t, neos[0].Hazardous)
}

func TestLoadNEOs_ByteOrderMark(t *testing.T) {
	in := "\ufeffpdes,name,pha,diameter\n433,Eros,N,16.84\n"

	neos, _, err := LoadNEOs(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, neos, 1)
	assert.Equal(t, "433", neos[0].Designation)
}

func TestLoadNEOs_KeepsRawDesignationAndName(t *testing.T) {
	in := "pdes,name,pha,diameter\n 433 , Eros ,N, 16.84 \n"

	neos, _, err := LoadNEOs(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, neos, 1)
	assert.Equal(t, " 433 ", neos[0].Designation)
	assert.Equal(t, " Eros ", neos[0].Name)
	assert.InDelta(t, 16.84, neos[0].Diameter, 1e-9)
}

func TestLoadNEOs_HazardousOnlyOnY(t *testing.T) {
	in := "pdes,name,pha,diameter\n1,,y,\n2,,N,\n3,,,\n4,,Y,\n"

	neos, _, err := LoadNEOs(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, neos, 4)

	var hazardous []string
	for _, n := range neos {
		if n.Hazardous {
			hazardous = append(hazardous, n.Designation)
		}
	}
	assert.Equal(t, []string{"4"}, hazardous)
}

func TestLoadNEOs_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, _, err := LoadNEOs(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("MissingColumn", func(t *testing.T) {
		_, _, err := LoadNEOs(strings.NewReader("pdes,name\n433,Eros\n"))
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "pha")
		assert.Contains(t, err.Error(), "diameter")
	})

	t.Run("BadDiameter", func(t *testing.T) {
		in := "pdes,name,pha,diameter\n433,Eros,N,16.84\n1,,N,big\n"

		_, _, err := LoadNEOs(strings.NewReader(in))

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 1, perr.Row)
		assert.Equal(t, ColDiameter, perr.Field)
		assert.Equal(t, "big", perr.Value)
	})
}
