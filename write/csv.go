package write

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/model"
)

// CSVHeader is the header row of CSV output.
var CSVHeader = []string{
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
}

// WriteCSV writes a header and one row per approach, in sequence order, and
// returns the number of rows written. An error from results aborts the write.
func WriteCSV(w io.Writer, results iter.Seq2[*model.CloseApproach, error]) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return 0, err
	}

	n := 0
	row := make([]string, len(CSVHeader))
	for ca, err := range results {
		if err != nil {
			return n, err
		}
		if err := csvRow(row, n, ca); err != nil {
			return n, err
		}
		if err := cw.Write(row); err != nil {
			return n, err
		}
		n++
	}

	cw.Flush()
	return n, cw.Error()
}

func csvRow(row []string, i int, ca *model.CloseApproach) error {
	if ca == nil || ca.NEO == nil {
		return unlinked(i, ca)
	}

	row[0] = ca.TimeString()
	row[1] = formatFloat(ca.Distance)
	row[2] = formatFloat(ca.Velocity)
	row[3] = ca.Designation
	row[4] = ca.NEO.Name
	row[5] = formatFloat(ca.NEO.Diameter)
	row[6] = formatBool(ca.NEO.Hazardous)
	return nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func unlinked(i int, ca *model.CloseApproach) error {
	if ca == nil {
		return fmt.Errorf("write: result %d: %w", i, neodb.ErrNilRecord)
	}
	return fmt.Errorf("write: result %d: %w", i, &neodb.ErrUnlinkedApproach{Index: i, Designation: ca.Designation})
}
