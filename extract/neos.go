package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/neodb/model"
)

// NEO CSV column names.
const (
	ColDesignation = "pdes"
	ColName        = "name"
	ColHazardous   = "pha"
	ColDiameter    = "diameter"
)

var neoColumns = []string{ColDesignation, ColName, ColHazardous, ColDiameter}

// LoadNEOs reads NEOs from CSV with a header row. Columns are located by
// name; other columns are ignored.
//
// A row with a blank designation is dropped. A blank name means unnamed, a
// blank diameter means unknown (NaN), and only "Y" in the pha column marks an
// object as potentially hazardous.
func LoadNEOs(r io.Reader) ([]*model.NEO, Report, error) {
	return loadNEOs(r, "")
}

func loadNEOs(r io.Reader, source string) ([]*model.NEO, Report, error) {
	report := newReport(source)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, report, fmt.Errorf("%w: empty input, need %s", ErrMissingColumn, strings.Join(neoColumns, ","))
	}
	if err != nil {
		return nil, report, fmt.Errorf("extract: read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, report, err
	}

	var neos []*model.NEO
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, report, fmt.Errorf("extract: read row %d: %w", row, err)
		}
		report.Rows++

		raw := func(col string) string {
			if i := idx[col]; i < len(rec) {
				return rec[i]
			}
			return ""
		}
		get := func(col string) string { return strings.TrimSpace(raw(col)) }

		designation := raw(ColDesignation)
		if strings.TrimSpace(designation) == "" {
			report.drop(row)
			continue
		}

		diameter := math.NaN()
		if s := get(ColDiameter); s != "" {
			diameter, err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, report, &ParseError{Row: row, Field: ColDiameter, Value: s, Err: err}
			}
		}

		neos = append(neos, model.NewNEO(designation, raw(ColName), diameter, get(ColHazardous) == "Y"))
	}

	report.Loaded = len(neos)
	return neos, report, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(neoColumns))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}

	var missing []string
	for _, col := range neoColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}
