package extract

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/model"
)

// Positions of the used fields in a close-approach data row.
const (
	FieldDesignation = 0
	FieldTime        = 3
	FieldDistance    = 4
	FieldVelocity    = 7
)

var fieldNames = map[int]string{
	FieldDesignation: "des",
	FieldTime:        "cd",
	FieldDistance:    "dist",
	FieldVelocity:    "v_rel",
}

var errShortRow = errors.New("row has too few fields")

// cadDocument is the close-approach JSON layout. Only data is used.
type cadDocument struct {
	Fields []string `json:"fields"`
	Data   [][]any  `json:"data"`
}

// LoadApproaches reads close approaches from a JSON object whose "data" member
// is an array of positional rows. Values may be strings or numbers.
//
// Rows with a null or blank designation are dropped. A short row, an
// unparseable time or a non-numeric distance or velocity aborts the load
// with a *ParseError. A nil codec selects codec.Default.
func LoadApproaches(r io.Reader, c codec.Codec) ([]*model.CloseApproach, Report, error) {
	return loadApproaches(r, c, "")
}

func loadApproaches(r io.Reader, c codec.Codec, source string) ([]*model.CloseApproach, Report, error) {
	report := newReport(source)
	if c == nil {
		c = codec.Default
	}

	var doc cadDocument
	if err := c.NewDecoder(r).Decode(&doc); err != nil {
		return nil, report, fmt.Errorf("extract: decode close approaches: %w", err)
	}

	approaches := make([]*model.CloseApproach, 0, len(doc.Data))
	for row, rec := range doc.Data {
		report.Rows++

		if len(rec) == 0 || isBlank(rec[FieldDesignation]) {
			report.drop(row)
			continue
		}
		if len(rec) <= FieldVelocity {
			return nil, report, &ParseError{Row: row, Field: "row", Err: fmt.Errorf("%w: got %d, need %d", errShortRow, len(rec), FieldVelocity+1)}
		}

		ca, err := parseApproach(row, rec)
		if err != nil {
			return nil, report, err
		}
		approaches = append(approaches, ca)
	}

	report.Loaded = len(approaches)
	return approaches, report, nil
}

func parseApproach(row int, rec []any) (*model.CloseApproach, error) {
	designation := toString(rec[FieldDesignation])

	ts := toString(rec[FieldTime])
	t, err := model.ParseTime(strings.TrimSpace(ts))
	if err != nil {
		return nil, &ParseError{Row: row, Field: fieldNames[FieldTime], Value: ts, Err: err}
	}

	distance, err := toFloat(row, FieldDistance, rec[FieldDistance])
	if err != nil {
		return nil, err
	}
	velocity, err := toFloat(row, FieldVelocity, rec[FieldVelocity])
	if err != nil {
		return nil, err
	}

	return model.NewCloseApproach(designation, t, distance, velocity), nil
}

func isBlank(v any) bool {
	return v == nil || strings.TrimSpace(toString(v)) == ""
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

func toFloat(row, field int, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, &ParseError{Row: row, Field: fieldNames[field], Value: x, Err: err}
		}
		return f, nil
	default:
		return 0, &ParseError{Row: row, Field: fieldNames[field], Value: fmt.Sprint(v), Err: fmt.Errorf("unexpected %T", v)}
	}
}
