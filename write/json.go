package write

import (
	"io"
	"iter"
	"math"

	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/model"
)

type jsonNEO struct {
	Designation string   `json:"designation"`
	Name        string   `json:"name"`
	Diameter    *float64 `json:"diameter_km"`
	Hazardous   bool     `json:"potentially_hazardous"`
}

type jsonApproach struct {
	Time        string  `json:"datetime_utc"`
	Distance    float64 `json:"distance_au"`
	Velocity    float64 `json:"velocity_km_s"`
	Designation string  `json:"designation"`
	NEO         jsonNEO `json:"neo"`
}

func toJSON(ca *model.CloseApproach) jsonApproach {
	var diameter *float64
	if !math.IsNaN(ca.NEO.Diameter) {
		d := ca.NEO.Diameter
		diameter = &d
	}

	return jsonApproach{
		Time:        ca.TimeString(),
		Distance:    ca.Distance,
		Velocity:    ca.Velocity,
		Designation: ca.Designation,
		NEO: jsonNEO{
			Designation: ca.NEO.Designation,
			Name:        ca.NEO.Name,
			Diameter:    diameter,
			Hazardous:   ca.NEO.Hazardous,
		},
	}
}

// WriteJSON writes a JSON array with one object per approach, in sequence
// order, and returns the number of objects written. Elements are encoded as
// they are pulled. An unknown diameter is written as null.
func WriteJSON(w io.Writer, results iter.Seq2[*model.CloseApproach, error]) (int, error) {
	return writeJSON(w, results, codec.Default)
}

func writeJSON(w io.Writer, results iter.Seq2[*model.CloseApproach, error], c codec.Codec) (int, error) {
	if _, err := io.WriteString(w, "["); err != nil {
		return 0, err
	}

	n := 0
	for ca, err := range results {
		if err != nil {
			return n, err
		}
		if ca == nil || ca.NEO == nil {
			return n, unlinked(n, ca)
		}

		b, err := c.Marshal(toJSON(ca))
		if err != nil {
			return n, err
		}
		if n > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return n, err
			}
		}
		if _, err := w.Write(b); err != nil {
			return n, err
		}
		n++
	}

	_, err := io.WriteString(w, "]\n")
	return n, err
}
