package extract

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Report summarizes the load of one source.
type Report struct {
	// Source names the loaded location.
	Source string
	// Rows is the number of data rows read, excluding any header.
	Rows int
	// Loaded is the number of records produced.
	Loaded int
	// Dropped holds the zero-based indices of skipped data rows.
	Dropped *roaring.Bitmap
}

func newReport(source string) Report {
	return Report{Source: source, Dropped: roaring.New()}
}

func (r *Report) drop(row int) {
	r.Dropped.Add(uint32(row))
}

// DroppedCount returns the number of skipped rows.
func (r Report) DroppedCount() int {
	if r.Dropped == nil {
		return 0
	}
	return int(r.Dropped.GetCardinality())
}

// DroppedRows returns the indices of skipped rows in ascending order.
func (r Report) DroppedRows() []uint32 {
	if r.Dropped == nil {
		return nil
	}
	return r.Dropped.ToArray()
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %d rows, %d loaded, %d dropped", r.Source, r.Rows, r.Loaded, r.DroppedCount())
}
