package write

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/hupe1980/neodb/compress"
)

// ErrUnsupportedFormat is returned for an output path that is neither .csv
// nor .json.
var ErrUnsupportedFormat = errors.New("write: unsupported output format")

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// FormatFromPath selects the format by extension, ignoring a trailing
// compression extension. Matching is case-insensitive.
func FormatFromPath(p string) (Format, error) {
	_, base := compress.FromPath(p)

	switch strings.ToLower(path.Ext(base)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, p)
	}
}
