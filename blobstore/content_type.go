package blobstore

import (
	"path"
	"strings"

	"github.com/hupe1980/neodb/compress"
)

// ContentType returns the MIME type recorded for a blob named name by
// object stores. Compressed blobs are typed by their compression.
func ContentType(name string) string {
	typ, base := compress.FromPath(name)

	switch typ {
	case compress.Gzip:
		return "application/gzip"
	case compress.Zstd:
		return "application/zstd"
	case compress.LZ4:
		return "application/x-lz4"
	}

	switch strings.ToLower(path.Ext(base)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
