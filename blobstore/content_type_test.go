package blobstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"neos.csv":         "text/csv",
		"out/RESULTS.JSON": "application/json",
		"cad.json.gz":      "application/gzip",
		"cad.json.zst":     "application/zstd",
		"results.csv.lz4":  "application/x-lz4",
		"notes.txt":        "application/octet-stream",
		"no-extension":     "application/octet-stream",
	}

	for name, want := range tests {
		assert.Equal(t, want, ContentType(name), name)
	}
}
