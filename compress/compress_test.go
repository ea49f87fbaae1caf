package compress

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		typ  Type
		rest string
	}{
		{"results.csv", None, "results.csv"},
		{"results.csv.gz", Gzip, "results.csv"},
		{"cad.json.ZST", Zstd, "cad.json"},
		{"s3://bucket/out/results.json.lz4", LZ4, "s3://bucket/out/results.json"},
		{"archive.tar", None, "archive.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			typ, rest := FromPath(tt.path)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	payload := strings.Repeat("pdes,name,pha,diameter\n433,Eros,N,16.84\n", 200)

	for _, typ := range []Type{None, Gzip, Zstd, LZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := NewWriter(&buf, typ)
			require.NoError(t, err)
			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			br := bufio.NewReader(bytes.NewReader(buf.Bytes()))
			assert.Equal(t, typ, Sniff(br))

			r, err := NewReader(br, typ)
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, string(got))
		})
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".gz", Gzip.Extension())
	assert.Equal(t, ".zst", Zstd.Extension())
	assert.Equal(t, ".lz4", LZ4.Extension())
	assert.Equal(t, "", None.Extension())
}

func TestUnknownType(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), Type(42))
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = NewWriter(io.Discard, Type(42))
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Equal(t, "Type(42)", Type(42).String())
}

func TestCorruptGzip(t *testing.T) {
	_, err := NewReader(strings.NewReader("not gzip"), Gzip)
	assert.Error(t, err)
}
