// Package compress wraps data streams with the compression named by a file
// extension: gzip and zstd through klauspost/compress, lz4 through
// pierrec/lz4.
package compress

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownType is returned for a Type outside the supported set.
var ErrUnknownType = errors.New("compress: unknown compression type")

// Type is a stream compression format.
type Type uint8

const (
	// None leaves the stream unchanged.
	None Type = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is a Zstandard frame stream.
	Zstd
	// LZ4 is an LZ4 frame stream.
	LZ4
)

var extensions = map[string]Type{
	".gz":  Gzip,
	".zst": Zstd,
	".lz4": LZ4,
}

var magics = []struct {
	typ   Type
	magic []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{LZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
}

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Extension returns the file extension of t, or "" for None.
func (t Type) Extension() string {
	for ext, typ := range extensions {
		if typ == t {
			return ext
		}
	}
	return ""
}

// FromPath returns the compression named by the extension of p and p with
// that extension removed. Paths without a known extension yield None and p.
func FromPath(p string) (Type, string) {
	ext := strings.ToLower(path.Ext(p))
	if t, ok := extensions[ext]; ok {
		return t, p[:len(p)-len(ext)]
	}
	return None, p
}

// Sniff peeks at the head of br and reports the compression its magic
// number identifies. Nothing is consumed.
func Sniff(br *bufio.Reader) Type {
	head, _ := br.Peek(4)
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.typ
		}
	}
	return None
}

// NewReader returns a reader that decompresses r according to t.
// Closing the result does not close r.
func NewReader(r io.Reader, t Type) (io.ReadCloser, error) {
	switch t {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: open gzip stream: %w", err)
		}
		return zr, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compress: open zstd stream: %w", err)
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
}

// NewWriter returns a writer that compresses into w according to t.
// Close flushes the compressor but does not close w.
func NewWriter(w io.Writer, t Type) (io.WriteCloser, error) {
	switch t {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("compress: create zstd writer: %w", err)
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
