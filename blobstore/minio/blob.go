package minio

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

// object is a read handle that issues one ranged GET per read.
type object struct {
	api    API
	bucket string
	key    string
	size   int64
}

func (o *object) Size() int64 { return o.size }

func (o *object) Close() error { return nil }

// rangeGet fetches [off, off+n) clipped to the object size.
func (o *object) rangeGet(ctx context.Context, off, n int64) (io.ReadCloser, int64, error) {
	last := min(off+n, o.size) - 1

	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, last); err != nil {
		return nil, 0, err
	}

	rc, err := o.api.GetObject(ctx, o.bucket, o.key, opts)
	if err != nil {
		return nil, 0, err
	}
	return rc, last - off + 1, nil
}

func (o *object) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	switch {
	case off >= o.size:
		return 0, io.EOF
	case len(p) == 0:
		return 0, nil
	}

	rc, n, err := o.rangeGet(ctx, off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	read, err := io.ReadFull(rc, p[:n])
	if err == nil && read < len(p) {
		err = io.EOF
	}
	return read, err
}

func (o *object) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= o.size || length <= 0 {
		return io.NopCloser(eofReader{}), nil
	}
	rc, _, err := o.rangeGet(ctx, off, length)
	return rc, err
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
