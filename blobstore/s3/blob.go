package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// object is a read handle that issues one ranged GET per read.
type object struct {
	client Client
	bucket string
	key    string
	size   int64
}

func (o *object) Size() int64 { return o.size }

func (o *object) Close() error { return nil }

// rangeGet fetches [off, off+n) clipped to the object size.
func (o *object) rangeGet(ctx context.Context, off, n int64) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	last := min(off+n, o.size) - 1

	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(o.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, last)),
	})
	if err != nil {
		return nil, 0, err
	}
	return out.Body, last - off + 1, nil
}

func (o *object) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	switch {
	case off >= o.size:
		return 0, io.EOF
	case len(p) == 0:
		return 0, nil
	}

	body, n, err := o.rangeGet(ctx, off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer func() { _ = body.Close() }()

	read, err := io.ReadFull(body, p[:n])
	if err == nil && read < len(p) {
		err = io.EOF
	}
	return read, err
}

func (o *object) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= o.size || length <= 0 {
		return http.NoBody, nil
	}
	body, _, err := o.rangeGet(ctx, off, length)
	return body, err
}
