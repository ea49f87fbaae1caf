package resource

import (
	"context"
	"io"
)

// LimitReader charges every read from r against the IO rate of c.
// Without an IO limit r is returned unchanged.
func LimitReader(ctx context.Context, r io.Reader, c *Controller) io.Reader {
	if c.ioChunk() == 0 {
		return r
	}
	return &throttledReader{ctx: ctx, src: r, c: c}
}

// LimitWriter charges every write to w against the IO rate of c.
// Without an IO limit w is returned unchanged.
func LimitWriter(ctx context.Context, w io.Writer, c *Controller) io.Writer {
	if c.ioChunk() == 0 {
		return w
	}
	return &throttledWriter{ctx: ctx, dst: w, c: c}
}

type throttledReader struct {
	ctx context.Context
	src io.Reader
	c   *Controller
}

// Read returns at most one burst and pays for what it got.
func (t *throttledReader) Read(p []byte) (int, error) {
	if burst := t.c.ioChunk(); len(p) > burst {
		p = p[:burst]
	}

	n, err := t.src.Read(p)
	if n == 0 {
		return 0, err
	}
	if werr := t.c.AcquireIO(t.ctx, n); werr != nil {
		return n, werr
	}
	return n, err
}

type throttledWriter struct {
	ctx context.Context
	dst io.Writer
	c   *Controller
}

// Write forwards p in burst-sized pieces, waiting before each one.
func (t *throttledWriter) Write(p []byte) (int, error) {
	burst := t.c.ioChunk()

	var written int
	for len(p) > 0 {
		chunk := p[:min(len(p), burst)]
		if err := t.c.AcquireIO(t.ctx, len(chunk)); err != nil {
			return written, err
		}

		n, err := t.dst.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}
