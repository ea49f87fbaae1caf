package write

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/compress"
	"github.com/hupe1980/neodb/model"
	"github.com/hupe1980/neodb/resource"
)

// Writer writes result sequences to blob store locations.
type Writer struct {
	resolver *blobstore.Resolver
	codec    codec.Codec
	rc       *resource.Controller
	logger   *neodb.Logger
	metrics  neodb.MetricsCollector
}

// Option configures a Writer.
type Option func(*Writer)

// WithResolver sets the resolver for destination locations.
func WithResolver(r *blobstore.Resolver) Option {
	return func(w *Writer) { w.resolver = r }
}

// WithCodec sets the codec used to encode JSON elements.
func WithCodec(c codec.Codec) Option {
	return func(w *Writer) { w.codec = c }
}

// WithResourceController throttles output throughput.
func WithResourceController(rc *resource.Controller) Option {
	return func(w *Writer) { w.rc = rc }
}

// WithLogger sets the logger.
func WithLogger(logger *neodb.Logger) Option {
	return func(w *Writer) { w.logger = logger }
}

// WithMetricsCollector sets the collector that receives RecordWrite calls.
func WithMetricsCollector(mc neodb.MetricsCollector) Option {
	return func(w *Writer) { w.metrics = mc }
}

// NewWriter creates a Writer.
func NewWriter(optFns ...Option) *Writer {
	w := &Writer{}
	for _, fn := range optFns {
		if fn != nil {
			fn(w)
		}
	}
	if w.resolver == nil {
		w.resolver = blobstore.NewResolver()
	}
	if w.codec == nil {
		w.codec = codec.Default
	}
	if w.logger == nil {
		w.logger = neodb.NoopLogger()
	}
	if w.metrics == nil {
		w.metrics = neodb.NoopMetricsCollector{}
	}
	return w
}

// Encode writes results to out in the given format.
func (w *Writer) Encode(out io.Writer, format Format, results iter.Seq2[*model.CloseApproach, error]) (int, error) {
	switch format {
	case FormatCSV:
		return WriteCSV(out, results)
	case FormatJSON:
		return writeJSON(out, results, w.codec)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Write drains results into the blob at uri and returns the number of rows
// written. The format follows the extension of uri. On failure the partial
// blob is discarded.
func (w *Writer) Write(ctx context.Context, uri string, results iter.Seq2[*model.CloseApproach, error]) (n int, err error) {
	start := time.Now()

	format, err := FormatFromPath(uri)
	if err != nil {
		return 0, err
	}

	defer func() {
		w.metrics.RecordWrite(string(format), n, time.Since(start), err)
		w.logger.LogWrite(ctx, uri, string(format), n, err)
	}()

	store, name, err := w.resolver.Resolve(ctx, uri)
	if err != nil {
		return 0, err
	}

	blob, err := store.Create(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("write: create %s: %w", uri, err)
	}

	n, err = w.writeBlob(ctx, blob, name, format, results)
	if err != nil {
		discard(blob)
		return n, fmt.Errorf("write: %s: %w", uri, err)
	}

	if err = blob.Close(); err != nil {
		return n, fmt.Errorf("write: close %s: %w", uri, err)
	}
	return n, nil
}

func (w *Writer) writeBlob(ctx context.Context, blob blobstore.WritableBlob, name string, format Format, results iter.Seq2[*model.CloseApproach, error]) (int, error) {
	bw := bufio.NewWriter(resource.LimitWriter(ctx, blob, w.rc))

	typ, _ := compress.FromPath(name)
	zw, err := compress.NewWriter(bw, typ)
	if err != nil {
		return 0, err
	}

	n, err := w.Encode(zw, format, results)
	if err != nil {
		_ = zw.Close()
		return n, err
	}
	if err := zw.Close(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}

func discard(blob blobstore.WritableBlob) {
	if a, ok := blob.(blobstore.Aborter); ok {
		_ = a.Abort()
		return
	}
	_ = blob.Close()
}
