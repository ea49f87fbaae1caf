package extract

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/neodb"
	"github.com/hupe1980/neodb/blobstore"
	"github.com/hupe1980/neodb/codec"
	"github.com/hupe1980/neodb/compress"
	"github.com/hupe1980/neodb/model"
	"github.com/hupe1980/neodb/resource"
)

// Dataset holds the records of one load, not yet linked.
type Dataset struct {
	NEOs           []*model.NEO
	Approaches     []*model.CloseApproach
	NEOReport      Report
	ApproachReport Report
}

// Database links the records into a database. The dataset must not be used
// to build a second database.
func (ds *Dataset) Database(opts ...neodb.Option) (*neodb.Database, error) {
	return neodb.New(ds.NEOs, ds.Approaches, opts...)
}

// Loader loads data sets from blob stores.
type Loader struct {
	resolver *blobstore.Resolver
	codec    codec.Codec
	rc       *resource.Controller
	logger   *neodb.Logger
	metrics  neodb.MetricsCollector
}

// Option configures a Loader.
type Option func(*Loader)

// WithResolver sets the resolver for source locations.
// The default serves local paths only.
func WithResolver(r *blobstore.Resolver) Option {
	return func(l *Loader) { l.resolver = r }
}

// WithCodec sets the JSON codec for close-approach data.
func WithCodec(c codec.Codec) Option {
	return func(l *Loader) { l.codec = c }
}

// WithResourceController bounds concurrent loads, memory and read throughput.
func WithResourceController(rc *resource.Controller) Option {
	return func(l *Loader) { l.rc = rc }
}

// WithLogger sets the logger for per-source load reports.
func WithLogger(logger *neodb.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithMetricsCollector sets the collector that receives RecordLoad calls.
func WithMetricsCollector(mc neodb.MetricsCollector) Option {
	return func(l *Loader) { l.metrics = mc }
}

// NewLoader creates a Loader.
func NewLoader(optFns ...Option) *Loader {
	l := &Loader{}
	for _, fn := range optFns {
		if fn != nil {
			fn(l)
		}
	}
	if l.resolver == nil {
		l.resolver = blobstore.NewResolver()
	}
	if l.codec == nil {
		l.codec = codec.Default
	}
	if l.logger == nil {
		l.logger = neodb.NoopLogger()
	}
	if l.metrics == nil {
		l.metrics = neodb.NoopMetricsCollector{}
	}
	return l
}

// Load reads NEOs from neoURI and close approaches from cadURI concurrently.
// The first failure cancels the other load.
func (l *Loader) Load(ctx context.Context, neoURI, cadURI string) (*Dataset, error) {
	var ds Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ds.NEOs, ds.NEOReport, err = l.LoadNEOs(gctx, neoURI)
		return err
	})
	g.Go(func() error {
		var err error
		ds.Approaches, ds.ApproachReport, err = l.LoadApproaches(gctx, cadURI)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// LoadNEOs reads NEOs from a CSV location.
func (l *Loader) LoadNEOs(ctx context.Context, uri string) ([]*model.NEO, Report, error) {
	var neos []*model.NEO
	report, err := l.load(ctx, uri, func(r io.Reader) (Report, error) {
		var (
			rep Report
			err error
		)
		neos, rep, err = loadNEOs(r, uri)
		return rep, err
	})
	if err != nil {
		return nil, report, err
	}
	return neos, report, nil
}

// LoadApproaches reads close approaches from a JSON location.
func (l *Loader) LoadApproaches(ctx context.Context, uri string) ([]*model.CloseApproach, Report, error) {
	var approaches []*model.CloseApproach
	report, err := l.load(ctx, uri, func(r io.Reader) (Report, error) {
		var (
			rep Report
			err error
		)
		approaches, rep, err = loadApproaches(r, l.codec, uri)
		return rep, err
	})
	if err != nil {
		return nil, report, err
	}
	return approaches, report, nil
}

func (l *Loader) load(ctx context.Context, uri string, parse func(io.Reader) (Report, error)) (report Report, err error) {
	start := time.Now()
	report = newReport(uri)
	defer func() {
		l.metrics.RecordLoad(uri, report.Loaded, report.DroppedCount(), time.Since(start), err)
		l.logger.LogLoad(ctx, uri, report.Loaded, report.DroppedCount(), err)
	}()

	if err = l.rc.AcquireLoad(ctx); err != nil {
		return report, err
	}
	defer l.rc.ReleaseLoad()

	store, name, err := l.resolver.Resolve(ctx, uri)
	if err != nil {
		return report, err
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return report, fmt.Errorf("extract: open %s: %w", uri, err)
	}
	defer blob.Close()

	size := blob.Size()
	if err = l.rc.AcquireBudget(ctx, size); err != nil {
		return report, fmt.Errorf("extract: %s: %w", uri, err)
	}
	defer l.rc.ReleaseBudget(size)

	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return report, fmt.Errorf("extract: read %s: %w", uri, err)
	}
	defer raw.Close()

	br := bufio.NewReader(resource.LimitReader(ctx, raw, l.rc))

	typ, _ := compress.FromPath(name)
	if typ == compress.None {
		typ = compress.Sniff(br)
	}

	zr, err := compress.NewReader(br, typ)
	if err != nil {
		return report, fmt.Errorf("extract: %s: %w", uri, err)
	}
	defer zr.Close()

	report, err = parse(zr)
	report.Source = uri
	if err != nil {
		return report, fmt.Errorf("extract: %s: %w", uri, err)
	}
	return report, nil
}
