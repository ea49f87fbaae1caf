package neodb

import (
	"sync/atomic"
	"time"
)

// Lookup kinds reported to RecordLookup.
const (
	LookupDesignation = "designation"
	LookupName        = "name"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// The loader and writer packages report through the same interface, so one
// collector can observe the whole load, query and export pipeline.
type MetricsCollector interface {
	// RecordLink is called once per database construction.
	RecordLink(neos, approaches int, duration time.Duration, err error)

	// RecordLookup is called after each keyed NEO lookup.
	// by is LookupDesignation or LookupName.
	RecordLookup(by string, found bool)

	// RecordQuery is called when a query stream ends, whether exhausted,
	// stopped early by the consumer or failed.
	RecordQuery(scanned, matched int, duration time.Duration, err error)

	// RecordLoad is called after each source file is loaded.
	RecordLoad(source string, loaded, dropped int, duration time.Duration, err error)

	// RecordWrite is called after results are exported.
	RecordWrite(format string, rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLink(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(string, bool) {}
func (NoopMetricsCollector) RecordQuery(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLoad(string, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordWrite(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LinkCount       atomic.Int64
	LinkErrors      atomic.Int64
	LookupCount     atomic.Int64
	LookupMisses    atomic.Int64
	QueryCount      atomic.Int64
	QueryErrors     atomic.Int64
	QueryScanned    atomic.Int64
	QueryMatched    atomic.Int64
	QueryTotalNanos atomic.Int64
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadRecords     atomic.Int64
	LoadDropped     atomic.Int64
	WriteCount      atomic.Int64
	WriteErrors     atomic.Int64
	WriteRows       atomic.Int64
}

// RecordLink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLink(neos, approaches int, duration time.Duration, err error) {
	b.LinkCount.Add(1)
	if err != nil {
		b.LinkErrors.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(by string, found bool) {
	b.LookupCount.Add(1)
	if !found {
		b.LookupMisses.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(scanned, matched int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryScanned.Add(int64(scanned))
	b.QueryMatched.Add(int64(matched))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(source string, loaded, dropped int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadRecords.Add(int64(loaded))
	b.LoadDropped.Add(int64(dropped))
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(format string, rows int, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteRows.Add(int64(rows))
	if err != nil {
		b.WriteErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LinkCount:     b.LinkCount.Load(),
		LinkErrors:    b.LinkErrors.Load(),
		LookupCount:   b.LookupCount.Load(),
		LookupMisses:  b.LookupMisses.Load(),
		QueryCount:    b.QueryCount.Load(),
		QueryErrors:   b.QueryErrors.Load(),
		QueryScanned:  b.QueryScanned.Load(),
		QueryMatched:  b.QueryMatched.Load(),
		QueryAvgNanos: b.getAvgQueryNanos(),
		LoadCount:     b.LoadCount.Load(),
		LoadErrors:    b.LoadErrors.Load(),
		LoadRecords:   b.LoadRecords.Load(),
		LoadDropped:   b.LoadDropped.Load(),
		WriteCount:    b.WriteCount.Load(),
		WriteErrors:   b.WriteErrors.Load(),
		WriteRows:     b.WriteRows.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LinkCount     int64
	LinkErrors    int64
	LookupCount   int64
	LookupMisses  int64
	QueryCount    int64
	QueryErrors   int64
	QueryScanned  int64
	QueryMatched  int64
	QueryAvgNanos int64
	LoadCount     int64
	LoadErrors    int64
	LoadRecords   int64
	LoadDropped   int64
	WriteCount    int64
	WriteErrors   int64
	WriteRows     int64
}
