package neodb

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/neodb/cache"
	"github.com/hupe1980/neodb/filter"
	"github.com/hupe1980/neodb/model"
)

// Database is the linked collection of NEOs and close approaches.
type Database struct {
	neos       []*model.NEO
	approaches []*model.CloseApproach

	byDesignation map[string]*model.NEO
	byName        *cache.Memo[string, *model.NEO]

	metrics MetricsCollector
	logger  *Logger
}

// Stats describes the contents of a database.
type Stats struct {
	NEOs       int
	Approaches int
	// Linked counts NEOs with at least one close approach.
	Linked    int
	NameCache cache.Stats
}

// New links approaches to neos and returns the database.
//
// The slices are taken over by the database: each approach gets its NEO
// field set and is appended to the Approaches of that NEO, in storage order.
// Both slices must be freshly loaded. Nil entries fail with ErrNilRecord,
// records that were linked before fail with ErrAlreadyLinked.
//
// If an approach references an unknown designation, New returns an
// *ErrUnlinkedApproach and leaves the records untouched.
//
// When several NEOs share a designation the first one wins.
func New(neos []*model.NEO, approaches []*model.CloseApproach, optFns ...Option) (*Database, error) {
	opts := applyOptions(optFns)

	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]*model.NEO, len(neos)),
		byName:        cache.NewMemo[string, *model.NEO](),
		metrics:       opts.metricsCollector,
		logger:        opts.logger,
	}

	start := time.Now()
	err := db.link()
	db.metrics.RecordLink(len(neos), len(approaches), time.Since(start), err)
	db.logger.LogLink(context.Background(), len(neos), len(approaches), err)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (db *Database) link() error {
	for i, neo := range db.neos {
		if neo == nil {
			return fmt.Errorf("%w: NEO at index %d", ErrNilRecord, i)
		}
		if len(neo.Approaches) > 0 {
			return fmt.Errorf("%w: NEO %q has %d approaches", ErrAlreadyLinked, neo.Designation, len(neo.Approaches))
		}
		if _, dup := db.byDesignation[neo.Designation]; dup {
			db.logger.Warn("duplicate designation, keeping first occurrence",
				"designation", neo.Designation,
				"index", i,
			)
			continue
		}
		db.byDesignation[neo.Designation] = neo
	}

	// Resolve every approach before touching any record.
	owners := make([]*model.NEO, len(db.approaches))
	for i, ca := range db.approaches {
		if ca == nil {
			return fmt.Errorf("%w: close approach at index %d", ErrNilRecord, i)
		}
		if ca.NEO != nil {
			return fmt.Errorf("%w: close approach %d of %q", ErrAlreadyLinked, i, ca.Designation)
		}
		neo, ok := db.byDesignation[ca.Designation]
		if !ok {
			return &ErrUnlinkedApproach{Index: i, Designation: ca.Designation}
		}
		owners[i] = neo
	}

	for i, ca := range db.approaches {
		neo := owners[i]
		ca.NEO = neo
		neo.Approaches = append(neo.Approaches, ca)
	}
	return nil
}

// GetByDesignation returns the NEO with the given primary designation.
// The match is exact and case-sensitive.
func (db *Database) GetByDesignation(designation string) (*model.NEO, bool) {
	neo, ok := db.byDesignation[designation]
	db.metrics.RecordLookup(LookupDesignation, ok)
	db.logger.LogLookup(context.Background(), LookupDesignation, designation, ok)
	return neo, ok
}

// GetByName returns the first NEO, in storage order, with the given IAU name.
// The empty name never matches, so unnamed NEOs cannot be found this way.
func (db *Database) GetByName(name string) (*model.NEO, bool) {
	var (
		neo *model.NEO
		ok  bool
	)
	if name != "" {
		neo, ok = db.byName.Get(name, db.scanName)
	}
	db.metrics.RecordLookup(LookupName, ok)
	db.logger.LogLookup(context.Background(), LookupName, name, ok)
	return neo, ok
}

func (db *Database) scanName(name string) (*model.NEO, bool) {
	for _, neo := range db.neos {
		if neo.Name == name {
			return neo, true
		}
	}
	return nil, false
}

// Query streams the close approaches that match every filter, in storage order.
// With no filters every approach is produced.
//
// The sequence is lazy: approaches are filtered as the consumer pulls them and
// nothing is evaluated after the consumer stops. If a filter fails, the
// sequence yields a single *ErrQuery and ends. If ctx is cancelled, it yields
// ctx.Err() and ends.
//
// Example:
//
//	for ca, err := range db.Query(ctx, filter.DistanceFilter{Op: filter.OpLessEqual, Value: 0.1}) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(ca)
//	}
func (db *Database) Query(ctx context.Context, filters ...filter.Filter) iter.Seq2[*model.CloseApproach, error] {
	return func(yield func(*model.CloseApproach, error) bool) {
		start := time.Now()
		var scanned, matched int

		finish := func(err error) {
			db.metrics.RecordQuery(scanned, matched, time.Since(start), err)
			db.logger.LogQuery(ctx, filter.FilterSet(filters).String(), scanned, matched, err)
		}

		for i, ca := range db.approaches {
			if err := ctx.Err(); err != nil {
				finish(err)
				yield(nil, err)
				return
			}
			scanned++

			ok, err := db.match(i, ca, filters)
			if err != nil {
				finish(err)
				yield(nil, err)
				return
			}
			if !ok {
				continue
			}

			matched++
			if !yield(ca, nil) {
				finish(nil)
				return
			}
		}
		finish(nil)
	}
}

func (db *Database) match(i int, ca *model.CloseApproach, filters []filter.Filter) (bool, error) {
	for _, f := range filters {
		ok, err := f.Match(ca)
		if err != nil {
			return false, &ErrQuery{Index: i, Filter: f.String(), cause: err}
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// NEOs iterates over all NEOs in storage order.
func (db *Database) NEOs() iter.Seq[*model.NEO] {
	return func(yield func(*model.NEO) bool) {
		for _, neo := range db.neos {
			if !yield(neo) {
				return
			}
		}
	}
}

// Approaches iterates over all close approaches in storage order.
func (db *Database) Approaches() iter.Seq[*model.CloseApproach] {
	return func(yield func(*model.CloseApproach) bool) {
		for _, ca := range db.approaches {
			if !yield(ca) {
				return
			}
		}
	}
}

// Len returns the number of close approaches.
func (db *Database) Len() int {
	return len(db.approaches)
}

// Stats returns a snapshot of the database contents and name cache.
func (db *Database) Stats() Stats {
	linked := 0
	for _, neo := range db.neos {
		if len(neo.Approaches) > 0 {
			linked++
		}
	}
	return Stats{
		NEOs:       len(db.neos),
		Approaches: len(db.approaches),
		Linked:     linked,
		NameCache:  db.byName.Stats(),
	}
}
