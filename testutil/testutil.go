package testutil

import (
	"fmt"
	"iter"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/neodb/model"
)

// Fixture returns a small unlinked data set. Every call returns fresh records.
//
//	2021 AB  Rocky    0.5 km   hazardous
//	433      Eros     16.84 km
//	2020 XY  unnamed  unknown
//	99942    Apophis  0.37 km  hazardous
//
// Approaches, in storage order:
//
//	0  2021 AB  2021-01-01 00:00  0.20 au   5.0 km/s
//	1  433      2021-01-01 12:30  0.15 au   7.5 km/s
//	2  2020 XY  2021-01-02 08:00  0.05 au  12.0 km/s
//	3  99942    2021-01-03 23:59  0.30 au  20.0 km/s
//	4  2021 AB  2021-01-05 10:00  0.45 au   6.1 km/s
//	5  433      2021-02-14 00:00  0.02 au   3.2 km/s
func Fixture() ([]*model.NEO, []*model.CloseApproach) {
	neos := []*model.NEO{
		model.NewNEO("2021 AB", "Rocky", 0.5, true),
		model.NewNEO("433", "Eros", 16.84, false),
		model.NewNEO("2020 XY", "", math.NaN(), false),
		model.NewNEO("99942", "Apophis", 0.37, true),
	}

	approaches := []*model.CloseApproach{
		model.NewCloseApproach("2021 AB", At(2021, time.January, 1, 0, 0), 0.2, 5.0),
		model.NewCloseApproach("433", At(2021, time.January, 1, 12, 30), 0.15, 7.5),
		model.NewCloseApproach("2020 XY", At(2021, time.January, 2, 8, 0), 0.05, 12.0),
		model.NewCloseApproach("99942", At(2021, time.January, 3, 23, 59), 0.3, 20.0),
		model.NewCloseApproach("2021 AB", At(2021, time.January, 5, 10, 0), 0.45, 6.1),
		model.NewCloseApproach("433", At(2021, time.February, 14, 0, 0), 0.02, 3.2),
	}

	return neos, approaches
}

// Rocky returns the single-record data set: NEO "2021 AB" named "Rocky"
// (0.5 km, hazardous) with one approach at 2021-01-01 00:00, 0.2 au, 5.0 km/s.
func Rocky() ([]*model.NEO, []*model.CloseApproach) {
	return []*model.NEO{model.NewNEO("2021 AB", "Rocky", 0.5, true)},
		[]*model.CloseApproach{model.NewCloseApproach("2021 AB", At(2021, time.January, 1, 0, 0), 0.2, 5.0)}
}

// At returns a UTC time with minute precision.
func At(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// CountingSeq returns a sequence over items and a counter of the items the
// consumer has pulled from it.
func CountingSeq[T any](items []T) (iter.Seq2[T, error], *int) {
	pulled := new(int)
	seq := func(yield func(T, error) bool) {
		for _, it := range items {
			*pulled++
			if !yield(it, nil) {
				return
			}
		}
	}
	return seq, pulled
}

// Collect drains seq, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Dataset generates numNEOs objects and numApproaches approaches referencing
// them. About a third of the objects are unnamed and a tenth have an unknown
// diameter. Approaches are in chronological order.
func (r *RNG) Dataset(numNEOs, numApproaches int) ([]*model.NEO, []*model.CloseApproach) {
	r.mu.Lock()
	defer r.mu.Unlock()

	neos := make([]*model.NEO, numNEOs)
	for i := range numNEOs {
		name := ""
		if r.rand.Intn(3) > 0 {
			name = fmt.Sprintf("Object-%d", i)
		}
		diameter := math.NaN()
		if r.rand.Intn(10) > 0 {
			diameter = r.rand.Float64() * 10
		}
		neos[i] = model.NewNEO(fmt.Sprintf("%d", 1000+i), name, diameter, r.rand.Intn(5) == 0)
	}

	approaches := make([]*model.CloseApproach, numApproaches)
	if numNEOs == 0 {
		return neos, approaches[:0]
	}
	t := At(1900, time.January, 1, 0, 0)
	for i := range numApproaches {
		t = t.Add(time.Duration(r.rand.Intn(24*60)) * time.Minute)
		neo := neos[r.rand.Intn(numNEOs)]
		approaches[i] = model.NewCloseApproach(neo.Designation, t, r.rand.Float64()*0.5, 1+r.rand.Float64()*40)
	}

	return neos, approaches
}
