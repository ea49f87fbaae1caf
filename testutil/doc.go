// Package testutil provides testing utilities for neodb.
//
// This package is intended for use in tests and benchmarks only.
// It provides small hand-built data sets, random data set generation and
// instrumented sequences.
//
// # Fixtures
//
//	neos, approaches := testutil.Fixture()   // 4 NEOs, 6 approaches, unlinked
//	neos, approaches = testutil.Rocky()      // the single "2021 AB" record
//
// # Random Data Sets
//
//	rng := testutil.NewRNG(seed)
//	neos, approaches := rng.Dataset(1000, 10000)
//
// # Instrumented Sequences
//
//	seq, pulled := testutil.CountingSeq(items)
//	// *pulled reports how many items the consumer asked for.
package testutil
