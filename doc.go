// Package neodb links near-Earth objects (NEOs) to their close approaches
// with Earth and answers predicate queries over the approaches.
//
// A Database is built once from two record sets, typically produced by the
// extract package:
//
//	ds, err := extract.NewLoader().Load(ctx, "data/neos.csv", "data/cad.json")
//	if err != nil {
//		return err
//	}
//	db, err := neodb.New(ds.NEOs, ds.Approaches)
//	if err != nil {
//		return err
//	}
//
// Construction links every close approach to the NEO carrying the same primary
// designation. An approach whose designation matches no NEO rejects the whole
// data set with an *ErrUnlinkedApproach.
//
// # Lookups
//
// GetByDesignation is backed by a table built during construction.
// GetByName is memoized: the first request for a name scans the NEOs once and
// the outcome, including a miss, is remembered. The empty name never matches.
//
// # Queries
//
// Query returns a lazy iter.Seq2 over the close approaches in storage order.
// Filters are combined with AND and evaluated as each approach is produced:
//
//	criteria := filter.Criteria{Date: filter.Date(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))}
//	for ca, err := range filter.Limit(db.Query(ctx, filter.Create(criteria)...), 10) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(ca)
//	}
//
// Results can be exported with the write package.
//
// # Concurrency
//
// A Database is not safe for concurrent use. It is populated once and never
// modified afterwards, except for the name cache that lookups fill in.
package neodb
