// Package filter provides composable predicates over close approaches.
//
// Each filter compares a single attribute of a close approach (or of the NEO it
// is linked to) against a fixed reference value:
//
//	f := filter.DistanceFilter{Op: filter.OpLessEqual, Value: 0.1}
//	ok, err := f.Match(approach)
//
// A FilterSet matches when every member matches. Create builds a FilterSet
// from optional user criteria, and Limit truncates a query stream:
//
//	fs := filter.Create(filter.Criteria{DistanceMax: filter.Float(0.1)})
//	for ca, err := range filter.Limit(db.Query(ctx, fs...), 10) {
//	    ...
//	}
package filter
