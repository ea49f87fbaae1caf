package filter

import "iter"

// Limit yields at most n items of seq. If n <= 0 the sequence is returned
// unchanged.
//
// Upstream is not asked for more than n items: iteration stops right after
// the n-th item is consumed. Errors are passed through and do not count
// towards the limit.
func Limit[T any](seq iter.Seq2[T, error], n int) iter.Seq2[T, error] {
	if n <= 0 {
		return seq
	}

	return func(yield func(T, error) bool) {
		count := 0
		for v, err := range seq {
			if !yield(v, err) {
				return
			}
			if err != nil {
				continue
			}
			count++
			if count >= n {
				return
			}
		}
	}
}
