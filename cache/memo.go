// Package cache provides the lookup caches owned by a database instance.
package cache

// Stats reports cache effectiveness.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Memo is an unbounded memoization table. It remembers both hits and
// confirmed misses, so a key is resolved at most once.
//
// Memo is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	items map[K]entry[V]

	hits   int64
	misses int64
}

type entry[V any] struct {
	value V
	found bool
}

// NewMemo creates an empty memo table.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{items: make(map[K]entry[V])}
}

// Get returns the value for key, calling resolve on the first request for
// that key. The outcome of resolve, including "not found", is remembered.
func (m *Memo[K, V]) Get(key K, resolve func(K) (V, bool)) (V, bool) {
	if e, ok := m.items[key]; ok {
		m.hits++
		return e.value, e.found
	}
	m.misses++

	v, found := resolve(key)
	m.items[key] = entry[V]{value: v, found: found}
	return v, found
}

// Peek returns a remembered outcome without resolving. cached is false if
// the key was never requested.
func (m *Memo[K, V]) Peek(key K) (v V, found, cached bool) {
	e, ok := m.items[key]
	return e.value, e.found, ok
}

// Len returns the number of remembered keys.
func (m *Memo[K, V]) Len() int {
	return len(m.items)
}

// Stats returns cache statistics.
func (m *Memo[K, V]) Stats() Stats {
	return Stats{Hits: m.hits, Misses: m.misses, Entries: len(m.items)}
}
