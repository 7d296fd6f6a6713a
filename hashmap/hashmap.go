// SPDX-License-Identifier: MIT

package hashmap

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// pair is one stored entry.
type pair[K comparable, V any] struct {
	key   K
	value V
}

// HashMap is a separate-chaining hash table. Build one with New, NewFunc or
// Default; the zero value is not usable.
type HashMap[K comparable, V any] struct {
	buckets       [][]pair[K, V]
	size          int
	maxLoadFactor float64
	hash          Hasher[K]
	logger        *slog.Logger
}

// Default returns an empty map with DefaultCapacity buckets, the default max
// load factor and the xxHash64 hasher.
func Default[K comparable, V any]() *HashMap[K, V] {
	m, _ := New[K, V](DefaultCapacity)

	return m
}

// New returns an empty map with capacity buckets (at least one) hashed by
// DefaultHasher. It fails with ErrOptionViolation if an option is invalid.
func New[K comparable, V any](capacity int, opts ...Option) (*HashMap[K, V], error) {
	return NewFunc[K, V](capacity, DefaultHasher[K](), opts...)
}

// NewFunc is New with a caller-supplied hasher.
func NewFunc[K comparable, V any](capacity int, hasher Hasher[K], opts ...Option) (*HashMap[K, V], error) {
	if hasher == nil {
		return nil, ErrNilHasher
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &HashMap[K, V]{
		buckets:       make([][]pair[K, V], max(capacity, 1)),
		maxLoadFactor: cfg.MaxLoadFactor,
		hash:          hasher,
		logger:        cfg.Logger,
	}, nil
}

// index maps key to its bucket: digest mod bucket count.
func (m *HashMap[K, V]) index(key K) int {
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// Insert stores value under key. An existing key is overwritten in place.
// A new key first grows the table if it would push the load factor to the
// threshold, then is appended to its bucket. Either way the load factor is
// below MaxLoadFactor when Insert returns, even if the threshold was lowered
// since the last insert.
func (m *HashMap[K, V]) Insert(key K, value V) {
	// 1. Overwrite in place if key is already stored.
	idx := m.index(key)
	for i := range m.buckets[idx] {
		if m.buckets[idx][i].key == key {
			m.buckets[idx][i].value = value
			// A lowered threshold may already be exceeded; restore it.
			if m.wouldOverflow(m.size) {
				m.rehash(m.grownBucketCount(m.size))
			}

			return
		}
	}

	// 2. Grow before the new entry would reach the threshold.
	if m.wouldOverflow(m.size + 1) {
		m.rehash(m.grownBucketCount(m.size + 1))
		idx = m.index(key) // bucket count changed
	}

	// 3. Append at the bucket tail.
	m.buckets[idx] = append(m.buckets[idx], pair[K, V]{key: key, value: value})
	m.size++
}

// wouldOverflow reports whether holding n entries in the current buckets
// reaches the max load factor.
func (m *HashMap[K, V]) wouldOverflow(n int) bool {
	return float64(n)/float64(len(m.buckets)) >= m.maxLoadFactor
}

// grownBucketCount applies the 2n+1 growth step until n entries fit below
// the max load factor. A single step suffices unless the factor was lowered
// since the last insert.
func (m *HashMap[K, V]) grownBucketCount(n int) int {
	count := len(m.buckets)
	for float64(n)/float64(count) >= m.maxLoadFactor {
		count = 2*count + 1
	}

	return count
}

// rehash redistributes every entry into count fresh buckets.
func (m *HashMap[K, V]) rehash(count int) {
	// 1. Swap in the empty table, keeping the old one for the walk.
	old := m.buckets
	m.buckets = make([][]pair[K, V], count)

	// 2. Re-index every entry; entries sharing a new bucket keep their order.
	for _, bucket := range old {
		for _, p := range bucket {
			idx := m.index(p.key)
			m.buckets[idx] = append(m.buckets[idx], p)
		}
	}

	// 3. Report the growth to the optional logger.
	if m.logger != nil {
		m.logger.Debug("hashmap: rehash",
			slog.Int("old_buckets", len(old)),
			slog.Int("new_buckets", count),
			slog.Int("size", m.size),
		)
	}
}

// Remove deletes key and returns its value; false if key was absent. The
// remaining entries of the bucket keep their relative order.
func (m *HashMap[K, V]) Remove(key K) (V, bool) {
	idx := m.index(key)
	bucket := m.buckets[idx]
	for i := range bucket {
		if bucket[i].key == key {
			removed := bucket[i].value
			m.buckets[idx] = slices.Delete(bucket, i, i+1)
			m.size--

			return removed, true
		}
	}
	var zero V

	return zero, false
}

// Get returns the value stored under key.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	for _, p := range m.buckets[m.index(key)] {
		if p.key == key {
			return p.value, true
		}
	}
	var zero V

	return zero, false
}

// At returns the value stored under key or ErrKeyNotFound.
func (m *HashMap[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return v, nil
}

// MustAt returns the value stored under key and panics if key is absent.
func (m *HashMap[K, V]) MustAt(key K) V {
	v, err := m.At(key)
	if err != nil {
		panic(err)
	}

	return v
}

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)

	return ok
}

// Len returns the number of live entries.
func (m *HashMap[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map holds no entries.
func (m *HashMap[K, V]) IsEmpty() bool { return m.size == 0 }

// BucketCount returns the current number of buckets.
func (m *HashMap[K, V]) BucketCount() int { return len(m.buckets) }

// LoadFactor returns size / buckets.
func (m *HashMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// MaxLoadFactor returns the rehash threshold.
func (m *HashMap[K, V]) MaxLoadFactor() float64 { return m.maxLoadFactor }

// SetMaxLoadFactor changes the rehash threshold. A value that is not a finite
// positive number is rejected with ErrInvalidLoadFactor and the map keeps its
// current threshold. Lowering the threshold takes effect on the next Insert,
// whether it adds a key or overwrites one.
func (m *HashMap[K, V]) SetMaxLoadFactor(f float64) error {
	if err := validateLoadFactor(f); err != nil {
		return err
	}
	m.maxLoadFactor = f

	return nil
}

// Clear removes every entry but keeps the bucket count.
func (m *HashMap[K, V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// All yields every entry, bucket by bucket and in insertion order within a
// bucket. The map must not be mutated while the sequence is being ranged over.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for _, p := range bucket {
				if !yield(p.key, p.value) {
					return
				}
			}
		}
	}
}

// Keys returns every key in All order.
func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}
