// SPDX-License-Identifier: MIT

// Package hashmap implements HashMap, a separate-chaining hash table with a
// load-factor-triggered full rehash.
//
// Layout:
//
//	buckets[i] is an ordered slice of (key, value) pairs kept in insertion
//	order; a key lives in bucket hash(key) % len(buckets) and appears there
//	at most once.
//
// Growth policy:
//
//	Before a new key is stored, the map checks whether (size+1)/buckets
//	would reach the max load factor (default 2.0). If so it rehashes: the
//	bucket count becomes 2·buckets+1 (repeated until the new entry fits)
//	and every entry is redistributed by its recomputed index. After any
//	Insert, size/buckets stays below the max load factor. Overwriting an
//	existing key never grows the table.
//
// Hashing:
//
//	The default hasher is xxHash64 over a canonical byte encoding of the
//	key (see DefaultHasher). NewFunc accepts any func(K) uint64.
//
// Options:
//
//   - WithMaxLoadFactor(f)  threshold, must be > 0 (default 2.0).
//   - WithLogger(l)         *slog.Logger receiving a Debug record per rehash.
//
// Errors:
//
//   - ErrKeyNotFound        At / MustAt on an absent key.
//   - ErrInvalidLoadFactor  non-positive, NaN or infinite load factor.
//   - ErrOptionViolation    an invalid Option passed to New / NewFunc.
//   - ErrNilHasher          NewFunc called with a nil hasher.
//
// A HashMap is not safe for concurrent use.
package hashmap
