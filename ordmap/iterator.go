// SPDX-License-Identifier: MIT

package ordmap

import "iter"

// cursor produces entries in ascending order; implemented per tree shape.
type cursor[K, V any] interface {
	next() (K, V, bool)
}

// Iterator is a lazy, forward-only walk over an ordered map. It is consumed
// once: after Next reports false it stays exhausted.
//
// An Iterator borrows the map's nodes. Mutating the map invalidates it; the
// next call to Next then returns false and Err returns ErrStaleIterator.
type Iterator[K, V any] struct {
	cur  cursor[K, V]
	gen  *uint64 // owner's mutation counter
	snap uint64  // counter value when the iterator was created
	err  error
	done bool
}

func newIterator[K, V any](cur cursor[K, V], gen *uint64) *Iterator[K, V] {
	return &Iterator[K, V]{cur: cur, gen: gen, snap: *gen}
}

// Next returns the next entry. ok is false once the sequence is exhausted or
// the iterator has been invalidated.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if it.done {
		return key, value, false
	}
	if *it.gen != it.snap {
		it.err = ErrStaleIterator
		it.done = true

		return key, value, false
	}

	key, value, ok = it.cur.next()
	if !ok {
		it.done = true
	}

	return key, value, ok
}

// Err returns ErrStaleIterator if iteration stopped because the map was
// mutated, nil otherwise.
func (it *Iterator[K, V]) Err() error { return it.err }

// Seq adapts the iterator to a range-over-func sequence. The sequence shares
// the iterator's position, so it can only be ranged over once.
func (it *Iterator[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
