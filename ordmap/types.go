// SPDX-License-Identifier: MIT

package ordmap

import (
	"errors"
	"iter"
)

// Sentinel errors for ordered map operations.
var (
	// ErrKeyOutOfBounds is returned by At (and raised by MustAt) for an absent key.
	ErrKeyOutOfBounds = errors.New("ordmap: key out of bounds")

	// ErrStaleIterator is reported by Iterator.Err once the owning map was
	// mutated after the iterator was created.
	ErrStaleIterator = errors.New("ordmap: iterator invalidated by mutation")

	// ErrInvalidDegree is returned when a BTree is built with t < 2.
	ErrInvalidDegree = errors.New("ordmap: B-tree degree must be at least 2")
)

// Map is the contract shared by BST, AVL and BTree.
type Map[K, V any] interface {
	// Insert stores value under key, overwriting any previous value.
	Insert(key K, value V)
	// Get returns the value stored under key.
	Get(key K) (V, bool)
	// At is Get with an ErrKeyOutOfBounds error for an absent key.
	At(key K) (V, error)
	// MustAt is At that panics instead of returning an error.
	MustAt(key K) V
	// Contains reports whether key is present.
	Contains(key K) bool
	// Find returns an iterator over key and all greater keys, or false if
	// key is absent.
	Find(key K) (*Iterator[K, V], bool)
	// Iter returns an iterator over all entries in ascending key order.
	Iter() *Iterator[K, V]
	// All is Iter as a range-over-func sequence.
	All() iter.Seq2[K, V]
	// Len returns the number of entries.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// Clear removes every entry.
	Clear()
}

// Compile-time checks that every tree satisfies Map.
var (
	_ Map[int, string] = (*BST[int, string])(nil)
	_ Map[int, string] = (*AVL[int, string])(nil)
	_ Map[int, string] = (*BTree[int, string])(nil)
)
