// SPDX-License-Identifier: MIT

package ordmap

import (
	"cmp"
	"fmt"
	"iter"
)

// BST is an ordered map backed by an unbalanced binary search tree.
// For every node, keys in the left subtree are smaller and keys in the right
// subtree are greater than the node's key.
type BST[K, V any] struct {
	root *node[K, V]
	cmp  func(a, b K) int
	size int
	gen  uint64
}

// NewBST returns an empty BST ordered by cmp.Compare.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] {
	return NewBSTFunc[K, V](cmp.Compare[K])
}

// NewBSTFunc returns an empty BST ordered by the three-way comparator compare.
func NewBSTFunc[K, V any](compare func(a, b K) int) *BST[K, V] {
	return &BST[K, V]{cmp: compare}
}

// Insert stores value under key. An existing key keeps its node and has its
// value overwritten.
func (t *BST[K, V]) Insert(key K, value V) {
	var added bool
	t.root, added = insertNode(t.root, key, value, t.cmp, keep[K, V])
	if added {
		t.size++
	}
	t.gen++
}

// Remove deletes key and returns its value; false if key was absent.
func (t *BST[K, V]) Remove(key K) (V, bool) {
	var (
		removed V
		ok      bool
	)
	t.root, removed, ok = removeNode(t.root, key, t.cmp, keep[K, V])
	if ok {
		t.size--
		t.gen++
	}

	return removed, ok
}

// Get returns a copy of the value stored under key.
func (t *BST[K, V]) Get(key K) (V, bool) {
	if n := searchNode(t.root, key, t.cmp); n != nil {
		return n.value, true
	}
	var zero V

	return zero, false
}

// At returns the value stored under key or ErrKeyOutOfBounds.
func (t *BST[K, V]) At(key K) (V, error) {
	v, ok := t.Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyOutOfBounds, key)
	}

	return v, nil
}

// MustAt returns the value stored under key and panics if key is absent.
func (t *BST[K, V]) MustAt(key K) V {
	v, err := t.At(key)
	if err != nil {
		panic(err)
	}

	return v
}

// Contains reports whether key is present.
func (t *BST[K, V]) Contains(key K) bool {
	return searchNode(t.root, key, t.cmp) != nil
}

// Find returns an iterator that starts at key and continues through every
// greater key. The boolean is false (and the iterator nil) if key is absent.
func (t *BST[K, V]) Find(key K) (*Iterator[K, V], bool) {
	c, ok := seekTreeCursor(t.root, key, t.cmp)
	if !ok {
		return nil, false
	}

	return newIterator[K, V](c, &t.gen), true
}

// Iter returns an iterator over every entry in ascending key order.
func (t *BST[K, V]) Iter() *Iterator[K, V] {
	return newIterator[K, V](newTreeCursor(t.root), &t.gen)
}

// All returns every entry in ascending key order. Each range over the
// sequence starts a fresh walk of the current tree.
func (t *BST[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Iter().Seq()(yield)
	}
}

// Len returns the number of entries.
func (t *BST[K, V]) Len() int { return t.size }

// IsEmpty reports whether the map holds no entries.
func (t *BST[K, V]) IsEmpty() bool { return t.root == nil }

// Clear drops every entry.
func (t *BST[K, V]) Clear() {
	t.root = nil
	t.size = 0
	t.gen++
}

// Clone returns an independent deep copy of the map. Values are copied by
// assignment.
func (t *BST[K, V]) Clone() *BST[K, V] {
	return &BST[K, V]{root: cloneNode(t.root), cmp: t.cmp, size: t.size}
}
