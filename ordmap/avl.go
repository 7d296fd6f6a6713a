// SPDX-License-Identifier: MIT

package ordmap

import (
	"cmp"
	"fmt"
	"iter"
)

// AVL is an ordered map backed by a height-balanced binary search tree: for
// every node the heights of its two subtrees differ by at most one, which
// keeps the height O(log n).
type AVL[K, V any] struct {
	root *node[K, V]
	cmp  func(a, b K) int
	size int
	gen  uint64
}

// NewAVL returns an empty AVL tree ordered by cmp.Compare.
func NewAVL[K cmp.Ordered, V any]() *AVL[K, V] {
	return NewAVLFunc[K, V](cmp.Compare[K])
}

// NewAVLFunc returns an empty AVL tree ordered by the three-way comparator compare.
func NewAVLFunc[K, V any](compare func(a, b K) int) *AVL[K, V] {
	return &AVL[K, V]{cmp: compare}
}

// Insert stores value under key, rebalancing every node on the path back to
// the root.
func (t *AVL[K, V]) Insert(key K, value V) {
	var added bool
	t.root, added = insertNode(t.root, key, value, t.cmp, rebalance[K, V])
	if added {
		t.size++
	}
	t.gen++
}

// Remove deletes key and returns its value; false if key was absent.
func (t *AVL[K, V]) Remove(key K) (V, bool) {
	var (
		removed V
		ok      bool
	)
	t.root, removed, ok = removeNode(t.root, key, t.cmp, rebalance[K, V])
	if ok {
		t.size--
		t.gen++
	}

	return removed, ok
}

// Get returns a copy of the value stored under key.
func (t *AVL[K, V]) Get(key K) (V, bool) {
	if n := searchNode(t.root, key, t.cmp); n != nil {
		return n.value, true
	}
	var zero V

	return zero, false
}

// At returns the value stored under key or ErrKeyOutOfBounds.
func (t *AVL[K, V]) At(key K) (V, error) {
	v, ok := t.Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyOutOfBounds, key)
	}

	return v, nil
}

// MustAt returns the value stored under key and panics if key is absent.
func (t *AVL[K, V]) MustAt(key K) V {
	v, err := t.At(key)
	if err != nil {
		panic(err)
	}

	return v
}

// Contains reports whether key is present.
func (t *AVL[K, V]) Contains(key K) bool {
	return searchNode(t.root, key, t.cmp) != nil
}

// Find returns an iterator that starts at key and continues through every
// greater key. The boolean is false (and the iterator nil) if key is absent.
func (t *AVL[K, V]) Find(key K) (*Iterator[K, V], bool) {
	c, ok := seekTreeCursor(t.root, key, t.cmp)
	if !ok {
		return nil, false
	}

	return newIterator[K, V](c, &t.gen), true
}

// Iter returns an iterator over every entry in ascending key order.
func (t *AVL[K, V]) Iter() *Iterator[K, V] {
	return newIterator[K, V](newTreeCursor(t.root), &t.gen)
}

// All returns every entry in ascending key order. Each range over the
// sequence starts a fresh walk of the current tree.
func (t *AVL[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Iter().Seq()(yield)
	}
}

// Len returns the number of entries.
func (t *AVL[K, V]) Len() int { return t.size }

// IsEmpty reports whether the map holds no entries.
func (t *AVL[K, V]) IsEmpty() bool { return t.root == nil }

// Height returns the height of the tree: -1 when empty, 0 for a single node.
func (t *AVL[K, V]) Height() int { return height(t.root) }

// Clear drops every entry.
func (t *AVL[K, V]) Clear() {
	t.root = nil
	t.size = 0
	t.gen++
}

// Clone returns an independent deep copy of the map.
func (t *AVL[K, V]) Clone() *AVL[K, V] {
	return &AVL[K, V]{root: cloneNode(t.root), cmp: t.cmp, size: t.size}
}

// height of an empty subtree is -1.
func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}

	return n.height
}

func updateHeight[K, V any](n *node[K, V]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balanceFactor is positive when the right subtree is taller.
func balanceFactor[K, V any](n *node[K, V]) int {
	return height(n.right) - height(n.left)
}

// rotateLeft lifts n's right child into n's place:
//
//	    n              r
//	   / \            / \
//	  a   r    =>    n   c
//	     / \        / \
//	    b   c      a   b
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	updateHeight(n)
	updateHeight(r)

	return r
}

// rotateRight lifts n's left child into n's place:
//
//	      n          l
//	     / \        / \
//	    l   c  =>  a   n
//	   / \            / \
//	  a   b          b   c
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	updateHeight(n)
	updateHeight(l)

	return l
}

// rebalance refreshes n's height and rotates when |balance| exceeds one.
// A right-heavy node whose right child leans left needs the double
// (right-left) rotation; the left-heavy case mirrors it.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	updateHeight(n)

	switch b := balanceFactor(n); {
	case b > 1:
		if balanceFactor(n.right) < 0 {
			n.right = rotateRight(n.right)
		}

		return rotateLeft(n)
	case b < -1:
		if balanceFactor(n.left) > 0 {
			n.left = rotateLeft(n.left)
		}

		return rotateRight(n)
	}

	return n
}
