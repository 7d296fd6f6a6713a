// SPDX-License-Identifier: MIT

package ordmap

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// entry is one key/value pair stored in a B-tree node.
type entry[K, V any] struct {
	key   K
	value V
}

// bnode is a B-tree node. entries are strictly increasing by key; an internal
// node has exactly len(entries)+1 children, a leaf has none.
type bnode[K, V any] struct {
	entries  []entry[K, V]
	children []*bnode[K, V]
}

func (n *bnode[K, V]) leaf() bool { return len(n.children) == 0 }

// search returns the slot of key within n, or the child index to descend into.
func (n *bnode[K, V]) search(key K, compare func(a, b K) int) (int, bool) {
	return slices.BinarySearchFunc(n.entries, key, func(e entry[K, V], k K) int {
		return compare(e.key, k)
	})
}

// BTree is an ordered map backed by a B-tree of minimum degree t.
//
// Invariants:
//   - every node holds at most 2t-1 entries; every non-root node at least t-1;
//   - all leaves are at the same depth;
//   - child i of a node holds keys strictly between entries[i-1] and entries[i].
type BTree[K, V any] struct {
	root *bnode[K, V]
	t    int
	cmp  func(a, b K) int
	size int
	gen  uint64
}

// NewBTree returns an empty B-tree of minimum degree t ordered by cmp.Compare.
// It returns ErrInvalidDegree when t < 2.
func NewBTree[K cmp.Ordered, V any](t int) (*BTree[K, V], error) {
	return NewBTreeFunc[K, V](t, cmp.Compare[K])
}

// NewBTreeFunc returns an empty B-tree of minimum degree t ordered by the
// three-way comparator compare. It returns ErrInvalidDegree when t < 2.
func NewBTreeFunc[K, V any](t int, compare func(a, b K) int) (*BTree[K, V], error) {
	if t < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, t)
	}

	return &BTree[K, V]{t: t, cmp: compare}, nil
}

// Degree returns the minimum degree t the tree was built with.
func (b *BTree[K, V]) Degree() int { return b.t }

func (b *BTree[K, V]) maxEntries() int { return 2*b.t - 1 }

// Insert stores value under key. An existing key is overwritten in place;
// otherwise the entry goes into a leaf, splitting every full node met on the
// way down so the recursion always enters a non-full node.
func (b *BTree[K, V]) Insert(key K, value V) {
	b.gen++

	if b.root == nil {
		b.root = &bnode[K, V]{entries: []entry[K, V]{{key: key, value: value}}}
		b.size++

		return
	}

	if n, i := b.lookup(key); n != nil {
		n.entries[i].value = value

		return
	}

	// A full root is split under a fresh root; this is the only way the tree
	// grows in height.
	if len(b.root.entries) == b.maxEntries() {
		root := &bnode[K, V]{children: []*bnode[K, V]{b.root}}
		b.splitChild(root, 0)
		b.root = root
	}
	b.insertNonFull(b.root, key, value)
	b.size++
}

// insertNonFull inserts a key known to be absent into the non-full node n.
func (b *BTree[K, V]) insertNonFull(n *bnode[K, V], key K, value V) {
	i, _ := n.search(key, b.cmp)
	if n.leaf() {
		n.entries = slices.Insert(n.entries, i, entry[K, V]{key: key, value: value})

		return
	}

	if len(n.children[i].entries) == b.maxEntries() {
		b.splitChild(n, i)
		// The promoted median now sits at entries[i]; pick its side.
		if b.cmp(key, n.entries[i].key) > 0 {
			i++
		}
	}
	b.insertNonFull(n.children[i], key, value)
}

// splitChild splits the full child parent.children[i] around its median
// (index t-1). Both halves keep t-1 entries, the median moves up into
// parent.entries[i] and the right half becomes parent.children[i+1].
func (b *BTree[K, V]) splitChild(parent *bnode[K, V], i int) {
	t := b.t
	child := parent.children[i]
	median := child.entries[t-1]

	// 1. The upper t-1 entries (and t children) move to a new right sibling.
	right := &bnode[K, V]{entries: slices.Clone(child.entries[t:])}
	if !child.leaf() {
		right.children = slices.Clone(child.children[t:])
		clear(child.children[t:])
		child.children = child.children[:t]
	}

	// 2. The child keeps the lower t-1; the median slot and tail are zeroed.
	clear(child.entries[t-1:])
	child.entries = child.entries[:t-1]

	// 3. The median lands in the parent between the two halves.
	parent.entries = slices.Insert(parent.entries, i, median)
	parent.children = slices.Insert(parent.children, i+1, right)
}

// lookup returns the node and slot holding key, or (nil, -1).
func (b *BTree[K, V]) lookup(key K) (*bnode[K, V], int) {
	for n := b.root; n != nil; {
		i, found := n.search(key, b.cmp)
		if found {
			return n, i
		}
		if n.leaf() {
			break
		}
		n = n.children[i]
	}

	return nil, -1
}

// Get returns a copy of the value stored under key.
func (b *BTree[K, V]) Get(key K) (V, bool) {
	if n, i := b.lookup(key); n != nil {
		return n.entries[i].value, true
	}
	var zero V

	return zero, false
}

// At returns the value stored under key or ErrKeyOutOfBounds.
func (b *BTree[K, V]) At(key K) (V, error) {
	v, ok := b.Get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyOutOfBounds, key)
	}

	return v, nil
}

// MustAt returns the value stored under key and panics if key is absent.
func (b *BTree[K, V]) MustAt(key K) V {
	v, err := b.At(key)
	if err != nil {
		panic(err)
	}

	return v
}

// Contains reports whether key is present.
func (b *BTree[K, V]) Contains(key K) bool {
	n, _ := b.lookup(key)

	return n != nil
}

// Find returns an iterator that starts at key and continues through every
// greater key. The boolean is false (and the iterator nil) if key is absent.
func (b *BTree[K, V]) Find(key K) (*Iterator[K, V], bool) {
	c, ok := seekBTreeCursor(b.root, key, b.cmp)
	if !ok {
		return nil, false
	}

	return newIterator[K, V](c, &b.gen), true
}

// Iter returns an iterator over every entry in ascending key order.
func (b *BTree[K, V]) Iter() *Iterator[K, V] {
	c := &btreeCursor[K, V]{}
	c.pushLeft(b.root)

	return newIterator[K, V](c, &b.gen)
}

// All returns every entry in ascending key order. Each range over the
// sequence starts a fresh walk of the current tree.
func (b *BTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		b.Iter().Seq()(yield)
	}
}

// Len returns the number of entries.
func (b *BTree[K, V]) Len() int { return b.size }

// IsEmpty reports whether the map holds no entries.
func (b *BTree[K, V]) IsEmpty() bool { return b.root == nil }

// Height returns the depth of the leaves: -1 when empty, 0 when the root is a leaf.
func (b *BTree[K, V]) Height() int {
	if b.root == nil {
		return -1
	}
	h := 0
	for n := b.root; !n.leaf(); n = n.children[0] {
		h++
	}

	return h
}

// Clear drops every entry.
func (b *BTree[K, V]) Clear() {
	b.root = nil
	b.size = 0
	b.gen++
}

// Clone returns an independent deep copy of the map.
func (b *BTree[K, V]) Clone() *BTree[K, V] {
	return &BTree[K, V]{root: cloneBNode(b.root), t: b.t, cmp: b.cmp, size: b.size}
}

func cloneBNode[K, V any](n *bnode[K, V]) *bnode[K, V] {
	if n == nil {
		return nil
	}
	cp := &bnode[K, V]{entries: slices.Clone(n.entries)}
	if !n.leaf() {
		cp.children = make([]*bnode[K, V], len(n.children))
		for i, c := range n.children {
			cp.children[i] = cloneBNode(c)
		}
	}

	return cp
}

// frame marks entries[i] of n as the next entry to emit; everything in
// children[:i+1] has already been handled or is above it on the stack.
type frame[K, V any] struct {
	n *bnode[K, V]
	i int
}

// btreeCursor is the explicit-stack in-order walk over a B-tree.
type btreeCursor[K, V any] struct {
	stack []frame[K, V]
}

// pushLeft stacks n and the leftmost path below it.
func (c *btreeCursor[K, V]) pushLeft(n *bnode[K, V]) {
	for n != nil {
		c.stack = append(c.stack, frame[K, V]{n: n})
		if n.leaf() {
			return
		}
		n = n.children[0]
	}
}

// next emits entries[i] of the top frame. Before returning it schedules the
// frame's following entry and, for an internal node, the left spine of
// children[i+1], which holds every key between the two.
func (c *btreeCursor[K, V]) next() (key K, value V, ok bool) {
	for len(c.stack) > 0 {
		last := len(c.stack) - 1
		f := c.stack[last]
		c.stack = c.stack[:last]
		if f.i >= len(f.n.entries) {
			continue
		}

		e := f.n.entries[f.i]
		if f.i+1 < len(f.n.entries) {
			c.stack = append(c.stack, frame[K, V]{n: f.n, i: f.i + 1})
		}
		if !f.n.leaf() {
			c.pushLeft(f.n.children[f.i+1])
		}

		return e.key, e.value, true
	}

	return key, value, false
}

// seekBTreeCursor seeds a cursor at key. On the search path, each ancestor
// whose remaining entries are greater than key is kept as a pending frame.
func seekBTreeCursor[K, V any](root *bnode[K, V], key K, compare func(a, b K) int) (*btreeCursor[K, V], bool) {
	c := &btreeCursor[K, V]{}
	for n := root; n != nil; {
		i, found := n.search(key, compare)
		if found {
			c.stack = append(c.stack, frame[K, V]{n: n, i: i})

			return c, true
		}
		if n.leaf() {
			break
		}
		if i < len(n.entries) {
			c.stack = append(c.stack, frame[K, V]{n: n, i: i})
		}
		n = n.children[i]
	}

	return nil, false
}
