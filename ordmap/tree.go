// SPDX-License-Identifier: MIT

package ordmap

// node is a binary tree node shared by BST and AVL. Each node exclusively
// owns its subtrees. height is maintained only by AVL (a leaf has height 0).
type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	height      int
}

// fixFunc restores a structural invariant on the way back up after an insert
// or removal below n, returning the (possibly new) subtree root.
type fixFunc[K, V any] func(n *node[K, V]) *node[K, V]

// keep is the fixFunc of the unbalanced BST.
func keep[K, V any](n *node[K, V]) *node[K, V] { return n }

// insertNode descends recursively by comparison. An empty slot becomes a new
// leaf; an equal key has its value overwritten. added reports a new node.
func insertNode[K, V any](n *node[K, V], key K, value V, compare func(a, b K) int, fix fixFunc[K, V]) (_ *node[K, V], added bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value}, true
	}

	switch c := compare(key, n.key); {
	case c < 0:
		n.left, added = insertNode(n.left, key, value, compare, fix)
	case c > 0:
		n.right, added = insertNode(n.right, key, value, compare, fix)
	default:
		n.value = value // last write wins

		return n, false
	}

	return fix(n), added
}

// removeNode deletes key from the subtree rooted at n. A node with two
// children takes over its in-order successor's entry and the successor is
// unlinked from the right subtree instead.
func removeNode[K, V any](n *node[K, V], key K, compare func(a, b K) int, fix fixFunc[K, V]) (_ *node[K, V], removed V, ok bool) {
	if n == nil {
		return nil, removed, false
	}

	switch c := compare(key, n.key); {
	case c < 0:
		n.left, removed, ok = removeNode(n.left, key, compare, fix)
	case c > 0:
		n.right, removed, ok = removeNode(n.right, key, compare, fix)
	default:
		removed, ok = n.value, true
		if n.left == nil {
			return n.right, removed, true
		}
		if n.right == nil {
			return n.left, removed, true
		}
		var succ *node[K, V]
		n.right, succ = detachMin(n.right, fix)
		n.key, n.value = succ.key, succ.value
	}
	if !ok {
		return n, removed, false
	}

	return fix(n), removed, true
}

// detachMin unlinks the leftmost node of n's subtree and returns the new
// subtree root together with the detached node.
func detachMin[K, V any](n *node[K, V], fix fixFunc[K, V]) (*node[K, V], *node[K, V]) {
	if n.left == nil {
		return n.right, n
	}
	var minNode *node[K, V]
	n.left, minNode = detachMin(n.left, fix)

	return fix(n), minNode
}

// searchNode walks from n to the node holding key, or returns nil.
func searchNode[K, V any](n *node[K, V], key K, compare func(a, b K) int) *node[K, V] {
	for n != nil {
		switch c := compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// cloneNode deep-copies a subtree.
func cloneNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	cp := *n
	cp.left = cloneNode(n.left)
	cp.right = cloneNode(n.right)

	return &cp
}

// treeCursor is the explicit-stack in-order walk over a binary tree: the top
// of the stack is always the next node to emit.
type treeCursor[K, V any] struct {
	stack []*node[K, V]
}

func newTreeCursor[K, V any](root *node[K, V]) *treeCursor[K, V] {
	c := &treeCursor[K, V]{}
	c.pushLeft(root)

	return c
}

// seekTreeCursor seeds a cursor at key. Every ancestor where the search went
// left is still pending (its key is greater), so it stays on the stack; the
// ancestors where the search went right are already behind key.
func seekTreeCursor[K, V any](root *node[K, V], key K, compare func(a, b K) int) (*treeCursor[K, V], bool) {
	c := &treeCursor[K, V]{}
	for n := root; n != nil; {
		switch r := compare(key, n.key); {
		case r < 0:
			c.stack = append(c.stack, n)
			n = n.left
		case r > 0:
			n = n.right
		default:
			c.stack = append(c.stack, n)

			return c, true
		}
	}

	return nil, false
}

func (c *treeCursor[K, V]) pushLeft(n *node[K, V]) {
	for n != nil {
		c.stack = append(c.stack, n)
		n = n.left
	}
}

func (c *treeCursor[K, V]) next() (key K, value V, ok bool) {
	last := len(c.stack) - 1
	if last < 0 {
		return key, value, false
	}
	n := c.stack[last]
	c.stack[last] = nil
	c.stack = c.stack[:last]
	c.pushLeft(n.right)

	return n.key, n.value, true
}
