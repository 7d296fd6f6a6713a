// SPDX-License-Identifier: MIT

// Package ordmap implements three ordered maps that share a single contract
// (Map): an unbalanced binary search tree (BST), a height-balanced AVL tree
// (AVL) and a B-tree of configurable minimum degree (BTree).
//
// All three keep keys unique (inserting an existing key overwrites its value),
// iterate in strictly ascending key order and expose the same lookup family:
//
//   - Get(key)     (V, bool)   non-failing lookup.
//   - At(key)      (V, error)  ErrKeyOutOfBounds when absent.
//   - MustAt(key)  V           panics with ErrKeyOutOfBounds when absent.
//   - Find(key)    (*Iterator, bool)
//     an iterator positioned at key that yields key and every greater key.
//   - Iter(), All() full ascending traversal.
//
// # Iteration
//
// Iterators walk the live tree with an explicit stack (no recursion, no
// copying of the tree). They are borrowed views: any mutating call on the
// owning map (Insert, Remove, Clear) invalidates every outstanding iterator.
// An invalidated iterator stops yielding and reports ErrStaleIterator from
// Err. Values returned by Get, At and the iterators are copies.
//
// # Complexity
//
//	BST    insert/get/remove O(h), h = O(n) on sorted input.
//	AVL    insert/get/remove O(log n).
//	BTree  insert/get O(t · log_t n).
//
// The BST recurses to the depth of the tree, so adversarial (sorted) insert
// orders grow the call stack linearly; prefer AVL or BTree for such inputs.
//
// None of the maps is safe for concurrent use.
package ordmap
