// SPDX-License-Identifier: MIT

// Package pqueue provides PriorityQueue, a binary max-heap over any totally
// ordered element type.
//
// The heap is stored as an implicit complete binary tree in a dense slice:
// the children of index i live at 2i+1 and 2i+2, its parent at (i-1)/2.
// For every index i > 0 the invariant value[i] <= value[parent(i)] holds,
// so the maximum always sits at index 0.
//
// Operations:
//
//   - Push(v)  O(log n)  append, then sift up.
//   - Pop()    O(log n)  swap root with last, shrink, sift down.
//   - Peek()   O(1)      read the root without mutation.
//   - Len(), IsEmpty()   O(1).
//   - Drain()            lazily pops every element in non-increasing order.
//
// Ordering:
//
//	New[T cmp.Ordered]() uses cmp.Compare.
//	NewFunc(cmp) accepts any three-way comparator; a min-heap is simply
//	NewFunc(func(a, b T) int { return cmp.Compare(b, a) }).
//
// Equal elements are popped in no particular order (the heap is not stable).
// A PriorityQueue is not safe for concurrent use.
package pqueue
