// SPDX-License-Identifier: MIT

package pqueue

import (
	"cmp"
	"iter"
)

// PriorityQueue is a binary max-heap. The zero value is not usable; build
// one with New or NewFunc.
type PriorityQueue[T any] struct {
	heap []T
	cmp  func(a, b T) int
}

// New returns an empty max-heap ordered by cmp.Compare.
func New[T cmp.Ordered]() *PriorityQueue[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc returns an empty max-heap ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b. The element with the greatest order is popped first.
func NewFunc[T any](compare func(a, b T) int) *PriorityQueue[T] {
	return &PriorityQueue[T]{cmp: compare}
}

// Len reports the number of queued elements.
func (pq *PriorityQueue[T]) Len() int { return len(pq.heap) }

// IsEmpty reports whether the queue holds no elements.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.heap) == 0 }

// Push inserts value and restores the heap property by sifting it up.
// Complexity: O(log n).
func (pq *PriorityQueue[T]) Push(value T) {
	pq.heap = append(pq.heap, value)
	pq.siftUp(len(pq.heap) - 1)
}

// Pop removes and returns the maximum element. The boolean is false when the
// queue is empty. Complexity: O(log n).
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	var zero T
	n := len(pq.heap)
	if n == 0 {
		return zero, false
	}

	last := n - 1
	pq.swap(0, last)
	top := pq.heap[last]
	pq.heap[last] = zero // release the reference held by the backing array
	pq.heap = pq.heap[:last]
	pq.siftDown(0)

	return top, true
}

// Peek returns the maximum element without removing it. The boolean is false
// when the queue is empty. Complexity: O(1).
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.heap) == 0 {
		var zero T
		return zero, false
	}

	return pq.heap[0], true
}

// Drain returns a single-use sequence that pops elements in non-increasing
// order until the queue is empty or the consumer stops early. Elements not
// consumed stay in the queue.
func (pq *PriorityQueue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := pq.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// siftUp moves heap[i] towards the root while its parent is smaller.
func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if pq.cmp(pq.heap[i], pq.heap[parent]) <= 0 {
			return
		}
		pq.swap(i, parent)
		i = parent
	}
}

// siftDown moves heap[i] towards the leaves, each time swapping with the
// larger child, until no child exceeds it.
func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.heap)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i

		if left < n && pq.cmp(pq.heap[left], pq.heap[largest]) > 0 {
			largest = left
		}
		if right < n && pq.cmp(pq.heap[right], pq.heap[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		pq.swap(i, largest)
		i = largest
	}
}

func (pq *PriorityQueue[T]) swap(i, j int) {
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
}
