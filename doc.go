// Package lvlds is a compact collection of generic in-memory containers and
// the classic algorithms that run on them.
//
// 🚀 What is lvlds?
//
//	A small, dependency-light library that brings together:
//		• Priority queue: binary max-heap with a pluggable comparator
//		• Ordered maps: plain BST, AVL tree and B-tree behind one interface
//		• Hash map: separate chaining, full rehash, pluggable hasher
//		• Graph: DFS, BFS, Dijkstra, Kruskal, Prim, Floyd–Warshall
//		• String search: Rabin–Karp, Knuth–Morris–Pratt, Boyer–Moore
//
// ✨ Why choose lvlds?
//
//   - Generic – every container is typed through Go type parameters
//   - Deterministic – iteration and algorithm output never depend on map order
//   - Honest errors – sentinel errors for errors.Is, a Must* accessor where a panic is wanted
//   - Pure Go – no cgo
//
// Packages:
//
//	pqueue/     PriorityQueue[T]: Push, Pop, Peek, Drain
//	ordmap/     BST, AVL, BTree ordered maps with in-order iterators and Find
//	hashmap/    HashMap[K, V] with configurable max load factor and slog rehash logs
//	graph/      undirected weighted Graph over 0..n-1, YAML/JSON fixtures
//	strsearch/  exact byte-wise substring search, all offsets
//
// Quick example:
//
//	g, _ := graph.New(3)
//	_ = g.AddEdge(0, 1, 2.5)
//	_ = g.AddEdge(1, 2, 1)
//	dist, _ := g.Dijkstra(0) // [0 2.5 3.5]
//
// None of the containers is safe for concurrent mutation; guard them with a
// sync.Mutex when sharing across goroutines.
package lvlds
