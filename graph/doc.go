// SPDX-License-Identifier: MIT

// Package graph provides a small undirected weighted graph over dense integer
// vertex IDs together with the classic algorithms run on it.
//
// Vertices are numbered 0..n-1 at construction. Every AddEdge is mirrored, so
// an edge u-v appears in both adjacency lists (a self-loop appears once).
// Adjacency lists keep insertion order and every algorithm walks them in
// that order, which makes all results deterministic.
//
// Algorithms:
//
//   - DFS, BFS: visit order from a start vertex.
//   - Dijkstra: single-source distances, O(V²) with linear-scan selection.
//     Weights must be non-negative; this is not checked.
//   - Kruskal: minimum spanning forest via sorted edges and union-find.
//   - Prim: minimum spanning tree of the component holding vertex 0, grown
//     from a pqueue.PriorityQueue frontier.
//   - FloydWarshall: all-pairs distance matrix, +Inf for unreachable pairs.
//
// Graphs can also be declared as YAML or JSON documents:
//
//	vertices: 3
//	edges:
//	  - {from: 0, to: 1, weight: 2.5}
//	  - {from: 1, to: 2, weight: 1}
//
// See Decode and (*Graph).Encode.
//
// A Graph is not safe for concurrent mutation.
package graph
