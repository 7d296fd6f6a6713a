// SPDX-License-Identifier: MIT

package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeVertexCount is returned by New for n < 0.
	ErrNegativeVertexCount = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside 0..Vertices()-1.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrInvalidSpec wraps every failure to decode a graph document.
	ErrInvalidSpec = errors.New("graph: invalid graph spec")
)

// Edge is one adjacency list entry: the neighbour and the edge weight.
type Edge struct {
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// WeightedEdge is an undirected edge as reported by Edges, Kruskal and Prim.
type WeightedEdge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []WeightedEdge) float64 {
	var sum float64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
