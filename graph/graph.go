// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"
)

// Graph is an undirected weighted graph stored as adjacency lists.
type Graph struct {
	adj [][]Edge
}

// New returns a graph with n isolated vertices.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVertexCount, n)
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}

// Vertices returns the vertex count.
func (g *Graph) Vertices() int { return len(g.adj) }

// AddEdge connects u and v with weight w in both directions. Parallel edges
// are kept. A self-loop is recorded once in u's list.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	if u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
	}

	return nil
}

// Neighbors returns a copy of v's adjacency list in insertion order.
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}

	return slices.Clone(g.adj[v]), nil
}

// Edges returns every undirected edge once, oriented From <= To, ordered by
// From and then by position in From's adjacency list.
func (g *Graph) Edges() []WeightedEdge {
	var edges []WeightedEdge
	for u, list := range g.adj {
		for _, e := range list {
			if u <= e.To {
				edges = append(edges, WeightedEdge{From: u, To: e.To, Weight: e.Weight})
			}
		}
	}

	return edges
}

func (g *Graph) check(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, len(g.adj))
	}

	return nil
}
