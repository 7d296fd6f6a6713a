// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvlds/pqueue"
)

// Kruskal returns a minimum spanning forest: a minimum spanning tree for
// every connected component.
//
// Steps:
//  1. Collect every undirected edge once (see Edges); self-loops are dropped.
//  2. Stable-sort by ascending weight, so equal weights keep Edges order.
//  3. Scan the sorted edges, keeping each one whose endpoints lie in
//     different union-find sets and merging those sets.
//
// Complexity: O(E log E + E·α(V)).
func (g *Graph) Kruskal() []WeightedEdge {
	// 1. Candidate edges, lightest first.
	edges := slices.DeleteFunc(g.Edges(), func(e WeightedEdge) bool {
		return e.From == e.To
	})
	slices.SortStableFunc(edges, func(a, b WeightedEdge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	// 2. Keep every edge that joins two components; n-1 edges is a full tree.
	n := len(g.adj)
	forest := make([]WeightedEdge, 0, max(n-1, 0))
	uf := newUnionFind(n)
	for _, e := range edges {
		if uf.union(e.From, e.To) {
			forest = append(forest, e)
			if len(forest) == n-1 {
				break
			}
		}
	}

	return forest
}

// primItem is a frontier edge. The heap is a max-heap, so ordering on the
// negated weight pops the lightest edge first.
type primItem struct {
	negWeight float64
	from, to  int
}

func comparePrimItems(a, b primItem) int {
	return cmp.Compare(a.negWeight, b.negWeight)
}

// Prim returns a minimum spanning tree of the component containing vertex 0,
// in the order its edges were added. Each returned edge is oriented from the
// tree side to the vertex it brought in. An empty graph yields no edges.
//
// Edges to vertices already in the tree are left in the frontier and skipped
// when popped.
//
// Complexity: O(E log E).
func (g *Graph) Prim() []WeightedEdge {
	// 1. An empty graph has an empty tree.
	n := len(g.adj)
	tree := make([]WeightedEdge, 0, max(n-1, 0))
	if n == 0 {
		return tree
	}

	// 2. grow admits u and offers its edges to outside vertices.
	inTree := make([]bool, n)
	frontier := pqueue.NewFunc(comparePrimItems)
	grow := func(u int) {
		inTree[u] = true
		for _, e := range g.adj[u] {
			if !inTree[e.To] {
				frontier.Push(primItem{negWeight: -e.Weight, from: u, to: e.To})
			}
		}
	}

	// 3. Seed with vertex 0, then take the lightest frontier edge that
	//    reaches a new vertex until the tree spans n vertices or the
	//    frontier runs dry.
	grow(0)
	for len(tree) < n-1 {
		it, ok := frontier.Pop()
		if !ok {
			break // vertex 0's component is exhausted
		}
		if inTree[it.to] {
			continue // stale: both ends already in the tree
		}
		tree = append(tree, WeightedEdge{From: it.from, To: it.to, Weight: -it.negWeight})
		grow(it.to)
	}

	return tree
}

// unionFind is a disjoint-set forest over 0..n-1 with path compression and
// union by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find returns the root of x, halving the path on the way up.
func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges the sets of a and b. It reports false if they were already
// the same set.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}

	return true
}
