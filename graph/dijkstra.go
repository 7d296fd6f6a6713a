// SPDX-License-Identifier: MIT

package graph

import "math"

// Dijkstra returns the shortest distance from start to every vertex;
// unreachable vertices get +Inf.
//
// Selection is a linear scan over the unsettled vertices, giving O(V²+E)
// time with no auxiliary heap. The scan stops early once the closest
// unsettled vertex is at +Inf.
//
// Edge weights must be non-negative. Negative weights are not detected and
// yield meaningless distances.
func (g *Graph) Dijkstra(start int) ([]float64, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}

	n := len(g.adj)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	settled := make([]bool, n)

	for range n {
		// Pick the closest unsettled vertex.
		u, best := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !settled[v] && dist[v] < best {
				u, best = v, dist[v]
			}
		}
		if u < 0 {
			break // the rest is unreachable
		}
		settled[u] = true

		for _, e := range g.adj[u] {
			if settled[e.To] {
				continue
			}
			if nd := best + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
			}
		}
	}

	return dist, nil
}
