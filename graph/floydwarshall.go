// SPDX-License-Identifier: MIT

package graph

import "math"

// FloydWarshall returns the V×V matrix of shortest distances between every
// pair of vertices. The diagonal is 0, unreachable pairs are +Inf, and
// parallel edges contribute their minimum weight.
//
// Loop order is fixed (k → i → j); relaxations through a +Inf leg are
// skipped. Self-loops never enter the matrix. Time O(V³), space O(V²).
func (g *Graph) FloydWarshall() [][]float64 {
	// 1. Direct distances: 0 on the diagonal, lightest parallel edge, else +Inf.
	n := len(g.adj)
	dist := make([][]float64, n)
	for i := range dist {
		row := make([]float64, n)
		for j := range row {
			if i != j {
				row[j] = math.Inf(1)
			}
		}
		for _, e := range g.adj[i] {
			if e.To != i && e.Weight < row[e.To] {
				row[e.To] = e.Weight
			}
		}
		dist[i] = row
	}

	// 2. Relax every pair through each intermediate vertex k in turn.
	for k := 0; k < n; k++ {
		rowK := dist[k]
		for i := 0; i < n; i++ {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			rowI := dist[i]
			for j := 0; j < n; j++ {
				if math.IsInf(rowK[j], 1) {
					continue
				}
				if cand := ik + rowK[j]; cand < rowI[j] {
					rowI[j] = cand
				}
			}
		}
	}

	return dist
}
