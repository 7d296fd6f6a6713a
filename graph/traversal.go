// SPDX-License-Identifier: MIT

package graph

// dfsWalker holds the state of one recursive depth-first walk.
type dfsWalker struct {
	g       *Graph
	visited []bool
	order   []int
}

// DFS returns the vertices reachable from start in depth-first pre-order,
// following each adjacency list in insertion order.
//
// Recursion depth is bounded by the longest simple path explored, so very
// deep path-like graphs consume a matching amount of goroutine stack.
func (g *Graph) DFS(start int) ([]int, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}

	w := &dfsWalker{
		g:       g,
		visited: make([]bool, len(g.adj)),
		order:   make([]int, 0, len(g.adj)),
	}
	w.visit(start)

	return w.order, nil
}

func (w *dfsWalker) visit(u int) {
	w.visited[u] = true
	w.order = append(w.order, u)
	for _, e := range w.g.adj[u] {
		if !w.visited[e.To] {
			w.visit(e.To)
		}
	}
}

// BFS returns the vertices reachable from start in breadth-first order.
// A vertex is marked when it is enqueued, so each appears exactly once.
func (g *Graph) BFS(start int) ([]int, error) {
	if err := g.check(start); err != nil {
		return nil, err
	}

	visited := make([]bool, len(g.adj))
	queue := make([]int, 0, len(g.adj))
	queue = append(queue, start)
	visited[start] = true

	// queue doubles as the visit order; head walks it as a FIFO.
	for head := 0; head < len(queue); head++ {
		for _, e := range g.adj[queue[head]] {
			if !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return queue, nil
}
