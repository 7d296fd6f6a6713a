package graph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/graph"
)

var inf = math.Inf(1)

// demoEdges is a 5-vertex graph whose MST weight is 8.
var demoEdges = []graph.WeightedEdge{
	{From: 0, To: 1, Weight: 2},
	{From: 0, To: 2, Weight: 4},
	{From: 1, To: 2, Weight: 1},
	{From: 1, To: 3, Weight: 7},
	{From: 2, To: 3, Weight: 3},
	{From: 2, To: 4, Weight: 5},
	{From: 3, To: 4, Weight: 2},
}

func build(t testing.TB, n int, edges []graph.WeightedEdge) *graph.Graph {
	t.Helper()
	g, err := graph.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// randomGraph returns a connected graph on n vertices: a random spanning
// path plus extra edges with small integer weights.
func randomGraph(t testing.TB, r *rand.Rand, n, extra int) (*graph.Graph, []graph.WeightedEdge) {
	t.Helper()
	perm := r.Perm(n)
	var edges []graph.WeightedEdge
	for i := 1; i < n; i++ {
		edges = append(edges, graph.WeightedEdge{From: perm[i-1], To: perm[i], Weight: float64(1 + r.Intn(9))})
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, graph.WeightedEdge{From: r.Intn(n), To: r.Intn(n), Weight: float64(1 + r.Intn(9))})
	}

	return build(t, n, edges), edges
}

func TestNew(t *testing.T) {
	g, err := graph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Vertices())
	assert.Empty(t, g.Edges())

	_, err = graph.New(-1)
	assert.ErrorIs(t, err, graph.ErrNegativeVertexCount)
}

func TestAddEdge(t *testing.T) {
	g := build(t, 3, nil)
	require.NoError(t, g.AddEdge(0, 1, 2.5))
	require.NoError(t, g.AddEdge(2, 2, 1))
	require.NoError(t, g.AddEdge(1, 0, 4)) // parallel edge

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{To: 1, Weight: 2.5}, {To: 1, Weight: 4}}, n0)

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{To: 0, Weight: 2.5}, {To: 0, Weight: 4}}, n1)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{To: 2, Weight: 1}}, n2, "self-loop stored once")

	assert.Equal(t, []graph.WeightedEdge{
		{From: 0, To: 1, Weight: 2.5},
		{From: 0, To: 1, Weight: 4},
		{From: 2, To: 2, Weight: 1},
	}, g.Edges())

	// Neighbors hands out a copy.
	n0[0].Weight = 100
	again, _ := g.Neighbors(0)
	assert.Equal(t, 2.5, again[0].Weight)
}

func TestVertexOutOfRange(t *testing.T) {
	g := build(t, 2, nil)

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), graph.ErrVertexOutOfRange)
	assert.Empty(t, g.Edges(), "failed AddEdge must not add half an edge")

	_, err := g.Neighbors(5)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	_, err = g.DFS(2)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	_, err = g.BFS(-1)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	_, err = g.Dijkstra(9)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestTraversals(t *testing.T) {
	g := build(t, 5, demoEdges)

	order, err := g.DFS(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	order, err = g.DFS(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 0, 1, 3}, order)

	order, err = g.BFS(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)

	order, err = g.BFS(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3, 0, 1}, order)
}

func TestTraversals_Disconnected(t *testing.T) {
	// 0-1-2 is a path, 3 is isolated.
	g := build(t, 4, []graph.WeightedEdge{{From: 1, To: 2, Weight: 1}, {From: 0, To: 1, Weight: 1}})

	order, err := g.DFS(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)

	order, err = g.BFS(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, order)

	order, err = g.DFS(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, order)
}

func TestDijkstra(t *testing.T) {
	g := build(t, 5, demoEdges)
	dist, err := g.Dijkstra(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 3, 6, 8}, dist)

	g = build(t, 3, []graph.WeightedEdge{{From: 0, To: 1, Weight: 1.5}})
	dist, err = g.Dijkstra(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 0, inf}, dist)
}

// bruteDistances relaxes every edge V times (Bellman-Ford without the
// early exit), which is exact for non-negative weights.
func bruteDistances(n int, edges []graph.WeightedEdge, src int) []float64 {
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[src] = 0
	for range n {
		for _, e := range edges {
			if d := dist[e.From] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
			}
			if d := dist[e.To] + e.Weight; d < dist[e.From] {
				dist[e.From] = d
			}
		}
	}

	return dist
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(9)
		var edges []graph.WeightedEdge
		for i := r.Intn(2 * n); i > 0; i-- {
			edges = append(edges, graph.WeightedEdge{From: r.Intn(n), To: r.Intn(n), Weight: float64(r.Intn(10))})
		}
		g := build(t, n, edges)

		for src := 0; src < n; src++ {
			got, err := g.Dijkstra(src)
			require.NoError(t, err)
			require.Equal(t, bruteDistances(n, edges, src), got, "round %d src %d", round, src)
		}
	}
}

func TestMST_Demo(t *testing.T) {
	g := build(t, 5, demoEdges)

	kruskal := g.Kruskal()
	assert.Equal(t, []graph.WeightedEdge{
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 1, Weight: 2},
		{From: 3, To: 4, Weight: 2},
		{From: 2, To: 3, Weight: 3},
	}, kruskal)

	prim := g.Prim()
	assert.Equal(t, []graph.WeightedEdge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 3},
		{From: 3, To: 4, Weight: 2},
	}, prim)

	assert.Equal(t, 8.0, graph.TotalWeight(kruskal))
	assert.Equal(t, 8.0, graph.TotalWeight(prim))
}

func TestMST_EdgeCases(t *testing.T) {
	empty := build(t, 0, nil)
	assert.Empty(t, empty.Kruskal())
	assert.Empty(t, empty.Prim())

	single := build(t, 1, []graph.WeightedEdge{{From: 0, To: 0, Weight: -3}})
	assert.Empty(t, single.Kruskal(), "self-loops never join a tree")
	assert.Empty(t, single.Prim())

	// Two components: {0,1} and {2,3}.
	g := build(t, 4, []graph.WeightedEdge{{From: 0, To: 1, Weight: 5}, {From: 2, To: 3, Weight: 1}})
	assert.Len(t, g.Kruskal(), 2, "Kruskal spans every component")
	assert.Equal(t, []graph.WeightedEdge{{From: 0, To: 1, Weight: 5}}, g.Prim(), "Prim stays in vertex 0's component")
}

// bruteMST enumerates every (n-1)-edge subset and returns the lightest one
// that connects all n vertices.
func bruteMST(n int, edges []graph.WeightedEdge) float64 {
	best := inf
	var pick func(from, taken int, weight float64, chosen []graph.WeightedEdge)
	pick = func(from, taken int, weight float64, chosen []graph.WeightedEdge) {
		if taken == n-1 {
			if spans(n, chosen) && weight < best {
				best = weight
			}

			return
		}
		for i := from; i < len(edges); i++ {
			pick(i+1, taken+1, weight+edges[i].Weight, append(chosen, edges[i]))
		}
	}
	pick(0, 0, 0, nil)

	return best
}

func spans(n int, edges []graph.WeightedEdge) bool {
	g, _ := graph.New(n)
	for _, e := range edges {
		_ = g.AddEdge(e.From, e.To, e.Weight)
	}
	order, _ := g.BFS(0)

	return len(order) == n
}

func TestMST_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(5)
		g, edges := randomGraph(t, r, n, r.Intn(5))

		want := bruteMST(n, edges)
		kruskal, prim := g.Kruskal(), g.Prim()
		require.Len(t, kruskal, n-1)
		require.Len(t, prim, n-1)
		require.Equal(t, want, graph.TotalWeight(kruskal), "round %d", round)
		require.Equal(t, want, graph.TotalWeight(prim), "round %d", round)
	}
}

func TestFloydWarshall(t *testing.T) {
	g := build(t, 5, demoEdges)
	dist := g.FloydWarshall()
	require.Len(t, dist, 5)

	want0, _ := g.Dijkstra(0)
	assert.Equal(t, want0, dist[0])

	// Parallel edges: the lighter one wins; isolated vertex stays at +Inf.
	g = build(t, 3, []graph.WeightedEdge{{From: 0, To: 1, Weight: 9}, {From: 1, To: 0, Weight: 4}})
	assert.Equal(t, [][]float64{
		{0, 4, inf},
		{4, 0, inf},
		{inf, inf, 0},
	}, g.FloydWarshall())

	assert.Empty(t, build(t, 0, nil).FloydWarshall())
}

func TestFloydWarshall_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for round := 0; round < 30; round++ {
		n := 1 + r.Intn(8)
		var edges []graph.WeightedEdge
		for i := r.Intn(3 * n); i > 0; i-- {
			edges = append(edges, graph.WeightedEdge{From: r.Intn(n), To: r.Intn(n), Weight: float64(r.Intn(20))})
		}
		g := build(t, n, edges)
		dist := g.FloydWarshall()

		for i := 0; i < n; i++ {
			require.Equal(t, 0.0, dist[i][i])
			sssp, err := g.Dijkstra(i)
			require.NoError(t, err)
			require.Equal(t, sssp, dist[i], "row %d matches Dijkstra", i)
			for j := 0; j < n; j++ {
				require.Equal(t, dist[i][j], dist[j][i], "symmetric at %d,%d", i, j)
				for k := 0; k < n; k++ {
					require.LessOrEqual(t, dist[i][j], dist[i][k]+dist[k][j], "triangle %d,%d,%d", i, j, k)
				}
			}
		}
	}
}
