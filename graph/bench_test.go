package graph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlds/graph"
)

// benchGraph is a connected 300-vertex graph with ~3000 edges.
func benchGraph(b *testing.B) *graph.Graph {
	b.Helper()
	r := rand.New(rand.NewSource(1))
	g, _ := randomGraph(b, r, 300, 2700)

	return g
}

func BenchmarkDijkstra(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Dijkstra(i % g.Vertices())
	}
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Kruskal()
	}
}

func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Prim()
	}
}

func BenchmarkFloydWarshall(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.FloydWarshall()
	}
}
