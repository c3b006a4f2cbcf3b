package route_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/route"
)

// benchGraph builds a random road network of n cities with ~15% density.
func benchGraph(b *testing.B, n int) *route.Graph {
	rng := rand.New(rand.NewSource(1))
	cities := make([]string, n)
	for i := range cities {
		cities[i] = fmt.Sprintf("c%d", i)
	}

	return mustGraph(b, cities, randomMatrix(rng, n, 0.15, 500))
}

// BenchmarkFindPathDFS measures DFS on an 81-city graph.
func BenchmarkFindPathDFS(b *testing.B) {
	g := benchGraph(b, 81)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.FindPathDFSIndex(0, 80, route.WithCapacity(1<<16)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPathBFS measures BFS on an 81-city graph.
func BenchmarkFindPathBFS(b *testing.B) {
	g := benchGraph(b, 81)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.FindPathBFSIndex(0, 80, route.WithCapacity(1<<16)); err != nil {
			b.Fatal(err)
		}
	}
}
