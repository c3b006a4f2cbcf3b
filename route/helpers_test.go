package route_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/route"
)

// X marks "no edge" in test matrices.
const X = route.InfWeight

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, cities []string, m [][]int) *route.Graph {
	t.Helper()
	g, err := route.NewGraph(cities, m)
	require.NoError(t, err)

	return g
}

// triangle is A→B=1, B→C=1, A→C=5.
func triangle(t testing.TB) *route.Graph {
	return mustGraph(t, []string{"A", "B", "C"}, [][]int{
		{0, 1, 5},
		{X, 0, 1},
		{0, X, 0},
	})
}

// randomMatrix returns an n×n matrix where roughly density of the cells
// carry a weight in [1, maxW]; the rest alternate between 0 and InfWeight.
func randomMatrix(rng *rand.Rand, n int, density float64, maxW int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			switch {
			case rng.Float64() < density:
				m[i][j] = 1 + rng.Intn(maxW)
			case (i+j)%2 == 0:
				m[i][j] = route.NoEdgeWeight
			default:
				m[i][j] = route.InfWeight
			}
		}
	}

	return m
}

// floydWarshall returns all-pairs cheapest costs, math.MaxInt for unreachable.
func floydWarshall(m [][]int) [][]int {
	n := len(m)
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			switch {
			case i == j:
				d[i][j] = 0
			case route.ValidEdge(m[i][j]):
				d[i][j] = m[i][j]
			default:
				d[i][j] = math.MaxInt
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if d[i][k] == math.MaxInt {
				continue
			}
			for j := 0; j < n; j++ {
				if d[k][j] == math.MaxInt {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}

	return d
}

// requireWellFormed checks the structural invariants of a non-empty path.
func requireWellFormed(t *testing.T, g *route.Graph, p route.Path, start, end int) {
	t.Helper()
	require.NotEmpty(t, p)
	require.Nil(t, p[0].Parent(), "first node must be the start node")
	require.Equal(t, start, p[0].CityIndex())
	require.Equal(t, 0, p[0].PathCost())
	require.Equal(t, end, p[len(p)-1].CityIndex())
	for i := 1; i < len(p); i++ {
		require.Same(t, p[i-1], p[i].Parent(), "consecutive nodes must be parent→child")
		w := g.Weight(p[i-1].CityIndex(), p[i].CityIndex())
		require.True(t, route.ValidEdge(w), "path uses a non-edge %d→%d", p[i-1].CityIndex(), p[i].CityIndex())
		require.Equal(t, p[i-1].PathCost()+w, p[i].PathCost())
	}
}
