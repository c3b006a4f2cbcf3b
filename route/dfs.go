package route

import (
	"fmt"

	"github.com/katalvlaran/lvroute/bounded"
)

// FindPathDFS searches for a route from start to end with a LIFO frontier
// and best-known-cost pruning. See the package documentation for the
// optimality caveat.
//
// Returns an empty Path and nil error if end is unreachable.
func (g *Graph) FindPathDFS(start, end string, opts ...Option) (Path, error) {
	s, e, err := g.resolve(start, end)
	if err != nil {
		return nil, err
	}

	return g.FindPathDFSIndex(s, e, opts...)
}

// FindPathDFSIndex is FindPathDFS over city indices.
func (g *Graph) FindPathDFSIndex(start, end int, opts ...Option) (Path, error) {
	o, err := g.prepare(start, end, opts)
	if err != nil {
		return nil, err
	}
	open, err := bounded.NewStack[*PathNode](o.Capacity)
	if err != nil {
		return nil, err
	}

	n := len(g.cities)
	visited := make([]bool, n)
	best := make([]*PathNode, n) // lowest-cost expanded node per city
	var bestNode *PathNode

	if err = open.Push(NewPathNode(start, nil, 0)); err != nil {
		return nil, fmt.Errorf("route: dfs: %w", err)
	}

	for !open.IsEmpty() {
		cur, _ := open.Pop()
		ci := cur.cityIndex

		// stale: already expanded at an equal or lower cost
		if visited[ci] && best[ci].pathCost <= cur.pathCost {
			continue
		}
		visited[ci] = true
		best[ci] = cur
		o.OnExpand(ci, cur.pathCost)

		if ci == end && (bestNode == nil || cur.pathCost < bestNode.pathCost) {
			bestNode = cur
		}

		row := g.matrix[ci]
		for nb := 0; nb < n; nb++ {
			if !ValidEdge(row[nb]) {
				continue
			}
			cost := cur.pathCost + row[nb]
			if visited[nb] && best[nb].pathCost <= cost {
				continue
			}
			if err = open.Push(NewPathNode(nb, cur, cost)); err != nil {
				return nil, fmt.Errorf("route: dfs at %q: %w", g.cities[ci], err)
			}
		}
	}

	return constructPath(bestNode), nil
}
