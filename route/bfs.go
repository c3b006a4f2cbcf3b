package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/bounded"
)

// FindPathBFS searches for a route from start to end with a FIFO frontier
// and cost relaxation. Nodes that reach end are recorded but not expanded.
//
// Returns an empty Path and nil error if end is unreachable.
func (g *Graph) FindPathBFS(start, end string, opts ...Option) (Path, error) {
	s, e, err := g.resolve(start, end)
	if err != nil {
		return nil, err
	}

	return g.FindPathBFSIndex(s, e, opts...)
}

// FindPathBFSIndex is FindPathBFS over city indices.
func (g *Graph) FindPathBFSIndex(start, end int, opts ...Option) (Path, error) {
	o, err := g.prepare(start, end, opts)
	if err != nil {
		return nil, err
	}
	open, err := bounded.NewQueue[*PathNode](o.Capacity)
	if err != nil {
		return nil, err
	}

	n := len(g.cities)
	costs := make([]int, n)
	for i := range costs {
		costs[i] = math.MaxInt
	}
	var bestNode *PathNode

	if err = open.Enqueue(NewPathNode(start, nil, 0)); err != nil {
		return nil, fmt.Errorf("route: bfs: %w", err)
	}
	costs[start] = 0

	for !open.IsEmpty() {
		cur, _ := open.Dequeue()
		ci := cur.cityIndex

		if ci == end {
			if bestNode == nil || cur.pathCost < bestNode.pathCost {
				bestNode = cur
			}
			continue
		}
		o.OnExpand(ci, cur.pathCost)

		row := g.matrix[ci]
		for nb := 0; nb < n; nb++ {
			if !ValidEdge(row[nb]) {
				continue
			}
			cost := cur.pathCost + row[nb]
			if cost >= costs[nb] {
				continue
			}
			costs[nb] = cost
			if err = open.Enqueue(NewPathNode(nb, cur, cost)); err != nil {
				return nil, fmt.Errorf("route: bfs at %q: %w", g.cities[ci], err)
			}
		}
	}

	return constructPath(bestNode), nil
}
