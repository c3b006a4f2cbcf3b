// Package route finds a travel route between two named cities over a
// weighted adjacency matrix, using one of two frontier strategies.
//
// What
//
//   - Graph holds an ordered list of unique city names, the inverse
//     name→index lookup, and an N×N integer adjacency matrix. It is
//     immutable after NewGraph and safe to share between goroutines.
//   - FindPathDFS explores with a LIFO frontier (bounded.Stack) and a
//     best-known-cost table: a popped node whose city was already expanded
//     at an equal or lower cost is discarded, and a successor is pushed
//     only if its city is unvisited or the new cost beats the recorded best.
//     Search continues after the first arrival at the end city.
//   - FindPathBFS explores with a FIFO frontier (bounded.Queue) and cost
//     relaxation: a successor is enqueued only if it lowers the best known
//     cost for its city. Nodes reaching the end city are never expanded.
//   - Both return a Path ordered start→end, or an empty Path when the end
//     city is unreachable.
//
// Edge weights
//
//	A weight w is traversable iff NoEdgeWeight < w < InfWeight, i.e.
//	0 < w < 99999. Zero and anything at or above 99999 mean "no edge".
//	ValidEdge is the single place this rule lives.
//
// Optimality
//
//	Neither strategy is a priority-queue Dijkstra. Both are label-correcting:
//	a city is expanded again whenever a cheaper route to it turns up, so the
//	number of expansions is not bounded by N and DFS in particular may walk
//	many routes that are later superseded. With strictly positive weights the
//	re-expansion rules still settle on the cheapest cost to the end city.
//	The route returned is the first cheapest one found, which depends on
//	neighbor order (ascending city index).
//
// Complexity (N = number of cities)
//
//   - Each expansion scans one matrix row: O(N).
//   - Frontier capacity defaults to N², allocated up front.
//   - Memory: O(N²) for the frontier, O(N) for per-call tables.
//
// Errors
//
//   - ErrCityNotFound       unknown start/end name or index (checked before traversal).
//   - bounded.ErrCapacityExceeded (wrapped) if the frontier overflows.
//   - ErrOptionViolation    invalid Option, e.g. WithCapacity(0).
//   - ErrEmptyGraph, ErrDuplicateCity, ErrMatrixShape, ErrNegativeWeight from NewGraph.
//
// Usage
//
//	g, err := route.NewGraph(cities, matrix)
//	if err != nil {
//		return err
//	}
//	path, err := g.FindPathBFS("Ankara", "Izmir")
//	if err != nil {
//		return err
//	}
//	if path.Empty() {
//		fmt.Println("No path found.")
//	}
//	fmt.Println(path.Names(g), path.Cost())
package route
