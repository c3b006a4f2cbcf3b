package route

import (
	"errors"
	"fmt"
)

// Edge-weight sentinels. A matrix cell is an edge iff NoEdgeWeight < w < InfWeight.
const (
	NoEdgeWeight = 0
	InfWeight    = 99999
)

// NoCity is returned by Graph.CityIndex for unknown names.
const NoCity = -1

// Sentinel errors for graph construction and search.
var (
	// ErrEmptyGraph is returned when NewGraph receives no cities.
	ErrEmptyGraph = errors.New("route: graph has no cities")

	// ErrDuplicateCity is returned when a city name appears twice.
	ErrDuplicateCity = errors.New("route: duplicate city name")

	// ErrMatrixShape is returned when the matrix is not N×N for N cities.
	ErrMatrixShape = errors.New("route: adjacency matrix shape mismatch")

	// ErrNegativeWeight is returned when a matrix cell is negative.
	ErrNegativeWeight = errors.New("route: negative edge weight")

	// ErrCityNotFound is returned when a start or end city does not resolve.
	ErrCityNotFound = errors.New("route: city not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// ValidEdge reports whether w denotes a traversable edge.
func ValidEdge(w int) bool {
	return w > NoEdgeWeight && w < InfWeight
}

// Option configures a single search call.
type Option func(*Options)

// Options holds per-call search parameters.
type Options struct {
	// Capacity is the frontier size. 0 means N² for an N-city graph.
	Capacity int

	// OnExpand is called each time a node is expanded (its row scanned).
	OnExpand func(cityIndex, pathCost int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the N² capacity and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
		OnExpand: func(int, int) {},
	}
}

// WithCapacity overrides the frontier capacity. n must be positive.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: capacity must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// WithOnExpand registers a hook run on every node expansion.
func WithOnExpand(fn func(cityIndex, pathCost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// PathNode is one node of a search tree: a city, the cost to reach it,
// and the node it was reached from. Nodes are immutable; several nodes
// may share the same parent.
type PathNode struct {
	cityIndex int
	parent    *PathNode
	pathCost  int
}

// NewPathNode returns a node for cityIndex reached from parent at pathCost.
// parent is nil for the start node.
func NewPathNode(cityIndex int, parent *PathNode, pathCost int) *PathNode {
	return &PathNode{cityIndex: cityIndex, parent: parent, pathCost: pathCost}
}

// CityIndex returns the node's city index.
func (n *PathNode) CityIndex() int { return n.cityIndex }

// Parent returns the predecessor node, or nil for the start node.
func (n *PathNode) Parent() *PathNode { return n.parent }

// PathCost returns the accumulated cost from the start node.
func (n *PathNode) PathCost() int { return n.pathCost }

// Path is an ordered route from the start node to the end node.
// An empty Path means no route was found.
type Path []*PathNode

// Empty reports whether no route was found.
func (p Path) Empty() bool { return len(p) == 0 }

// Cost returns the total cost (the last node's PathCost), or 0 if empty.
func (p Path) Cost() int {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].pathCost
}

// Indices returns the city indices along the path.
func (p Path) Indices() []int {
	out := make([]int, len(p))
	for i, n := range p {
		out[i] = n.cityIndex
	}

	return out
}

// Names maps the path onto city names of g.
func (p Path) Names(g *Graph) []string {
	out := make([]string, len(p))
	for i, n := range p {
		out[i] = g.cities[n.cityIndex]
	}

	return out
}
