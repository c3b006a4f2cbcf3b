package route

import "fmt"

// Graph is a read-only weighted city graph over an adjacency matrix.
type Graph struct {
	cities []string
	matrix [][]int
	index  map[string]int
}

// NewGraph builds a Graph from an ordered list of unique city names and a
// square matrix where matrix[i][j] is the direct cost from city i to j.
// Both slices are copied.
//
// Validation order: ErrEmptyGraph, ErrDuplicateCity, ErrMatrixShape, ErrNegativeWeight.
func NewGraph(cities []string, matrix [][]int) (*Graph, error) {
	n := len(cities)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	index := make(map[string]int, n)
	for i, name := range cities {
		if prev, ok := index[name]; ok {
			return nil, fmt.Errorf("%w: %q at %d and %d", ErrDuplicateCity, name, prev, i)
		}
		index[name] = i
	}

	if len(matrix) != n {
		return nil, fmt.Errorf("%w: %d rows for %d cities", ErrMatrixShape, len(matrix), n)
	}
	m := make([][]int, n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMatrixShape, i, len(row), n)
		}
		for j, w := range row {
			if w < 0 {
				return nil, fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, cities[i], cities[j], w)
			}
		}
		m[i] = append([]int(nil), row...)
	}

	return &Graph{
		cities: append([]string(nil), cities...),
		matrix: m,
		index:  index,
	}, nil
}

// Len returns the number of cities.
func (g *Graph) Len() int { return len(g.cities) }

// Cities returns a copy of the ordered city names.
func (g *Graph) Cities() []string { return append([]string(nil), g.cities...) }

// CityIndex returns the index of name, or NoCity (-1) if it is unknown.
func (g *Graph) CityIndex(name string) int {
	if i, ok := g.index[name]; ok {
		return i
	}

	return NoCity
}

// City returns the name at index i.
func (g *Graph) City(i int) (string, error) {
	if i < 0 || i >= len(g.cities) {
		return "", fmt.Errorf("%w: index %d", ErrCityNotFound, i)
	}

	return g.cities[i], nil
}

// Weight returns matrix[i][j]. Indices must be in range.
func (g *Graph) Weight(i, j int) int { return g.matrix[i][j] }

// resolve maps start and end names to indices, failing fast on unknown names.
func (g *Graph) resolve(start, end string) (int, int, error) {
	s := g.CityIndex(start)
	if s == NoCity {
		return 0, 0, fmt.Errorf("%w: start %q", ErrCityNotFound, start)
	}
	e := g.CityIndex(end)
	if e == NoCity {
		return 0, 0, fmt.Errorf("%w: end %q", ErrCityNotFound, end)
	}

	return s, e, nil
}

// prepare validates indices and builds the per-call options.
func (g *Graph) prepare(start, end int, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	n := len(g.cities)
	if start < 0 || start >= n {
		return o, fmt.Errorf("%w: start index %d", ErrCityNotFound, start)
	}
	if end < 0 || end >= n {
		return o, fmt.Errorf("%w: end index %d", ErrCityNotFound, end)
	}
	if o.Capacity == 0 {
		o.Capacity = n * n
	}

	return o, nil
}
