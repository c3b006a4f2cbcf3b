// Package csvgraph loads a city adjacency matrix from a comma-separated table.
//
// Layout:
//
//	,Adana,Ankara,Bursa
//	Adana,0,490,99999
//	Ankara,490,0,385
//	Bursa,x,385,0
//
// The first header cell is a label and is ignored; the remaining header cells
// are city names. Each following row holds a label and one weight per city.
// Cells that do not parse as integers, and cells missing from short rows,
// become route.InfWeight ("no edge"), including cells with stray quotes.
// Trailing empty header cells are dropped. Rows beyond the number of cities
// are ignored.
package csvgraph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvroute/route"
)

// Sentinel errors for table parsing.
var (
	// ErrNoHeader is returned when the input has no header row or no city columns.
	ErrNoHeader = errors.New("csvgraph: missing header row")

	// ErrTooFewRows is returned when there are fewer data rows than cities.
	ErrTooFewRows = errors.New("csvgraph: fewer rows than cities")
)

// Parse reads a table from r and returns the city names and weight matrix.
func Parse(r io.Reader) ([]string, [][]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may be ragged
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true // stray quotes are junk cells, not parse errors

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("csvgraph: header: %w", err)
	}
	// trailing empty cells ("City,A,B,") do not name cities
	for len(header) > 0 && strings.TrimSpace(header[len(header)-1]) == "" {
		header = header[:len(header)-1]
	}
	if len(header) < 2 {
		return nil, nil, fmt.Errorf("%w: %d columns", ErrNoHeader, len(header))
	}

	cities := make([]string, len(header)-1)
	for i, name := range header[1:] {
		cities[i] = strings.TrimSpace(name)
	}

	n := len(cities)
	matrix := make([][]int, 0, n)
	for len(matrix) < n {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrTooFewRows, len(matrix), n)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("csvgraph: row %d: %w", len(matrix)+1, err)
		}
		matrix = append(matrix, parseRow(rec, n))
	}

	return cities, matrix, nil
}

// parseRow converts rec[1:n+1] into weights, defaulting to route.InfWeight.
func parseRow(rec []string, n int) []int {
	row := make([]int, n)
	for j := range row {
		row[j] = route.InfWeight
		if j+1 >= len(rec) {
			continue
		}
		if w, err := strconv.Atoi(strings.TrimSpace(rec[j+1])); err == nil {
			row[j] = w
		}
	}

	return row
}

// Load opens path and parses it with Parse.
func Load(path string) ([]string, [][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("csvgraph: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// LoadGraph loads path and builds a route.Graph from it.
func LoadGraph(path string) (*route.Graph, error) {
	cities, matrix, err := Load(path)
	if err != nil {
		return nil, err
	}
	g, err := route.NewGraph(cities, matrix)
	if err != nil {
		return nil, fmt.Errorf("csvgraph: %s: %w", path, err)
	}

	return g, nil
}
