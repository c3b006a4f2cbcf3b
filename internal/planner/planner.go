// Package planner runs the configured search strategies over a loaded
// route.Graph, timing each call and logging the outcome.
package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/route"
)

// ErrUnknownAlgorithm is returned for an algorithm name other than dfs or bfs.
var ErrUnknownAlgorithm = errors.New("planner: unknown algorithm")

// Result is the outcome of one timed search.
type Result struct {
	Algorithm string
	Path      route.Path
	Cities    []string
	Elapsed   time.Duration
}

// Found reports whether a route was found.
func (r Result) Found() bool { return !r.Path.Empty() }

// Cost returns the total route cost.
func (r Result) Cost() int { return r.Path.Cost() }

// Planner runs searches over one graph.
type Planner struct {
	graph    *route.Graph
	log      *slog.Logger
	capacity int
	now      func() time.Time
}

// New returns a Planner for g. capacity <= 0 keeps the N² default.
func New(g *route.Graph, log *slog.Logger, capacity int) *Planner {
	if log == nil {
		log = slog.Default()
	}

	return &Planner{graph: g, log: log, capacity: capacity, now: time.Now}
}

// Graph returns the planner's graph.
func (p *Planner) Graph() *route.Graph { return p.graph }

// Plan runs one algorithm from start to end.
func (p *Planner) Plan(algorithm, start, end string) (Result, error) {
	var find func(string, string, ...route.Option) (route.Path, error)
	switch algorithm {
	case config.AlgorithmDFS:
		find = p.graph.FindPathDFS
	case config.AlgorithmBFS:
		find = p.graph.FindPathBFS
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	var opts []route.Option
	if p.capacity > 0 {
		opts = append(opts, route.WithCapacity(p.capacity))
	}

	t0 := p.now()
	path, err := find(start, end, opts...)
	elapsed := p.now().Sub(t0)
	if err != nil {
		p.log.Error("search failed", "algorithm", algorithm, "from", start, "to", end, "err", err)
		return Result{}, fmt.Errorf("planner: %s: %w", algorithm, err)
	}

	res := Result{
		Algorithm: algorithm,
		Path:      path,
		Cities:    path.Names(p.graph),
		Elapsed:   elapsed,
	}
	p.log.Info("search done",
		"algorithm", algorithm,
		"from", start,
		"to", end,
		"found", res.Found(),
		"cost", res.Cost(),
		"hops", max(len(path)-1, 0),
		"elapsed", elapsed,
	)

	return res, nil
}

// PlanAll runs every algorithm in order and stops at the first error.
func (p *Planner) PlanAll(algorithms []string, start, end string) ([]Result, error) {
	out := make([]Result, 0, len(algorithms))
	for _, a := range algorithms {
		res, err := p.Plan(a, start, end)
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}

	return out, nil
}
