package planner

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/bounded"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/route"
)

func newTestPlanner(t *testing.T, capacity int) (*Planner, *bytes.Buffer) {
	t.Helper()
	g, err := route.NewGraph([]string{"A", "B", "C"}, [][]int{
		{0, 1, 5},
		{route.InfWeight, 0, 1},
		{0, route.InfWeight, 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := New(g, slog.New(slog.NewTextHandler(&buf, nil)), capacity)

	// fake clock: each reading advances 3ms
	tick := time.Unix(0, 0)
	p.now = func() time.Time {
		tick = tick.Add(3 * time.Millisecond)
		return tick
	}

	return p, &buf
}

func TestPlan_TimesAndLogs(t *testing.T) {
	p, buf := newTestPlanner(t, 0)

	res, err := p.Plan(config.AlgorithmBFS, "A", "C")
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "C"}, res.Cities)
	assert.Equal(t, 2, res.Cost())
	assert.Equal(t, 3*time.Millisecond, res.Elapsed)
	assert.Contains(t, buf.String(), "algorithm=bfs")
	assert.Contains(t, buf.String(), "cost=2")
	assert.Contains(t, buf.String(), "hops=2")
}

func TestPlan_NoRoute(t *testing.T) {
	p, _ := newTestPlanner(t, 0)
	res, err := p.Plan(config.AlgorithmDFS, "C", "A")
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Empty(t, res.Cities)
}

func TestPlan_Errors(t *testing.T) {
	p, buf := newTestPlanner(t, 0)

	_, err := p.Plan("astar", "A", "C")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = p.Plan(config.AlgorithmDFS, "A", "Z")
	assert.ErrorIs(t, err, route.ErrCityNotFound)
	assert.Contains(t, buf.String(), "search failed")

	small, _ := newTestPlanner(t, 1)
	_, err = small.Plan(config.AlgorithmBFS, "A", "C")
	assert.ErrorIs(t, err, bounded.ErrCapacityExceeded)
}

func TestPlanAll(t *testing.T) {
	p, _ := newTestPlanner(t, 0)
	res, err := p.PlanAll([]string{config.AlgorithmDFS, config.AlgorithmBFS}, "A", "C")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "dfs", res[0].Algorithm)
	assert.Equal(t, "bfs", res[1].Algorithm)
	assert.Equal(t, res[0].Cost(), res[1].Cost())

	res, err = p.PlanAll([]string{config.AlgorithmDFS, "nope"}, "A", "C")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Len(t, res, 1)
}
