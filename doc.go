// Package lvroute finds routes between cities over a weighted adjacency
// table, comparing a depth-first and a breadth-first frontier strategy.
//
// Packages:
//
//	bounded/     fixed-capacity Stack and Queue (array-backed, no growth)
//	route/       Graph, PathNode, Path and the two searches
//	csvgraph/    loads the city table (CSV) into names + matrix
//	internal/    config (YAML), logging (slog), planner (timed runs), ux (lipgloss)
//	cmd/lvroute  the CLI: `lvroute route --from A --to B`, `lvroute cities`
//
// Quick example:
//
//	A ──1──▶ B ──1──▶ C
//	A ────────5───────▶ C
//
//	Both searches return A→B→C with cost 2 rather than the direct A→C (5).
//
// Edge weights of 0 or ≥ 99999 mean "no edge". Neither search is a
// priority-queue Dijkstra; see package route for the caveats.
//
//	go install github.com/katalvlaran/lvroute/cmd/lvroute@latest
package lvroute
