package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/planner"
	"github.com/katalvlaran/lvroute/internal/ux"
)

type routeFlags struct {
	from       string
	to         string
	algorithms []string
	capacity   int
}

func newRouteCmd(a *app) *cobra.Command {
	var f routeFlags

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find a route from one city to another",
		Long: "Find a route with each selected algorithm and print the path, its cost and the time taken.\n" +
			"Cities missing from --from/--to are prompted for.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(f.algorithms) > 0 {
				a.cfg.Search.Algorithms = f.algorithms
			}
			if cmd.Flags().Changed("capacity") {
				a.cfg.Search.Capacity = f.capacity
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out, g)
			if f.from == "" || f.to == "" {
				fmt.Fprintln(out, ux.RenderCities(g.Cities()))
			}
			from, err := p.city("Enter the start city", f.from)
			if err != nil {
				return err
			}
			to, err := p.city("Enter the end city", f.to)
			if err != nil {
				return err
			}

			results, err := planner.New(g, a.log, a.cfg.Search.Capacity).
				PlanAll(a.cfg.Search.Algorithms, from, to)
			for _, r := range results {
				fmt.Fprintln(out, ux.RenderResult(r))
			}

			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.from, "from", "", "start city")
	fl.StringVar(&f.to, "to", "", "end city")
	fl.StringSliceVar(&f.algorithms, "algo", nil,
		"algorithms to run: "+strings.Join([]string{config.AlgorithmDFS, config.AlgorithmBFS}, ","))
	fl.IntVar(&f.capacity, "capacity", 0, "frontier capacity (0 = cities²)")

	return cmd
}
