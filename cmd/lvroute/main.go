// Command lvroute loads a city adjacency table and finds a route between
// two cities with the depth-first and breadth-first strategies.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
