// Package antroute searches wireless networks for low-cost routes that visit
// every node exactly once, using Ant Colony Optimization.
//
// What is inside:
//
//	core/     - thread-safe weighted undirected graph with stable 1-based node indices
//	matrix/   - dense row-major float64 storage
//	aco/      - the colony: pheromone table, path construction, reinforcement,
//	            sequential and parallel optimization loops
//	network/  - TOML network descriptions, position/range link derivation,
//	            connectivity and spanning-tree lower bound
//	config/   - layered run configuration (defaults, file, env, flags)
//	logging/  - zerolog logger construction
//	cmd/acoroute - command-line front end
//
// Quick start:
//
//	g, _ := network.Build(network.Sample())
//	res, err := aco.Optimize(g, aco.DefaultOptions())
//	// res.Path == e.g. [A D B C], res.Cost == 6
//
// The search is a heuristic: results are reproducible for a given seed but
// carry no optimality guarantee. network.LowerBound gives a floor to compare
// against.
package antroute
