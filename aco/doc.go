// Package aco finds low-cost Hamiltonian paths with Ant Colony Optimization.
//
// What:
//
//   - A colony of ants repeatedly walks a weighted, undirected graph. Each ant
//     visits every node exactly once, choosing the next node with probability
//     proportional to τ(i,j)^Alpha · (1/d(i,j))^Beta, where τ is the pheromone
//     level and d the distance.
//   - After its walk an ant deposits Q/cost on every edge of its path, in both
//     directions. Cheaper paths therefore attract more future ants.
//   - The cheapest path across all iterations is returned.
//
// Graph contract:
//
//   - Vertices() fixes the candidate order; IndexOf must map the vertices onto
//     1..N without gaps; Distance must be symmetric and > 0.
//   - Missing connections (ErrMissingEdge or +Inf) are never chosen. An ant that
//     gets stuck fails the run with ErrMissingEdge.
//   - *core.Graph satisfies Graph.
//
// Determinism:
//
//   - Options.Seed (or Options.Rand) drives every random choice; equal inputs
//     give equal Results, in sequential and in parallel mode alike.
//
// Evaporation:
//
//   - EvaporationOff (default) keeps every deposit forever, so pheromone only
//     grows. EvaporationDecay scales the table by (1-EvaporationRate) at the
//     start of every iteration.
//
// Complexity:
//
//   - Time O(Iterations · Ants · N² log N); memory O(N²).
//
// Example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B", 3)
//	_, _ = g.AddEdge("B", "C", 2)
//	_, _ = g.AddEdge("A", "C", 4)
//	res, err := aco.Optimize(g, aco.DefaultOptions())
package aco
