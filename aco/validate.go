// Package aco - validation of run options and graph index space.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only wrapped sentinels from types.go.
package aco

import (
	"fmt"
	"math"
)

// validateOptions checks Options without looking at the graph.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Ants <= 0 {
		return fmt.Errorf("%w: Ants must be > 0 (got %d)", ErrBadOptions, opts.Ants)
	}
	if opts.Iterations <= 0 {
		return fmt.Errorf("%w: Iterations must be > 0 (got %d)", ErrBadOptions, opts.Iterations)
	}
	if !finite(opts.Alpha) || opts.Alpha < 0 {
		return fmt.Errorf("%w: Alpha must be finite and >= 0 (got %g)", ErrBadOptions, opts.Alpha)
	}
	if !finite(opts.Beta) || opts.Beta < 0 {
		return fmt.Errorf("%w: Beta must be finite and >= 0 (got %g)", ErrBadOptions, opts.Beta)
	}
	if !finite(opts.Q) || opts.Q <= 0 {
		return fmt.Errorf("%w: Q must be finite and > 0 (got %g)", ErrBadOptions, opts.Q)
	}
	if math.IsNaN(opts.EvaporationRate) || opts.EvaporationRate < 0 || opts.EvaporationRate >= 1 {
		return fmt.Errorf("%w: EvaporationRate must lie in [0,1) (got %g)", ErrBadOptions, opts.EvaporationRate)
	}
	switch opts.Evaporation {
	case EvaporationOff, EvaporationDecay:
	default:
		return fmt.Errorf("%w: unknown evaporation policy %d", ErrBadOptions, int(opts.Evaporation))
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0 (got %d)", ErrBadOptions, opts.Workers)
	}

	return nil
}

// resolveIndices maps every vertex (in Vertices() order) to its 0-based
// pheromone row. Indices must cover 1..N exactly once.
//
// Complexity: O(N).
func resolveIndices(g Graph, ids []string) ([]int, error) {
	n := len(ids)
	rows := make([]int, n)
	seen := make([]bool, n)
	for pos, id := range ids {
		idx, err := g.IndexOf(id)
		if err != nil {
			return nil, fmt.Errorf("aco: index of %q: %w", id, err)
		}
		if idx < 1 || idx > n || seen[idx-1] {
			return nil, fmt.Errorf("%w: %q has index %d (n=%d)", ErrBadIndex, id, idx, n)
		}
		seen[idx-1] = true
		rows[pos] = idx - 1
	}

	return rows, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Validate reports whether o is usable by Optimize. It performs the same
// checks Optimize runs before touching the graph.
func (o Options) Validate() error {
	return validateOptions(o)
}
