// Package aco - cost utilities.
//
// PathCost is the public evaluator over a Graph; pathCost is the hot-path
// twin over the per-run distance table built by newDistanceTable.
//
// Complexity:
//   - O(n) time for a path of n nodes, O(1) extra space.
package aco

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/antroute/matrix"
)

// PathCost sums Distance(path[i], path[i+1]) over consecutive pairs.
// Empty and single-node paths cost 0.
//
// Errors: a wrapped ErrMissingEdge when a consecutive pair is not connected,
// ErrInvalidDistance for zero/negative/NaN distances. The sum itself may
// overflow to +Inf; the optimizer rejects such graphs up front.
//
// Complexity: O(n).
func PathCost(g Graph, path []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		d, err := edgeDistance(g, path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		sum += d
	}

	return sum, nil
}

// edgeDistance fetches one distance with the package's sentinel policy:
// +Inf is treated as "no connection".
func edgeDistance(g Graph, a, b string) (float64, error) {
	d, err := g.Distance(a, b)
	if err != nil {
		if errors.Is(err, ErrMissingEdge) {
			return 0, err
		}
		return 0, fmt.Errorf("aco: distance %q-%q: %w", a, b, err)
	}
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("aco: distance %q-%q: %w", a, b, ErrMissingEdge)
	}
	if math.IsNaN(d) || d <= 0 {
		return 0, fmt.Errorf("%w: %q-%q = %g", ErrInvalidDistance, a, b, d)
	}

	return d, nil
}

// newDistanceTable snapshots all pairwise distances in Vertices() order.
// Unconnected pairs hold +Inf; the diagonal holds 0.
//
// Errors: ErrInvalidDistance when the n-1 largest finite distances sum to
// +Inf, since a path over them would have no finite cost.
//
// Complexity: O(n²) Distance calls, O(n² log n) for the overflow check.
func newDistanceTable(g Graph, ids []string) (*matrix.Dense, error) {
	n := len(ids)
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, err)
	}
	inf := math.Inf(1)
	finite := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := edgeDistance(g, ids[i], ids[j])
			switch {
			case errors.Is(err, ErrMissingEdge):
				d = inf
			case err != nil:
				return nil, err
			default:
				finite = append(finite, d)
			}
			if err := dist.Set(i, j, d); err != nil {
				return nil, err
			}
			if err := dist.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(finite)))
	if len(finite) > n-1 {
		finite = finite[:n-1]
	}
	if total := floats.Sum(finite); math.IsInf(total, 1) {
		return nil, fmt.Errorf("%w: %d longest links sum to %g", ErrInvalidDistance, len(finite), total)
	}

	return dist, nil
}

// pathCost sums a positional path over the distance table.
func pathCost(dist *matrix.Dense, path []int) (float64, error) {
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		d, err := dist.At(path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		if math.IsInf(d, 1) {
			return 0, fmt.Errorf("aco: positions %d-%d: %w", path[i], path[i+1], ErrMissingEdge)
		}
		sum += d
	}

	return sum, nil
}
