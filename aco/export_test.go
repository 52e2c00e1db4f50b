package aco

// Test-only access to internals.

var (
	Normalize  = normalize
	FastPow    = fastPow
	DeriveSeed = deriveSeed
	AntStream  = antStream
)

// SelectNext sorts candidates 0..len(probs)-1 by probability and runs one
// roulette draw with u.
func SelectNext(probs []float64, u float64) int {
	cands := make([]candidate, len(probs))
	for k, p := range probs {
		cands[k] = candidate{pos: k, p: p}
	}
	sortByProbability(cands)

	return rouletteSelect(cands, u)
}

// SortedOrder returns candidate positions in the order roulette visits them.
func SortedOrder(probs []float64) []int {
	cands := make([]candidate, len(probs))
	for k, p := range probs {
		cands[k] = candidate{pos: k, p: p}
	}
	sortByProbability(cands)
	out := make([]int, len(cands))
	for k, c := range cands {
		out[k] = c.pos
	}

	return out
}

// DistanceTable exposes the per-run distance snapshot as a row-major slice.
func DistanceTable(g Graph) ([]float64, error) {
	d, err := newDistanceTable(g, g.Vertices())
	if err != nil {
		return nil, err
	}

	return d.Data(), nil
}
