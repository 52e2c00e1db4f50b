// Package aco - path construction.
//
// One ant builds one Hamiltonian path:
//  1. pick a uniform random start position;
//  2. score every unvisited, connected candidate j from the current node i as
//     τ(i,j)^Alpha · (1/d(i,j))^Beta;
//  3. normalize the scores into probabilities;
//  4. stable-sort the candidates by descending probability;
//  5. draw u ∈ [0,1) and take the first candidate whose running sum reaches u,
//     or the last candidate when rounding leaves u uncovered.
//
// If every score is zero the step falls back to a uniform draw over the
// candidates and the fallback is counted. A node with no connected unvisited
// candidate is a dead end and fails the run with ErrMissingEdge.
package aco

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/antroute/matrix"
)

// constructor holds the read-only state shared by all ants of a run.
// Positions follow Vertices() order; rows map a position to its pheromone row.
type constructor struct {
	ids   []string
	rows  []int
	dist  *matrix.Dense
	tau   *Pheromones
	alpha float64
	beta  float64
}

// candidate is one possible next position and its selection probability.
type candidate struct {
	pos int
	p   float64
}

// scratch is per-ant working memory, reused across paths by the same owner.
type scratch struct {
	visited []bool
	cands   []candidate
	scores  []float64
}

func newScratch(n int) *scratch {
	return &scratch{
		visited: make([]bool, n),
		cands:   make([]candidate, 0, n),
		scores:  make([]float64, 0, n),
	}
}

// antPath is the outcome of a single ant.
type antPath struct {
	path       []int // positions
	cost       float64
	degenerate int
}

// build constructs one path. The returned slice is freshly allocated.
//
// Complexity: O(n² log n) per path (n steps, each sorting up to n candidates).
func (c *constructor) build(rng *rand.Rand, s *scratch) (antPath, error) {
	n := len(c.ids)
	for i := range s.visited {
		s.visited[i] = false
	}

	path := make([]int, 0, n)
	cur := rng.Intn(n)
	path = append(path, cur)
	s.visited[cur] = true

	var degenerate int
	for len(path) < n {
		if err := c.candidates(cur, s); err != nil {
			return antPath{}, err
		}
		if len(s.cands) == 0 {
			return antPath{}, fmt.Errorf("aco: dead end at %q after %d of %d nodes: %w",
				c.ids[cur], len(path), n, ErrMissingEdge)
		}

		var next int
		if err := normalize(s.scores); err != nil {
			next = s.cands[rng.Intn(len(s.cands))].pos
			degenerate++
		} else {
			for k := range s.cands {
				s.cands[k].p = s.scores[k]
			}
			sortByProbability(s.cands)
			next = rouletteSelect(s.cands, rng.Float64())
		}

		path = append(path, next)
		s.visited[next] = true
		cur = next
	}

	cost, err := pathCost(c.dist, path)
	if err != nil {
		return antPath{}, err
	}

	return antPath{path: path, cost: cost, degenerate: degenerate}, nil
}

// candidates fills s.cands and s.scores with the unvisited, connected
// neighbours of cur in position order.
func (c *constructor) candidates(cur int, s *scratch) error {
	s.cands = s.cands[:0]
	s.scores = s.scores[:0]
	for j := range c.ids {
		if s.visited[j] {
			continue
		}
		d, err := c.dist.At(cur, j)
		if err != nil {
			return err
		}
		if math.IsInf(d, 1) {
			continue
		}
		t, err := c.tau.At(c.rows[cur], c.rows[j])
		if err != nil {
			return err
		}
		s.cands = append(s.cands, candidate{pos: j})
		s.scores = append(s.scores, fastPow(t, c.alpha)*fastPow(1/d, c.beta))
	}

	return nil
}

// normalize rescales scores in place so they sum to 1.
//
// Scores are divided by the largest score before summing, so neither an
// overflowing nor a subnormal mass loses the weighting: +Inf entries share the
// whole mass, and every finite division stays in [0,1].
// Returns ErrDegenerateSelection when the mass is zero or NaN.
func normalize(scores []float64) error {
	if len(scores) == 0 {
		return ErrDegenerateSelection
	}

	var infs int
	for _, v := range scores {
		if math.IsInf(v, 1) {
			infs++
		}
	}
	if infs > 0 {
		for k, v := range scores {
			if math.IsInf(v, 1) {
				scores[k] = 1
			} else {
				scores[k] = 0
			}
		}
	}

	m := floats.Max(scores)
	if m == 0 || math.IsNaN(m) {
		return ErrDegenerateSelection
	}
	for k := range scores {
		scores[k] /= m
	}
	sum := floats.Sum(scores)
	if math.IsNaN(sum) {
		return ErrDegenerateSelection
	}
	for k := range scores {
		scores[k] /= sum
	}

	return nil
}

// sortByProbability orders candidates by descending probability; equal
// probabilities keep their position order.
func sortByProbability(cands []candidate) {
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].p > cands[b].p })
}

// rouletteSelect returns the position of the first candidate whose running
// probability sum reaches u. The last candidate absorbs rounding error.
func rouletteSelect(cands []candidate, u float64) int {
	var cum float64
	for _, c := range cands {
		cum += c.p
		if u <= cum {
			return c.pos
		}
	}

	return cands[len(cands)-1].pos
}

// fastPow is math.Pow with shortcuts for the common exponents 0, 1 and 2.
func fastPow(x, y float64) float64 {
	switch y {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	default:
		return math.Pow(x, y)
	}
}
