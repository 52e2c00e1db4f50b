package aco

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/antroute/core"
	"github.com/rs/zerolog"
)

// Sentinel errors. Fatal conditions are returned wrapped with context;
// match them with errors.Is.
var (
	// ErrInvalidSize is returned when the pheromone store is asked for n <= 0
	// nodes, or when the graph reports no vertices at all.
	ErrInvalidSize = errors.New("aco: node count must be > 0")

	// ErrMissingEdge marks a distance lookup between unconnected nodes.
	// It is the same sentinel core.Graph uses, so errors.Is works across both.
	ErrMissingEdge = core.ErrEdgeNotFound

	// ErrDegenerateSelection is raised internally when the desirability scores of
	// all candidates sum to zero (or NaN). The path constructor never propagates
	// it: it falls back to a uniform draw over the remaining candidates.
	ErrDegenerateSelection = errors.New("aco: degenerate selection (zero probability mass)")

	// ErrInvalidCost is returned when a pheromone deposit is computed for a
	// non-positive or non-finite path cost.
	ErrInvalidCost = errors.New("aco: path cost must be finite and > 0")

	// ErrInvalidDeposit is returned when a deposit amount is negative or not finite.
	ErrInvalidDeposit = errors.New("aco: deposit must be finite and >= 0")

	// ErrInvalidDistance is returned when the graph reports a distance that is
	// zero, negative or NaN, or when distances are so large that a path over
	// them would cost +Inf.
	ErrInvalidDistance = errors.New("aco: distance must be > 0")

	// ErrBadIndex is returned when the graph's vertex indices are not a dense,
	// duplicate-free 1..N range.
	ErrBadIndex = errors.New("aco: vertex indices must be dense and 1-based")

	// ErrNilGraph is returned when Optimize receives a nil graph.
	ErrNilGraph = errors.New("aco: graph is nil")

	// ErrBadOptions is returned when Options fail validation.
	ErrBadOptions = errors.New("aco: invalid options")
)

// Graph is the collaborator the optimizer searches over.
// It must not change while a run is in progress.
type Graph interface {
	// Vertices returns every node ID in a fixed order. That order is the
	// candidate iteration order of the path constructor.
	Vertices() []string

	// IndexOf returns the stable 1-based index of a node.
	IndexOf(id string) (int, error)

	// Distance returns the positive distance between two connected nodes and an
	// error matching ErrMissingEdge when they are not connected.
	Distance(a, b string) (float64, error)
}

var _ Graph = (*core.Graph)(nil)

// EvaporationPolicy selects what happens to existing pheromone between iterations.
type EvaporationPolicy int

const (
	// EvaporationOff accepts EvaporationRate but never decays pheromone.
	// Pheromone grows monotonically over the run.
	EvaporationOff EvaporationPolicy = iota

	// EvaporationDecay multiplies every entry by (1-EvaporationRate) once per
	// iteration, before any ant of that iteration deposits.
	EvaporationDecay
)

// String implements fmt.Stringer.
func (p EvaporationPolicy) String() string {
	switch p {
	case EvaporationOff:
		return "off"
	case EvaporationDecay:
		return "decay"
	default:
		return "unknown"
	}
}

// Options configures one optimization run.
//
// Fields:
//   - Ants, Iterations: colony size and number of rounds; both > 0.
//   - Alpha, Beta     : exponents on pheromone and inverse distance; finite, >= 0.
//   - Q               : deposit scale; each ant adds Q/cost to its edges.
//   - EvaporationRate : in [0,1); only applied under EvaporationDecay.
//   - Evaporation     : EvaporationOff (default) or EvaporationDecay.
//   - Seed            : RNG seed; 0 selects a fixed default seed.
//   - Rand            : optional caller-owned source; overrides Seed.
//   - Workers         : <= 1 runs ants sequentially; > 1 runs the ants of one
//     iteration concurrently and merges their deposits afterwards.
//   - Logger          : optional; nil disables logging.
//   - OnIteration     : optional observer invoked after every iteration.
type Options struct {
	Ants       int
	Iterations int

	Alpha float64
	Beta  float64
	Q     float64

	EvaporationRate float64
	Evaporation     EvaporationPolicy

	Seed int64
	Rand *rand.Rand

	Workers int

	Logger      *zerolog.Logger
	OnIteration func(IterationReport)
}

// DefaultOptions returns the parameters of the reference wireless example:
// 10 ants, 15 iterations, Alpha=1, Beta=2, Q=1, EvaporationRate=0.5 (unused
// under the default EvaporationOff policy).
func DefaultOptions() Options {
	return Options{
		Ants:            10,
		Iterations:      15,
		Alpha:           1,
		Beta:            2,
		Q:               1,
		EvaporationRate: 0.5,
		Evaporation:     EvaporationOff,
	}
}

// Result is the outcome of a run.
type Result struct {
	// Path is the best Hamiltonian path found, as node IDs.
	Path []string

	// Cost is the summed distance along Path.
	Cost float64

	// BestIteration is the 0-based iteration in which Path was found.
	BestIteration int

	// History[k] is the best cost known after iteration k. Non-increasing.
	History []float64

	// Stats counts what the run did.
	Stats Stats
}

// Stats are per-run counters.
type Stats struct {
	// Paths is the number of constructed ant paths.
	Paths int

	// DegenerateSelections counts next-node choices that fell back to a
	// uniform draw because all candidate scores were zero.
	DegenerateSelections int

	// Deposits counts symmetric pheromone deposits (one per path edge).
	Deposits int
}

// IterationReport is passed to Options.OnIteration after every iteration.
type IterationReport struct {
	// Iteration is 0-based.
	Iteration int

	// IterationBestCost is the cheapest path constructed in this iteration.
	IterationBestCost float64

	// BestCost is the incumbent best over the run so far.
	BestCost float64

	// Pheromones is a row-major N×N snapshot taken after this iteration's
	// deposits, indexed by IndexOf-1.
	Pheromones []float64
}
