package aco

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Optimize runs the colony on g with a background context.
// See OptimizeContext.
func Optimize(g Graph, opts Options) (Result, error) {
	return OptimizeContext(context.Background(), g, opts)
}

// OptimizeContext searches for a low-cost Hamiltonian path over g.
//
// Every iteration runs opts.Ants ants. Each ant builds a complete path and
// reinforces its edges with Q/cost; the cheapest path seen so far is kept and
// replaced only by a strictly cheaper one. Under EvaporationDecay the table is
// scaled by (1-EvaporationRate) at the start of each iteration.
//
// With Workers <= 1 ants run one after another and each deposits immediately,
// so later ants of the same iteration see earlier deposits. With Workers > 1
// the ants of one iteration read the same table, record deposits privately and
// are merged in ant order once all of them finish. Both modes are
// deterministic for a fixed seed, but they do not produce the same result.
//
// A graph with a single node yields that node with cost 0 and no iterations.
//
// ctx is checked between iterations. On cancellation the best result so far
// is returned together with the wrapped context error.
//
// Errors:
//   - ErrBadOptions, ErrNilGraph, ErrInvalidSize for bad input;
//   - ErrBadIndex when IndexOf does not yield a dense 1..N range;
//   - ErrInvalidDistance for zero, negative or NaN distances, and for
//     distances whose longest possible path sum overflows to +Inf;
//   - ErrMissingEdge when an ant reaches a node with no connected unvisited node.
func OptimizeContext(ctx context.Context, g Graph, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}

	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return Result{}, fmt.Errorf("%w: graph has no vertices", ErrInvalidSize)
	}
	if n == 1 {
		return Result{Path: []string{ids[0]}}, nil
	}

	r, err := newRun(g, ids, opts)
	if err != nil {
		return Result{}, err
	}

	return r.loop(ctx)
}

// run is the state of one OptimizeContext call.
type run struct {
	opts Options
	log  zerolog.Logger
	c    *constructor

	bestPath []int
	bestCost float64
	bestIter int
	history  []float64
	stats    Stats
}

func newRun(g Graph, ids []string, opts Options) (*run, error) {
	rows, err := resolveIndices(g, ids)
	if err != nil {
		return nil, err
	}
	dist, err := newDistanceTable(g, ids)
	if err != nil {
		return nil, err
	}
	tau, err := NewPheromones(len(ids))
	if err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = opts.Logger.With().Str("component", "aco").Logger()
	}

	return &run{
		opts: opts,
		log:  log,
		c: &constructor{
			ids:   ids,
			rows:  rows,
			dist:  dist,
			tau:   tau,
			alpha: opts.Alpha,
			beta:  opts.Beta,
		},
		bestCost: math.Inf(1),
		bestIter: -1,
		history:  make([]float64, 0, opts.Iterations),
	}, nil
}

func (r *run) loop(ctx context.Context) (Result, error) {
	start := time.Now()
	base := runRNG(r.opts)
	parallel := r.opts.Workers > 1

	var parent int64
	var seq *scratch
	if parallel {
		parent = base.Int63()
	} else {
		seq = newScratch(len(r.c.ids))
	}

	r.log.Debug().
		Int("nodes", len(r.c.ids)).
		Int("ants", r.opts.Ants).
		Int("iterations", r.opts.Iterations).
		Int("workers", r.opts.Workers).
		Str("evaporation", r.opts.Evaporation.String()).
		Msg("run started")

	for it := 0; it < r.opts.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			r.log.Warn().Err(err).Int("iteration", it).Msg("run cancelled")
			return r.result(), fmt.Errorf("aco: cancelled before iteration %d: %w", it, err)
		}

		if r.opts.Evaporation == EvaporationDecay {
			if err := r.c.tau.Evaporate(r.opts.EvaporationRate); err != nil {
				return r.result(), err
			}
		}

		var (
			paths []antPath
			err   error
		)
		if parallel {
			paths, err = r.iterateParallel(ctx, it, parent)
		} else {
			paths, err = r.iterateSequential(base, seq)
		}
		if err != nil {
			return r.result(), fmt.Errorf("aco: iteration %d: %w", it, err)
		}

		iterBest := math.Inf(1)
		for _, p := range paths {
			if p.cost < iterBest {
				iterBest = p.cost
			}
			if p.cost < r.bestCost {
				r.bestCost = p.cost
				r.bestPath = p.path
				r.bestIter = it
			}
		}
		r.history = append(r.history, r.bestCost)

		r.log.Debug().
			Int("iteration", it).
			Float64("iteration_best", iterBest).
			Float64("best_cost", r.bestCost).
			Msg("iteration done")

		if r.opts.OnIteration != nil {
			r.opts.OnIteration(IterationReport{
				Iteration:         it,
				IterationBestCost: iterBest,
				BestCost:          r.bestCost,
				Pheromones:        r.c.tau.Snapshot(),
			})
		}
	}

	res := r.result()
	r.log.Info().
		Strs("path", res.Path).
		Float64("cost", res.Cost).
		Int("best_iteration", res.BestIteration).
		Int("paths", r.stats.Paths).
		Int("degenerate_selections", r.stats.DegenerateSelections).
		Dur("elapsed", time.Since(start)).
		Msg("run finished")

	return res, nil
}

// iterateSequential runs all ants of one iteration on the run's RNG, each
// depositing straight into the shared table.
func (r *run) iterateSequential(rng *rand.Rand, s *scratch) ([]antPath, error) {
	paths := make([]antPath, 0, r.opts.Ants)
	for a := 0; a < r.opts.Ants; a++ {
		p, err := r.c.build(rng, s)
		if err != nil {
			return nil, fmt.Errorf("ant %d: %w", a, err)
		}
		if err := r.reinforce(r.c.tau, p); err != nil {
			return nil, fmt.Errorf("ant %d: %w", a, err)
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// iterateParallel runs the ants of one iteration on at most Workers
// goroutines. Each ant draws from its own derived stream and buffers its
// deposits; buffers are merged in ant order after all ants finish.
func (r *run) iterateParallel(ctx context.Context, it int, parent int64) ([]antPath, error) {
	n := len(r.c.ids)
	paths := make([]antPath, r.opts.Ants)
	bufs := make([]*Deposits, r.opts.Ants)

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(r.opts.Workers)
	for a := 0; a < r.opts.Ants; a++ {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := deriveRNG(parent, antStream(it, r.opts.Ants, a))
			p, err := r.c.build(rng, newScratch(n))
			if err != nil {
				return fmt.Errorf("ant %d: %w", a, err)
			}
			buf := NewDeposits(n)
			if _, err := Reinforce(buf, r.rowsOf(p.path), p.cost, r.opts.Q); err != nil {
				return fmt.Errorf("ant %d: %w", a, err)
			}
			paths[a] = p
			bufs[a] = buf
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	for a, p := range paths {
		if err := r.c.tau.Merge(bufs[a]); err != nil {
			return nil, fmt.Errorf("ant %d: %w", a, err)
		}
		r.count(p, bufs[a].Len())
	}

	return paths, nil
}

func (r *run) reinforce(d Depositor, p antPath) error {
	edges, err := Reinforce(d, r.rowsOf(p.path), p.cost, r.opts.Q)
	if err != nil {
		return err
	}
	r.count(p, edges)

	return nil
}

func (r *run) count(p antPath, deposits int) {
	r.stats.Paths++
	r.stats.DegenerateSelections += p.degenerate
	r.stats.Deposits += deposits
}

// rowsOf maps a positional path to pheromone rows.
func (r *run) rowsOf(path []int) []int {
	out := make([]int, len(path))
	for k, pos := range path {
		out[k] = r.c.rows[pos]
	}

	return out
}

// result converts the incumbent into a Result. Before any path exists it
// carries only the history and counters.
func (r *run) result() Result {
	res := Result{
		BestIteration: r.bestIter,
		History:       append([]float64(nil), r.history...),
		Stats:         r.stats,
	}
	if r.bestPath == nil {
		res.BestIteration = 0
		return res
	}
	res.Path = make([]string, len(r.bestPath))
	for k, pos := range r.bestPath {
		res.Path[k] = r.c.ids[pos]
	}
	res.Cost = r.bestCost

	return res
}
