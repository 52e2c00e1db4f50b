package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antroute/matrix"
)

// Pheromones is the N×N pheromone table of one optimization run.
//
// Entries are indexed by 0-based node index (graph index - 1). The table
// models an undirected relation: every deposit is applied to (i,j) and (j,i).
// Values start at 1/N and only change through Deposit, Merge and Evaporate,
// so they stay non-negative.
//
// A Pheromones value is owned by a single run. It is safe for concurrent
// reads, but writes must not overlap reads or other writes.
type Pheromones struct {
	n int
	m *matrix.Dense
}

// NewPheromones allocates an n×n table with every entry (diagonal included) = 1/n.
// Returns ErrInvalidSize when n <= 0.
//
// Complexity: O(n²).
func NewPheromones(n int) (*Pheromones, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	m, err := matrix.NewFilled(n, n, 1/float64(n))
	if err != nil {
		return nil, err
	}

	return &Pheromones{n: n, m: m}, nil
}

// Size returns N.
func (p *Pheromones) Size() int { return p.n }

// At returns the pheromone level between i and j.
func (p *Pheromones) At(i, j int) (float64, error) {
	return p.m.At(i, j)
}

// Deposit adds amount to (i,j) and (j,i). For i == j the single diagonal
// cell is incremented once.
// Returns ErrInvalidDeposit for negative or non-finite amounts.
//
// Complexity: O(1).
func (p *Pheromones) Deposit(i, j int, amount float64) error {
	if err := checkDeposit(amount); err != nil {
		return err
	}
	if err := p.m.Add(i, j, amount); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	return p.m.Add(j, i, amount)
}

// Evaporate multiplies every entry by (1-rate), rate ∈ [0,1).
//
// Complexity: O(n²).
func (p *Pheromones) Evaporate(rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate >= 1 {
		return fmt.Errorf("%w: evaporation rate %g outside [0,1)", ErrBadOptions, rate)
	}
	p.m.Scale(1 - rate)

	return nil
}

// Merge applies a buffered set of deposits in the order they were recorded.
//
// Complexity: O(len(d)).
func (p *Pheromones) Merge(d *Deposits) error {
	if d.n != p.n {
		return fmt.Errorf("%w: merging %d×%d buffer into %d×%d table", ErrInvalidSize, d.n, d.n, p.n, p.n)
	}
	for _, e := range d.entries {
		if err := p.Deposit(e.i, e.j, e.amount); err != nil {
			return err
		}
	}

	return nil
}

// Snapshot returns a row-major copy of the table.
//
// Complexity: O(n²).
func (p *Pheromones) Snapshot() []float64 {
	return p.m.Data()
}

// String renders the table row by row.
func (p *Pheromones) String() string {
	return p.m.String()
}

// Deposits is a private buffer of pending deposits. An ant running
// concurrently with others records into its own buffer; the buffers are
// merged into the shared table once every ant of the iteration is done.
type Deposits struct {
	n       int
	entries []deposit
}

type deposit struct {
	i, j   int
	amount float64
}

// NewDeposits returns an empty buffer for an n×n table.
func NewDeposits(n int) *Deposits {
	return &Deposits{n: n}
}

// Deposit records a symmetric deposit; it is applied on Merge.
func (d *Deposits) Deposit(i, j int, amount float64) error {
	if err := checkDeposit(amount); err != nil {
		return err
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return fmt.Errorf("Deposits.Deposit(%d,%d): %w", i, j, matrix.ErrIndexOutOfBounds)
	}
	d.entries = append(d.entries, deposit{i: i, j: j, amount: amount})

	return nil
}

// Len returns the number of buffered deposits.
func (d *Deposits) Len() int { return len(d.entries) }

func checkDeposit(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidDeposit, amount)
	}
	return nil
}
