package aco

import (
	"fmt"
	"math"
)

// Depositor receives symmetric pheromone deposits. *Pheromones applies them
// immediately; *Deposits buffers them for a later Merge.
type Depositor interface {
	Deposit(i, j int, amount float64) error
}

var (
	_ Depositor = (*Pheromones)(nil)
	_ Depositor = (*Deposits)(nil)
)

// Reinforce deposits q/cost on every consecutive edge of path, where path
// holds 0-based pheromone indices. It returns the number of edges reinforced.
//
// Errors: ErrInvalidCost when cost is not a finite positive number, including a
// cost that overflowed to +Inf; errors from the Depositor are returned as-is.
//
// Complexity: O(len(path)).
func Reinforce(d Depositor, path []int, cost, q float64) (int, error) {
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidCost, cost)
	}
	amount := q / cost

	var edges int
	for i := 0; i+1 < len(path); i++ {
		if err := d.Deposit(path[i], path[i+1], amount); err != nil {
			return edges, err
		}
		edges++
	}

	return edges, nil
}
