package aco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/antroute/aco"
)

// TestDeriveSeed_Streams checks every (iteration, ant) pair maps to its own seed.
func TestDeriveSeed_Streams(t *testing.T) {
	const iterations, ants = 20, 10
	seen := make(map[int64]struct{}, iterations*ants)
	for it := 0; it < iterations; it++ {
		for a := 0; a < ants; a++ {
			s := aco.DeriveSeed(42, aco.AntStream(it, ants, a))
			_, dup := seen[s]
			assert.False(t, dup, "iteration %d ant %d", it, a)
			seen[s] = struct{}{}
		}
	}

	assert.Equal(t, aco.DeriveSeed(7, 3), aco.DeriveSeed(7, 3))
	assert.NotEqual(t, aco.DeriveSeed(7, 3), aco.DeriveSeed(8, 3))
	assert.Equal(t, uint64(23), aco.AntStream(2, 10, 3))
}
