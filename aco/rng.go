// Package aco - RNG utilities for path construction.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs, sequential or parallel.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The sequential loop owns one source;
//     the parallel loop gives every ant its own stream via deriveRNG.
package aco

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass Seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// runRNG picks the run's base source: the caller's Rand if set, else Seed.
func runRNG(opts Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}
	return rngFromSeed(opts.Seed)
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring stream ids yield uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antStream numbers the (iteration, ant) pair so each ant of a run gets a
// distinct stream id.
func antStream(iteration, ants, ant int) uint64 {
	return uint64(iteration)*uint64(ants) + uint64(ant)
}

// deriveRNG creates an independent deterministic stream from parent and stream.
func deriveRNG(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
