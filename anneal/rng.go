// Package anneal - RNG utilities shared by the trial engine and runners.
//
// This file centralizes deterministic random generation for all trials.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; derivation is pure arithmetic.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; derive one stream per trial via NewTrialRNG.
package anneal

import "math/rand"

// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// NewTrialRNG derives an independent deterministic stream for one trial
// (or one retry) from a base seed and a stream identifier. Distinct
// streams are decorrelated by a SplitMix64-style avalanche mix, so
// concurrent trials never observe correlated initial spins or noise.
//
// Complexity: O(1).
func NewTrialRNG(seed int64, stream uint64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using the canonical SplitMix64 multipliers/finalizer
// (Vigna 2014): small input changes produce large, well-distributed
// output changes, eliminating cross-stream correlation.
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
