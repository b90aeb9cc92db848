// Package maxcut - cut-value evaluation and partition conversion.
//
// Cut values are always evaluated against the *original* weight matrix,
// never the quantized or Ising-mapped one: the device alphabet distorts
// magnitudes, and the reported objective must reflect the real graph.
package maxcut

import "gonum.org/v1/gonum/mat"

// CutValue computes the cut of a ±1 spin assignment:
//
//	cut = Σ_{i<j} w_ij · (1 − s_i·s_j) / 2.
//
// An edge contributes its full weight when its endpoints take opposite
// spins and nothing otherwise.
//
// Contracts: w square of order len(spins); spins in {−1, +1}.
//
// Errors: ErrNilProblem, ErrDimensionMismatch.
//
// Complexity: O(N²).
func CutValue(w *mat.Dense, spins []float64) (float64, error) {
	if w == nil {
		return 0, ErrNilProblem
	}
	var nr, nc = w.Dims()
	if nr != nc || nr != len(spins) {
		return 0, ErrDimensionMismatch
	}

	var (
		sum  float64
		i, j int
	)
	for i = 0; i < nr; i++ {
		for j = i + 1; j < nr; j++ {
			sum += w.At(i, j) * (1 - spins[i]*spins[j]) / 2
		}
	}

	return sum, nil
}

// PartitionOf converts a ±1 spin vector into a 0/1 side assignment:
// spin > 0 ⇒ side 1, else side 0.
//
// Complexity: O(N).
func PartitionOf(spins []float64) []int {
	var (
		out = make([]int, len(spins))
		i   int
	)
	for i = 0; i < len(spins); i++ {
		if spins[i] > 0 {
			out[i] = 1
		}
	}

	return out
}
