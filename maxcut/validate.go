// Package maxcut - validation helpers shared by the solver entry points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(N²) worst case; no hidden allocations.
package maxcut

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateWeights performs full weight-matrix validation:
//   - non-nil, square, order ≥ 1,
//   - every entry finite,
//   - |w_ii| ≤ tol (no self-loops),
//   - |w_ij − w_ji| ≤ tol (symmetry).
//
// Complexity: O(N²).
func validateWeights(w *mat.Dense) error {
	if w == nil {
		return ErrNilProblem
	}
	var nr, nc = w.Dims()
	if nr != nc {
		return ErrNonSquare
	}
	if nr == 0 {
		return ErrEmptyProblem
	}

	var (
		n        = nr
		i, j     int
		vij, vji float64
		abs      float64
	)
	for i = 0; i < n; i++ {
		vij = w.At(i, i)
		if math.IsNaN(vij) || math.IsInf(vij, 0) {
			return ErrNaNInf
		}
		abs = vij
		if abs < 0 {
			abs = -abs
		}
		if abs > symTol {
			return ErrNonZeroDiagonal
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			vij = w.At(i, j)
			vji = w.At(j, i)
			if math.IsNaN(vij) || math.IsNaN(vji) || math.IsInf(vij, 0) || math.IsInf(vji, 0) {
				return ErrNaNInf
			}
			abs = vij - vji
			if abs < 0 {
				abs = -abs
			}
			if abs > symTol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}

// validateOptions checks internal consistency of Options without
// touching the problem. Every condition owns its sentinel so the error
// names the actual offense.
//
// Errors: ErrBadTrialCount, ErrBadCycleCount, ErrBadTau,
// ErrBadParamMode, ErrBadWorkerCount, ErrBadTimeLimit,
// ErrUnsupportedAlgorithm.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Trials < 1 {
		return ErrBadTrialCount
	}
	if opts.Cycles < 1 {
		return ErrBadCycleCount
	}
	if opts.Tau < 1 {
		return ErrBadTau
	}
	if opts.ParamMode != 1 && opts.ParamMode != 2 {
		return ErrBadParamMode
	}
	if opts.Workers < 0 {
		return ErrBadWorkerCount
	}
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	switch opts.Algo {
	case AlgoPSA, AlgoRandomRounding:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// hasEdges reports whether any off-diagonal weight is non-zero.
//
// Complexity: O(N²).
func hasEdges(w *mat.Dense) bool {
	var (
		n, _ = w.Dims()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w.At(i, j) != 0 {
				return true
			}
		}
	}

	return false
}
