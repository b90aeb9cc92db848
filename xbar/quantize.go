// Package xbar - weight quantization onto the device resistance table.
//
// Quantize discretizes a continuous weight matrix into the fixed
// resistance alphabet of the simulated device:
//
//  1. min-max normalize the matrix to [0,1] (skipped when the matrix is
//     constant, which would divide by zero);
//  2. round each normalized entry onto an integer level in [0, L−1];
//  3. substitute the resistance table entry for that level.
//
// Design principles:
//   - Deterministic, side-effect free; the input matrix is never mutated.
//   - Strict sentinels from types.go; no fmt.Errorf in the data path.
package xbar

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Quantize maps the weight matrix w onto cfg.Resistance and returns the
// resistance matrix of the same shape.
//
// Contracts:
//   - w must be non-nil, square and finite.
//   - cfg must pass Validate (table length == level count, L ≥ 1).
//
// Behavior highlights:
//   - max(w) == min(w) skips normalization and uses w directly as the
//     normalized matrix (degenerate constant input).
//   - level = round(norm · (L−1)), clamped into [0, L−1] so a degenerate
//     un-normalized entry can never index outside the table.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, plus Validate's sentinels.
//
// Complexity: O(N²) time, O(N²) memory for the result.
func Quantize(w *mat.Dense, cfg DeviceConfig) (*mat.Dense, error) {
	// Stage 1: validation.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNilMatrix
	}
	var nr, nc = w.Dims()
	if nr != nc || nr == 0 {
		return nil, ErrNonSquare
	}

	// Stage 2: scan for min/max and reject non-finite entries.
	var (
		i, j int
		v    float64
		lo   = math.Inf(1)
		hi   = math.Inf(-1)
	)
	for i = 0; i < nr; i++ {
		for j = 0; j < nc; j++ {
			v = w.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	// Stage 3: normalize, level-round and substitute table entries.
	var (
		out   = mat.NewDense(nr, nc, nil)
		span  = hi - lo
		norm  float64
		level int
		top   = cfg.Levels - 1
	)
	for i = 0; i < nr; i++ {
		for j = 0; j < nc; j++ {
			v = w.At(i, j)
			if span > 0 {
				norm = (v - lo) / span
			} else {
				// Constant matrix: use the raw value as its own normalization.
				norm = v
			}
			level = int(math.Round(norm * float64(top)))
			if level < 0 {
				level = 0
			}
			if level > top {
				level = top
			}
			out.Set(i, j, cfg.Resistance[level])
		}
	}

	return out, nil
}
