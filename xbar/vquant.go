// Package xbar - input (read) voltage quantization.
//
// Surrounding input-vector preparation snaps continuous vectors onto the
// device's discrete read levels before driving the crossbar. The core
// annealing loop does not use this path; the rounding solver does.
package xbar

import "math"

// QuantizeVoltage maps v onto integer read levels in [0, readLevels−1]
// and writes them into dst as floats.
//
// Each component is squashed into [−1,1] via tanh, then rounded onto the
// level grid: q = round((tanh(x)+1)·(Lv−1)/2).
//
// Contracts:
//   - len(dst) == len(v); dst may alias v.
//   - readLevels ≥ 1.
//
// Errors: ErrBadLevelCount, ErrDimensionMismatch.
//
// Complexity: O(n).
func QuantizeVoltage(dst, v []float64, readLevels int) error {
	if readLevels < 1 {
		return ErrBadLevelCount
	}
	if len(dst) != len(v) {
		return ErrDimensionMismatch
	}

	var (
		i    int
		norm float64
		top  = float64(readLevels - 1)
	)
	for i = 0; i < len(v); i++ {
		norm = math.Tanh(v[i])
		dst[i] = math.Round((norm + 1) * top / 2)
	}

	return nil
}
