// Package anneal - gain schedule calibration from coupling statistics.
//
// Calibrate turns the coupling matrix J into the {I0Min, I0Max, Beta}
// gain schedule shared by every trial of a run. Two parameterization
// modes exist; mode 2 (sigma-based) is the preferred default.
package anneal

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Calibrate computes the pSA schedule for coupling matrix j.
//
// Per-row statistics over row vectors J_i:
//
//	mean_i = (N−1)·avg(J_i)
//	std_i  = sqrt((N−1)·Var(J_i ∪ −J_i))     (population variance)
//	sigma  = mean(std)
//
// Mode 1:  I0Min = max(std)·0.01 + min(|mean|),
//
//	I0Max = max(std)·2    + min(|mean|).
//
// Mode 2:  I0Min = 0.1/sigma, I0Max = 10/sigma; when sigma ≤ 0 the
// degenerate fallbacks (0.1, 10) apply instead of aborting.
//
// Beta = (I0Min/I0Max)^(tau/(cycles−1)) for cycles > 1, else 0.5.
//
// Contracts:
//   - j non-nil, square, finite; tau ≥ 1; cycles ≥ 1; mode ∈ {1,2}.
//
// Errors: ErrNilModel, ErrBadSchedule, ErrBadParamMode,
// ErrDimensionMismatch (empty matrix), plus Validate's sentinels on the
// assembled schedule.
//
// Complexity: O(N²) time, O(N) memory.
func Calibrate(j *mat.Dense, tau, cycles, mode int) (Schedule, error) {
	// Stage 1: validation.
	if j == nil {
		return Schedule{}, ErrNilModel
	}
	if tau < 1 || cycles < 1 {
		return Schedule{}, ErrBadSchedule
	}
	if mode != 1 && mode != 2 {
		return Schedule{}, ErrBadParamMode
	}
	var nr, nc = j.Dims()
	if nr != nc || nr == 0 {
		return Schedule{}, ErrDimensionMismatch
	}

	// Stage 2: per-row statistics.
	var (
		n      = nr
		row    = make([]float64, n)
		mirror = make([]float64, 2*n) // row ∪ −row
		means  = make([]float64, n)
		stds   = make([]float64, n)
		i, k   int
		v      float64
	)
	for i = 0; i < n; i++ {
		mat.Row(row, i, j)
		for k = 0; k < n; k++ {
			v = row[k]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Schedule{}, ErrBadSchedule
			}
			mirror[k] = v
			mirror[n+k] = -v
		}
		means[i] = float64(n-1) * stat.Mean(row, nil)
		stds[i] = math.Sqrt(float64(n-1) * stat.PopVariance(mirror, nil))
	}
	var sigma = stat.Mean(stds, nil)

	// Stage 3: gain bounds per mode.
	var i0min, i0max float64
	switch mode {
	case 1:
		var (
			maxStd     = math.Inf(-1)
			minAbsMean = math.Inf(1)
		)
		for i = 0; i < n; i++ {
			if stds[i] > maxStd {
				maxStd = stds[i]
			}
			if math.Abs(means[i]) < minAbsMean {
				minAbsMean = math.Abs(means[i])
			}
		}
		i0min = maxStd*0.01 + minAbsMean
		i0max = maxStd*2 + minAbsMean
	default: // mode 2
		if sigma > 0 {
			i0min = 0.1 / sigma
			i0max = 10 / sigma
		} else {
			i0min = FallbackI0Min
			i0max = FallbackI0Max
		}
	}

	// Degenerate statistics (all-zero couplings under mode 1) also fall
	// back to the fixed constants rather than aborting the run.
	if i0min <= 0 || math.IsNaN(i0min) || math.IsNaN(i0max) {
		i0min = FallbackI0Min
		i0max = FallbackI0Max
	}

	// Stage 4: geometric decay.
	var beta float64
	if cycles > 1 {
		beta = math.Pow(i0min/i0max, float64(tau)/float64(cycles-1))
	} else {
		beta = degenerateBeta
	}

	var s = Schedule{
		I0Min:  i0min,
		I0Max:  i0max,
		Beta:   beta,
		Tau:    tau,
		Cycles: cycles,
	}
	if err := s.Validate(); err != nil {
		return Schedule{}, err
	}

	return s, nil
}
