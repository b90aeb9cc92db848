// Package maxcut - randomized-rounding baseline through the crossbar.
//
// Each iteration projects a random unit vector through the device
// (voltage-quantized, as a real read would be) and splits the nodes at
// the median of the read-out currents. The baseline is intentionally
// simple: it exercises the same MVM path as annealing and gives a
// cheap quality floor to compare against.
package maxcut

import (
	"context"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/annealix/crosscut/anneal"
	"github.com/annealix/crosscut/xbar"
)

// runRounding executes opts.Trials sequential rounding iterations.
//
// Iterations reuse the annealing RNG streams, so a seed reproduces the
// exact same projections. Runs sequentially: a single iteration is one
// MVM plus a sort, far below the goroutine hand-off cost on the sizes
// the device can hold.
//
// Errors: ctx.Err() on cancellation; ErrNoSuccessfulTrial is
// unreachable here (iterations cannot fail) but kept via the shared
// aggregation path.
//
// Complexity: O(trials·N²).
func runRounding(ctx context.Context, prob *Problem, mvm *xbar.MVM, cfg xbar.DeviceConfig, opts Options) (AggregateResult, error) {
	var (
		n       = prob.N()
		results = make([]TrialResult, opts.Trials)

		proj  = make([]float64, n) // random projection vector
		volt  = make([]float64, n) // quantized drive voltages
		read  = make([]float64, n) // device read-out
		srt   = make([]float64, n) // sorted copy for the median
		t, i  int
		err   error
		med   float64
		spins []float64
	)

	for t = 0; t < opts.Trials; t++ {
		if err = ctx.Err(); err != nil {
			return AggregateResult{}, err
		}

		var (
			start = time.Now()
			res   = TrialResult{Trial: t}
			rng   = anneal.NewTrialRNG(opts.Seed, uint64(t))
		)

		// Stage 1: random unit projection.
		for i = 0; i < n; i++ {
			proj[i] = rng.NormFloat64()
		}
		if nrm := floats.Norm(proj, 2); nrm > 0 {
			floats.Scale(1/nrm, proj)
		}

		// Stage 2: one quantized device read.
		if err = xbar.QuantizeVoltage(volt, proj, cfg.ReadLevels); err != nil {
			return AggregateResult{}, err
		}
		if err = mvm.Apply(read, volt); err != nil {
			return AggregateResult{}, err
		}

		// Stage 3: median split of the read-out currents.
		copy(srt, read)
		sort.Float64s(srt)
		med = (srt[(n-1)/2] + srt[n/2]) / 2

		spins = make([]float64, n)
		for i = 0; i < n; i++ {
			if read[i] > med {
				spins[i] = 1
			} else {
				spins[i] = -1
			}
		}

		res.Spins = spins
		if res.Cut, err = CutValue(prob.W, spins); err != nil {
			return AggregateResult{}, err
		}
		res.Elapsed = time.Since(start)
		results[t] = res

		if opts.OnTrial != nil {
			opts.OnTrial(res)
		}
	}

	return aggregateResults(results)
}
