// Package maxcut - parallel annealing trial runner and result aggregation.
//
// Design principles:
//   - Bounded parallelism: errgroup pool capped at Options.Workers.
//   - Deterministic by construction: per-trial RNG streams derived from
//     the run seed, results recorded by trial index, aggregation scans
//     in index order. Scheduling order cannot change the answer.
//   - Failure isolation: a failing trial is retried once on a fresh
//     stream and, if it fails again, recorded and excluded - the batch
//     keeps going.
package maxcut

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/annealix/crosscut/anneal"
)

// retryStreamBit marks the derived stream of a retried trial so the
// retry never replays the stream of another trial in the batch.
const retryStreamBit uint64 = 1 << 63

// runPSA executes opts.Trials independent annealing trials against the
// shared engine and aggregates them.
//
// Contracts: engine, sched and opts pre-validated by Solve.
//
// Errors: ctx.Err() on cancellation; ErrNoSuccessfulTrial when every
// trial fails.
//
// Complexity: O(trials·cycles·tau·N²/P) on P workers.
func runPSA(ctx context.Context, prob *Problem, engine *anneal.Engine, sched anneal.Schedule, opts Options) (AggregateResult, error) {
	// Stage 1: pool setup. Each trial owns a dedicated result slot, so
	// the only shared mutable state is the callback serialization lock.
	var (
		results = make([]TrialResult, opts.Trials)
		workers = opts.Workers
		mu      sync.Mutex
	)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	// Stage 2: launch trials.
	var t int
	for t = 0; t < opts.Trials; t++ {
		var trial = t // capture

		g.Go(func() error {
			var (
				start = time.Now()
				res   = TrialResult{Trial: trial}
				rng   = anneal.NewTrialRNG(opts.Seed, uint64(trial))
			)

			spins, err := engine.Trial(gctx, sched, rng)
			if errors.Is(err, anneal.ErrNonFiniteField) {
				// One retry on a disjoint stream.
				res.Retried = true
				rng = anneal.NewTrialRNG(opts.Seed, uint64(trial)|retryStreamBit)
				spins, err = engine.Trial(gctx, sched, rng)
			}

			switch {
			case errors.Is(err, anneal.ErrNonFiniteField):
				// Both attempts diverged: record and move on.
				res.Failed = true

			case err != nil:
				// Cancellation or programmer error: abort the batch.
				return err

			default:
				res.Spins = spins
				res.Cut, err = CutValue(prob.W, spins)
				if err != nil {
					return err
				}
			}
			res.Elapsed = time.Since(start)
			results[trial] = res

			if opts.OnTrial != nil {
				mu.Lock()
				opts.OnTrial(res)
				mu.Unlock()
			}

			return nil
		})
	}

	// Stage 3: join and aggregate.
	if err := g.Wait(); err != nil {
		return AggregateResult{}, err
	}

	return aggregateResults(results)
}

// aggregateResults folds per-trial outcomes into an AggregateResult.
//
// The scan runs in trial-index order and replaces the incumbent best
// only on a strictly greater cut value, so equal cuts resolve to the
// lowest trial index regardless of which goroutine finished first.
//
// Errors: ErrNoSuccessfulTrial when no trial succeeded.
//
// Complexity: O(trials).
func aggregateResults(results []TrialResult) (AggregateResult, error) {
	var (
		agg = AggregateResult{Trials: len(results)}

		cuts    = make([]float64, 0, len(results))
		elapsed time.Duration
		bestIdx = -1
		i       int
	)
	for i = 0; i < len(results); i++ {
		if results[i].Failed {
			agg.Failed++
			continue
		}
		cuts = append(cuts, results[i].Cut)
		elapsed += results[i].Elapsed
		if bestIdx < 0 || results[i].Cut > results[bestIdx].Cut {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return agg, ErrNoSuccessfulTrial
	}

	agg.BestCut = results[bestIdx].Cut
	agg.BestPartition = PartitionOf(results[bestIdx].Spins)
	agg.CutMean = stat.Mean(cuts, nil)
	agg.CutStd = stat.PopStdDev(cuts, nil)
	agg.CutMin, agg.CutMax = cuts[0], cuts[0]
	for i = 1; i < len(cuts); i++ {
		if cuts[i] < agg.CutMin {
			agg.CutMin = cuts[i]
		}
		if cuts[i] > agg.CutMax {
			agg.CutMax = cuts[i]
		}
	}
	agg.MeanElapsed = elapsed / time.Duration(len(cuts))

	return agg, nil
}
