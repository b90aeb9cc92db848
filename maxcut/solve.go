// Package maxcut - unified dispatcher for the crossbar Max-Cut pipeline.
//
// Solve is the canonical entry point: it validates the instance, builds
// the shared immutable run state (quantized tiles, MVM operator, Ising
// model, calibrated schedule) and routes to the requested algorithm.
//
// Design principles:
//   - Deterministic: seed routing to trials; no time-based randomness.
//   - Strict sentinels: only errors from types.go and the leaf packages.
//   - Shared state built once; trials touch it read-only.
package maxcut

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/annealix/crosscut/anneal"
	"github.com/annealix/crosscut/ising"
	"github.com/annealix/crosscut/xbar"
)

// Solve runs the configured algorithm on prob over the simulated
// hardware described by cfg and returns the aggregated result.
//
// Contracts:
//   - prob must come from NewProblem (validated weights).
//   - cfg must pass Validate.
//
// Degenerate instances (single node, zero edges) return a trivial
// result: cut 0, all nodes on side 0, no trials executed.
//
// Errors: option/config sentinels before any solving begins;
// ErrNoSuccessfulTrial when every trial fails; ctx.Err() on
// cancellation or TimeLimit expiry.
//
// Complexity: O(N²) setup + O(trials·cycles·tau·N²/P) solving on P workers.
func Solve(ctx context.Context, prob *Problem, cfg xbar.DeviceConfig, opts Options) (AggregateResult, error) {
	// Stage 1: validation, strictly before any solving.
	if err := validateOptions(opts); err != nil {
		return AggregateResult{}, err
	}
	if prob == nil || prob.W == nil {
		return AggregateResult{}, ErrNilProblem
	}
	if err := validateWeights(prob.W); err != nil {
		return AggregateResult{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AggregateResult{}, err
	}

	// Stage 2: degenerate instances solve trivially.
	var n = prob.N()
	if n == 1 || !hasEdges(prob.W) {
		return AggregateResult{
			BestPartition: make([]int, n),
			BestCut:       0,
			Trials:        0,
		}, nil
	}

	// Stage 3: shared immutable run state.
	var (
		res   AggregateResult
		err   error
		rq    *mat.Dense // quantized resistance matrix
		tiles []xbar.Tile
		mvm   *xbar.MVM
		model *ising.Model
		sched anneal.Schedule
	)
	rq, err = xbar.Quantize(prob.W, cfg)
	if err != nil {
		return res, err
	}
	tiles, err = xbar.Partition(rq, cfg)
	if err != nil {
		return res, err
	}
	mvm, err = xbar.NewMVM(tiles, n)
	if err != nil {
		return res, err
	}
	model, err = ising.FromWeights(prob.W)
	if err != nil {
		return res, err
	}
	sched, err = anneal.Calibrate(model.J, opts.Tau, opts.Cycles, opts.ParamMode)
	if err != nil {
		return res, err
	}

	// Stage 4: optional wall-clock budget for the whole run.
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	// Stage 5: route by algorithm.
	switch opts.Algo {
	case AlgoPSA:
		var engine *anneal.Engine
		engine, err = anneal.NewEngine(model, mvm)
		if err != nil {
			return res, err
		}

		return runPSA(ctx, prob, engine, sched, opts)

	case AlgoRandomRounding:
		return runRounding(ctx, prob, mvm, cfg, opts)

	default:
		return res, ErrUnsupportedAlgorithm
	}
}
