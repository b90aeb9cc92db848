// Package maxcut solves Max-Cut instances through the simulated
// crossbar pipeline: quantize → partition → Ising map → calibrate →
// anneal across independent trials → aggregate.
//
// What:
//
//   - Problem wraps a validated symmetric weight matrix with zero
//     diagonal (the graph's adjacency matrix).
//   - Solve dispatches on Options.Algo:
//   - AlgoPSA — parameterized simulated annealing trials (default).
//   - AlgoRandomRounding — random projection vectors pushed through
//     the crossbar and thresholded at the median.
//   - TrialResult / AggregateResult carry per-trial and summary data:
//     best 0/1 partition, best cut value, mean/min/max/std of cut values
//     and mean elapsed time.
//
// Concurrency:
//
//	Trials are embarrassingly parallel: every trial reads only immutable
//	shared inputs and owns its spin and noise buffers. The runner uses a
//	bounded errgroup pool with one derived RNG stream per trial, and the
//	aggregation is completion-order independent: the best record is
//	replaced only on a strictly greater cut value, with ties broken
//	toward the lower trial index (first-wins).
//
// Failure semantics:
//
//   - A trial observing a non-finite field is retried once on a fresh
//     stream; a second failure records a failed trial that is excluded
//     from statistics without aborting the batch.
//   - Zero-edge or single-node instances return a trivial result
//     (cut 0) instead of an error.
//
// Reporting is decoupled: Options.OnTrial streams per-trial results to
// the caller; the package itself never logs or prints.
package maxcut
