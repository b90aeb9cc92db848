// Package crosscut solves the Max-Cut combinatorial optimization problem
// on a simulated resistive-crossbar accelerator.
//
// 🚀 What is crosscut?
//
//	A library that maps a weighted graph onto a tiled, conductance-based
//	crossbar abstraction and anneals a spin assignment toward a maximum cut:
//		• Weight quantization: continuous edge weights → discrete device resistances
//		• Crossbar partitioning: N×N resistance matrix → fixed-size, zero-padded tiles
//		• MVM simulation: tiled conductance × voltage multiplies (G = 1/R)
//		• Ising mapping: adjacency → coupling matrix J and bias vector h
//		• pSA engine: gain-driven parameterized simulated annealing, one trial at a time
//		• Trial runner: parallel independent trials, best-cut tracking, statistics
//
// ✨ Why choose crosscut?
//
//   - Deterministic – explicit per-trial RNG streams, reproducible runs
//   - Typed configuration – named hardware fields with documented defaults
//   - Decoupled reporting – per-trial callbacks, no console coupling in the core
//   - Heuristic, not magic – pSA is a stochastic heuristic; no optimality guarantee
//
// Everything is organized under flat domain packages:
//
//	xbar/     — device config, quantizer, partitioner, tiled MVM simulator
//	ising/    — coupling/bias construction and Ising energy
//	anneal/   — schedule calibration and the single-trial pSA engine
//	maxcut/   — problem type, algorithm dispatch, trial runner, aggregation
//	graphio/  — edge-list reader and pSAv-format writer
//	hwconfig/ — hardware-description (INI) loader
//
// Quick ASCII example:
//
//	    0───1
//	     ╲ ╱
//	      2
//
//	a weighted triangle; the best cut separates one vertex from the
//	other two and has value 2 for unit weights.
//
// See cmd/crosscut for an end-to-end driver.
//
//	go get github.com/annealix/crosscut
package crosscut
