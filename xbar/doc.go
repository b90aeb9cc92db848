// Package xbar models a resistive crossbar accelerator as a purely
// computational abstraction: discrete device resistances, fixed-size
// tiles and a tiled conductance matrix-vector multiply.
//
// What:
//
//   - DeviceConfig describes the simulated hardware: tile shape, device
//     level count, resistance table and read-voltage level count.
//   - Quantize discretizes a weight matrix onto the resistance table.
//   - Partition splits an N×N resistance matrix into canonical-shape,
//     zero-padded tiles in row-major origin order.
//   - MVM performs the tiled multiply: per tile G = 1/R (ε-guarded),
//     conductance block × padded voltage slice, row-band accumulation.
//   - QuantizeVoltage snaps an input vector onto discrete read levels.
//
// Why:
//
//   - Analog accelerators compute y = G·v in one step per tile; modeling
//     the tiling and quantization reproduces their numeric behavior
//     without any circuit-level simulation.
//   - The MVM is linear and deterministic, so algorithms built on top
//     (annealing, rounding) stay testable.
//
// Complexity:
//
//   - Quantize:   O(N²), Memory: O(N²).
//   - Partition:  O(N²), Memory: O(⌈N/Rt⌉·⌈N/Ct⌉·Rt·Ct).
//   - MVM.Apply:  O(T·Rt·Ct) for T tiles, Memory: O(Rt+Ct) scratch.
//
// Errors:
//
//   - ErrResistanceTable: resistance table length ≠ device level count.
//   - ErrBadLevelCount: non-positive device or read level count.
//   - ErrBadTileShape: tile shape with a zero dimension.
//   - ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch: shape violations.
//
// Resistances at or below the ε threshold (default 1e-10) are treated
// as "no connection" and contribute zero conductance; the multiply
// never produces NaN or Inf from the resistance path.
package xbar
