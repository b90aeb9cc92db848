// Package ising converts weighted-graph matrices into Ising couplings
// for Max-Cut solving.
//
// What:
//
//   - Model bundles the coupling matrix J (symmetric, zero diagonal) and
//     the bias vector h (all zero for Max-Cut — no site field).
//   - FromWeights builds the direct mapping J = −W used by the pSA driver.
//   - FromConductance builds J from a quantized resistance matrix:
//     G = 1/R (ε-guarded), normalized by the maximum conductance, scaled
//     to [0, S] and negated.
//   - Energy evaluates the Ising energy of a spin assignment.
//
// Why:
//
//	Maximizing the cut of a non-negative weighted graph is equivalent to
//	minimizing the Ising energy under J = −W: an edge contributes −w to
//	the energy exactly when its endpoints take opposite spins.
//
// Errors:
//
//   - ErrNilMatrix / ErrNonSquare: shape violations.
//   - ErrNaNInf: non-finite weight or resistance entries.
//   - ErrDimensionMismatch: spin vector length ≠ model order.
package ising
