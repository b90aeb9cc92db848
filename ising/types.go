package ising

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the Ising mapping.
var (
	// ErrNilMatrix indicates that a nil matrix was passed where one is required.
	ErrNilMatrix = errors.New("ising: matrix is nil")

	// ErrNonSquare indicates that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("ising: matrix is not square")

	// ErrNaNInf indicates a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("ising: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible lengths between operands.
	ErrDimensionMismatch = errors.New("ising: dimension mismatch")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the resistance threshold below which a cell is
	// treated as "no connection" during conductance conversion.
	DefaultEpsilon = 1e-10

	// DefaultScale is the magnitude S the normalized conductances are
	// scaled to before negation. The GPU adapter historically used 127
	// (int8 couplings); the float pipeline keeps unit scale.
	DefaultScale = 1.0
)

// Model is an Ising instance: pairwise couplings J and site biases h.
//
// Invariants:
//   - J is N×N, symmetric, with zero diagonal.
//   - len(H) == N; for Max-Cut every bias is zero.
type Model struct {
	J *mat.Dense
	H []float64
}

// N returns the model order.
func (m *Model) N() int {
	if m == nil || m.J == nil {
		return 0
	}
	var r, _ = m.J.Dims()

	return r
}
