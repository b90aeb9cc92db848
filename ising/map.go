// Package ising - coupling construction and energy evaluation.
//
// Two constructors cover the two ways the solver derives couplings:
// FromWeights (direct J = −W, the annealing default) and FromConductance
// (through the quantized device resistances, reproducing what the
// hardware actually stores).
package ising

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Option mutates conductance-mapping parameters. Safe to apply repeatedly.
type Option func(*mapOptions)

type mapOptions struct {
	eps     float64 // resistance threshold
	scale   float64 // target magnitude S
	rounded bool    // round scaled couplings to integers
}

// WithEpsilon overrides the "no connection" resistance threshold.
// Panics on NaN or negative values (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps < 0 {
		panic("ising: WithEpsilon: eps must be finite, non-negative")
	}

	return func(o *mapOptions) { o.eps = eps }
}

// WithScale sets the magnitude S the normalized conductances are scaled
// to before negation. Panics on non-positive or non-finite values.
func WithScale(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic("ising: WithScale: scale must be finite, positive")
	}

	return func(o *mapOptions) { o.scale = s }
}

// WithRoundedLevels rounds each scaled coupling to the nearest integer,
// matching the int8 export path of the GPU adapter.
func WithRoundedLevels() Option {
	return func(o *mapOptions) { o.rounded = true }
}

// FromWeights builds the direct Max-Cut mapping J = −W, h = 0.
//
// Contracts:
//   - w must be non-nil, square, finite.
//   - The diagonal is forced to zero regardless of input.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf.
//
// Complexity: O(N²).
func FromWeights(w *mat.Dense) (*Model, error) {
	if w == nil {
		return nil, ErrNilMatrix
	}
	var nr, nc = w.Dims()
	if nr != nc || nr == 0 {
		return nil, ErrNonSquare
	}

	var (
		j    = mat.NewDense(nr, nc, nil)
		r, c int
		v    float64
	)
	for r = 0; r < nr; r++ {
		for c = 0; c < nc; c++ {
			v = w.At(r, c)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			if r != c {
				j.Set(r, c, -v)
			}
		}
	}

	return &Model{J: j, H: make([]float64, nr)}, nil
}

// FromConductance builds couplings from a (typically quantized)
// resistance matrix:
//
//	G = 1/R where R > ε, else 0;
//	J = −S · G/max(G), J_ii = 0, h = 0.
//
// Symmetry is enforced explicitly: for i<j, if quantization produced
// different values at (i,j) and (j,i), the non-zero one wins and is
// assigned to both positions.
//
// Contracts: r non-nil, square, finite.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf.
//
// Complexity: O(N²).
func FromConductance(r *mat.Dense, opts ...Option) (*Model, error) {
	// Stage 1: validation and options.
	if r == nil {
		return nil, ErrNilMatrix
	}
	var nr, nc = r.Dims()
	if nr != nc || nr == 0 {
		return nil, ErrNonSquare
	}

	var o = mapOptions{eps: DefaultEpsilon, scale: DefaultScale}
	var apply Option
	for _, apply = range opts {
		apply(&o)
	}

	// Stage 2: conductance conversion and max scan.
	var (
		g    = mat.NewDense(nr, nc, nil)
		i, j int
		res  float64
		maxG float64
	)
	for i = 0; i < nr; i++ {
		for j = 0; j < nc; j++ {
			res = r.At(i, j)
			if math.IsNaN(res) || math.IsInf(res, 0) {
				return nil, ErrNaNInf
			}
			if res > o.eps {
				g.Set(i, j, 1/res)
				if 1/res > maxG {
					maxG = 1 / res
				}
			}
		}
	}

	// Stage 3: normalize, scale, negate; zero diagonal.
	var (
		out = mat.NewDense(nr, nc, nil)
		v   float64
	)
	if maxG > 0 {
		for i = 0; i < nr; i++ {
			for j = 0; j < nc; j++ {
				if i == j {
					continue
				}
				v = o.scale * g.At(i, j) / maxG
				if o.rounded {
					v = math.Round(v)
				}
				out.Set(i, j, -v)
			}
		}
	}

	// Stage 4: explicit symmetry repair — prefer non-zero over zero.
	var a, b float64
	for i = 0; i < nr; i++ {
		for j = i + 1; j < nc; j++ {
			a = out.At(i, j)
			b = out.At(j, i)
			if a != b {
				if a == 0 {
					a = b
				}
				out.Set(i, j, a)
				out.Set(j, i, a)
			}
		}
	}

	return &Model{J: out, H: make([]float64, nr)}, nil
}

// MaxAbsCoupling returns max |J_ij| over the model, or 0 for a nil or
// empty model. Used for field-scale calibration.
//
// Complexity: O(N²).
func MaxAbsCoupling(m *Model) float64 {
	if m == nil || m.J == nil {
		return 0
	}

	var (
		nr, nc = m.J.Dims()
		i, j   int
		v      float64
		top    float64
	)
	for i = 0; i < nr; i++ {
		for j = 0; j < nc; j++ {
			v = math.Abs(m.J.At(i, j))
			if v > top {
				top = v
			}
		}
	}

	return top
}

// Energy evaluates the Ising energy of a spin assignment:
//
//	E(s) = −Σ_{i<j} J_ij·s_i·s_j − Σ_i h_i·s_i.
//
// Under J = −W this is minimized exactly by maximum cuts.
//
// Contracts: len(spins) == m.N(); spin values in {−1, +1}.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(N²).
func Energy(m *Model, spins []float64) (float64, error) {
	if m == nil || m.J == nil {
		return 0, ErrNilMatrix
	}
	var n = m.N()
	if len(spins) != n || len(m.H) != n {
		return 0, ErrDimensionMismatch
	}

	var (
		e    float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			e -= m.J.At(i, j) * spins[i] * spins[j]
		}
		e -= m.H[i] * spins[i]
	}

	return e, nil
}
