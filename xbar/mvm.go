// Package xbar - tiled conductance matrix-vector multiply.
//
// MVM is the behavioral model of the analog read-out: every tile's
// resistance block becomes a conductance block (G = 1/R, ε-guarded),
// the input voltage vector is sliced at the tile's column origin,
// zero-padded to canonical width, multiplied through the block, and the
// first occupied rows of the product are accumulated into the output at
// the tile's row origin. Accumulation (not overwrite) matters: distinct
// tiles share row ranges whenever the matrix spans multiple column tiles.
//
// Design principles:
//   - Purely linear and deterministic: no randomness, no hidden state.
//   - MVM is immutable after construction; Apply is safe for concurrent
//     use as long as each caller owns its dst slice.
//   - No NaN/Inf can originate from the resistance path: sub-ε cells
//     contribute zero conductance.
package xbar

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Option mutates MVM construction parameters. Safe to apply repeatedly.
type Option func(*mvmOptions)

type mvmOptions struct {
	eps float64 // resistance threshold; ≤ eps ⇒ no connection
}

// WithEpsilon overrides the "no connection" resistance threshold.
// Panics on NaN or negative values (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps < 0 {
		panic("xbar: WithEpsilon: eps must be finite, non-negative")
	}

	return func(o *mvmOptions) { o.eps = eps }
}

// condTile is a tile with its conductance block precomputed.
type condTile struct {
	row, col   int
	rows, cols int
	g          *mat.Dense // canonical-shape conductance block
}

// MVM is an immutable tiled conductance operator over ℝⁿ.
type MVM struct {
	n     int
	tiles []condTile
	maxG  float64
	maxR  int // canonical tile rows (scratch sizing)
	maxC  int // canonical tile cols (scratch sizing)
}

// NewMVM converts a tile sequence into a conductance operator of order n.
//
// Contracts:
//   - tiles is the output of Partition (canonical-shape blocks); n is the
//     order of the partitioned matrix.
//   - Each tile's occupied region must lie inside [0,n)×[0,n).
//
// Errors: ErrNoTiles, ErrDimensionMismatch, ErrNilMatrix, ErrNaNInf.
//
// Complexity: O(T·Rt·Ct) time and memory.
func NewMVM(tiles []Tile, n int, opts ...Option) (*MVM, error) {
	// Stage 1: validation.
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}

	var o = mvmOptions{eps: DefaultEpsilon}
	var apply Option
	for _, apply = range opts {
		apply(&o)
	}

	// Stage 2: per-tile conductance conversion.
	var (
		m = &MVM{
			n:     n,
			tiles: make([]condTile, 0, len(tiles)),
		}
		t      Tile
		br, bc int // canonical block shape
		r, c   int
		res    float64
		g      *mat.Dense
	)
	for _, t = range tiles {
		if t.R == nil {
			return nil, ErrNilMatrix
		}
		if t.Row < 0 || t.Col < 0 || t.Row+t.Rows > n || t.Col+t.Cols > n {
			return nil, ErrDimensionMismatch
		}
		br, bc = t.R.Dims()
		if t.Rows > br || t.Cols > bc {
			return nil, ErrDimensionMismatch
		}

		g = mat.NewDense(br, bc, nil)
		for r = 0; r < br; r++ {
			for c = 0; c < bc; c++ {
				res = t.R.At(r, c)
				if math.IsNaN(res) || math.IsInf(res, 0) {
					return nil, ErrNaNInf
				}
				// Sub-ε resistance is the "no connection" sentinel: G = 0.
				if res > o.eps {
					g.Set(r, c, 1/res)
					if 1/res > m.maxG {
						m.maxG = 1 / res
					}
				}
			}
		}

		if br > m.maxR {
			m.maxR = br
		}
		if bc > m.maxC {
			m.maxC = bc
		}
		m.tiles = append(m.tiles, condTile{
			row: t.Row, col: t.Col,
			rows: t.Rows, cols: t.Cols,
			g: g,
		})
	}

	return m, nil
}

// N returns the operator order (length of input and output vectors).
func (m *MVM) N() int { return m.n }

// MaxConductance returns the largest realized conductance across all
// tiles; zero for an all-open crossbar. Used for field-scale calibration.
func (m *MVM) MaxConductance() float64 { return m.maxG }

// Apply computes dst = G·v through the tile sequence.
//
// Contracts:
//   - len(dst) == len(v) == N(); dst is overwritten.
//   - dst and v must not alias.
//
// The operation satisfies linearity: Apply(a·v1+b·v2) equals
// a·Apply(v1)+b·Apply(v2) within floating tolerance.
//
// Errors: ErrDimensionMismatch.
//
// Complexity: O(T·Rt·Ct) time, O(Rt+Ct) scratch.
func (m *MVM) Apply(dst, v []float64) error {
	if len(dst) != m.n || len(v) != m.n {
		return ErrDimensionMismatch
	}

	var i int
	for i = 0; i < m.n; i++ {
		dst[i] = 0
	}

	// Shared scratch across tiles: padded voltage slice and block product.
	var (
		pad = make([]float64, m.maxC)
		out = make([]float64, m.maxR)
		t   condTile
		br  int
		bc  int
		c   int
		r   int
	)
	for _, t = range m.tiles {
		br, bc = t.g.Dims()

		// Voltage slice at the tile's column origin, right-padded with zeros.
		for c = 0; c < t.cols; c++ {
			pad[c] = v[t.col+c]
		}
		for c = t.cols; c < bc; c++ {
			pad[c] = 0
		}

		// Canonical-shape multiply; padding rows/cols contribute nothing.
		var (
			vv = mat.NewVecDense(bc, pad[:bc])
			ov = mat.NewVecDense(br, out[:br])
		)
		ov.MulVec(t.g, vv)

		// Accumulate the occupied rows into the shared row band.
		for r = 0; r < t.rows; r++ {
			dst[t.row+r] += out[r]
		}
	}

	return nil
}

// AccumulateColumn adds alpha·G[:,col] into dst: the read produced by
// driving only input line col with voltage alpha. Serial spin updates
// use it to maintain a full read incrementally after a single input
// line changes, instead of re-reading the whole array.
//
// Contracts: len(dst) == N(); 0 ≤ col < N(); dst is accumulated, not
// overwritten.
//
// Errors: ErrDimensionMismatch.
//
// Complexity: O(T_col·Rt) where T_col is the number of tiles covering
// column col.
func (m *MVM) AccumulateColumn(dst []float64, col int, alpha float64) error {
	if len(dst) != m.n || col < 0 || col >= m.n {
		return ErrDimensionMismatch
	}

	var (
		t     condTile
		local int
		r     int
	)
	for _, t = range m.tiles {
		local = col - t.col
		if local < 0 || local >= t.cols {
			continue
		}
		for r = 0; r < t.rows; r++ {
			dst[t.row+r] += alpha * t.g.At(r, local)
		}
	}

	return nil
}

// MulVec is the allocating convenience form of Apply.
//
// Complexity: O(T·Rt·Ct) time, O(n) memory.
func (m *MVM) MulVec(v []float64) ([]float64, error) {
	var dst = make([]float64, m.n)
	if err := m.Apply(dst, v); err != nil {
		return nil, err
	}

	return dst, nil
}
