// Package xbar - core types, sentinel errors and configuration defaults.
//
// This file defines ONLY the shared surface of the package: the typed
// hardware description (DeviceConfig), the tile record produced by the
// partitioner, and the package sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is.
package xbar

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the crossbar model.
var (
	// ErrResistanceTable indicates that the resistance table length does not
	// match the configured device level count.
	ErrResistanceTable = errors.New("xbar: resistance table length must equal device level count")

	// ErrBadLevelCount indicates a non-positive device or read level count.
	ErrBadLevelCount = errors.New("xbar: level count must be >= 1")

	// ErrBadTileShape indicates a tile shape with a zero or negative dimension.
	ErrBadTileShape = errors.New("xbar: tile shape dimensions must be > 0")

	// ErrNilMatrix indicates that a nil matrix was passed where one is required.
	ErrNilMatrix = errors.New("xbar: matrix is nil")

	// ErrNonSquare indicates that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("xbar: matrix is not square")

	// ErrDimensionMismatch indicates incompatible lengths between operands,
	// e.g. a voltage vector shorter than the partitioned matrix order.
	ErrDimensionMismatch = errors.New("xbar: dimension mismatch")

	// ErrNoTiles indicates an empty tile sequence where at least one tile
	// is required to define the operator.
	ErrNoTiles = errors.New("xbar: tile sequence is empty")

	// ErrNaNInf indicates a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("xbar: NaN or Inf encountered")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the resistance threshold below which a cell is
	// treated as "no connection" (zero conductance). Guards 1/R against
	// division singularities.
	DefaultEpsilon = 1e-10
)

// DeviceConfig is the typed hardware description consumed by the
// quantizer and partitioner. Named fields replace any dynamic
// attribute-level fallback: a field absent from the source description
// must be filled with a documented default by the loader, never guessed
// at access time.
type DeviceConfig struct {
	// TileRows, TileCols give the canonical crossbar tile shape.
	TileRows int
	TileCols int

	// Levels is the number of discrete device resistance states L.
	Levels int

	// Resistance maps device level → resistance value; len == Levels.
	// A zero (≤ ε) entry is the "no connection" sentinel.
	Resistance []float64

	// ReadLevels is the number of discrete input (read) voltage levels.
	// Used only by input-vector preparation, never by the annealing loop.
	ReadLevels int
}

// Validate checks the configuration invariants.
//
// Errors: ErrBadTileShape, ErrBadLevelCount, ErrResistanceTable, ErrNaNInf.
//
// Complexity: O(Levels).
func (c DeviceConfig) Validate() error {
	if c.TileRows <= 0 || c.TileCols <= 0 {
		return ErrBadTileShape
	}
	if c.Levels < 1 {
		return ErrBadLevelCount
	}
	if len(c.Resistance) != c.Levels {
		return ErrResistanceTable
	}

	var (
		i int
		r float64
	)
	for i = 0; i < c.Levels; i++ {
		r = c.Resistance[i]
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return ErrNaNInf
		}
	}

	// ReadLevels is optional for the solving path; when set it must be sane.
	if c.ReadLevels < 0 {
		return ErrBadLevelCount
	}

	return nil
}

// Tile is one crossbar block of the partitioned resistance matrix.
//
// Invariants:
//   - R has the canonical tile shape (TileRows × TileCols).
//   - Rows ≤ TileRows and Cols ≤ TileCols give the occupied sub-shape;
//     they are smaller than canonical only at the matrix boundary.
//   - Cells outside the occupied region are zero padding.
type Tile struct {
	// Row, Col are the tile origin in the source matrix.
	Row, Col int

	// Rows, Cols are the occupied sub-shape.
	Rows, Cols int

	// R is the canonical-shape, zero-padded resistance block.
	R *mat.Dense
}
