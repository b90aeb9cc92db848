// Package xbar - row-major partitioning of a resistance matrix into tiles.
//
// Partition covers the N×N matrix with canonical-shape tiles stepping by
// (TileRows, TileCols) over origins in row-major order. Boundary tiles
// occupy a smaller sub-shape and are zero-padded up to canonical shape,
// so every tile block has identical dimensions regardless of position.
//
// Property (tested): de-padding and reassembling all tiles' occupied
// regions in origin order exactly reconstructs the input matrix, and the
// tile count equals ⌈N/Rt⌉·⌈N/Ct⌉.
package xbar

import "gonum.org/v1/gonum/mat"

// Partition splits the resistance matrix r into zero-padded crossbar
// tiles in row-major origin order.
//
// Contracts:
//   - r must be non-nil and square.
//   - cfg must pass Validate (positive tile shape).
//
// Errors: ErrNilMatrix, ErrNonSquare, plus Validate's sentinels.
//
// Complexity: O(N²) time (every cell copied once), O(T·Rt·Ct) memory.
func Partition(r *mat.Dense, cfg DeviceConfig) ([]Tile, error) {
	// Stage 1: validation.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNilMatrix
	}
	var nr, nc = r.Dims()
	if nr != nc || nr == 0 {
		return nil, ErrNonSquare
	}

	// Stage 2: row-major tiling with boundary clipping.
	var (
		n     = nr
		rt    = cfg.TileRows
		ct    = cfg.TileCols
		tiles = make([]Tile, 0, ((n+rt-1)/rt)*((n+ct-1)/ct))
		i, j  int // tile origin
		occR  int // occupied rows at this origin
		occC  int // occupied cols at this origin
		block *mat.Dense
	)
	for i = 0; i < n; i += rt {
		occR = rt
		if n-i < rt {
			occR = n - i
		}
		for j = 0; j < n; j += ct {
			occC = ct
			if n-j < ct {
				occC = n - j
			}

			// Canonical-shape block, zero everywhere except the occupied region.
			block = mat.NewDense(rt, ct, nil)
			block.Slice(0, occR, 0, occC).(*mat.Dense).
				Copy(r.Slice(i, i+occR, j, j+occC))

			tiles = append(tiles, Tile{
				Row:  i,
				Col:  j,
				Rows: occR,
				Cols: occC,
				R:    block,
			})
		}
	}

	return tiles, nil
}

// Reassemble reconstructs the n×n resistance matrix from a tile sequence
// by writing each tile's occupied (de-padded) region back at its origin.
// It is the inverse of Partition and exists mainly to make the exact-cover
// property checkable by callers and tests.
//
// Errors: ErrNoTiles, ErrDimensionMismatch when a tile's occupied region
// falls outside the n×n target.
//
// Complexity: O(N²).
func Reassemble(tiles []Tile, n int) (*mat.Dense, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		out  = mat.NewDense(n, n, nil)
		t    Tile
		r, c int
	)
	for _, t = range tiles {
		if t.Row < 0 || t.Col < 0 || t.Row+t.Rows > n || t.Col+t.Cols > n {
			return nil, ErrDimensionMismatch
		}
		if t.R == nil {
			return nil, ErrNilMatrix
		}
		for r = 0; r < t.Rows; r++ {
			for c = 0; c < t.Cols; c++ {
				out.Set(t.Row+r, t.Col+c, t.R.At(r, c))
			}
		}
	}

	return out, nil
}
