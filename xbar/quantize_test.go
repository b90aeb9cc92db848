// Package xbar_test validates weight quantization onto the device
// resistance alphabet.
package xbar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/annealix/crosscut/xbar"
)

// threeLevelConfig is a tiny alphabet where levels are easy to compute
// by hand: resistance 10, 5, 2 for levels 0, 1, 2.
func threeLevelConfig() xbar.DeviceConfig {
	return xbar.DeviceConfig{
		TileRows:   4,
		TileCols:   4,
		Levels:     3,
		Resistance: []float64{10, 5, 2},
	}
}

// TestQuantize_LevelRounding checks the full map: min-max normalize,
// round onto [0, L−1], substitute the table entry.
func TestQuantize_LevelRounding(t *testing.T) {
	var w = mat.NewDense(2, 2, []float64{
		0, 0.5,
		1, 0,
	})

	out, err := xbar.Quantize(w, threeLevelConfig())
	require.NoError(t, err, "valid input must quantize")

	// lo=0, hi=1: norms are the raw values; levels 0, 1, 2.
	assert.Equal(t, 10.0, out.At(0, 0), "norm 0 maps to level 0")
	assert.Equal(t, 5.0, out.At(0, 1), "norm 0.5 maps to the middle level")
	assert.Equal(t, 2.0, out.At(1, 0), "norm 1 maps to the top level")
}

// TestQuantize_ConstantMatrix verifies the degenerate max==min path:
// normalization is skipped and the raw value is used as its own norm.
func TestQuantize_ConstantMatrix(t *testing.T) {
	// All-ones: norm 1 ⇒ top level everywhere.
	var w = mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	out, err := xbar.Quantize(w, threeLevelConfig())
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.At(0, 0), "constant 1 matrix hits the top level")
	assert.Equal(t, 2.0, out.At(1, 1))

	// All-zeros: norm 0 ⇒ level 0 everywhere.
	w = mat.NewDense(2, 2, nil)
	out, err = xbar.Quantize(w, threeLevelConfig())
	require.NoError(t, err)
	assert.Equal(t, 10.0, out.At(0, 0), "constant 0 matrix hits level 0")
}

// TestQuantize_ClampsOutOfRangeLevels ensures degenerate constant
// inputs outside [0,1] can never index outside the table.
func TestQuantize_ClampsOutOfRangeLevels(t *testing.T) {
	// Constant 7 matrix: raw norm 7 would be level 14; must clamp to top.
	var w = mat.NewDense(2, 2, []float64{7, 7, 7, 7})
	out, err := xbar.Quantize(w, threeLevelConfig())
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.At(1, 0), "levels clamp to L−1")

	// Constant −3 matrix: must clamp to level 0.
	w = mat.NewDense(2, 2, []float64{-3, -3, -3, -3})
	out, err = xbar.Quantize(w, threeLevelConfig())
	require.NoError(t, err)
	assert.Equal(t, 10.0, out.At(0, 1), "levels clamp to 0")
}

// TestQuantize_InputUntouched verifies the input matrix is not mutated.
func TestQuantize_InputUntouched(t *testing.T) {
	var w = mat.NewDense(2, 2, []float64{0, 0.5, 1, 0})
	_, err := xbar.Quantize(w, threeLevelConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.5, w.At(0, 1), "input must stay untouched")
}

// TestQuantize_Errors walks the sentinel surface.
func TestQuantize_Errors(t *testing.T) {
	var cfg = threeLevelConfig()

	_, err := xbar.Quantize(nil, cfg)
	assert.ErrorIs(t, err, xbar.ErrNilMatrix, "nil matrix")

	_, err = xbar.Quantize(mat.NewDense(2, 3, nil), cfg)
	assert.ErrorIs(t, err, xbar.ErrNonSquare, "non-square matrix")

	_, err = xbar.Quantize(mat.NewDense(2, 2, []float64{0, math.NaN(), 0, 0}), cfg)
	assert.ErrorIs(t, err, xbar.ErrNaNInf, "NaN entry")

	_, err = xbar.Quantize(mat.NewDense(2, 2, []float64{0, math.Inf(1), 0, 0}), cfg)
	assert.ErrorIs(t, err, xbar.ErrNaNInf, "Inf entry")

	cfg.Resistance = []float64{10, 5} // length 2 vs Levels 3
	_, err = xbar.Quantize(mat.NewDense(2, 2, nil), cfg)
	assert.ErrorIs(t, err, xbar.ErrResistanceTable, "table length mismatch")

	cfg = threeLevelConfig()
	cfg.Levels = 0
	_, err = xbar.Quantize(mat.NewDense(2, 2, nil), cfg)
	assert.ErrorIs(t, err, xbar.ErrBadLevelCount, "zero levels")
}
