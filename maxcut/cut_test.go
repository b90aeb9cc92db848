// Package maxcut_test validates cut evaluation and partition
// conversion.
package maxcut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/annealix/crosscut/maxcut"
)

// triangleW is the unit triangle: every bipartition cuts exactly two of
// its three edges.
func triangleW() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	})
}

// TestCutValue_Triangle pins the objective on hand-checkable spins.
func TestCutValue_Triangle(t *testing.T) {
	cut, err := maxcut.CutValue(triangleW(), []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Zero(t, cut, "no edge crosses an all-equal assignment")

	cut, err = maxcut.CutValue(triangleW(), []float64{1, 1, -1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, cut, "isolating one node cuts two unit edges")
}

// TestCutValue_WeightedEdges verifies each crossing edge contributes
// its full weight exactly once.
func TestCutValue_WeightedEdges(t *testing.T) {
	var w = mat.NewDense(2, 2, []float64{0, 2.5, 2.5, 0})

	cut, err := maxcut.CutValue(w, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, 2.5, cut)
}

// TestPartitionOf checks the spin → side conversion.
func TestPartitionOf(t *testing.T) {
	assert.Equal(t, []int{1, 0, 1, 0}, maxcut.PartitionOf([]float64{1, -1, 1, -1}))
	assert.Empty(t, maxcut.PartitionOf(nil))
}

// TestCutValue_Errors walks the sentinel surface.
func TestCutValue_Errors(t *testing.T) {
	_, err := maxcut.CutValue(nil, []float64{1})
	assert.ErrorIs(t, err, maxcut.ErrNilProblem)

	_, err = maxcut.CutValue(triangleW(), []float64{1, -1})
	assert.ErrorIs(t, err, maxcut.ErrDimensionMismatch)
}
