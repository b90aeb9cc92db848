// Package graphio_test validates the PSAV export layout.
package graphio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/annealix/crosscut/graphio"
)

// TestWritePSAV_Layout pins the header lines, the one-based
// upper-triangle edge list, integer rounding and zero-edge omission.
func TestWritePSAV_Layout(t *testing.T) {
	var w = mat.NewDense(3, 3, []float64{
		0, 2.4, 0,
		2.4, 0, 1.6,
		0, 1.6, 0,
	})
	var path = filepath.Join(t.TempDir(), "out.psav")

	require.NoError(t, graphio.WritePSAV(path, w, 4))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "3\n0\n0\n4\n1 2 2\n2 3 2\n", string(data))
}

// TestWritePSAV_NilMatrix covers the sentinel.
func TestWritePSAV_NilMatrix(t *testing.T) {
	assert.ErrorIs(t,
		graphio.WritePSAV(filepath.Join(t.TempDir(), "x"), nil, 0),
		graphio.ErrNilMatrix)
}
