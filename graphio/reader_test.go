// Package graphio_test validates edge-list parsing, including comment
// handling, default weights and line-numbered failures.
package graphio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annealix/crosscut/graphio"
)

// writeTemp drops content into a fresh file under t.TempDir().
func writeTemp(t *testing.T, content string) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// TestReadEdgeList_Basic parses a small weighted graph with comments,
// blank lines and a defaulted weight.
func TestReadEdgeList_Basic(t *testing.T) {
	var path = writeTemp(t, `
# triangle with one heavy edge
0 1 2.5
1 2        # trailing comment, weight defaults to 1

2 0 4
`)

	w, err := graphio.ReadEdgeList(path)
	require.NoError(t, err)

	var r, c = w.Dims()
	assert.Equal(t, 3, r, "order is maxID+1")
	assert.Equal(t, 3, c)
	assert.Equal(t, 2.5, w.At(0, 1))
	assert.Equal(t, 2.5, w.At(1, 0), "both directions filled")
	assert.Equal(t, 1.0, w.At(1, 2), "missing weight defaults to 1")
	assert.Equal(t, 4.0, w.At(0, 2))
	assert.Zero(t, w.At(0, 0), "diagonal stays zero")
}

// TestReadEdgeList_DuplicateOverwrites pins last-one-wins semantics.
func TestReadEdgeList_DuplicateOverwrites(t *testing.T) {
	w, err := graphio.ReadEdgeList(writeTemp(t, "0 1 2\n0 1 9\n"))
	require.NoError(t, err)
	assert.Equal(t, 9.0, w.At(0, 1))
	assert.Equal(t, 9.0, w.At(1, 0))
}

// TestReadEdgeList_Errors walks the sentinel surface; every parse
// failure must carry its line number.
func TestReadEdgeList_Errors(t *testing.T) {
	_, err := graphio.ReadEdgeList(writeTemp(t, "0 1 2 3 4\n"))
	assert.ErrorIs(t, err, graphio.ErrMalformedLine, "too many fields")

	_, err = graphio.ReadEdgeList(writeTemp(t, "0 one\n"))
	assert.ErrorIs(t, err, graphio.ErrMalformedLine, "non-integer vertex")

	_, err = graphio.ReadEdgeList(writeTemp(t, "0 -1\n"))
	assert.ErrorIs(t, err, graphio.ErrBadVertexID, "negative vertex")

	_, err = graphio.ReadEdgeList(writeTemp(t, "0 1\n2 2\n"))
	assert.ErrorIs(t, err, graphio.ErrSelfLoop, "self loop")
	assert.ErrorContains(t, err, ":2", "line number context")

	_, err = graphio.ReadEdgeList(writeTemp(t, "0 1 NaN\n"))
	assert.ErrorIs(t, err, graphio.ErrBadWeight, "NaN weight")

	_, err = graphio.ReadEdgeList(writeTemp(t, "# comments only\n\n"))
	assert.ErrorIs(t, err, graphio.ErrEmptyGraph, "no edges")

	_, err = graphio.ReadEdgeList(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err, "missing file surfaces the OS error")
}
