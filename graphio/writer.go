// Package graphio - PSAV benchmark export.
package graphio

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// WritePSAV exports w to path in the PSAV benchmark layout:
//
//	line 1: node count
//	line 2: 0          (reserved)
//	line 3: 0          (reserved)
//	line 4: best-known cut value
//	then one-based "i j w" upper-triangle edges, weights rounded to
//	the nearest integer, zero-weight pairs omitted.
//
// Contracts: w non-nil and square; bestKnown is recorded verbatim.
//
// Errors: ErrNilMatrix; file-system errors verbatim.
//
// Complexity: O(N²).
func WritePSAV(path string, w *mat.Dense, bestKnown float64) error {
	if w == nil {
		return ErrNilMatrix
	}
	var n, _ = w.Dims()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var bw = bufio.NewWriter(f)
	fmt.Fprintf(bw, "%d\n0\n0\n%g\n", n, bestKnown)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			var v = w.At(i, j)
			if v == 0 {
				continue
			}
			fmt.Fprintf(bw, "%d %d %d\n", i+1, j+1, int64(math.Round(v)))
		}
	}
	if err = bw.Flush(); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
