// Package graphio - edge-list parsing.
package graphio

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// edge is one parsed input line before matrix assembly.
type edge struct {
	u, v int
	w    float64
}

// ReadEdgeList parses path as a whitespace edge list and returns the
// dense symmetric weight matrix.
//
// Format, per non-empty line: "u v" (weight 1) or "u v w", zero-based
// integer vertex IDs, '#' starts a comment to end of line.
//
// Contracts: IDs ≥ 0, u ≠ v, finite weights. Both (i,j) and (j,i)
// entries are written, so the result passes the solver's symmetry
// validation unchanged.
//
// The format carries no node count, so edgeless graphs and isolated
// vertices are not expressible here; such degenerate instances (which
// the solver handles, returning cut 0) must be built as matrices
// directly.
//
// Errors: os.Open errors verbatim; ErrMalformedLine, ErrBadVertexID,
// ErrSelfLoop, ErrBadWeight wrapped with "file:line"; ErrEmptyGraph
// when no edges survive parsing.
//
// Complexity: O(E) parse + O(N²) matrix fill.
func ReadEdgeList(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Stage 1: parse lines into an edge slice, tracking the max ID.
	var (
		edges []edge
		maxID = -1
		line  int
		sc    = bufio.NewScanner(f)
	)
	for sc.Scan() {
		line++
		var text = sc.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		var fields = strings.Fields(text)
		if len(fields) == 0 {
			continue // blank or comment-only line
		}
		if len(fields) != 2 && len(fields) != 3 {
			return nil, lineErr(ErrMalformedLine, path, line)
		}

		var e edge
		if e.u, err = strconv.Atoi(fields[0]); err != nil {
			return nil, lineErr(ErrMalformedLine, path, line)
		}
		if e.v, err = strconv.Atoi(fields[1]); err != nil {
			return nil, lineErr(ErrMalformedLine, path, line)
		}
		if e.u < 0 || e.v < 0 {
			return nil, lineErr(ErrBadVertexID, path, line)
		}
		if e.u == e.v {
			return nil, lineErr(ErrSelfLoop, path, line)
		}

		e.w = 1
		if len(fields) == 3 {
			if e.w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, lineErr(ErrMalformedLine, path, line)
			}
			if math.IsNaN(e.w) || math.IsInf(e.w, 0) {
				return nil, lineErr(ErrBadWeight, path, line)
			}
		}

		if e.u > maxID {
			maxID = e.u
		}
		if e.v > maxID {
			maxID = e.v
		}
		edges = append(edges, e)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyGraph, path)
	}

	// Stage 2: assemble the symmetric matrix.
	var (
		n = maxID + 1
		w = mat.NewDense(n, n, nil)
	)
	for _, e := range edges {
		w.Set(e.u, e.v, e.w)
		w.Set(e.v, e.u, e.w)
	}

	return w, nil
}

// lineErr attaches file and line context to a parse sentinel.
func lineErr(sentinel error, path string, line int) error {
	return fmt.Errorf("%w: %s:%d", sentinel, path, line)
}
