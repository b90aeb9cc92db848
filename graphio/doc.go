// Package graphio reads and writes Max-Cut graph instances.
//
// What:
//
//   - ReadEdgeList parses the plain whitespace edge-list format
//     ("u v" or "u v w" per line, '#' comments, zero-based vertex IDs)
//     into a dense symmetric weight matrix.
//   - WritePSAV exports a weight matrix in the PSAV benchmark layout:
//     three header lines (node count, two reserved zeros, best-known
//     cut) followed by one-based "i j w" upper-triangle edges with
//     integer-rounded weights.
//
// Why it matters:
//
//	The solver core works on matrices only; this package is the single
//	boundary where text formats, line numbers and I/O errors live. Parse
//	failures carry the offending line number so a broken instance file
//	can be fixed without guesswork.
//
// Conventions:
//
//   - Vertex IDs are dense zero-based integers; the matrix order is
//     maxID+1.
//   - Missing weight defaults to 1.
//   - Duplicate edges overwrite (last one wins); self-loops are
//     rejected, matching the solver's zero-diagonal contract.
//   - The format has no node-count header, so it cannot express
//     isolated vertices or edgeless graphs; an input without edges is
//     ErrEmptyGraph. Degenerate instances the solver accepts (single
//     node, zero edges) must be constructed as matrices directly.
//
// Errors: sentinels from types.go, wrapped with file/line context via
// fmt.Errorf("%w: ..."), matchable with errors.Is.
package graphio
