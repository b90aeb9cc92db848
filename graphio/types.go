package graphio

import "errors"

// Sentinel errors returned by the readers and writers.
var (
	// ErrEmptyGraph indicates an input with no edges at all.
	ErrEmptyGraph = errors.New("graphio: no edges in input")

	// ErrMalformedLine indicates a line that is not "u v" or "u v w".
	ErrMalformedLine = errors.New("graphio: malformed edge line")

	// ErrBadVertexID indicates a negative vertex identifier.
	ErrBadVertexID = errors.New("graphio: vertex id must be >= 0")

	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("graphio: self-loop edge")

	// ErrBadWeight indicates a non-finite edge weight.
	ErrBadWeight = errors.New("graphio: edge weight must be finite")

	// ErrNilMatrix indicates a nil weight matrix passed to a writer.
	ErrNilMatrix = errors.New("graphio: weight matrix is nil")
)
