package connectivity

import "errors"

var (
	// ErrDuplicateNode indicates AddNode was called with an id already
	// present in the structure.
	ErrDuplicateNode = errors.New("connectivity: node already exists")

	// ErrUnknownNode indicates an operation referenced an id that was
	// never added, or was already removed.
	ErrUnknownNode = errors.New("connectivity: unknown node")

	// ErrNotIsolated indicates RemoveNode was called on a node that still
	// has incident edges.
	ErrNotIsolated = errors.New("connectivity: node still has incident edges")

	// ErrSelfLoop indicates AddEdge/RemoveEdge was called with u == v.
	ErrSelfLoop = errors.New("connectivity: self-loops are not supported")

	// ErrEdgeExists indicates AddEdge was called for a pair that already
	// has an edge recorded between them.
	ErrEdgeExists = errors.New("connectivity: edge already exists")

	// ErrNoSuchEdge indicates RemoveEdge was called for a pair with no
	// recorded edge between them.
	ErrNoSuchEdge = errors.New("connectivity: no such edge")
)
