package euler

import "errors"

var (
	// ErrDuplicateNode indicates CreateVertex was called with an id that is
	// already registered.
	ErrDuplicateNode = errors.New("euler: node already exists")

	// ErrUnknownNode indicates an operation referenced an id that has not
	// been registered via CreateVertex.
	ErrUnknownNode = errors.New("euler: unknown node")

	// ErrNotSingleton indicates RemoveVertex was called on a vertex that
	// still has incident tree edges.
	ErrNotSingleton = errors.New("euler: node still has incident edges")

	// ErrSelfLoop indicates Link was called with u == v.
	ErrSelfLoop = errors.New("euler: self-loops are not supported")

	// ErrAlreadyConnected indicates Link was called for a pair already in
	// the same component; linking them would close a cycle, which an
	// Euler-tour forest cannot represent (it stores spanning trees only).
	ErrAlreadyConnected = errors.New("euler: nodes are already connected")

	// ErrNoSuchEdge indicates Cut was called for a pair with no tree edge
	// between them.
	ErrNoSuchEdge = errors.New("euler: no tree edge between nodes")
)
