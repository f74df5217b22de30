package edgeset

import "errors"

var (
	// ErrSelfLoop indicates an operation was attempted with u == v.
	ErrSelfLoop = errors.New("edgeset: self-loops are not supported")

	// ErrAlreadyPresent indicates Add was called for a pair that already
	// has an entry in one or both directions.
	ErrAlreadyPresent = errors.New("edgeset: edge already present")
)
