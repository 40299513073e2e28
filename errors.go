package binomial

import (
	"errors"
)

var (
	// ErrAllocation is returned when an operation could not allocate a tree
	// node or root array. The heaps involved are left exactly as they were.
	ErrAllocation = errors.New("binomial: allocation failed")
	// ErrModeMismatch is returned when combining a Min heap with a Max heap.
	ErrModeMismatch = errors.New("binomial: heap modes differ")
	// ErrCorrupt is returned by Validate when a structural invariant does not hold.
	ErrCorrupt = errors.New("binomial: heap invariant violated")
)
