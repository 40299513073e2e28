package alloc

import (
	"errors"
	"fmt"
)

// ErrLimitExceeded is returned once an Accountant's allocation limit is used up.
var ErrLimitExceeded = errors.New("alloc: allocation limit exceeded")

// NoLimit disables the allocation limit.
const NoLimit = -1

// Kind identifies what is being allocated.
type Kind int

const (
	// Node is a single tree node.
	Node Kind = iota
	// Roots is a root array of a heap.
	Roots

	numKinds
)

func (k Kind) String() string {
	switch k {
	case Node:
		return "node"
	case Roots:
		return "roots"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Allocator decides whether an allocation may proceed and is told when the
// allocated object is released.
type Allocator interface {
	Alloc(kind Kind) error
	Free(kind Kind)
}

// Stats contains allocation statistics.
type Stats struct {
	Allocations [numKinds]uint64 // Successful allocations per kind
	Frees       [numKinds]uint64 // Frees per kind
	Failures    uint64           // Refused allocations
}

// Live returns the number of allocations of kind that have not been freed.
func (s Stats) Live(kind Kind) uint64 {
	return s.Allocations[kind] - s.Frees[kind]
}

// Accountant is an Allocator that counts allocations and frees and can be
// limited to a number of further successful allocations.
//
// It is not safe for concurrent use, matching the heaps that use it.
type Accountant struct {
	// limit is the number of allocations still permitted, or NoLimit.
	limit int
	stats Stats
}

// New creates an Accountant with no limit.
func New() *Accountant {
	return &Accountant{limit: NoLimit}
}

// SetLimit permits n further allocations, after which Alloc fails with
// ErrLimitExceeded. A negative n removes the limit.
func (a *Accountant) SetLimit(n int) {
	if n < 0 {
		n = NoLimit
	}
	a.limit = n
}

// Alloc reserves one object of the given kind.
func (a *Accountant) Alloc(kind Kind) error {
	if a.limit == 0 {
		a.stats.Failures++
		return fmt.Errorf("%w: %s", ErrLimitExceeded, kind)
	}
	if a.limit > 0 {
		a.limit--
	}
	a.stats.Allocations[kind]++
	return nil
}

// Free releases one object of the given kind. Freeing more objects than
// were allocated is a bookkeeping fault and panics.
func (a *Accountant) Free(kind Kind) {
	if a.stats.Frees[kind] >= a.stats.Allocations[kind] {
		panic(fmt.Sprintf("alloc: free of %s with nothing live", kind))
	}
	a.stats.Frees[kind]++
}

// Stats returns a snapshot of the allocation statistics.
func (a *Accountant) Stats() Stats {
	return a.stats
}

// unbounded never refuses and keeps no state.
type unbounded struct{}

func (unbounded) Alloc(Kind) error { return nil }
func (unbounded) Free(Kind)        {}

// Unbounded returns an Allocator that never fails and keeps no statistics.
func Unbounded() Allocator {
	return unbounded{}
}
