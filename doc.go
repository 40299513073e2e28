// Package binomial implements a mergeable priority queue as a binomial heap.
//
// A heap holds values ordered by a caller-supplied comparison function and
// yields either the smallest (Min) or the largest (Max) value first. Besides
// insertion and extraction, two heaps can be merged in O(log n) time.
//
// The heap is a forest of binomial trees with at most one tree per order,
// much like the binary representation of its size. Merging walks the orders
// from lowest to highest like binary addition: two trees of the same order
// are linked into a tree of the next order, which is carried upward.
//
// Trees are immutable and reference counted. Linking two trees creates a new
// node that refers to the existing subtrees instead of copying them, so a
// merged heap shares structure with its inputs: Merge leaves the other heap
// intact and usable, and Clone is O(log n).
//
// Every mutating operation is all-or-nothing. Allocation goes through an
// alloc.Allocator; when it refuses, the operation is rolled back and an error
// wrapping ErrAllocation is returned, leaving every heap involved exactly as
// before the call.
//
// Key features:
//   - Generic over any value type with a cmp.Compare style comparator
//   - O(log n) Insert, Pop, Peek and Merge
//   - O(log n) Clone through structural sharing
//   - Ordered, non-destructive iteration with All, and over several heaps with Union
//   - Optional structured logging and metrics (see package monitoring)
//
// Basic usage:
//
//	h := binomial.New(binomial.Min, cmp.Compare[int])
//	defer h.Destroy()
//
//	for _, v := range []int{5, 3, 8, 1} {
//	    if err := h.Insert(v); err != nil {
//	        return err
//	    }
//	}
//
//	for {
//	    v, ok, err := h.Pop()
//	    if err != nil {
//	        return err
//	    }
//	    if !ok {
//	        break // empty
//	    }
//	    fmt.Println(v) // 1, 3, 5, 8
//	}
//
// Heaps are not safe for concurrent use. Heaps that share trees through Merge
// or Clone must be guarded together.
package binomial
