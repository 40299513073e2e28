package binomial

import (
	"github.com/davidvella/binomial/alloc"
)

// meld unions the forest other into h like adding two binary numbers: each
// order is a bit position and linking two trees of order i produces a carry
// of order i+1.
//
// other is only read. It may be h.roots itself, or the children of a tree
// detached from h. On error h is exactly as it was before the call.
func (h *Heap[V]) meld(other []*tree[V]) error {
	size := max(len(h.roots), len(other)) + 1

	if err := h.opts.allocator.Alloc(alloc.Roots); err != nil {
		return err
	}
	roots := make([]*tree[V], size)
	n := 0

	var carry *tree[V]
	for i := range size {
		// Candidates are collected as self, other, carry. The order decides
		// which tree survives a tie and must not change.
		var vals [3]*tree[V]
		nvals := 0
		if i < len(h.roots) && h.roots[i] != nil {
			vals[nvals] = h.roots[i]
			nvals++
		}
		if i < len(other) && other[i] != nil {
			vals[nvals] = other[i]
			nvals++
		}
		if carry != nil {
			vals[nvals] = carry
			nvals++
		}

		if nvals&1 != 0 {
			roots[i] = vals[nvals-1]
			roots[i].ref()
			n = i + 1
		}

		var next *tree[V]
		if nvals&2 != 0 {
			var err error
			next, err = h.link(vals[0], vals[1])
			if err != nil {
				for _, r := range roots[:i+1] {
					h.release(r)
				}
				h.release(carry)
				h.opts.allocator.Free(alloc.Roots)
				return err
			}
			next.ref()
		}

		h.release(carry)
		carry = next
	}

	if carry != nil {
		panic("binomial: carry out of the highest order")
	}

	for _, r := range h.roots {
		h.release(r)
	}
	if h.roots != nil {
		h.opts.allocator.Free(alloc.Roots)
	}
	h.roots = roots[:n]

	return nil
}
