package binomial

import (
	"fmt"
)

// Validate checks the structure of h: one tree per order at most, every tree
// of order k having k children of orders 0..k-1, no child ordered before its
// parent, and Len matching the trees. It walks every value and is meant for
// tests and debugging.
func (h *Heap[V]) Validate() error {
	if n := len(h.roots); n > 0 && h.roots[n-1] == nil {
		return fmt.Errorf("%w: highest root slot %d is empty", ErrCorrupt, n-1)
	}

	var total uint64
	for i, r := range h.roots {
		if r == nil {
			continue
		}
		if r.order != uint32(i) {
			return fmt.Errorf("%w: root slot %d holds a tree of order %d", ErrCorrupt, i, r.order)
		}
		if err := h.validateTree(r); err != nil {
			return err
		}
		total += 1 << r.order
	}

	if total != h.count {
		return fmt.Errorf("%w: trees hold %d values, count is %d", ErrCorrupt, total, h.count)
	}
	return nil
}

func (h *Heap[V]) validateTree(root *tree[V]) error {
	pending := []*tree[V]{root}
	for len(pending) > 0 {
		t := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if t.refcount == 0 {
			return fmt.Errorf("%w: reachable tree of order %d has no references", ErrCorrupt, t.order)
		}
		if len(t.children) != int(t.order) {
			return fmt.Errorf("%w: tree of order %d has %d children", ErrCorrupt, t.order, len(t.children))
		}
		for j, c := range t.children {
			if c.order != uint32(j) {
				return fmt.Errorf("%w: child %d of a tree of order %d has order %d", ErrCorrupt, j, t.order, c.order)
			}
			if h.cmp(c.value, t.value) < 0 {
				return fmt.Errorf("%w: child %d orders before its parent", ErrCorrupt, j)
			}
		}
		pending = append(pending, t.children...)
	}
	return nil
}
