package binomial

import (
	"fmt"

	"github.com/davidvella/binomial/alloc"
)

// tree is a binomial tree node. A tree of order k has exactly k children,
// child i being of order i, and holds 2^k values.
//
// Trees are shared between heaps and parents. Apart from refcount a tree is
// never changed after construction while anything still refers to it.
type tree[V any] struct {
	value    V
	order    uint32
	refcount uint32          // root slots plus parent slots referring to this tree
	alloc    alloc.Allocator // frees the tree, whichever heap drops it last
	children []*tree[V]
}

func (t *tree[V]) ref() {
	t.refcount++
}

// newLeaf allocates an order 0 tree holding v. The caller owns the single
// reference.
func (h *Heap[V]) newLeaf(v V) (*tree[V], error) {
	if err := h.opts.allocator.Alloc(alloc.Node); err != nil {
		return nil, err
	}
	return &tree[V]{value: v, refcount: 1, alloc: h.opts.allocator}, nil
}

// link combines two trees of order k into a new tree of order k+1. The
// winner's children and the loser are shared, not copied; t1 and t2 are left
// as they were apart from the loser gaining a reference. Ties go to t1.
//
// The new tree has no references; the caller takes the first one. On error
// no refcount has changed.
func (h *Heap[V]) link(t1, t2 *tree[V]) (*tree[V], error) {
	if t1.order != t2.order {
		panic(fmt.Sprintf("binomial: link of trees with orders %d and %d", t1.order, t2.order))
	}
	if h.cmp(t1.value, t2.value) > 0 {
		t1, t2 = t2, t1
	}

	if err := h.opts.allocator.Alloc(alloc.Node); err != nil {
		return nil, err
	}

	children := make([]*tree[V], t1.order+1)
	copy(children, t1.children)
	children[t1.order] = t2
	for _, c := range children {
		c.ref()
	}

	return &tree[V]{
		value:    t1.value,
		order:    t1.order + 1,
		children: children,
		alloc:    h.opts.allocator,
	}, nil
}

// release drops one reference to t. Trees left without references are
// freed and their children released in turn, using a worklist so that
// teardown depth does not depend on the size of the heap.
func (h *Heap[V]) release(t *tree[V]) {
	if t == nil {
		return
	}
	pending := []*tree[V]{t}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if n.refcount == 0 {
			panic("binomial: release of unreferenced tree")
		}
		n.refcount--
		if n.refcount > 0 {
			continue
		}

		pending = append(pending, n.children...)
		var zero V
		n.value, n.children = zero, nil
		n.alloc.Free(alloc.Node)
	}
}
