package binomial

import (
	"fmt"
	"iter"
	"math"

	"github.com/davidvella/binomial/alloc"
	"github.com/davidvella/binomial/monitoring"
)

// Mode selects whether a heap yields its smallest or its largest value first.
type Mode int

const (
	Min Mode = iota
	Max
)

func (m Mode) String() string {
	switch m {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Heap is a mergeable priority queue. The zero value is not usable; create
// heaps with New. A Heap is not safe for concurrent use, and neither are
// heaps that share trees through Merge or Clone.
type Heap[V any] struct {
	mode    Mode
	compare func(a, b V) int
	roots   []*tree[V] // roots[i] is the tree of order i, or nil
	count   uint64
	opts    options
}

// New creates an empty heap ordered by compare, which returns a negative
// number when a orders before b, zero when they are equal and a positive
// number otherwise, like cmp.Compare.
func New[V any](mode Mode, compare func(a, b V) int, opts ...Option) *Heap[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[V]{
		mode:    mode,
		compare: compare,
		opts:    o,
	}
}

// cmp is compare oriented by the heap mode: negative means a comes out first.
func (h *Heap[V]) cmp(a, b V) int {
	c := h.compare(a, b)
	if h.mode == Min {
		return c
	}
	switch {
	case c < 0:
		return 1
	case c > 0:
		return -1
	}
	return 0
}

// Mode returns the heap mode.
func (h *Heap[V]) Mode() Mode {
	return h.mode
}

// Len returns the number of values in the heap. Where int is 32 bits wide
// and the heap holds more than math.MaxInt values, Len saturates at
// math.MaxInt; Count is exact.
func (h *Heap[V]) Len() int {
	if h.count > math.MaxInt {
		return math.MaxInt
	}
	return int(h.count)
}

// Count returns the number of values in the heap.
func (h *Heap[V]) Count() uint64 {
	return h.count
}

// Insert adds v to the heap. On error the heap is unchanged and v is
// dropped.
func (h *Heap[V]) Insert(v V) error {
	leaf, err := h.newLeaf(v)
	if err != nil {
		return h.rollback("insert", err)
	}

	err = h.meld([]*tree[V]{leaf})
	h.release(leaf)
	if err != nil {
		return h.rollback("insert", err)
	}

	h.count++
	h.opts.stats.RecordInsert(h.opts.name)
	h.opts.stats.SetEntries(h.opts.name, h.Len())
	return nil
}

// Pop removes and returns the first value in heap order. ok is false when
// the heap is empty. On error ok is false and the heap is unchanged.
func (h *Heap[V]) Pop() (value V, ok bool, err error) {
	if h.count == 0 {
		return value, false, nil
	}

	i := h.top()
	t := h.roots[i]
	h.roots[i] = nil

	// The children form the transient forest; they are shared, not copied.
	if err = h.meld(t.children); err != nil {
		h.roots[i] = t
		return value, false, h.rollback("pop", err)
	}

	value = t.value
	h.release(t)
	h.count--

	h.opts.stats.RecordPop(h.opts.name)
	h.opts.stats.SetEntries(h.opts.name, h.Len())
	return value, true, nil
}

// Peek returns the first value in heap order without removing it.
func (h *Heap[V]) Peek() (value V, ok bool) {
	if h.count == 0 {
		return value, false
	}
	return h.roots[h.top()].value, true
}

// top returns the order of the root holding the first value. Ties go to
// the lowest order. The heap must not be empty.
func (h *Heap[V]) top() int {
	least := -1
	for i, r := range h.roots {
		if r == nil {
			continue
		}
		if least < 0 || h.cmp(r.value, h.roots[least].value) < 0 {
			least = i
		}
	}
	return least
}

// Merge adds every value of other to h. other is not modified and keeps
// its values; the two heaps share trees afterwards. Merging a heap into
// itself doubles its contents. On error h is unchanged.
func (h *Heap[V]) Merge(other *Heap[V]) error {
	if other.mode != h.mode {
		return fmt.Errorf("%w: cannot merge %s heap into %s heap", ErrModeMismatch, other.mode, h.mode)
	}

	n := other.count
	if err := h.meld(other.roots); err != nil {
		return h.rollback("merge", err)
	}
	h.count += n

	h.opts.stats.RecordMerge(h.opts.name)
	h.opts.stats.SetEntries(h.opts.name, h.Len())
	return nil
}

// Clone returns a heap with the same contents and options as h. The clone
// shares every tree with h, so it costs one root array regardless of size.
func (h *Heap[V]) Clone() (*Heap[V], error) {
	c := &Heap[V]{
		mode:    h.mode,
		compare: h.compare,
		count:   h.count,
		opts:    h.opts,
	}
	if h.roots == nil {
		return c, nil
	}

	if err := h.opts.allocator.Alloc(alloc.Roots); err != nil {
		return nil, h.rollback("clone", err)
	}
	c.roots = make([]*tree[V], len(h.roots))
	copy(c.roots, h.roots)
	for _, r := range c.roots {
		if r != nil {
			r.ref()
		}
	}
	return c, nil
}

// All returns the values in heap order without modifying h. An allocation
// failure is yielded once and ends the sequence.
func (h *Heap[V]) All() iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		c, err := h.Clone()
		if err != nil {
			var zero V
			yield(zero, err)
			return
		}
		defer c.Destroy()
		c.opts.stats = monitoring.NopStats()

		for {
			v, ok, err := c.Pop()
			if err != nil {
				yield(v, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

// Destroy releases every value. The heap is empty afterwards and may be
// reused. Trees shared with other heaps stay alive in those heaps.
func (h *Heap[V]) Destroy() {
	for _, r := range h.roots {
		h.release(r)
	}
	if h.roots != nil {
		h.opts.allocator.Free(alloc.Roots)
	}

	h.opts.logger.Log(monitoring.DEBUG, "destroy", "heap destroyed", map[string]any{
		"heap":  h.opts.name,
		"count": h.count,
	})

	h.roots = nil
	h.count = 0
	h.opts.stats.SetEntries(h.opts.name, 0)
}

func (h *Heap[V]) rollback(op string, err error) error {
	h.opts.stats.RecordAllocFailure(h.opts.name, op)
	h.opts.logger.Log(monitoring.WARN, "rollback", op+" rolled back", map[string]any{
		"heap":  h.opts.name,
		"count": h.count,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s: %w", ErrAllocation, op, err)
}
