package binomial

import (
	"fmt"
	"iter"

	"github.com/davidvella/binomial/loser"
)

// Union returns the values of all heaps in heap order without modifying any
// of them. The heaps must share a mode; they are ordered by the comparator
// of the first heap. An error is yielded once and ends the sequence.
func Union[V any](heaps ...*Heap[V]) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		if len(heaps) == 0 {
			return
		}

		first := heaps[0]
		seqs := make([]loser.Sequence[V], len(heaps))
		for i, h := range heaps {
			if h.mode != first.mode {
				var zero V
				yield(zero, fmt.Errorf("%w: heap %d is %s, heap 0 is %s", ErrModeMismatch, i, h.mode, first.mode))
				return
			}
			seqs[i] = h
		}

		for v, err := range loser.New(seqs, first.cmp).All() {
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
