// Package loser merges ordered sequences with a tournament tree.
// Based on Bryan Boreham's https://github.com/bboreham/go-loser.
package loser

import (
	"iter"
)

// Sequence is an ordered source of values. A non-nil error ends the
// sequence.
type Sequence[E any] interface {
	All() iter.Seq2[E, error]
}

// New returns a tree merging sequences, each of which must already be
// ordered by compare.
func New[E any](sequences []Sequence[E], compare func(a, b E) int) *Tree[E] {
	return &Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		compare:   compare,
	}
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []Sequence[E]
	compare   func(a, b E) int
}

type node[E any] struct {
	index int                     // Leaf position of the loser, or of the winner for node 0.
	value E                       // Leaves only.
	done  bool                    // Leaves only; an exhausted leaf loses every game.
	next  func() (E, error, bool) // Leaves only.
}

// All yields the merged values in order. The first error from any sequence
// is yielded once and ends the merge.
func (t *Tree[E]) All() iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		if len(t.nodes) == 0 {
			return
		}
		var zero E
		m := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull2(s.All())
			//nolint:gocritic // is not a leak.
			defer stop()
			t.nodes[i+m] = node[E]{next: next}
			if err := t.moveNext(i + m); err != nil {
				yield(zero, err)
				return
			}
		}
		t.nodes[0].index = t.playGame(1)

		for {
			w := t.nodes[0].index
			if t.nodes[w].done || !yield(t.nodes[w].value, nil) {
				return
			}
			if err := t.moveNext(w); err != nil {
				yield(zero, err)
				return
			}
			t.replayGames(w)
		}
	}
}

func (t *Tree[E]) moveNext(pos int) error {
	n := &t.nodes[pos]
	v, err, ok := n.next()
	if !ok {
		var zero E
		n.value, n.done = zero, true
		return nil
	}
	if err != nil {
		n.done = true
		return err
	}
	n.value = v
	return nil
}

// beats reports whether leaf a wins against leaf b.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.done:
		return false
	case nb.done:
		return true
	}
	return t.compare(na.value, nb.value) < 0
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	winner, loser := left, right
	if t.beats(right, left) {
		winner, loser = right, left
	}
	t.nodes[pos].index = loser
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *Tree[E]) replayGames(pos int) {
	for n := parent(pos); n != 0; n = parent(n) {
		nd := &t.nodes[n]
		if t.beats(nd.index, pos) {
			// Record pos as the loser here, and the old loser is the new winner.
			nd.index, pos = pos, nd.index
		}
	}
	t.nodes[0].index = pos
}

func parent(i int) int { return i >> 1 }
