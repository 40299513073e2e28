// Package loser implements a tournament tree (also known as a loser tree) for
// merging multiple ordered sequences into one ordered sequence.
//
// A loser tree is a binary tree where each internal node holds the "loser" of
// a comparison between its children, and the root holds the overall "winner".
// Advancing the winning sequence only replays the games on the path from its
// leaf to the root, so each merged value costs O(log k) comparisons for k
// sequences.
//
// Sequences yield (value, error) pairs. The first error from any sequence is
// passed through and ends the merge, which lets sources that can fail part way
// (such as ordered traversals of a binomial heap) be merged without losing the
// failure.
//
// Basic usage:
//
//	tree := loser.New(
//	    []loser.Sequence[int]{seq1, seq2, seq3},
//	    cmp.Compare[int],
//	)
//
//	for v, err := range tree.All() {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v)
//	}
//
// Implementation details:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf nodes are stored in positions M to 2M-1 (where M is the number of sequences)
//   - Internal nodes are stored in positions 1 to M-1
//   - Node 0 holds the leaf position of the current winner
//
// An exhausted leaf loses every game, so no maximum sentinel value is needed.
// The merge is not stable: which of two equal values comes first depends on
// the tree layout.
package loser
