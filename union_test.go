package binomial_test

import (
	"cmp"
	"testing"

	"github.com/davidvella/binomial"
	"github.com/davidvella/binomial/alloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	tests := []struct {
		name   string
		mode   binomial.Mode
		inputs [][]int
		want   []int
	}{
		{
			name: "no heaps",
		},
		{
			name:   "single heap",
			mode:   binomial.Min,
			inputs: [][]int{{3, 1, 2}},
			want:   []int{1, 2, 3},
		},
		{
			name:   "three min heaps",
			mode:   binomial.Min,
			inputs: [][]int{{9, 1, 5}, {2, 8}, {7, 3, 3, 6}},
			want:   []int{1, 2, 3, 3, 5, 6, 7, 8, 9},
		},
		{
			name:   "max heaps with an empty one",
			mode:   binomial.Max,
			inputs: [][]int{{4, 10}, {}, {7}},
			want:   []int{10, 7, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := alloc.New()
			heaps := make([]*binomial.Heap[int], len(tt.inputs))
			for i, in := range tt.inputs {
				heaps[i] = newIntHeap(t, tt.mode, a, in...)
			}

			var got []int
			for v, err := range binomial.Union(heaps...) {
				require.NoError(t, err)
				got = append(got, v)
			}
			if len(tt.want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}

			for i, h := range heaps {
				assert.Equal(t, len(tt.inputs[i]), h.Len(), "union does not modify heap %d", i)
				h.Destroy()
			}
			assertNoLeaks(t, a)
		})
	}
}

func TestUnionModeMismatch(t *testing.T) {
	x := binomial.New(binomial.Min, cmp.Compare[int])
	y := binomial.New(binomial.Max, cmp.Compare[int])

	var errs []error
	for _, err := range binomial.Union(x, y) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], binomial.ErrModeMismatch)
}

func TestUnionAllocationFailure(t *testing.T) {
	a := alloc.New()
	x := newIntHeap(t, binomial.Min, a, 1, 2)
	y := newIntHeap(t, binomial.Min, a, 3)

	a.SetLimit(0)
	var gotErr error
	for _, err := range binomial.Union(x, y) {
		gotErr = err
	}
	a.SetLimit(alloc.NoLimit)

	require.ErrorIs(t, gotErr, binomial.ErrAllocation)
	assert.Equal(t, []int{1, 2}, contents(t, x))
	assert.Equal(t, []int{3}, contents(t, y))

	x.Destroy()
	y.Destroy()
	assertNoLeaks(t, a)
}
