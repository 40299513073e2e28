// Package alloc accounts for the allocations made by the binomial heap.
//
// Go allocations cannot fail, but the heap's contract is stated in terms of
// allocation failure: every mutating operation must either complete or leave
// every structure it touched exactly as it was. An Allocator is consulted
// before each tree node or root array is created, and may refuse. The
// Accountant implementation tracks live objects per Kind, which makes leaks
// and double frees observable, and can be told to refuse after a number of
// further allocations to exercise the rollback paths.
//
// Basic usage:
//
//	a := alloc.New()
//	h := binomial.New(binomial.Min, cmp.Compare[int], binomial.WithAllocator(a))
//
//	a.SetLimit(0)          // every further allocation fails
//	err := h.Insert(1)     // errors.Is(err, binomial.ErrAllocation)
//	a.SetLimit(alloc.NoLimit)
//
//	h.Destroy()
//	fmt.Println(a.Stats().Live(alloc.Node)) // 0
package alloc
