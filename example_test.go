package binomial_test

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/davidvella/binomial"
	"github.com/davidvella/binomial/alloc"
)

// ExampleHeap_minHeap demonstrates using the heap as a min-heap.
func ExampleHeap_minHeap() {
	h := binomial.New(binomial.Min, cmp.Compare[int])
	defer h.Destroy()

	for _, v := range []int{5, 3, 8, 1} {
		if err := h.Insert(v); err != nil {
			fmt.Println(err)
			return
		}
	}

	for {
		v, ok, err := h.Pop()
		if err != nil {
			fmt.Println(err)
			return
		}
		if !ok {
			fmt.Println("empty")
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 1
	// 3
	// 5
	// 8
	// empty
}

// ExampleHeap_Merge merges one heap into another.
func ExampleHeap_Merge() {
	a := binomial.New(binomial.Min, cmp.Compare[int])
	b := binomial.New(binomial.Min, cmp.Compare[int])
	defer a.Destroy()
	defer b.Destroy()

	for _, v := range []int{2, 4, 6} {
		_ = a.Insert(v)
	}
	for _, v := range []int{1, 3, 5} {
		_ = b.Insert(v)
	}

	if err := a.Merge(b); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Len(), b.Len())

	for v, err := range a.All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%d ", v)
	}
	fmt.Println()

	// Output:
	// 6 3
	// 1 2 3 4 5 6
}

// ExampleHeap_maxHeap orders tasks by priority, highest first.
func ExampleHeap_maxHeap() {
	type Task struct {
		Priority int
		Name     string
	}

	h := binomial.New(binomial.Max, func(a, b Task) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	defer h.Destroy()

	_ = h.Insert(Task{Priority: 1, Name: "Low priority"})
	_ = h.Insert(Task{Priority: 5, Name: "High priority"})
	_ = h.Insert(Task{Priority: 3, Name: "Medium priority"})

	for h.Len() > 0 {
		task, _, _ := h.Pop()
		fmt.Printf("Processing: %s (priority %d)\n", task.Name, task.Priority)
	}

	// Output:
	// Processing: High priority (priority 5)
	// Processing: Medium priority (priority 3)
	// Processing: Low priority (priority 1)
}

// ExampleHeap_Insert shows that a failed insert leaves the heap untouched.
func ExampleHeap_Insert() {
	a := alloc.New()
	h := binomial.New(binomial.Min, cmp.Compare[int], binomial.WithAllocator(a))

	_ = h.Insert(1)
	_ = h.Insert(2)

	a.SetLimit(0)
	err := h.Insert(3)
	a.SetLimit(alloc.NoLimit)

	fmt.Println(errors.Is(err, binomial.ErrAllocation), h.Len())

	h.Destroy()
	fmt.Println(a.Stats().Live(alloc.Node))

	// Output:
	// true 2
	// 0
}

// ExampleUnion walks several heaps in order without changing them.
func ExampleUnion() {
	x := binomial.New(binomial.Min, cmp.Compare[string])
	y := binomial.New(binomial.Min, cmp.Compare[string])
	defer x.Destroy()
	defer y.Destroy()

	for _, s := range []string{"pear", "apple"} {
		_ = x.Insert(s)
	}
	for _, s := range []string{"fig", "banana"} {
		_ = y.Insert(s)
	}

	for s, err := range binomial.Union(x, y) {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%s ", s)
	}
	fmt.Println()

	// Output: apple banana fig pear
}
