package heap

import (
	randv2 "math/rand/v2"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xalgo/lib/infra"
)

type employee struct {
	name   string
	salary int64
}

func TestMaxHeap_Peek(t *testing.T) {
	h := NewMaxHeap[int]()
	_, ok := h.Peek()
	require.False(t, ok)
	require.True(t, h.IsEmpty())
	h.Insert(1)
	h.Insert(2)
	h.Insert(3)
	top, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 3, top)
	require.Equal(t, 3, h.Len())
}

func TestMinHeap_Extract(t *testing.T) {
	testcases := []struct {
		name  string
		input []int
	}{
		{"single", []int{1}},
		{"shuffled", []int{4, 5, 3, 1, 2}},
		{"reversed", []int{5, 4, 3, 2, 1}},
		{"duplicates", []int{4, 4, 3, 3, 2, 2, 1, 1}},
		{"sparse", []int{78, 20, 5, 60, 1000}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			h := NewMinHeap[int](WithHeapCapacity(len(tc.input)))
			for _, e := range tc.input {
				h.Insert(e)
			}
			expected := append([]int(nil), tc.input...)
			sort.Ints(expected)
			actual := make([]int, 0, len(tc.input))
			for !h.IsEmpty() {
				e, ok := h.Extract()
				require.True(tt, ok)
				actual = append(actual, e)
			}
			require.Equal(tt, expected, actual)
			_, ok := h.Extract()
			require.False(tt, ok)
		})
	}
}

func TestHeapFunc_Employee(t *testing.T) {
	h := NewHeapFunc[*employee](func(a, b *employee) infra.CompareResult {
		return infra.OrderedComparator[int64](a.salary, b.salary)
	})
	h.Insert(&employee{name: "p0", salary: 1})
	h.Insert(&employee{name: "p1", salary: 101})
	h.Insert(&employee{name: "p2", salary: 10})
	h.Insert(&employee{name: "p3", salary: 200})
	h.Insert(&employee{name: "p4", salary: 3})
	h.Insert(&employee{name: "p5", salary: 1})
	h.Insert(&employee{name: "p6", salary: 5})

	expectedSalaries := []int64{1, 1, 3, 5, 10, 101, 200}
	for i, salary := range expectedSalaries {
		e, ok := h.Extract()
		require.True(t, ok)
		assert.Equal(t, salary, e.salary, "salary", i)
	}

	require.Panics(t, func() {
		NewHeapFunc[*employee](nil)
	})
}

func TestMaxHeap_ThreadSafe(t *testing.T) {
	h := NewMaxHeap[int](WithHeapThreadSafe(), WithHeapCapacity(-1))
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Insert(randv2.IntN(1000))
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 800, h.Len())

	prev, _ := h.Peek()
	for !h.IsEmpty() {
		e, _ := h.Extract()
		require.LessOrEqual(t, e, prev)
		prev = e
	}
}
