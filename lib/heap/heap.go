package heap

import (
	"container/heap"
	"sync"

	"github.com/benz9527/xalgo/lib/infra"
)

// Heap is a binary heap, the root is the least element under the
// comparator.
type Heap[E any] interface {
	Len() int
	IsEmpty() bool
	Insert(e E)
	// Extract removes and returns the root.
	Extract() (E, bool)
	Peek() (E, bool)
}

type arrayHeap[E any] struct {
	arr []E
	cmp infra.Comparator[E]
}

func (h *arrayHeap[E]) Len() int { return len(h.arr) }
func (h *arrayHeap[E]) Less(i, j int) bool {
	return h.cmp(h.arr[i], h.arr[j]) == infra.LessThan
}
func (h *arrayHeap[E]) Swap(i, j int) { h.arr[i], h.arr[j] = h.arr[j], h.arr[i] }

func (h *arrayHeap[E]) Pop() interface{} {
	prev := h.arr
	n := len(prev)
	if n <= 0 {
		return nil
	}

	e := prev[n-1]
	prev[n-1] = *new(E) // release the reference
	h.arr = prev[:n-1]
	return e
}

func (h *arrayHeap[E]) Push(i interface{}) {
	e, ok := i.(E)
	if !ok {
		return
	}
	h.arr = append(h.arr, e)
}

type binaryHeap[E any] struct {
	heap *arrayHeap[E]
	lock *sync.Mutex
}

func (h *binaryHeap[E]) Len() int {
	if h.lock != nil {
		h.lock.Lock()
		defer h.lock.Unlock()
	}
	return len(h.heap.arr)
}

func (h *binaryHeap[E]) IsEmpty() bool {
	return h.Len() == 0
}

func (h *binaryHeap[E]) Insert(e E) {
	if h.lock != nil {
		h.lock.Lock()
		defer h.lock.Unlock()
	}
	heap.Push(h.heap, e)
}

func (h *binaryHeap[E]) Extract() (e E, ok bool) {
	if h.lock != nil {
		h.lock.Lock()
		defer h.lock.Unlock()
	}
	if len(h.heap.arr) == 0 {
		return e, false
	}
	return heap.Pop(h.heap).(E), true
}

func (h *binaryHeap[E]) Peek() (e E, ok bool) {
	if h.lock != nil {
		h.lock.Lock()
		defer h.lock.Unlock()
	}
	if len(h.heap.arr) == 0 {
		return e, false
	}
	return h.heap.arr[0], true
}

type heapConfig struct {
	capacity   int
	threadSafe bool
}

type HeapOption func(*heapConfig)

func WithHeapCapacity(capacity int) HeapOption {
	return func(cfg *heapConfig) {
		if capacity <= 0 {
			capacity = 64
		}
		cfg.capacity = capacity
	}
}

func WithHeapThreadSafe() HeapOption {
	return func(cfg *heapConfig) {
		cfg.threadSafe = true
	}
}

func NewMinHeap[E infra.OrderedKey](opts ...HeapOption) Heap[E] {
	return NewHeapFunc[E](infra.OrderedComparator[E], opts...)
}

func NewMaxHeap[E infra.OrderedKey](opts ...HeapOption) Heap[E] {
	return NewHeapFunc[E](infra.ReversedComparator[E](infra.OrderedComparator[E]), opts...)
}

// NewHeapFunc builds a min heap over the comparator, a reversed
// comparator makes it a max heap.
func NewHeapFunc[E any](cmp infra.Comparator[E], opts ...HeapOption) Heap[E] {
	if cmp == nil {
		panic("[heap] nil comparator")
	}
	cfg := &heapConfig{capacity: 64}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	h := &binaryHeap[E]{
		heap: &arrayHeap[E]{
			arr: make([]E, 0, cfg.capacity),
			cmp: cmp,
		},
	}
	if cfg.threadSafe {
		h.lock = &sync.Mutex{}
	}
	return h
}
