package sorting

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// SortFunc sorts the slice in place.
type SortFunc[T any] func(arr []T, cmp infra.Comparator[T])

// Ordered binds the sort function to the natural ordering.
func Ordered[T infra.OrderedKey](sortFn SortFunc[T]) func(arr []T) {
	return func(arr []T) {
		sortFn(arr, infra.OrderedComparator[T])
	}
}

func BubbleSort[T any](arr []T, cmp infra.Comparator[T]) {
	n := len(arr)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if cmp(arr[j], arr[j+1]) == infra.GreaterThan {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

func SelectionSort[T any](arr []T, cmp infra.Comparator[T]) {
	n := len(arr)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if cmp(arr[minIdx], arr[j]) == infra.GreaterThan {
				minIdx = j
			}
		}
		if i != minIdx {
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
		}
	}
}

func InsertionSort[T any](arr []T, cmp infra.Comparator[T]) {
	for i := 1; i < len(arr); i++ {
		j, tmp := i, arr[i]
		for ; j > 0 && cmp(arr[j-1], tmp) == infra.GreaterThan; j-- {
			arr[j] = arr[j-1]
		}
		arr[j] = tmp
	}
}

// ShellSort starts from the gap n/2 and halves it until 1.
func ShellSort[T any](arr []T, cmp infra.Comparator[T]) {
	n := len(arr)
	for gap := n >> 1; gap > 0; gap >>= 1 {
		for i := gap; i < n; i++ {
			j, tmp := i-gap, arr[i]
			for ; j >= 0 && cmp(arr[j], tmp) == infra.GreaterThan; j -= gap {
				arr[j+gap] = arr[j]
			}
			arr[j+gap] = tmp
		}
	}
}

// QuickSort partitions around the middle element, not stable.
func QuickSort[T any](arr []T, cmp infra.Comparator[T]) {
	if len(arr) <= 1 {
		return
	}
	quick(arr, 0, len(arr)-1, cmp)
}

func quick[T any](arr []T, left, right int, cmp infra.Comparator[T]) {
	idx := partition(arr, left, right, cmp)
	if left < idx-1 {
		quick(arr, left, idx-1, cmp)
	}
	if idx < right {
		quick(arr, idx, right, cmp)
	}
}

func partition[T any](arr []T, left, right int, cmp infra.Comparator[T]) int {
	pivot := arr[left+(right-left)>>1]
	i, j := left, right
	for i <= j {
		for cmp(arr[i], pivot) == infra.LessThan {
			i++
		}
		for cmp(arr[j], pivot) == infra.GreaterThan {
			j--
		}
		if i <= j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
		}
	}
	return i
}

// HeapSort builds a max heap in place, then moves the root to the tail.
func HeapSort[T any](arr []T, cmp infra.Comparator[T]) {
	heapSize := len(arr)
	for i := heapSize >> 1; i >= 0; i-- {
		heapify(arr, i, heapSize, cmp)
	}
	for heapSize > 1 {
		heapSize--
		arr[0], arr[heapSize] = arr[heapSize], arr[0]
		heapify(arr, 0, heapSize, cmp)
	}
}

func heapify[T any](arr []T, idx, heapSize int, cmp infra.Comparator[T]) {
	for {
		largest := idx
		l, r := idx<<1+1, idx<<1+2
		if l < heapSize && cmp(arr[largest], arr[l]) == infra.LessThan {
			largest = l
		}
		if r < heapSize && cmp(arr[largest], arr[r]) == infra.LessThan {
			largest = r
		}
		if largest == idx {
			return
		}
		arr[idx], arr[largest] = arr[largest], arr[idx]
		idx = largest
	}
}
