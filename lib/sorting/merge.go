package sorting

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// MergeSort is stable and returns a new slice, the input is untouched.
func MergeSort[T any](arr []T, cmp infra.Comparator[T]) []T {
	res := make([]T, len(arr))
	copy(res, arr)
	if len(res) <= 1 {
		return res
	}
	buf := make([]T, len(res))
	mergeSort(res, buf, cmp)
	return res
}

func mergeSort[T any](arr, buf []T, cmp infra.Comparator[T]) {
	if len(arr) <= 1 {
		return
	}
	mid := len(arr) >> 1
	mergeSort(arr[:mid], buf[:mid], cmp)
	mergeSort(arr[mid:], buf[mid:], cmp)
	copy(buf, arr)
	merge(arr, buf[:mid], buf[mid:], cmp)
}

// merge writes the ordered union of left and right into dst, the left
// element wins the ties.
func merge[T any](dst, left, right []T, cmp infra.Comparator[T]) {
	i, j, k := 0, 0, 0
	for ; i < len(left) && j < len(right); k++ {
		if cmp(right[j], left[i]) == infra.LessThan {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
