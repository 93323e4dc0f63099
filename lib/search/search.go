package search

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// BinarySearch returns the index of an element equal to v, or -1.
// The slice must be sorted by the same comparator, it is not sorted
// here.
func BinarySearch[T any](arr []T, v T, cmp infra.Comparator[T]) int {
	low, high := 0, len(arr)-1
	for low <= high {
		mid := low + (high-low)>>1
		switch cmp(arr[mid], v) {
		case infra.LessThan:
			low = mid + 1
		case infra.GreaterThan:
			high = mid - 1
		default:
			return mid
		}
	}
	return -1
}

func BinarySearchRecursive[T any](arr []T, v T, cmp infra.Comparator[T]) int {
	return binarySearchRecursive(arr, v, 0, len(arr)-1, cmp)
}

func binarySearchRecursive[T any](arr []T, v T, low, high int, cmp infra.Comparator[T]) int {
	if low > high {
		return -1
	}
	mid := low + (high-low)>>1
	switch cmp(arr[mid], v) {
	case infra.LessThan:
		return binarySearchRecursive(arr, v, mid+1, high, cmp)
	case infra.GreaterThan:
		return binarySearchRecursive(arr, v, low, mid-1, cmp)
	default:
	}
	return mid
}

// InterpolationSearch estimates the position by the linear
// interpolation between arr[left] and arr[right]. The slice must be
// sorted ascending. An estimate out of [left, right] ends the search.
func InterpolationSearch[T infra.Number](arr []T, v T) int {
	left, right := 0, len(arr)-1
	for left <= right {
		if arr[right] == arr[left] {
			if arr[left] == v {
				return left
			}
			return -1
		}

		delta := (float64(v) - float64(arr[left])) / (float64(arr[right]) - float64(arr[left]))
		if delta < 0 || delta > 1 {
			return -1
		}
		pos := left + int(float64(right-left)*delta)
		switch {
		case arr[pos] == v:
			return pos
		case arr[pos] < v:
			left = pos + 1
		default:
			right = pos - 1
		}
	}
	return -1
}

// Ordered binds the search function to the natural ordering.
func Ordered[T infra.OrderedKey](searchFn func(arr []T, v T, cmp infra.Comparator[T]) int) func(arr []T, v T) int {
	return func(arr []T, v T) int {
		return searchFn(arr, v, infra.OrderedComparator[T])
	}
}
