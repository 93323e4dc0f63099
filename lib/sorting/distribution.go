package sorting

import (
	"errors"
	"math"

	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/infra"
)

const DefaultRadixBase = 10

var (
	ErrNegativeValue      = errors.New("[sorting] counting sort does not accept negative value")
	ErrInvalidBucketCount = errors.New("[sorting] bucket count must be positive")
	ErrInvalidRadixBase   = errors.New("[sorting] radix base must be greater than 1")
)

// CountingSort sorts the non-negative integers in place, the
// auxiliary counts are sized by the maximum value.
func CountingSort[T infra.Integer](arr []T) error {
	if len(arr) < 2 {
		if len(arr) == 1 && arr[0] < 0 {
			return ErrNegativeValue
		}
		return nil
	}
	if lo.Min(arr) < 0 {
		return ErrNegativeValue
	}

	counts := make([]int, uint64(lo.Max(arr))+1)
	for _, v := range arr {
		counts[uint64(v)]++
	}
	idx := 0
	for v, count := range counts {
		for ; count > 0; count-- {
			arr[idx] = T(v)
			idx++
		}
	}
	return nil
}

// BucketSort scatters the values into bucketCount buckets of width
// floor((max-min)/bucketCount)+1, insertion sorts each one and
// gathers them back in place.
func BucketSort[T infra.Number](arr []T, bucketCount int) error {
	if bucketCount <= 0 {
		return ErrInvalidBucketCount
	}
	if len(arr) < 2 {
		return nil
	}

	minVal, maxVal := lo.Min(arr), lo.Max(arr)
	size := math.Floor((float64(maxVal)-float64(minVal))/float64(bucketCount)) + 1
	buckets := make([][]T, bucketCount)
	for _, v := range arr {
		idx := int((float64(v) - float64(minVal)) / size)
		idx = lo.Clamp(idx, 0, bucketCount-1)
		buckets[idx] = append(buckets[idx], v)
	}
	for _, bucket := range buckets {
		InsertionSort(bucket, infra.OrderedComparator[T])
	}
	copy(arr, lo.Flatten(buckets))
	return nil
}

// RadixSort is the LSD radix sort over the offsets to the minimum
// value, so the negative integers are accepted. The zero base falls
// back to DefaultRadixBase.
func RadixSort[T infra.Integer](arr []T, base int) error {
	if base == 0 {
		base = DefaultRadixBase
	}
	if base < 2 {
		return ErrInvalidRadixBase
	}
	if len(arr) < 2 {
		return nil
	}

	minVal, maxVal := lo.Min(arr), lo.Max(arr)
	// Two's complement, the wrapped subtraction is the exact distance.
	maxOffset := uint64(maxVal) - uint64(minVal)
	radix := uint64(base)
	aux := make([]T, len(arr))
	buckets := make([]int, base)
	for digit := uint64(1); digit <= maxOffset; digit *= radix {
		countingSortForRadix(arr, aux, buckets, radix, digit, minVal)
		copy(arr, aux)
		if digit > maxOffset/radix {
			break
		}
	}
	return nil
}

func countingSortForRadix[T infra.Integer](arr, aux []T, buckets []int, radix, digit uint64, minVal T) {
	clear(buckets)
	bucketIdx := func(v T) uint64 {
		return ((uint64(v) - uint64(minVal)) / digit) % radix
	}
	for _, v := range arr {
		buckets[bucketIdx(v)]++
	}
	for i := 1; i < len(buckets); i++ {
		buckets[i] += buckets[i-1]
	}
	for i := len(arr) - 1; i >= 0; i-- {
		idx := bucketIdx(arr[i])
		buckets[idx]--
		aux[buckets[idx]] = arr[i]
	}
}
