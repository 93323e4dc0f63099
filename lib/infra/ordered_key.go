package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
// If future releases of Go add new predeclared unsigned integer types,
// this constraint will be modified to include them.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
// If future releases of Go add new predeclared integer types,
// this constraint will be modified to include them.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// If future releases of Go add new predeclared floating-point types,
// this constraint will be modified to include them.
type Float interface {
	~float32 | ~float64
}

// Number is a constraint for the keys that support arithmetic,
// i.e. interpolation and bucket distribution.
type Number interface {
	Integer | Float
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

//go:generate stringer -type=CompareResult
type CompareResult int8

const (
	LessThan CompareResult = -1 + iota
	Equal
	GreaterThan
)

// Comparator
// Assume a is the new key.
//  1. a == b, return Equal.
//  2. a > b, return GreaterThan, turn to right part.
//  3. a < b, return LessThan, turn to left part.
//
// A comparator must be a total order. The containers never detect
// an inconsistent one.
type Comparator[K any] func(a, b K) CompareResult

// OrderedComparator is the natural ordering of the builtin ordered types.
// NaN floats are not totally ordered and must not be used as keys.
func OrderedComparator[K OrderedKey](a, b K) CompareResult {
	if a < b {
		return LessThan
	} else if a == b {
		return Equal
	}
	return GreaterThan
}

func ReversedComparator[K any](cmp Comparator[K]) Comparator[K] {
	return func(a, b K) CompareResult {
		return cmp(b, a)
	}
}
