package infra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedComparator(t *testing.T) {
	require.Equal(t, LessThan, OrderedComparator(1, 2))
	require.Equal(t, Equal, OrderedComparator(2, 2))
	require.Equal(t, GreaterThan, OrderedComparator(3, 2))
	require.Equal(t, LessThan, OrderedComparator("abc", "abd"))
	require.Equal(t, GreaterThan, OrderedComparator(1.5, -0.5))
}

func TestReversedComparator(t *testing.T) {
	cmp := ReversedComparator[int](OrderedComparator[int])
	require.Equal(t, GreaterThan, cmp(1, 2))
	require.Equal(t, Equal, cmp(2, 2))
	require.Equal(t, LessThan, cmp(3, 2))
}

func TestCompareResultString(t *testing.T) {
	require.Equal(t, "LessThan", LessThan.String())
	require.Equal(t, "Equal", Equal.String())
	require.Equal(t, "GreaterThan", GreaterThan.String())
	require.Equal(t, "CompareResult(5)", CompareResult(5).String())
}
