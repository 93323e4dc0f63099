package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xalgo/lib/infra"
)

func collectKeys[K any](traverse func(visit func(key K))) []K {
	keys := make([]K, 0, 16)
	traverse(func(key K) {
		keys = append(keys, key)
	})
	return keys
}

func TestBinarySearchTree_Empty(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	require.Equal(t, int64(0), tree.Len())
	require.Equal(t, -1, tree.Height())
	require.Nil(t, tree.Root())
	require.False(t, tree.Search(1))
	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)

	tree.Remove(1)
	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
	require.Empty(t, collectKeys[int](tree.InOrderTraverse))
	require.Empty(t, collectKeys[int](tree.LevelOrderTraverse))
}

func TestBinarySearchTree_Traverse(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, key := range []int{11, 7, 15, 5, 3, 9, 8, 10, 13, 12, 14, 20, 18, 25} {
		tree.Insert(key)
	}
	require.Equal(t, int64(14), tree.Len())
	require.Equal(t, 3, tree.Height())
	require.Equal(t, 11, tree.Root().Key())
	require.Equal(t, 7, tree.Root().Left().Key())
	require.Equal(t, 15, tree.Root().Right().Key())

	testcases := []struct {
		name     string
		traverse func(visit func(key int))
		expected []int
	}{
		{
			name:     "in-order",
			traverse: tree.InOrderTraverse,
			expected: []int{3, 5, 7, 8, 9, 10, 11, 12, 13, 14, 15, 18, 20, 25},
		},
		{
			name:     "pre-order",
			traverse: tree.PreOrderTraverse,
			expected: []int{11, 7, 5, 3, 9, 8, 10, 15, 13, 12, 14, 20, 18, 25},
		},
		{
			name:     "post-order",
			traverse: tree.PostOrderTraverse,
			expected: []int{3, 5, 8, 10, 9, 7, 12, 14, 13, 18, 25, 20, 15, 11},
		},
		{
			name:     "level-order",
			traverse: tree.LevelOrderTraverse,
			expected: []int{11, 7, 15, 5, 9, 13, 20, 3, 8, 10, 12, 14, 18, 25},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, collectKeys[int](tc.traverse))
		})
	}

	minKey, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, 3, minKey)
	maxKey, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, 25, maxKey)
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedComparator[int]))
}

func TestBinarySearchTree_SearchExactMatch(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, key := range []int{3, 1, 4, 2, 5} {
		tree.Insert(key)
	}
	testcases := []struct {
		key   int
		found bool
	}{
		{0, false}, {1, true}, {2, true}, {3, true},
		{4, true}, {5, true}, {6, false}, {-3, false},
	}
	for _, tc := range testcases {
		require.Equal(t, tc.found, tree.Search(tc.key), "key %d", tc.key)
	}
}

func TestBinarySearchTree_Remove(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, key := range []int{11, 7, 15, 5, 3, 9, 8, 10, 13, 12, 14, 20, 18, 25} {
		tree.Insert(key)
	}

	// Leaves.
	tree.Remove(3)
	tree.Remove(25)
	require.False(t, tree.Search(3))
	require.False(t, tree.Search(25))
	require.Equal(t, int64(12), tree.Len())

	// One child.
	tree.Remove(20)
	require.Equal(t, []int{11, 7, 5, 9, 8, 10, 15, 13, 12, 14, 18},
		collectKeys[int](tree.PreOrderTraverse),
	)

	// Two children, the successor takes the place.
	tree.Remove(15)
	require.Equal(t, []int{11, 7, 5, 9, 8, 10, 18, 13, 12, 14},
		collectKeys[int](tree.PreOrderTraverse),
	)

	// Root with two children.
	tree.Remove(11)
	require.Equal(t, 12, tree.Root().Key())
	require.Equal(t, []int{5, 7, 8, 9, 10, 12, 13, 14, 18},
		collectKeys[int](tree.InOrderTraverse),
	)

	// Absent key.
	tree.Remove(100)
	require.Equal(t, int64(9), tree.Len())
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedComparator[int]))
}

func TestBinarySearchTree_Duplicates(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	for _, key := range []int{5, 3, 5, 7, 5} {
		tree.Insert(key)
	}
	require.Equal(t, int64(5), tree.Len())
	require.Equal(t, []int{3, 5, 5, 5, 7}, collectKeys[int](tree.InOrderTraverse))

	tree.Remove(5)
	require.Equal(t, int64(4), tree.Len())
	require.Equal(t, []int{3, 5, 5, 7}, collectKeys[int](tree.InOrderTraverse))
	tree.Remove(5)
	tree.Remove(5)
	require.Equal(t, []int{3, 7}, collectKeys[int](tree.InOrderTraverse))
	require.False(t, tree.Search(5))
}

func TestBinarySearchTree_Desc(t *testing.T) {
	tree := NewBinarySearchTree[int](WithTreeDesc[int]())
	for _, key := range []int{4, 5, 3, 1, 2} {
		tree.Insert(key)
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, collectKeys[int](tree.InOrderTraverse))
	minKey, _ := tree.Min()
	require.Equal(t, 5, minKey)
	require.True(t, tree.Search(1))
	require.NoError(t, OrderViolationValidate[int](tree, infra.ReversedComparator[int](infra.OrderedComparator[int])))
	require.Error(t, OrderViolationValidate[int](tree, infra.OrderedComparator[int]))
}

type person struct {
	name string
	age  int
}

func TestBinarySearchTree_CustomComparator(t *testing.T) {
	byName := func(a, b person) infra.CompareResult {
		return infra.CompareResult(strings.Compare(a.name, b.name))
	}
	tree := NewBinarySearchTreeFunc[person](byName)
	tree.Insert(person{"mike", 30})
	tree.Insert(person{"alice", 20})
	tree.Insert(person{"zoe", 40})

	require.True(t, tree.Search(person{name: "alice"}))
	require.False(t, tree.Search(person{name: "bob"}))
	maxKey, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, 40, maxKey.age)

	require.Panics(t, func() {
		NewBinarySearchTreeFunc[person](nil)
	})
}

func TestBinarySearchTree_Release(t *testing.T) {
	tree := NewBinarySearchTree[uint64]()
	for i := uint64(0); i < 100; i++ {
		tree.Insert((i * 37) % 101)
	}
	require.Equal(t, int64(100), tree.Len())
	tree.Release()
	require.Equal(t, int64(0), tree.Len())
	require.Nil(t, tree.Root())
	require.False(t, tree.Search(37))

	tree.Insert(1)
	require.Equal(t, int64(1), tree.Len())
}
