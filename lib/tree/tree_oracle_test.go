package tree

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xalgo/lib/infra"
)

// The multiset oracle, key to the number of copies.
func expandGodsTree(oracle *redblacktree.Tree) []int {
	keys := make([]int, 0, oracle.Size())
	it := oracle.Iterator()
	for it.Next() {
		for i := 0; i < it.Value().(int); i++ {
			keys = append(keys, it.Key().(int))
		}
	}
	return keys
}

func godsInsert(oracle *redblacktree.Tree, key int) {
	if n, ok := oracle.Get(key); ok {
		oracle.Put(key, n.(int)+1)
		return
	}
	oracle.Put(key, 1)
}

func godsRemove(oracle *redblacktree.Tree, key int) {
	n, ok := oracle.Get(key)
	if !ok {
		return
	}
	if n.(int) <= 1 {
		oracle.Remove(key)
		return
	}
	oracle.Put(key, n.(int)-1)
}

func TestBinarySearchTree_GodsOracle(t *testing.T) {
	tree := NewBinarySearchTree[int]()
	oracle := redblacktree.NewWithIntComparator()
	count := int64(0)
	for i := 0; i < 3000; i++ {
		key := randv2.IntN(300)
		if randv2.IntN(3) == 0 {
			if _, ok := oracle.Get(key); ok {
				count--
			}
			tree.Remove(key)
			godsRemove(oracle, key)
		} else {
			tree.Insert(key)
			godsInsert(oracle, key)
			count++
		}
		if i%200 == 0 {
			require.Equal(t, expandGodsTree(oracle), collectKeys[int](tree.InOrderTraverse))
		}
	}
	require.Equal(t, count, tree.Len())
	require.Equal(t, expandGodsTree(oracle), collectKeys[int](tree.InOrderTraverse))
	for key := -1; key <= 300; key++ {
		_, ok := oracle.Get(key)
		require.Equal(t, ok, tree.Search(key), "key %d", key)
	}
	if oracle.Size() > 0 {
		minKey, _ := tree.Min()
		maxKey, _ := tree.Max()
		require.Equal(t, oracle.Left().Key, minKey)
		require.Equal(t, oracle.Right().Key, maxKey)
	}
	require.NoError(t, OrderViolationValidate[int](tree, infra.OrderedComparator[int]))
}

func TestAVLTree_BTreeOracle(t *testing.T) {
	tree := NewAVLTree[int]()
	oracle := btree.NewOrderedG[int](16)
	for i := 0; i < 5000; i++ {
		key := randv2.IntN(1000)
		if randv2.IntN(3) == 0 {
			tree.Remove(key)
			oracle.Delete(key)
		} else {
			tree.Insert(key)
			oracle.ReplaceOrInsert(key)
		}
		require.Equal(t, int64(oracle.Len()), tree.Len())
		requireAVLValid(t, tree)
	}

	expected := make([]int, 0, oracle.Len())
	oracle.Ascend(func(item int) bool {
		expected = append(expected, item)
		return true
	})
	require.Equal(t, expected, collectKeys[int](tree.InOrderTraverse))
	for key := 0; key < 1000; key++ {
		require.Equal(t, oracle.Has(key), tree.Search(key), "key %d", key)
	}
	expectedMin, ok := oracle.Min()
	actualMin, ok2 := tree.Min()
	require.Equal(t, ok, ok2)
	require.Equal(t, expectedMin, actualMin)
	expectedMax, ok := oracle.Max()
	actualMax, ok2 := tree.Max()
	require.Equal(t, ok, ok2)
	require.Equal(t, expectedMax, actualMax)
	requireAVLValid(t, tree)
}

func TestRedBlackTree_GodsOracle(t *testing.T) {
	tree := NewRedBlackTree[int]()
	oracle := redblacktree.NewWithIntComparator()
	for i := 0; i < 3000; i++ {
		key := randv2.IntN(500)
		tree.Insert(key)
		godsInsert(oracle, key)
		if i%300 == 0 {
			require.NoError(t, RedBlackValidate[int](tree))
		}
	}
	require.Equal(t, expandGodsTree(oracle), collectKeys[int](tree.InOrderTraverse))
	require.NoError(t, RedBlackValidate[int](tree))
	for key := 0; key < 500; key++ {
		_, ok := oracle.Get(key)
		require.Equal(t, ok, tree.Search(key), "key %d", key)
	}
}
