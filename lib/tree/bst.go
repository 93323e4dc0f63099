package tree

import (
	"github.com/benz9527/xalgo/lib/infra"
)

var (
	_ BinarySearchTree[int] = (*binarySearchTree[int])(nil)
	_ TreeNode[int]         = (*bstNode[int])(nil)
)

type bstNode[K any] struct {
	left  *bstNode[K]
	right *bstNode[K]
	key   K
}

func (node *bstNode[K]) Key() K {
	return node.key
}

func (node *bstNode[K]) Left() TreeNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *bstNode[K]) Right() TreeNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *bstNode[K]) children() (binaryNode[K], binaryNode[K]) {
	var l, r binaryNode[K]
	if node.left != nil {
		l = node.left
	}
	if node.right != nil {
		r = node.right
	}
	return l, r
}

// The nil node height is -1, so a leaf is 0.
func (node *bstNode[K]) height() int {
	if node == nil {
		return -1
	}
	return 1 + max(node.left.height(), node.right.height())
}

func (node *bstNode[K]) minimum() *bstNode[K] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

// removeNode returns the new subtree root and whether a node has been
// unlinked. The rebalance hook runs on each surviving node of the
// search path, bottom up.
func removeNode[K any](
	node *bstNode[K],
	key K,
	cmp infra.Comparator[K],
	rebalance func(*bstNode[K]) *bstNode[K],
) (*bstNode[K], bool) {
	if node == nil {
		return nil, false
	}

	removed := false
	switch cmp(key, node.key) {
	case infra.LessThan:
		node.left, removed = removeNode(node.left, key, cmp, rebalance)
	case infra.GreaterThan:
		node.right, removed = removeNode(node.right, key, cmp, rebalance)
	default:
		removed = true
		if node.left == nil && node.right == nil {
			return nil, true
		} else if node.left == nil {
			node = node.right
		} else if node.right == nil {
			node = node.left
		} else {
			// Borrow the in-order successor key, then unlink the successor.
			succ := node.right.minimum()
			node.key = succ.key
			node.right, _ = removeNode(node.right, succ.key, cmp, rebalance)
		}
	}
	if rebalance != nil && removed {
		node = rebalance(node)
	}
	return node, removed
}

type binarySearchTree[K any] struct {
	root  *bstNode[K]
	count int64
	cfg   *treeConfig[K]
}

func (tree *binarySearchTree[K]) Len() int64 {
	return tree.count
}

func (tree *binarySearchTree[K]) Height() int {
	return tree.root.height()
}

func (tree *binarySearchTree[K]) Root() TreeNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *binarySearchTree[K]) rootNode() binaryNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *binarySearchTree[K]) Insert(key K) {
	if tree.root == nil {
		tree.root = &bstNode[K]{key: key}
	} else {
		tree.insertNode(tree.root, key)
	}
	tree.count++
	tree.cfg.stats.IncreaseInsertedCount()
}

func (tree *binarySearchTree[K]) insertNode(node *bstNode[K], key K) {
	if tree.cfg.cmp(key, node.key) == infra.LessThan {
		if node.left == nil {
			node.left = &bstNode[K]{key: key}
			return
		}
		tree.insertNode(node.left, key)
		return
	}
	if node.right == nil {
		node.right = &bstNode[K]{key: key}
		return
	}
	tree.insertNode(node.right, key)
}

func (tree *binarySearchTree[K]) Remove(key K) {
	var removed bool
	tree.root, removed = removeNode(tree.root, key, tree.cfg.cmp, nil)
	if removed {
		tree.count--
		tree.cfg.stats.IncreaseRemovedCount()
	}
}

func (tree *binarySearchTree[K]) Search(key K) bool {
	return searchNode[K](tree.rootNode(), key, tree.cfg.cmp) != nil
}

func (tree *binarySearchTree[K]) Min() (K, bool) {
	return minimumKey[K](tree.rootNode())
}

func (tree *binarySearchTree[K]) Max() (K, bool) {
	return maximumKey[K](tree.rootNode())
}

func (tree *binarySearchTree[K]) InOrderTraverse(visit func(key K)) {
	inOrderTraverse[K](tree.rootNode(), visit)
}

func (tree *binarySearchTree[K]) PreOrderTraverse(visit func(key K)) {
	preOrderTraverse[K](tree.rootNode(), visit)
}

func (tree *binarySearchTree[K]) PostOrderTraverse(visit func(key K)) {
	postOrderTraverse[K](tree.rootNode(), visit)
}

func (tree *binarySearchTree[K]) LevelOrderTraverse(visit func(key K)) {
	levelOrderTraverse[K](tree.rootNode(), tree.count, visit)
}

func (tree *binarySearchTree[K]) Release() {
	size := tree.count
	aux := tree.root
	tree.root = nil
	tree.count = 0
	tree.cfg.stats.RecordReleased(size)
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*bstNode[K], 0, size>>1+1)
	defer func() {
		clear(stack)
	}()
	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right = nil, nil
		stack = stack[:size-1]
		for aux = r; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

// NewBinarySearchTree orders the keys by the natural ordering.
func NewBinarySearchTree[K infra.OrderedKey](opts ...TreeOption[K]) BinarySearchTree[K] {
	return NewBinarySearchTreeFunc[K](infra.OrderedComparator[K], opts...)
}

func NewBinarySearchTreeFunc[K any](cmp infra.Comparator[K], opts ...TreeOption[K]) BinarySearchTree[K] {
	return &binarySearchTree[K]{
		cfg: newTreeConfig[K](bstKind, cmp, opts...),
	}
}
