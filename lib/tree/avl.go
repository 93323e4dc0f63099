package tree

import (
	"github.com/benz9527/xalgo/lib/infra"
)

var _ AVLTree[int] = (*avlTree[int])(nil)

/*
	    |                      |
	    X                      L
	   / \   rotationLL(X)    / \
	  L   R  ============>   Ll  X
	 / \                        / \
	Ll  Lr                     Lr  R
*/
func avlRotationLL[K any](node *bstNode[K]) *bstNode[K] {
	if node == nil || node.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] avl LL rotation node is nil or node.left is nil")
	}
	tmp := node.left
	node.left = tmp.right
	tmp.right = node
	return tmp
}

/*
	  |                          |
	  X                          R
	 / \     rotationRR(X)      / \
	L   R    ============>     X   Rr
	   / \                    / \
	  Rl  Rr                 L   Rl
*/
func avlRotationRR[K any](node *bstNode[K]) *bstNode[K] {
	if node == nil || node.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] avl RR rotation node is nil or node.right is nil")
	}
	tmp := node.right
	node.right = tmp.left
	tmp.left = node
	return tmp
}

// RR on the left child, then LL on the node.
func avlRotationLR[K any](node *bstNode[K]) *bstNode[K] {
	if node == nil || node.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] avl LR rotation node is nil or node.left is nil")
	}
	node.left = avlRotationRR[K](node.left)
	return avlRotationLL[K](node)
}

// LL on the right child, then RR on the node.
func avlRotationRL[K any](node *bstNode[K]) *bstNode[K] {
	if node == nil || node.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] avl RL rotation node is nil or node.right is nil")
	}
	node.right = avlRotationLL[K](node.right)
	return avlRotationRR[K](node)
}

func avlBalanceFactor[K any](node *bstNode[K]) BalanceFactor {
	if node == nil {
		return Balanced
	}
	diff := node.left.height() - node.right.height()
	switch {
	case diff >= 2:
		return UnbalancedLeft
	case diff <= -2:
		return UnbalancedRight
	default:
	}
	return BalanceFactor(diff)
}

// avlTree reuses the bst search, traversal and release. The heights
// are computed on demand, nothing is cached in the nodes.
type avlTree[K any] struct {
	binarySearchTree[K]
}

func (tree *avlTree[K]) BalanceFactor(node TreeNode[K]) BalanceFactor {
	n, ok := node.(*bstNode[K])
	if !ok {
		return Balanced
	}
	return avlBalanceFactor[K](n)
}

func (tree *avlTree[K]) rotate(node *bstNode[K], kind rotationKind) *bstNode[K] {
	pivot := node.key
	switch kind {
	case rotationLL:
		node = avlRotationLL[K](node)
	case rotationRR:
		node = avlRotationRR[K](node)
	case rotationLR:
		node = avlRotationLR[K](node)
	case rotationRL:
		node = avlRotationRL[K](node)
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] unknown avl rotation kind " + string(kind))
	}
	tree.cfg.onRotated(kind, pivot)
	return node
}

func (tree *avlTree[K]) Insert(key K) {
	var inserted bool
	if tree.root, inserted = tree.insertNode(tree.root, key); inserted {
		tree.count++
		tree.cfg.stats.IncreaseInsertedCount()
	}
}

// The duplicate key is ignored.
func (tree *avlTree[K]) insertNode(node *bstNode[K], key K) (*bstNode[K], bool) {
	if node == nil {
		return &bstNode[K]{key: key}, true
	}

	var inserted bool
	switch tree.cfg.cmp(key, node.key) {
	case infra.LessThan:
		node.left, inserted = tree.insertNode(node.left, key)
	case infra.GreaterThan:
		node.right, inserted = tree.insertNode(node.right, key)
	default:
		return node, false
	}
	if !inserted {
		return node, false
	}

	switch avlBalanceFactor[K](node) {
	case UnbalancedLeft:
		if tree.cfg.cmp(key, node.left.key) == infra.LessThan {
			return tree.rotate(node, rotationLL), true
		}
		return tree.rotate(node, rotationLR), true
	case UnbalancedRight:
		if tree.cfg.cmp(key, node.right.key) == infra.GreaterThan {
			return tree.rotate(node, rotationRR), true
		}
		return tree.rotate(node, rotationRL), true
	default:
	}
	return node, true
}

func (tree *avlTree[K]) Remove(key K) {
	var removed bool
	if tree.root, removed = removeNode(tree.root, key, tree.cfg.cmp, tree.rebalance); removed {
		tree.count--
		tree.cfg.stats.IncreaseRemovedCount()
	}
}

// rebalance picks the rotation by the child balance factor, a
// balanced child is rotated as the outer case.
func (tree *avlTree[K]) rebalance(node *bstNode[K]) *bstNode[K] {
	if node == nil {
		return nil
	}
	switch avlBalanceFactor[K](node) {
	case UnbalancedLeft:
		switch avlBalanceFactor[K](node.left) {
		case Balanced, SlightlyUnbalancedLeft:
			return tree.rotate(node, rotationLL)
		case SlightlyUnbalancedRight:
			return tree.rotate(node, rotationLR)
		default:
		}
	case UnbalancedRight:
		switch avlBalanceFactor[K](node.right) {
		case Balanced, SlightlyUnbalancedRight:
			return tree.rotate(node, rotationRR)
		case SlightlyUnbalancedLeft:
			return tree.rotate(node, rotationRL)
		default:
		}
	default:
	}
	return node
}

func NewAVLTree[K infra.OrderedKey](opts ...TreeOption[K]) AVLTree[K] {
	return NewAVLTreeFunc[K](infra.OrderedComparator[K], opts...)
}

func NewAVLTreeFunc[K any](cmp infra.Comparator[K], opts ...TreeOption[K]) AVLTree[K] {
	return &avlTree[K]{
		binarySearchTree: binarySearchTree[K]{
			cfg: newTreeConfig[K](avlKind, cmp, opts...),
		},
	}
}
