package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xalgo/lib/infra"
)

// binaryNode is shared by the bst, avl and rbtree nodes, so the
// read-only algorithms are written once. The absent children must
// be returned as nil interfaces.
type binaryNode[K any] interface {
	Key() K
	children() (binaryNode[K], binaryNode[K])
}

func searchNode[K any](node binaryNode[K], key K, cmp infra.Comparator[K]) binaryNode[K] {
	for aux := node; aux != nil; {
		l, r := aux.children()
		switch cmp(key, aux.Key()) {
		case infra.LessThan:
			aux = l
		case infra.GreaterThan:
			aux = r
		default:
			return aux
		}
	}
	return nil
}

func minimumKey[K any](node binaryNode[K]) (key K, ok bool) {
	for aux := node; aux != nil; aux, _ = aux.children() {
		key, ok = aux.Key(), true
	}
	return key, ok
}

func maximumKey[K any](node binaryNode[K]) (key K, ok bool) {
	for aux := node; aux != nil; _, aux = aux.children() {
		key, ok = aux.Key(), true
	}
	return key, ok
}

func inOrderTraverse[K any](node binaryNode[K], visit func(key K)) {
	if node == nil {
		return
	}
	l, r := node.children()
	inOrderTraverse[K](l, visit)
	visit(node.Key())
	inOrderTraverse[K](r, visit)
}

func preOrderTraverse[K any](node binaryNode[K], visit func(key K)) {
	if node == nil {
		return
	}
	l, r := node.children()
	visit(node.Key())
	preOrderTraverse[K](l, visit)
	preOrderTraverse[K](r, visit)
}

func postOrderTraverse[K any](node binaryNode[K], visit func(key K)) {
	if node == nil {
		return
	}
	l, r := node.children()
	postOrderTraverse[K](l, visit)
	postOrderTraverse[K](r, visit)
	visit(node.Key())
}

// BFS, left child first.
func levelOrderTraverse[K any](node binaryNode[K], size int64, visit func(key K)) {
	if node == nil {
		return
	}
	queue := make([]binaryNode[K], 0, size>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, node)
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		visit(aux.Key())
		l, r := aux.children()
		if l != nil {
			queue = append(queue, l)
		}
		if r != nil {
			queue = append(queue, r)
		}
	}
}

// Tree rule validation utilities.

// OrderViolationValidate checks that the in-order traversal is
// non-decreasing under the comparator the tree was built with.
func OrderViolationValidate[K any](tree Traverser[K], cmp infra.Comparator[K]) error {
	var (
		prev    K
		hasPrev bool
		merr    error
	)
	tree.InOrderTraverse(func(key K) {
		if hasPrev && cmp(prev, key) == infra.GreaterThan {
			merr = multierr.Append(merr, infra.NewErrorStack(
				fmt.Sprintf("[tree] order violation, %v is followed by %v", prev, key),
			))
		}
		prev, hasPrev = key, true
	})
	return merr
}

// AVLBalanceViolationValidate checks every node's height difference
// in place, not relying on the tree's own balance factor.
func AVLBalanceViolationValidate[K any](tree AVLTree[K]) error {
	var (
		merr error
		walk func(node TreeNode[K]) int
	)
	walk = func(node TreeNode[K]) int {
		if node == nil {
			return -1
		}
		lh, rh := walk(node.Left()), walk(node.Right())
		if diff := lh - rh; diff > 1 || diff < -1 {
			merr = multierr.Append(merr, infra.NewErrorStack(
				fmt.Sprintf("[tree] avl balance violation at %v, height diff %d", node.Key(), diff),
			))
		}
		return 1 + max(lh, rh)
	}
	walk(tree.Root())
	return merr
}
