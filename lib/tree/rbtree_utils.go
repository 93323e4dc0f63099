package tree

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xalgo/lib/infra"
)

func isBlack[K any](node RBNode[K]) bool {
	return node == nil || node.Color() == Black
}

func isRed[K any](node RBNode[K]) bool {
	return node != nil && node.Color() == Red
}

func isRoot[K any](node RBNode[K]) bool {
	return node != nil && node.Parent() == nil
}

func blackDepthTo[K any](target, to RBNode[K]) int {
	depth := 0
	for aux := target; aux != nil && aux != to; aux = aux.Parent() {
		if isBlack[K](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

// Inorder traversal to validate the rbtree properties.
func RedViolationValidate[K any](tree RedBlackTree[K]) error {
	size := tree.Len()
	aux := tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}

	stack := make([]RBNode[K], 0, size>>1+1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}

	var merr error
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[K](aux) {
			if (!isRoot[K](aux.Parent()) && isRed[K](aux.Parent())) ||
				(isRed[K](aux.Left()) || isRed[K](aux.Right())) {
				merr = multierr.Append(merr, infra.NewErrorStack(
					fmt.Sprintf("[tree] rbtree red violation at %v", aux.Key()),
				))
			}
		}

		stack = stack[:size-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return merr
}

// BFS traversal to load all the nodes which own at least one nil leaf.
func bfsLeaves[K any](tree RedBlackTree[K]) []RBNode[K] {
	size := tree.Len()
	aux := tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}

	leaves := make([]RBNode[K], 0, size>>1+1)
	queue := make([]RBNode[K], 0, size>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, aux)

	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			queue = append(queue, l)
		}
		if r != nil {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

Each leaf node to root node black depth are equal.
*/
func BlackViolationValidate[K any](tree RedBlackTree[K]) error {
	leaves := bfsLeaves[K](tree)
	if leaves == nil {
		return nil
	}

	root := tree.Root()
	blackDepth := blackDepthTo[K](leaves[0], root)
	for i := 1; i < len(leaves); i++ {
		if depth := blackDepthTo[K](leaves[i], root); depth != blackDepth {
			return infra.NewErrorStack(
				fmt.Sprintf("[tree] rbtree black violation at %v, black depth %d, expected %d",
					leaves[i].Key(), depth, blackDepth),
			)
		}
	}
	return nil
}

func RootColorValidate[K any](tree RedBlackTree[K]) error {
	if root := tree.Root(); root != nil && root.Color() != Black {
		return infra.NewErrorStack("[tree] rbtree root is not black")
	}
	return nil
}

// RedBlackValidate combines all the rbtree properties validation.
func RedBlackValidate[K any](tree RedBlackTree[K]) error {
	return multierr.Combine(
		RootColorValidate[K](tree),
		RedViolationValidate[K](tree),
		BlackViolationValidate[K](tree),
	)
}
