package tree

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

// BalanceFactor is height(left) - height(right) of an AVL node,
// clamped into [-2, 2].
//
//go:generate stringer -type=BalanceFactor
type BalanceFactor int8

const (
	UnbalancedRight BalanceFactor = -2 + iota
	SlightlyUnbalancedRight
	Balanced
	SlightlyUnbalancedLeft
	UnbalancedLeft
)

// TreeNode is the read-only view of a binary search tree node.
// The absent children are returned as nil interfaces.
type TreeNode[K any] interface {
	Key() K
	Left() TreeNode[K]
	Right() TreeNode[K]
}

type RBNode[K any] interface {
	Key() K
	Color() RBColor
	Left() RBNode[K]
	Right() RBNode[K]
	Parent() RBNode[K]
}

// Traverser visits every key once, no early exit.
type Traverser[K any] interface {
	InOrderTraverse(visit func(key K))
	PreOrderTraverse(visit func(key K))
	PostOrderTraverse(visit func(key K))
	LevelOrderTraverse(visit func(key K))
}

// BinarySearchTree keeps the keys less than a node in its left
// subtree and the others (greater or equal) in its right subtree.
// It is not thread-safe.
type BinarySearchTree[K any] interface {
	Traverser[K]
	Len() int64
	// Height of the empty tree is -1.
	Height() int
	Root() TreeNode[K]
	// Insert accepts the duplicate keys, they are placed right.
	Insert(key K)
	// Remove deletes one node matching the key. Absent key is a no-op.
	Remove(key K)
	Search(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	Release()
}

// AVLTree keeps |height(left) - height(right)| <= 1 for every node.
// The duplicate keys are ignored by Insert.
type AVLTree[K any] interface {
	BinarySearchTree[K]
	BalanceFactor(node TreeNode[K]) BalanceFactor
}

// RedBlackTree is balanced on insert only. There is no Remove,
// a plain BST removal would break the color properties.
type RedBlackTree[K any] interface {
	Traverser[K]
	Len() int64
	Height() int
	Root() RBNode[K]
	// Insert accepts the duplicate keys, they are placed right.
	Insert(key K)
	Search(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	Release()
}
