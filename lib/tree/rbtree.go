package tree

import (
	"github.com/benz9527/xalgo/lib/infra"
)

var (
	_ RedBlackTree[int] = (*rbTree[int])(nil)
	_ RBNode[int]       = (*rbNode[int])(nil)
)

type rbNode[K any] struct {
	parent *rbNode[K]
	left   *rbNode[K]
	right  *rbNode[K]
	key    K
	color  RBColor
}

func (node *rbNode[K]) Color() RBColor {
	return node.color
}

func (node *rbNode[K]) Key() K {
	return node.key
}

func (node *rbNode[K]) Left() RBNode[K] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K]) Parent() RBNode[K] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K]) Right() RBNode[K] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *rbNode[K]) children() (binaryNode[K], binaryNode[K]) {
	var l, r binaryNode[K]
	if node.left != nil {
		l = node.left
	}
	if node.right != nil {
		r = node.right
	}
	return l, r
}

func (node *rbNode[K]) height() int {
	if node == nil {
		return -1
	}
	return 1 + max(node.left.height(), node.right.height())
}

// The nil leaf is black.
func (node *rbNode[K]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[K]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[K]) Direction() RBDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] rbtree nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

type rbTree[K any] struct {
	root  *rbNode[K]
	count int64
	cfg   *treeConfig[K]
}

func (tree *rbTree[K]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K]) Height() int {
	return tree.root.height()
}

func (tree *rbTree[K]) Root() RBNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

func (tree *rbTree[K]) rootNode() binaryNode[K] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.

/*
		 |                         |
		 X                         L
		/ \    rotationLL(X)      / \
	   L   R   ============>     Ll  X
	  / \                           / \
	Ll   Lr                        Lr  R
*/
func (tree *rbTree[K]) rotationLL(x *rbNode[K]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] rbtree LL rotation node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] unknown node direction to rotate LL")
	}
	y.parent = p
	tree.cfg.onRotated(rotationLL, x.key)
}

/*
		 |                         |
		 X                         R
		/ \    rotationRR(X)      / \
	   L   R   ============>     X   Rr
		  / \                   / \
		Rl   Rr                L   Rl
*/
func (tree *rbTree[K]) rotationRR(x *rbNode[K]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[tree] rbtree RR rotation node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[tree] unknown node direction to rotate RR")
	}
	y.parent = p
	tree.cfg.onRotated(rotationRR, x.key)
}

// The empty tree gets a black root, otherwise the new node is
// inserted red and the properties are restored from it.
func (tree *rbTree[K]) Insert(key K) {
	if tree.root == nil {
		tree.root = &rbNode[K]{
			key:   key,
			color: Black,
		}
	} else {
		x := tree.insertNode(tree.root, key)
		tree.fixTreeProperties(x)
	}
	tree.count++
	tree.cfg.stats.IncreaseInsertedCount()
}

func (tree *rbTree[K]) insertNode(node *rbNode[K], key K) *rbNode[K] {
	if tree.cfg.cmp(key, node.key) == infra.LessThan {
		if node.left == nil {
			node.left = &rbNode[K]{
				parent: node,
				key:    key,
				color:  Red,
			}
			return node.left
		}
		return tree.insertNode(node.left, key)
	}
	if node.right == nil {
		node.right = &rbNode[K]{
			parent: node,
			key:    key,
			color:  Red,
		}
		return node.right
	}
	return tree.insertNode(node.right, key)
}

// fixTreeProperties resolves the red-violation between x and its parent.
// f1: Red uncle, paint parent and uncle black, grandpa red and move up.
// f2: Black uncle, x and parent in different directions, rotate the
// parent to turn it into f3.
// f3: Black uncle, x and parent in the same direction, rotate the
// grandpa and swap the colors of the parent and grandpa.
func (tree *rbTree[K]) fixTreeProperties(x *rbNode[K]) {
	for x != nil && x.parent.isRed() && x.isRed() {
		parent := x.parent
		grandpa := parent.parent
		if grandpa == nil {
			// Red root, painted black after the loop.
			break
		}

		if parent.Direction() == Left {
			if uncle := grandpa.right; /* f1 */ uncle.isRed() {
				grandpa.color = Red
				parent.color = Black
				uncle.color = Black
				tree.cfg.onRecolored(grandpa.key)
				x = grandpa
				continue
			}
			if /* f2 */ x.Direction() == Right {
				tree.rotationRR(parent)
				x = parent
				parent = x.parent
			}
			// f3
			tree.rotationLL(grandpa)
			parent.color = Black
			grandpa.color = Red
			x = parent
		} else {
			if uncle := grandpa.left; /* f1 */ uncle.isRed() {
				grandpa.color = Red
				parent.color = Black
				uncle.color = Black
				tree.cfg.onRecolored(grandpa.key)
				x = grandpa
				continue
			}
			if /* f2 */ x.Direction() == Left {
				tree.rotationLL(parent)
				x = parent
				parent = x.parent
			}
			// f3
			tree.rotationRR(grandpa)
			parent.color = Black
			grandpa.color = Red
			x = parent
		}
	}
	tree.root.color = Black
}

func (tree *rbTree[K]) Search(key K) bool {
	return searchNode[K](tree.rootNode(), key, tree.cfg.cmp) != nil
}

func (tree *rbTree[K]) Min() (K, bool) {
	return minimumKey[K](tree.rootNode())
}

func (tree *rbTree[K]) Max() (K, bool) {
	return maximumKey[K](tree.rootNode())
}

func (tree *rbTree[K]) InOrderTraverse(visit func(key K)) {
	inOrderTraverse[K](tree.rootNode(), visit)
}

func (tree *rbTree[K]) PreOrderTraverse(visit func(key K)) {
	preOrderTraverse[K](tree.rootNode(), visit)
}

func (tree *rbTree[K]) PostOrderTraverse(visit func(key K)) {
	postOrderTraverse[K](tree.rootNode(), visit)
}

func (tree *rbTree[K]) LevelOrderTraverse(visit func(key K)) {
	levelOrderTraverse[K](tree.rootNode(), tree.count, visit)
}

func (tree *rbTree[K]) Release() {
	size := tree.count
	aux := tree.root
	tree.root = nil
	tree.count = 0
	tree.cfg.stats.RecordReleased(size)
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K], 0, size>>1+1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		r := aux.right
		aux.left, aux.right, aux.parent = nil, nil, nil
		stack = stack[:size-1]
		for aux = r; aux != nil; aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

func NewRedBlackTree[K infra.OrderedKey](opts ...TreeOption[K]) RedBlackTree[K] {
	return NewRedBlackTreeFunc[K](infra.OrderedComparator[K], opts...)
}

func NewRedBlackTreeFunc[K any](cmp infra.Comparator[K], opts ...TreeOption[K]) RedBlackTree[K] {
	return &rbTree[K]{
		cfg: newTreeConfig[K](rbTreeKind, cmp, opts...),
	}
}
