package list

// Note that the linked lists are not thread safe.

// EqualsFunc reports whether two values are the same element.
type EqualsFunc[T any] func(a, b T) bool

func defaultEquals[T comparable](a, b T) bool {
	return a == b
}

// BasicLinkedList is the index addressed list shared by all the linked
// lists. The index starts from 0.
type BasicLinkedList[T any] interface {
	Len() int64
	IsEmpty() bool
	// Push appends the value to the list.
	Push(v T)
	// GetAt returns false if the index is out of [0, Len()).
	GetAt(index int64) (T, bool)
	// RemoveAt returns the removed value or false if the index is out of [0, Len()).
	RemoveAt(index int64) (T, bool)
	// IndexOf returns the index of the first element equals to v, or -1.
	IndexOf(v T) int64
	// Remove removes the first element equals to v.
	Remove(v T) (T, bool)
	// FindFirst returns the first value that satisfies fn.
	FindFirst(fn func(v T) bool) (T, bool)
	// Foreach traverses the list and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, v T) error) error
	Clear()
	// String joins the values by comma, from the head to the tail.
	String() string
}

// IndexedLinkedList is able to insert a value at any position.
type IndexedLinkedList[T any] interface {
	BasicLinkedList[T]
	// Insert puts the value at the index in [0, Len()], it returns
	// false if the index is out of range.
	Insert(v T, index int64) bool
}

// SortedLinkedList keeps the values in the comparator order, Push
// inserts the value before the first greater one.
type SortedLinkedList[T any] interface {
	BasicLinkedList[T]
}

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	IndexedLinkedList[T]
	// AppendValue appends the values to the list and returns the new elements.
	AppendValue(values ...T) []*NodeElement[T]
	// ElementAt returns nil if the index is out of [0, Len()).
	ElementAt(index int64) *NodeElement[T]
	// Front returns the first element of list or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of list or nil if the list is empty.
	Back() *NodeElement[T]
	// PushFront inserts a new element e with value v at the front of list and returns e.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element e with value v at the back of list and returns e.
	PushBack(v T) *NodeElement[T]
	// InsertAfter inserts a value v as a new element immediately after element dstE and returns new element.
	// If dstE is not an element of the list, the value v will not be inserted.
	InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T]
	// InsertBefore inserts a value v as a new element immediately before element dstE and returns new element.
	// If dstE is not an element of the list, the value v will not be inserted.
	InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T]
	// RemoveElement removes targetE if targetE is an element of the list and returns it.
	RemoveElement(targetE *NodeElement[T]) *NodeElement[T]
	// MoveToFront moves an element e to the front of list.
	MoveToFront(targetE *NodeElement[T]) bool
	// MoveToBack moves an element e to the back of list.
	MoveToBack(targetE *NodeElement[T]) bool
	// ReverseForeach iterates the list in reverse order, calling fn for each element.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]))
	// ReverseString joins the values by comma, from the tail to the head.
	ReverseString() string
}
