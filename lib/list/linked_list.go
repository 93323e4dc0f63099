package list

import (
	"fmt"
	"strings"
)

var _ LinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// The root is a sentinel, root.next is the head and root.prev is
// the tail. An empty list links the root to itself.
type doublyLinkedList[T comparable] struct {
	root *NodeElement[T]
	len  int64
}

func NewLinkedList[T comparable]() LinkedList[T] {
	return new(doublyLinkedList[T]).init()
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.len = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

func (l *doublyLinkedList[T]) contains(e *NodeElement[T]) bool {
	return e != nil && e != l.root && e.listRef == l && e.prev != nil && e.next != nil
}

// insertAfter links newE next to at, at may be the root.
func (l *doublyLinkedList[T]) insertAfter(newE, at *NodeElement[T]) *NodeElement[T] {
	newE.listRef = l
	newE.prev = at
	newE.next = at.next
	newE.prev.next = newE
	newE.next.prev = newE
	l.len++
	return newE
}

func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (l *doublyLinkedList[T]) Push(v T) {
	l.PushBack(v)
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}

	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.insertAfter(newNodeElement(v, l), l.root.prev))
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insertAfter(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	return l.insertAfter(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.insertAfter(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) Insert(v T, index int64) bool {
	if index < 0 || index > l.len {
		return false
	}
	if index == l.len {
		l.PushBack(v)
		return true
	}
	return l.InsertBefore(v, l.ElementAt(index)) != nil
}

func (l *doublyLinkedList[T]) RemoveElement(targetE *NodeElement[T]) *NodeElement[T] {
	if l.len == 0 || !l.contains(targetE) {
		return nil
	}

	l.unlink(targetE)
	// avoid memory leaks
	targetE.listRef = nil
	targetE.next = nil
	targetE.prev = nil
	l.len--
	return targetE
}

// ElementAt walks from the nearer end.
func (l *doublyLinkedList[T]) ElementAt(index int64) *NodeElement[T] {
	if index < 0 || index >= l.len {
		return nil
	}
	if index < l.len/2 {
		e := l.root.next
		for i := int64(0); i < index; i++ {
			e = e.next
		}
		return e
	}
	e := l.root.prev
	for i := l.len - 1; i > index; i-- {
		e = e.prev
	}
	return e
}

func (l *doublyLinkedList[T]) GetAt(index int64) (v T, ok bool) {
	e := l.ElementAt(index)
	if e == nil {
		return v, false
	}
	return e.Value, true
}

func (l *doublyLinkedList[T]) RemoveAt(index int64) (v T, ok bool) {
	e := l.RemoveElement(l.ElementAt(index))
	if e == nil {
		return v, false
	}
	return e.Value, true
}

func (l *doublyLinkedList[T]) IndexOf(v T) int64 {
	var idx int64
	for e := l.root.next; e != l.root; e = e.next {
		if e.Value == v {
			return idx
		}
		idx++
	}
	return -1
}

func (l *doublyLinkedList[T]) Remove(v T) (T, bool) {
	return l.RemoveAt(l.IndexOf(v))
}

func (l *doublyLinkedList[T]) FindFirst(fn func(v T) bool) (v T, ok bool) {
	if fn == nil {
		return v, false
	}
	for e := l.root.next; e != l.root; e = e.next {
		if fn(e.Value) {
			return e.Value, true
		}
	}
	return v, false
}

// Foreach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil || l.len == 0 {
		return nil
	}

	var (
		iterator       = l.root.next
		idx      int64 = 0
	)
	for iterator != l.root {
		n := iterator.next
		if err := fn(idx, iterator.Value); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

// ReverseForeach, allows remove linked list elements while iterating.
func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if fn == nil || l.len == 0 {
		return
	}

	var (
		iterator       = l.root.prev
		idx      int64 = 0
	)
	for iterator != l.root {
		p := iterator.prev
		fn(idx, iterator)
		iterator = p
		idx++
	}
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// move links src next to dst.
func (l *doublyLinkedList[T]) move(src, dst *NodeElement[T]) bool {
	if src == dst {
		return false
	}
	l.unlink(src)
	src.prev = dst
	src.next = dst.next
	src.next.prev = src
	dst.next = src
	return true
}

func (l *doublyLinkedList[T]) MoveToFront(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) || l.root.next == targetE {
		return false
	}
	return l.move(targetE, l.root)
}

func (l *doublyLinkedList[T]) MoveToBack(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) || l.root.prev == targetE {
		return false
	}
	return l.move(targetE, l.root.prev)
}

// Clear detaches all the elements, the removed elements are not
// linked to the list anymore.
func (l *doublyLinkedList[T]) Clear() {
	for e := l.root.next; e != l.root; {
		n := e.next
		e.listRef, e.prev, e.next = nil, nil, nil
		e = n
	}
	l.init()
}

func (l *doublyLinkedList[T]) String() string {
	var builder strings.Builder
	for e := l.root.next; e != l.root; e = e.next {
		if e != l.root.next {
			builder.WriteByte(',')
		}
		builder.WriteString(fmt.Sprint(e.Value))
	}
	return builder.String()
}

func (l *doublyLinkedList[T]) ReverseString() string {
	var builder strings.Builder
	l.ReverseForeach(func(idx int64, e *NodeElement[T]) {
		if idx > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(fmt.Sprint(e.Value))
	})
	return builder.String()
}
