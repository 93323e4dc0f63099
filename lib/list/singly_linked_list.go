package list

import (
	"fmt"
	"strings"

	"github.com/benz9527/xalgo/lib/infra"
)

var (
	_ IndexedLinkedList[int] = (*singlyLinkedList[int])(nil)
	_ SortedLinkedList[int]  = (*sortedLinkedList[int])(nil)
)

// singlyLinkedList is also the circular linked list, the tail of a
// circular list links back to the head.
type singlyLinkedList[T any] struct {
	head     *singlyNode[T]
	count    int64
	equals   EqualsFunc[T]
	circular bool
}

func NewSinglyLinkedList[T comparable]() IndexedLinkedList[T] {
	return NewSinglyLinkedListFunc[T](defaultEquals[T])
}

func NewSinglyLinkedListFunc[T any](equals EqualsFunc[T]) IndexedLinkedList[T] {
	return newSinglyLinkedList[T](equals, false)
}

func NewCircularLinkedList[T comparable]() IndexedLinkedList[T] {
	return NewCircularLinkedListFunc[T](defaultEquals[T])
}

func NewCircularLinkedListFunc[T any](equals EqualsFunc[T]) IndexedLinkedList[T] {
	return newSinglyLinkedList[T](equals, true)
}

func newSinglyLinkedList[T any](equals EqualsFunc[T], circular bool) *singlyLinkedList[T] {
	if equals == nil {
		panic("[list] nil equals function")
	}
	return &singlyLinkedList[T]{
		equals:   equals,
		circular: circular,
	}
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.count
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.count == 0
}

func (l *singlyLinkedList[T]) nodeAt(index int64) *singlyNode[T] {
	if index < 0 || index >= l.count {
		return nil
	}
	n := l.head
	for i := int64(0); i < index; i++ {
		n = n.next
	}
	return n
}

func (l *singlyLinkedList[T]) relinkTail() {
	if !l.circular {
		return
	}
	if l.count == 0 {
		l.head = nil
		return
	}
	l.nodeAt(l.count - 1).next = l.head
}

func (l *singlyLinkedList[T]) Push(v T) {
	l.Insert(v, l.count)
}

func (l *singlyLinkedList[T]) Insert(v T, index int64) bool {
	if index < 0 || index > l.count {
		return false
	}

	node := &singlyNode[T]{value: v}
	if index == 0 {
		node.next = l.head
		l.head = node
	} else {
		prev := l.nodeAt(index - 1)
		node.next = prev.next
		prev.next = node
	}
	l.count++
	l.relinkTail()
	return true
}

func (l *singlyLinkedList[T]) GetAt(index int64) (v T, ok bool) {
	n := l.nodeAt(index)
	if n == nil {
		return v, false
	}
	return n.value, true
}

func (l *singlyLinkedList[T]) RemoveAt(index int64) (v T, ok bool) {
	if index < 0 || index >= l.count {
		return v, false
	}

	var n *singlyNode[T]
	if index == 0 {
		n = l.head
		l.head = n.next
	} else {
		prev := l.nodeAt(index - 1)
		n = prev.next
		prev.next = n.next
	}
	n.next = nil
	l.count--
	if l.count == 0 {
		l.head = nil
	}
	l.relinkTail()
	return n.value, true
}

// Bounded by count, the circular list has no nil terminal.
func (l *singlyLinkedList[T]) foreachNode(fn func(idx int64, n *singlyNode[T]) bool) {
	n := l.head
	for i := int64(0); i < l.count; i++ {
		next := n.next
		if !fn(i, n) {
			return
		}
		n = next
	}
}

func (l *singlyLinkedList[T]) IndexOf(v T) int64 {
	idx := int64(-1)
	l.foreachNode(func(i int64, n *singlyNode[T]) bool {
		if l.equals(n.value, v) {
			idx = i
			return false
		}
		return true
	})
	return idx
}

func (l *singlyLinkedList[T]) Remove(v T) (T, bool) {
	return l.RemoveAt(l.IndexOf(v))
}

func (l *singlyLinkedList[T]) FindFirst(fn func(v T) bool) (v T, ok bool) {
	if fn == nil {
		return v, false
	}
	l.foreachNode(func(_ int64, n *singlyNode[T]) bool {
		if fn(n.value) {
			v, ok = n.value, true
			return false
		}
		return true
	})
	return v, ok
}

func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, v T) error) error {
	if fn == nil {
		return nil
	}
	var err error
	l.foreachNode(func(i int64, n *singlyNode[T]) bool {
		err = fn(i, n.value)
		return err == nil
	})
	return err
}

func (l *singlyLinkedList[T]) Clear() {
	l.head = nil
	l.count = 0
}

func (l *singlyLinkedList[T]) String() string {
	var builder strings.Builder
	l.foreachNode(func(i int64, n *singlyNode[T]) bool {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(fmt.Sprint(n.value))
		return true
	})
	return builder.String()
}

type sortedLinkedList[T any] struct {
	*singlyLinkedList[T]
	cmp infra.Comparator[T]
}

func NewSortedLinkedList[T infra.OrderedKey]() SortedLinkedList[T] {
	return NewSortedLinkedListFunc[T](infra.OrderedComparator[T])
}

func NewSortedLinkedListFunc[T any](cmp infra.Comparator[T]) SortedLinkedList[T] {
	if cmp == nil {
		panic("[list] nil comparator")
	}
	return &sortedLinkedList[T]{
		singlyLinkedList: newSinglyLinkedList[T](func(a, b T) bool {
			return cmp(a, b) == infra.Equal
		}, false),
		cmp: cmp,
	}
}

// Push inserts v before the first greater value, the equal values
// keep their insertion order.
func (l *sortedLinkedList[T]) Push(v T) {
	l.singlyLinkedList.Insert(v, l.nextSortedIndex(v))
}

func (l *sortedLinkedList[T]) nextSortedIndex(v T) int64 {
	idx := l.count
	l.foreachNode(func(i int64, n *singlyNode[T]) bool {
		if l.cmp(v, n.value) == infra.LessThan {
			idx = i
			return false
		}
		return true
	})
	return idx
}
