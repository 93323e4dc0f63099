package queue

import (
	"github.com/benz9527/xalgo/lib/list"
)

// Queue is FIFO and not thread safe.
type Queue[E comparable] interface {
	Len() int64
	IsEmpty() bool
	Enqueue(e E)
	// Dequeue returns false if the queue is empty.
	Dequeue() (E, bool)
	Peek() (E, bool)
	Clear()
	// String joins the elements by comma, from the front to the back.
	String() string
}

// Deque allows adding and removing at both ends.
type Deque[E comparable] interface {
	Len() int64
	IsEmpty() bool
	AddFront(e E)
	AddBack(e E)
	RemoveFront() (E, bool)
	RemoveBack() (E, bool)
	PeekFront() (E, bool)
	PeekBack() (E, bool)
	Clear()
	String() string
}

var (
	_ Queue[int] = (*linkedDeque[int])(nil)
	_ Deque[int] = (*linkedDeque[int])(nil)
)

type linkedDeque[E comparable] struct {
	items list.LinkedList[E]
}

func newLinkedDeque[E comparable]() *linkedDeque[E] {
	return &linkedDeque[E]{
		items: list.NewLinkedList[E](),
	}
}

func NewQueue[E comparable]() Queue[E] {
	return newLinkedDeque[E]()
}

func NewDeque[E comparable]() Deque[E] {
	return newLinkedDeque[E]()
}

func (q *linkedDeque[E]) Len() int64 {
	return q.items.Len()
}

func (q *linkedDeque[E]) IsEmpty() bool {
	return q.items.IsEmpty()
}

func (q *linkedDeque[E]) Enqueue(e E) {
	q.AddBack(e)
}

func (q *linkedDeque[E]) Dequeue() (E, bool) {
	return q.RemoveFront()
}

func (q *linkedDeque[E]) Peek() (E, bool) {
	return q.PeekFront()
}

func (q *linkedDeque[E]) AddFront(e E) {
	q.items.PushFront(e)
}

func (q *linkedDeque[E]) AddBack(e E) {
	q.items.PushBack(e)
}

func (q *linkedDeque[E]) RemoveFront() (E, bool) {
	return q.valueOf(q.items.RemoveElement(q.items.Front()))
}

func (q *linkedDeque[E]) RemoveBack() (E, bool) {
	return q.valueOf(q.items.RemoveElement(q.items.Back()))
}

func (q *linkedDeque[E]) PeekFront() (E, bool) {
	return q.valueOf(q.items.Front())
}

func (q *linkedDeque[E]) PeekBack() (E, bool) {
	return q.valueOf(q.items.Back())
}

func (q *linkedDeque[E]) valueOf(e *list.NodeElement[E]) (v E, ok bool) {
	if e == nil {
		return v, false
	}
	return e.Value, true
}

func (q *linkedDeque[E]) Clear() {
	q.items.Clear()
}

func (q *linkedDeque[E]) String() string {
	return q.items.String()
}
