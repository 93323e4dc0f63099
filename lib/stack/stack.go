package stack

import (
	"fmt"
	"strings"

	"github.com/benz9527/xalgo/lib/list"
)

// Stack is LIFO and not thread safe.
type Stack[E any] interface {
	Len() int64
	IsEmpty() bool
	Push(e E)
	// Pop returns false if the stack is empty.
	Pop() (E, bool)
	// Peek returns the top without removing it.
	Peek() (E, bool)
	Clear()
	// String joins the elements by comma, from the bottom to the top.
	String() string
}

var (
	_ Stack[int] = (*arrayStack[int])(nil)
	_ Stack[int] = (*linkedStack[int])(nil)
)

type arrayStack[E any] struct {
	items []E
}

func NewArrayStack[E any]() Stack[E] {
	return &arrayStack[E]{
		items: make([]E, 0, 16),
	}
}

func (s *arrayStack[E]) Len() int64 {
	return int64(len(s.items))
}

func (s *arrayStack[E]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *arrayStack[E]) Push(e E) {
	s.items = append(s.items, e)
}

func (s *arrayStack[E]) Pop() (e E, ok bool) {
	n := len(s.items)
	if n == 0 {
		return e, false
	}
	e = s.items[n-1]
	s.items[n-1] = *new(E) // release the reference
	s.items = s.items[:n-1]
	return e, true
}

func (s *arrayStack[E]) Peek() (e E, ok bool) {
	if len(s.items) == 0 {
		return e, false
	}
	return s.items[len(s.items)-1], true
}

func (s *arrayStack[E]) Clear() {
	s.items = make([]E, 0, 16)
}

func (s *arrayStack[E]) String() string {
	var builder strings.Builder
	for i, e := range s.items {
		if i > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(fmt.Sprint(e))
	}
	return builder.String()
}

// linkedStack keeps the top at the back of the doubly linked list.
type linkedStack[E comparable] struct {
	items list.LinkedList[E]
}

func NewLinkedStack[E comparable]() Stack[E] {
	return &linkedStack[E]{
		items: list.NewLinkedList[E](),
	}
}

func (s *linkedStack[E]) Len() int64 {
	return s.items.Len()
}

func (s *linkedStack[E]) IsEmpty() bool {
	return s.items.IsEmpty()
}

func (s *linkedStack[E]) Push(e E) {
	s.items.PushBack(e)
}

func (s *linkedStack[E]) Pop() (e E, ok bool) {
	back := s.items.RemoveElement(s.items.Back())
	if back == nil {
		return e, false
	}
	return back.Value, true
}

func (s *linkedStack[E]) Peek() (e E, ok bool) {
	back := s.items.Back()
	if back == nil {
		return e, false
	}
	return back.Value, true
}

func (s *linkedStack[E]) Clear() {
	s.items.Clear()
}

func (s *linkedStack[E]) String() string {
	return s.items.String()
}
