package kv

import (
	"github.com/samber/lo"
)

// Set keeps unique values in insertion order. The set operations
// return new sets and leave the operands untouched.
type Set[T comparable] struct {
	items Dictionary[T, struct{}]
}

func NewSet[T comparable](values ...T) *Set[T] {
	s := &Set[T]{
		items: NewDictionary[T, struct{}](WithDictionaryInitCap(len(values))),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add returns false if the value exists.
func (s *Set[T]) Add(v T) bool {
	return s.items.Set(v, struct{}{})
}

func (s *Set[T]) Has(v T) bool {
	return s.items.HasKey(v)
}

func (s *Set[T]) Delete(v T) bool {
	_, exists := s.items.Remove(v)
	return exists
}

func (s *Set[T]) Len() int {
	return s.items.Len()
}

func (s *Set[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}

func (s *Set[T]) Clear() {
	s.items.Clear()
}

func (s *Set[T]) Values() []T {
	return s.items.Keys()
}

func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	res := NewSet[T](s.Values()...)
	for _, v := range other.Values() {
		res.Add(v)
	}
	return res
}

func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	smaller, bigger := s, other
	if other.Len() < s.Len() {
		smaller, bigger = other, s
	}
	return NewSet[T](lo.Filter(smaller.Values(), func(v T, _ int) bool {
		return bigger.Has(v)
	})...)
}

func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	return NewSet[T](lo.Reject(s.Values(), func(v T, _ int) bool {
		return other.Has(v)
	})...)
}

func (s *Set[T]) IsSubsetOf(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}
	return lo.EveryBy(s.Values(), other.Has)
}
