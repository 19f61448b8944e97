package common

import "iter"

// Stack is a generic LIFO container. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// The bool result is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	idx := len(s.items) - 1
	v := s.items[idx]
	s.items[idx] = zero
	s.items = s.items[:idx]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Bottom returns the element pushed first.
func (s *Stack[T]) Bottom() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[0], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// All iterates from the bottom of the stack to the top.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}
