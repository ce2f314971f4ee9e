// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stack provides a LIFO adapter over the doubly-linked list: pushes
// and pops happen at the back of the underlying chain.
package stack

import (
	"github.com/ava-labs/linear/linked"
	"github.com/ava-labs/linear/utils"
)

// Stack is a last-in first-out container. Push and Pop are O(1).
//
// The zero value is an empty stack ready to use.
type Stack[T comparable] struct {
	list *linked.List[T]
}

// New returns a new empty stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{list: linked.New[T]()}
}

// Of returns a new stack holding [vals], pushed in order: the last value is
// on top.
func Of[T comparable](vals ...T) *Stack[T] {
	s := New[T]()
	s.PushSlice(vals)
	return s
}

func (s *Stack[T]) lazyInit() {
	if s.list == nil {
		s.list = linked.New[T]()
	}
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	if s.list == nil {
		return 0
	}
	return s.list.Len()
}

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool {
	return s.Len() == 0
}

// Push places [v] on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.lazyInit()
	s.list.PushBack(v)
}

// PushSlice pushes the elements of [vals] in order, leaving the last one on
// top.
func (s *Stack[T]) PushSlice(vals []T) {
	s.lazyInit()
	s.list.AppendSlice(vals)
}

// Pop removes and returns the element on top of the stack. Reports false,
// without mutating, when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.list == nil {
		return utils.Zero[T](), false
	}
	v, ok := s.list.Back()
	if ok {
		s.list.PopBack()
	}
	return v, ok
}

// Top returns the element on top of the stack. Reports false when the stack
// is empty.
func (s *Stack[T]) Top() (T, bool) {
	if s.list == nil {
		return utils.Zero[T](), false
	}
	return s.list.Back()
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	if s.list != nil {
		s.list.Clear()
	}
}

// Swap exchanges the contents of the two stacks in O(1). Swapping a stack
// with itself is a no-op.
func (s *Stack[T]) Swap(other *Stack[T]) {
	if s == other {
		return
	}
	s.lazyInit()
	other.lazyInit()
	s.list.Swap(other.list)
}

// Clone returns a deep copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	c := New[T]()
	if s.list != nil {
		c.list.Append(s.list)
	}
	return c
}

// Equal reports whether [s] and [other] hold equal elements in the same
// order.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.list == nil || other.list == nil {
		return true // both empty
	}
	return s.list.Equal(other.list)
}

// Slice returns the contents of the stack as a freshly allocated slice,
// bottom first.
func (s *Stack[T]) Slice() []T {
	if s.list == nil {
		return []T{}
	}
	return s.list.Slice()
}
