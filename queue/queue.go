// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue provides an unbounded FIFO queue backed by a singly-linked
// chain with head and tail pointers.
package queue

import "github.com/ava-labs/linear/utils"

type node[T comparable] struct {
	next  *node[T]
	value T
}

// Queue is a first-in first-out container. Push and Pop are O(1).
//
// The zero value is an empty queue ready to use.
type Queue[T comparable] struct {
	head, tail *node[T]
	len        int
}

// New returns a new empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Of returns a new queue holding [vals], front first.
func Of[T comparable](vals ...T) *Queue[T] {
	q := New[T]()
	q.PushSlice(vals)
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.len
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.len == 0
}

// Push appends [v] at the back of the queue.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{value: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.len++
}

// PushSlice appends the elements of [vals] in order.
func (q *Queue[T]) PushSlice(vals []T) {
	for _, v := range vals {
		q.Push(v)
	}
}

// Pop removes and returns the element at the front of the queue. Reports
// false, without mutating, when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.len == 0 {
		return utils.Zero[T](), false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.len--
	return n.value, true
}

// Front returns the element at the front of the queue. Reports false when
// the queue is empty.
func (q *Queue[T]) Front() (T, bool) {
	if q.len == 0 {
		return utils.Zero[T](), false
	}
	return q.head.value, true
}

// Back returns the element at the back of the queue. Reports false when the
// queue is empty.
func (q *Queue[T]) Back() (T, bool) {
	if q.len == 0 {
		return utils.Zero[T](), false
	}
	return q.tail.value, true
}

// Clear removes all elements.
func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.len = 0
}

// Swap exchanges the contents of the two queues in O(1). Swapping a queue
// with itself is a no-op.
func (q *Queue[T]) Swap(other *Queue[T]) {
	if q == other {
		return
	}
	q.head, other.head = other.head, q.head
	q.tail, other.tail = other.tail, q.tail
	q.len, other.len = other.len, q.len
}

// Clone returns a deep copy of the queue. The copy shares no nodes with
// [q].
func (q *Queue[T]) Clone() *Queue[T] {
	c := New[T]()
	for n := q.head; n != nil; n = n.next {
		c.Push(n.value)
	}
	return c
}

// Equal reports whether [q] and [other] hold equal elements in the same
// order.
func (q *Queue[T]) Equal(other *Queue[T]) bool {
	if q.len != other.len {
		return false
	}
	n1, n2 := q.head, other.head
	for n1 != nil {
		if n1.value != n2.value {
			return false
		}
		n1, n2 = n1.next, n2.next
	}
	return true
}

// Slice returns the contents of the queue as a freshly allocated slice,
// front first.
func (q *Queue[T]) Slice() []T {
	s := make([]T, 0, q.len)
	for n := q.head; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}
