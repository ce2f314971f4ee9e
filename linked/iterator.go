// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

import "github.com/ava-labs/linear/utils"

// Iterator is a bidirectional cursor over the nodes of a List. The zero
// value is the invalid iterator; every operation on it reports failure
// instead of walking.
//
// Iterators are compared with ==. Two iterators are equal when they
// reference the same node of the same list. Mixing iterators of different
// lists in operations that expect a single list is caller error.
type Iterator[T comparable] struct {
	n    *node[T]
	list *List[T]
}

// Valid reports whether the iterator references a position. The End()
// position is valid but not dereferenceable.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

func (it Iterator[T]) atSentinel() bool {
	return it.list != nil && it.n == &it.list.root
}

// Value returns the element at the iterator's position, or the zero value of
// T when positioned at End() or invalid.
func (it Iterator[T]) Value() T {
	if !it.Valid() || it.atSentinel() {
		return utils.Zero[T]()
	}
	return it.n.value
}

// Get returns the element at the iterator's position and whether the
// position was dereferenceable.
func (it Iterator[T]) Get() (T, bool) {
	if !it.Valid() || it.atSentinel() {
		return utils.Zero[T](), false
	}
	return it.n.value, true
}

// Set overwrites the element at the iterator's position. Reports false when
// the position is End() or invalid.
func (it Iterator[T]) Set(v T) bool {
	if !it.Valid() || it.atSentinel() {
		return false
	}
	it.n.value = v
	return true
}

// Next returns the iterator advanced one position. Advancing past End()
// yields the invalid iterator.
func (it Iterator[T]) Next() Iterator[T] {
	if !it.Valid() || it.atSentinel() {
		return Iterator[T]{}
	}
	return Iterator[T]{n: it.n.next, list: it.list}
}

// Prev returns the iterator moved back one position. Moving before the
// first element yields the invalid iterator; End().Prev() is the last
// element when the list is non-empty.
func (it Iterator[T]) Prev() Iterator[T] {
	if !it.Valid() {
		return Iterator[T]{}
	}
	prev := Iterator[T]{n: it.n.prev, list: it.list}
	if prev.atSentinel() {
		return Iterator[T]{}
	}
	return prev
}

// Advance walks [steps] positions forward, or backward for negative
// [steps], and returns the resulting iterator. Walking past End() or before
// the first element yields the invalid iterator.
func (it Iterator[T]) Advance(steps int) Iterator[T] {
	for ; steps > 0 && it.Valid(); steps-- {
		it = it.Next()
	}
	for ; steps < 0 && it.Valid(); steps++ {
		it = it.Prev()
	}
	return it
}

// Const converts the iterator to its read-only form. The conversion is
// one-directional.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n, list: it.list}
}

// ConstIterator is the read-only variant of Iterator. It moves the same way
// but cannot modify the element it references.
type ConstIterator[T comparable] struct {
	n    *node[T]
	list *List[T]
}

// Valid reports whether the iterator references a position.
func (it ConstIterator[T]) Valid() bool {
	return it.n != nil
}

func (it ConstIterator[T]) atSentinel() bool {
	return it.list != nil && it.n == &it.list.root
}

// Value returns the element at the iterator's position, or the zero value of
// T when positioned at the end or invalid.
func (it ConstIterator[T]) Value() T {
	if !it.Valid() || it.atSentinel() {
		return utils.Zero[T]()
	}
	return it.n.value
}

// Get returns the element at the iterator's position and whether the
// position was dereferenceable.
func (it ConstIterator[T]) Get() (T, bool) {
	if !it.Valid() || it.atSentinel() {
		return utils.Zero[T](), false
	}
	return it.n.value, true
}

// Next returns the iterator advanced one position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if !it.Valid() || it.atSentinel() {
		return ConstIterator[T]{}
	}
	return ConstIterator[T]{n: it.n.next, list: it.list}
}

// Prev returns the iterator moved back one position.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	if !it.Valid() {
		return ConstIterator[T]{}
	}
	prev := ConstIterator[T]{n: it.n.prev, list: it.list}
	if prev.atSentinel() {
		return ConstIterator[T]{}
	}
	return prev
}

// Advance walks [steps] positions forward, or backward for negative [steps].
func (it ConstIterator[T]) Advance(steps int) ConstIterator[T] {
	for ; steps > 0 && it.Valid(); steps-- {
		it = it.Next()
	}
	for ; steps < 0 && it.Valid(); steps++ {
		it = it.Prev()
	}
	return it
}
