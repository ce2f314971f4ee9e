// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

import "github.com/ava-labs/linear/utils"

type fnode[T comparable] struct {
	next  *fnode[T]
	value T
}

// ForwardList is a singly-linked list of comparable values with a value-less
// before-begin sentinel node. The sentinel is the fixed anchor for the
// InsertAfter style of mutation at the front of the chain.
//
// The zero value is an empty list ready to use. A ForwardList must not be
// copied by value after first use.
type ForwardList[T comparable] struct {
	head fnode[T] // before-begin sentinel; head.next is the first node
	len  int
}

// NewForward returns a new empty forward list.
func NewForward[T comparable]() *ForwardList[T] {
	return &ForwardList[T]{}
}

// ForwardOf returns a new forward list holding [vals] in order.
func ForwardOf[T comparable](vals ...T) *ForwardList[T] {
	return NewForwardFromSlice(vals)
}

// NewForwardFromSlice returns a new forward list holding the elements of
// [vals] in order.
func NewForwardFromSlice[T comparable](vals []T) *ForwardList[T] {
	l := NewForward[T]()
	l.AppendSlice(vals)
	return l
}

// ForwardIterator is a forward-only cursor over the nodes of a ForwardList.
// The zero value is the invalid iterator. The End() position references no
// node; the BeforeBegin() position references the sentinel. Neither is
// dereferenceable.
type ForwardIterator[T comparable] struct {
	n    *fnode[T]
	list *ForwardList[T]
}

// Valid reports whether the iterator belongs to a list. End() is valid but
// not dereferenceable.
func (it ForwardIterator[T]) Valid() bool {
	return it.list != nil
}

func (it ForwardIterator[T]) dereferenceable() bool {
	return it.list != nil && it.n != nil && it.n != &it.list.head
}

// Value returns the element at the iterator's position, or the zero value of
// T at BeforeBegin(), End(), or when invalid.
func (it ForwardIterator[T]) Value() T {
	if !it.dereferenceable() {
		return utils.Zero[T]()
	}
	return it.n.value
}

// Get returns the element at the iterator's position and whether the
// position was dereferenceable.
func (it ForwardIterator[T]) Get() (T, bool) {
	if !it.dereferenceable() {
		return utils.Zero[T](), false
	}
	return it.n.value, true
}

// Set overwrites the element at the iterator's position. Reports false when
// the position is not dereferenceable.
func (it ForwardIterator[T]) Set(v T) bool {
	if !it.dereferenceable() {
		return false
	}
	it.n.value = v
	return true
}

// Next returns the iterator advanced one position. Advancing past End()
// yields the invalid iterator.
func (it ForwardIterator[T]) Next() ForwardIterator[T] {
	if !it.Valid() || it.n == nil {
		return ForwardIterator[T]{}
	}
	return ForwardIterator[T]{n: it.n.next, list: it.list}
}

// Advance walks [steps] positions forward. Negative steps yield the invalid
// iterator; the cursor cannot move backward.
func (it ForwardIterator[T]) Advance(steps int) ForwardIterator[T] {
	if steps < 0 {
		return ForwardIterator[T]{}
	}
	for ; steps > 0 && it.Valid(); steps-- {
		it = it.Next()
	}
	return it
}

// BeforeBegin returns the iterator at the sentinel position in front of the
// first element.
func (l *ForwardList[T]) BeforeBegin() ForwardIterator[T] {
	return ForwardIterator[T]{n: &l.head, list: l}
}

// Begin returns an iterator positioned at the first element. For an empty
// list Begin() == End().
func (l *ForwardList[T]) Begin() ForwardIterator[T] {
	return ForwardIterator[T]{n: l.head.next, list: l}
}

// End returns the iterator one past the last element.
func (l *ForwardList[T]) End() ForwardIterator[T] {
	return ForwardIterator[T]{n: nil, list: l}
}

// Len returns the number of elements in the list.
func (l *ForwardList[T]) Len() int {
	return l.len
}

// Empty reports whether the list holds no elements.
func (l *ForwardList[T]) Empty() bool {
	return l.len == 0
}

// Front returns the first element. Reports false when the list is empty.
func (l *ForwardList[T]) Front() (T, bool) {
	if l.len == 0 {
		return utils.Zero[T](), false
	}
	return l.head.next.value, true
}

// owns reports whether [it] is an iterator stamped by this list referencing
// a node (the sentinel included).
func (l *ForwardList[T]) owns(it ForwardIterator[T]) bool {
	return it.list == l && it.n != nil
}

// tail returns the last node of the chain, or the sentinel when empty.
func (l *ForwardList[T]) tail() *fnode[T] {
	n := &l.head
	for n.next != nil {
		n = n.next
	}
	return n
}

// InsertAfter links a new element holding [v] immediately after [pos] and
// returns an iterator to it. Returns the invalid iterator when [pos] is
// End() or does not belong to this list.
func (l *ForwardList[T]) InsertAfter(pos ForwardIterator[T], v T) ForwardIterator[T] {
	if !l.owns(pos) {
		return ForwardIterator[T]{}
	}
	n := &fnode[T]{value: v, next: pos.n.next}
	pos.n.next = n
	l.len++
	return ForwardIterator[T]{n: n, list: l}
}

// InsertCountAfter inserts [count] copies of [v] after [pos] and returns an
// iterator to the last inserted element, or [pos] itself when [count] is
// zero.
func (l *ForwardList[T]) InsertCountAfter(pos ForwardIterator[T], count int, v T) ForwardIterator[T] {
	if !l.owns(pos) {
		return ForwardIterator[T]{}
	}
	for i := 0; i < count; i++ {
		pos = l.InsertAfter(pos, v)
	}
	return pos
}

// InsertSliceAfter inserts the elements of [vals] in order after [pos] and
// returns an iterator to the last inserted element, or [pos] itself when
// [vals] is empty.
func (l *ForwardList[T]) InsertSliceAfter(pos ForwardIterator[T], vals []T) ForwardIterator[T] {
	if !l.owns(pos) {
		return ForwardIterator[T]{}
	}
	for _, v := range vals {
		pos = l.InsertAfter(pos, v)
	}
	return pos
}

// EraseAfter removes the element following [pos] and returns an iterator to
// the element after the removed one. Returns the invalid iterator when
// [pos] does not belong to this list or nothing follows it.
func (l *ForwardList[T]) EraseAfter(pos ForwardIterator[T]) ForwardIterator[T] {
	if !l.owns(pos) || pos.n.next == nil {
		return ForwardIterator[T]{}
	}
	pos.n.next = pos.n.next.next
	l.len--
	return ForwardIterator[T]{n: pos.n.next, list: l}
}

// EraseRangeAfter removes the open range (first, last) and returns [last].
// A range with nothing between the bounds is a no-op.
func (l *ForwardList[T]) EraseRangeAfter(first, last ForwardIterator[T]) ForwardIterator[T] {
	if !l.owns(first) || last.list != l {
		return ForwardIterator[T]{}
	}
	for first.n.next != last.n {
		if first.n.next == nil {
			return ForwardIterator[T]{}
		}
		first.n.next = first.n.next.next
		l.len--
	}
	return last
}

// PushFront prepends [v] in O(1).
func (l *ForwardList[T]) PushFront(v T) {
	l.head.next = &fnode[T]{value: v, next: l.head.next}
	l.len++
}

// PopFront removes the first element in O(1). A no-op on an empty list.
func (l *ForwardList[T]) PopFront() {
	if l.len != 0 {
		l.head.next = l.head.next.next
		l.len--
	}
}

// Clear removes all elements. Clearing an empty list is a no-op.
func (l *ForwardList[T]) Clear() {
	l.head.next = nil
	l.len = 0
}

// Assign replaces the contents of the list with the elements of [vals].
func (l *ForwardList[T]) Assign(vals []T) {
	l.Clear()
	l.AppendSlice(vals)
}

// AssignCount replaces the contents of the list with [count] copies of [v].
func (l *ForwardList[T]) AssignCount(count int, v T) {
	l.Clear()
	l.InsertCountAfter(l.BeforeBegin(), count, v)
}

// Resize grows the list with zero values or shrinks it from the back until
// it holds [count] elements.
func (l *ForwardList[T]) Resize(count int) {
	l.ResizeWith(count, utils.Zero[T]())
}

// ResizeWith grows the list with copies of [v] or shrinks it from the back
// until it holds [count] elements.
func (l *ForwardList[T]) ResizeWith(count int, v T) {
	if count < 0 {
		count = 0
	}
	if count < l.len {
		n := &l.head
		for i := 0; i < count; i++ {
			n = n.next
		}
		n.next = nil
		l.len = count
		return
	}
	for t := l.tail(); l.len < count; t = t.next {
		t.next = &fnode[T]{value: v}
		l.len++
	}
}

// Swap exchanges the contents of the two lists in O(1). Swapping a list
// with itself is a no-op.
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	if l == other {
		return
	}
	l.head.next, other.head.next = other.head.next, l.head.next
	l.len, other.len = other.len, l.len
}

// Merge appends the entire chain of [other] onto the end of [l], leaving
// [other] empty. No ordering is imposed: this is pure concatenation.
// Merging a list into itself is a no-op.
func (l *ForwardList[T]) Merge(other *ForwardList[T]) {
	if l == other || other.len == 0 {
		return
	}
	l.tail().next = other.head.next
	l.len += other.len
	other.Clear()
}

// SpliceAfter moves the entire chain of [other] to the position after [pos],
// updating both lists' sizes. Reports false, without mutating, when [pos]
// does not belong to this list or [other] is the receiver itself.
func (l *ForwardList[T]) SpliceAfter(pos ForwardIterator[T], other *ForwardList[T]) bool {
	if l == other || !l.owns(pos) {
		return false
	}
	if other.len == 0 {
		return true
	}
	last := other.tail()
	last.next = pos.n.next
	pos.n.next = other.head.next
	l.len += other.len
	other.Clear()
	return true
}

// SpliceElementAfter moves the single element following [it] out of [other]
// and relinks it after [pos]. Reports false, without mutating, when the
// iterators do not belong to the expected lists, nothing follows [it], or
// [other] is the receiver itself.
func (l *ForwardList[T]) SpliceElementAfter(pos ForwardIterator[T], other *ForwardList[T], it ForwardIterator[T]) bool {
	if l == other || !l.owns(pos) || !other.owns(it) || it.n.next == nil {
		return false
	}
	n := it.n.next
	it.n.next = n.next
	other.len--
	n.next = pos.n.next
	pos.n.next = n
	l.len++
	return true
}

// SpliceRangeAfter moves the open range (first, last) out of [other] and
// relinks it after [pos], updating both lists' sizes. Reports false,
// without mutating, when the iterators do not belong to the expected lists,
// [last] is not reachable from [first], or [other] is the receiver itself.
func (l *ForwardList[T]) SpliceRangeAfter(pos ForwardIterator[T], other *ForwardList[T], first, last ForwardIterator[T]) bool {
	if l == other || !l.owns(pos) || !other.owns(first) || last.list != other {
		return false
	}
	count := 0
	for n := first.n.next; n != last.n; n = n.next {
		if n == nil {
			return false
		}
		count++
	}
	if count == 0 {
		return true
	}
	chainFirst := first.n.next
	chainLast := chainFirst
	for chainLast.next != last.n {
		chainLast = chainLast.next
	}
	first.n.next = last.n
	other.len -= count
	chainLast.next = pos.n.next
	pos.n.next = chainFirst
	l.len += count
	return true
}

// Remove deletes every element equal to [v] in one pass, preserving the
// relative order of the survivors. Returns the number of elements removed.
func (l *ForwardList[T]) Remove(v T) int {
	removed := 0
	for n := &l.head; n.next != nil; {
		if n.next.value == v {
			n.next = n.next.next
			l.len--
			removed++
		} else {
			n = n.next
		}
	}
	return removed
}

// Reverse reverses the order of the elements in place in O(n).
func (l *ForwardList[T]) Reverse() {
	var prev *fnode[T]
	for n := l.head.next; n != nil; {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	l.head.next = prev
}

// Unique removes every element that is equal to any earlier element, keeping
// only the first occurrence of each value. This matches List.Unique: global
// first-occurrence-wins deduplication.
func (l *ForwardList[T]) Unique() {
	for n := l.head.next; n != nil; n = n.next {
		for m := n; m.next != nil; {
			if m.next.value == n.value {
				m.next = m.next.next
				l.len--
			} else {
				m = m.next
			}
		}
	}
}

// Clone returns a deep copy of the list. The copy shares no nodes with [l].
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	c := NewForward[T]()
	c.Append(l)
	return c
}

// Equal reports whether [l] and [other] hold equal elements in the same
// order. The sizes are compared first.
func (l *ForwardList[T]) Equal(other *ForwardList[T]) bool {
	if l.len != other.len {
		return false
	}
	n1, n2 := l.head.next, other.head.next
	for n1 != nil {
		if n1.value != n2.value {
			return false
		}
		n1, n2 = n1.next, n2.next
	}
	return true
}

// Append deep-copies every element of [other] onto the end of [l].
// Appending a list to itself appends a copy of the elements held at the
// call.
func (l *ForwardList[T]) Append(other *ForwardList[T]) {
	if l == other {
		l.AppendSlice(other.Slice())
		return
	}
	t := l.tail()
	for n := other.head.next; n != nil; n = n.next {
		t.next = &fnode[T]{value: n.value}
		t = t.next
		l.len++
	}
}

// AppendSlice appends the elements of [vals] in order.
func (l *ForwardList[T]) AppendSlice(vals []T) {
	t := l.tail()
	for _, v := range vals {
		t.next = &fnode[T]{value: v}
		t = t.next
		l.len++
	}
}

// Slice returns the contents of the list as a freshly allocated slice, in
// order.
func (l *ForwardList[T]) Slice() []T {
	s := make([]T, 0, l.len)
	for n := l.head.next; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// ConcatForward returns a new forward list holding the elements of [a]
// followed by the elements of [b]. Both inputs are deep-copied and left
// unchanged.
func ConcatForward[T comparable](a, b *ForwardList[T]) *ForwardList[T] {
	c := a.Clone()
	c.Append(b)
	return c
}
