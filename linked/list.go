// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package linked provides generic linked sequence containers.
//
// List is a doubly-linked list whose nodes form a circular chain through a
// value-less sentinel node. The sentinel always exists, its position is the
// canonical End(), and an empty list is a ring containing only the sentinel.
// ForwardList is the singly-linked variant with a before-begin sentinel.
package linked

import "github.com/ava-labs/linear/utils"

type node[T comparable] struct {
	next, prev *node[T]
	value      T
}

// List is a doubly-linked list of comparable values.
//
// The zero value is an empty list ready to use. A List must not be copied by
// value after first use; the sentinel node is embedded in the struct and the
// chain holds interior pointers to it.
type List[T comparable] struct {
	root node[T] // sentinel; root.next is the first node, root.prev the last
	len  int
}

// New returns a new empty list.
func New[T comparable]() *List[T] {
	l := &List[T]{}
	l.lazyInit()
	return l
}

// Of returns a new list holding [vals] in order.
func Of[T comparable](vals ...T) *List[T] {
	return NewFromSlice(vals)
}

// NewFromSlice returns a new list holding the elements of [vals] in order.
func NewFromSlice[T comparable](vals []T) *List[T] {
	l := New[T]()
	l.AppendSlice(vals)
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Front returns the first element. Reports false when the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.len == 0 {
		return utils.Zero[T](), false
	}
	return l.root.next.value, true
}

// Back returns the last element. Reports false when the list is empty.
func (l *List[T]) Back() (T, bool) {
	if l.len == 0 {
		return utils.Zero[T](), false
	}
	return l.root.prev.value, true
}

// Begin returns an iterator positioned at the first element. For an empty
// list Begin() == End().
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.root.next, list: l}
}

// End returns the iterator at the sentinel position, one past the last
// element. It is never dereferenceable.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: &l.root, list: l}
}

// ConstBegin is the read-only form of Begin.
func (l *List[T]) ConstBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// ConstEnd is the read-only form of End.
func (l *List[T]) ConstEnd() ConstIterator[T] {
	return l.End().Const()
}

// Get returns an iterator to the element at [i], walking from whichever end
// of the chain is closer. Reports false when [i] is outside [0, Len()).
func (l *List[T]) Get(i int) (Iterator[T], bool) {
	if i < 0 || i >= l.len {
		return Iterator[T]{}, false
	}
	var n *node[T]
	if i < l.len/2 {
		n = l.root.next
		for ; i > 0; i-- {
			n = n.next
		}
	} else {
		n = l.root.prev
		for j := l.len - 1; j > i; j-- {
			n = n.prev
		}
	}
	return Iterator[T]{n: n, list: l}, true
}

// Set overwrites the element at [i]. Reports false, without mutating, when
// [i] is outside [0, Len()).
func (l *List[T]) Set(i int, v T) bool {
	it, ok := l.Get(i)
	if !ok {
		return false
	}
	it.n.value = v
	return true
}

// owns reports whether [it] is a non-zero iterator stamped by this list.
// Iterators that were invalidated by an erase, or whose nodes were moved to
// another list by a splice, are not detected.
func (l *List[T]) owns(it Iterator[T]) bool {
	return it.n != nil && it.list == l
}

// insertBefore links a new node holding [v] immediately before [at].
func (l *List[T]) insertBefore(v T, at *node[T]) *node[T] {
	n := &node[T]{value: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.len++
	return n
}

// cut unlinks [n] from the ring without touching its value.
func (l *List[T]) cut(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	l.len--
}

// attachBefore links the chain [first..last] of [count] nodes immediately
// before [at]. The chain must already be unlinked from any ring.
func (l *List[T]) attachBefore(at, first, last *node[T], count int) {
	if count == 0 {
		return
	}
	first.prev = at.prev
	at.prev.next = first
	last.next = at
	at.prev = last
	l.len += count
}

// detach removes the whole user chain from the ring, leaving the list empty.
// Returns nil boundaries when the list was already empty.
func (l *List[T]) detach() (first, last *node[T], count int) {
	if l.len == 0 {
		return nil, nil, 0
	}
	first, last, count = l.root.next, l.root.prev, l.len
	l.Clear()
	return first, last, count
}

// Insert splices a new element holding [v] immediately before [pos] and
// returns an iterator to it. Inserting before Begin() is equivalent to
// PushFront; inserting at End() is equivalent to PushBack. Returns the
// invalid iterator when [pos] does not belong to this list.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	if !l.owns(pos) {
		return Iterator[T]{}
	}
	return Iterator[T]{n: l.insertBefore(v, pos.n), list: l}
}

// InsertCount inserts [count] copies of [v] immediately before [pos] and
// returns an iterator to the first inserted element, or [pos] itself when
// [count] is zero.
func (l *List[T]) InsertCount(pos Iterator[T], count int, v T) Iterator[T] {
	if !l.owns(pos) {
		return Iterator[T]{}
	}
	first := pos
	for i := 0; i < count; i++ {
		it := Iterator[T]{n: l.insertBefore(v, pos.n), list: l}
		if i == 0 {
			first = it
		}
	}
	return first
}

// InsertSlice inserts the elements of [vals] in order immediately before
// [pos] and returns an iterator to the first inserted element, or [pos]
// itself when [vals] is empty.
func (l *List[T]) InsertSlice(pos Iterator[T], vals []T) Iterator[T] {
	if !l.owns(pos) {
		return Iterator[T]{}
	}
	first := pos
	for i, v := range vals {
		it := Iterator[T]{n: l.insertBefore(v, pos.n), list: l}
		if i == 0 {
			first = it
		}
	}
	return first
}

// Erase removes the element at [pos] and returns an iterator to the
// following element, or End() if the removed element was last. Returns the
// invalid iterator when [pos] is End() or does not belong to this list.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if !l.owns(pos) || pos.n == &l.root {
		return Iterator[T]{}
	}
	next := pos.n.next
	l.cut(pos.n)
	return Iterator[T]{n: next, list: l}
}

// EraseRange removes the half-open range [first, last) and returns [last].
// An empty range is a no-op. Returns the invalid iterator when either bound
// does not belong to this list or [last] is not reachable from [first].
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	if !l.owns(first) || !l.owns(last) {
		return Iterator[T]{}
	}
	for first.n != last.n {
		if first.n == &l.root {
			return Iterator[T]{}
		}
		next := first.n.next
		l.cut(first.n)
		first.n = next
	}
	return last
}

// PushFront prepends [v] in O(1).
func (l *List[T]) PushFront(v T) {
	l.lazyInit()
	l.insertBefore(v, l.root.next)
}

// PushBack appends [v] in O(1).
func (l *List[T]) PushBack(v T) {
	l.lazyInit()
	l.insertBefore(v, &l.root)
}

// PopFront removes the first element in O(1). A no-op on an empty list.
func (l *List[T]) PopFront() {
	if l.len != 0 {
		l.cut(l.root.next)
	}
}

// PopBack removes the last element in O(1). A no-op on an empty list.
func (l *List[T]) PopBack() {
	if l.len != 0 {
		l.cut(l.root.prev)
	}
}

// Clear removes all elements. Clearing an empty list is a no-op.
func (l *List[T]) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

// Assign replaces the contents of the list with the elements of [vals].
func (l *List[T]) Assign(vals []T) {
	l.Clear()
	l.AppendSlice(vals)
}

// AssignCount replaces the contents of the list with [count] copies of [v].
func (l *List[T]) AssignCount(count int, v T) {
	l.Clear()
	for i := 0; i < count; i++ {
		l.PushBack(v)
	}
}

// Resize grows the list with zero values or shrinks it from the back until
// it holds [count] elements.
func (l *List[T]) Resize(count int) {
	l.ResizeWith(count, utils.Zero[T]())
}

// ResizeWith grows the list with copies of [v] or shrinks it from the back
// until it holds [count] elements.
func (l *List[T]) ResizeWith(count int, v T) {
	if count < 0 {
		count = 0
	}
	for l.len > count {
		l.PopBack()
	}
	for l.len < count {
		l.PushBack(v)
	}
}

// Swap exchanges the contents of the two lists in O(1). Swapping a list with
// itself is a no-op. Iterators keep referencing the nodes they referenced
// before the swap, which now belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	lFirst, lLast, lCount := l.detach()
	oFirst, oLast, oCount := other.detach()
	l.attachBefore(&l.root, oFirst, oLast, oCount)
	other.attachBefore(&other.root, lFirst, lLast, lCount)
}

// TakeFrom replaces the contents of [l] with the entire chain of [other],
// leaving [other] valid and empty. No element is copied. This is the move
// assignment of the container; a no-op when [other] is the receiver.
func (l *List[T]) TakeFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	first, last, count := other.detach()
	l.attachBefore(&l.root, first, last, count)
}

// Merge splices the entire chain of [other] onto the end of [l] in O(1),
// leaving [other] empty. Despite the name no ordering is imposed: this is
// pure concatenation. If [l] is empty, Merge behaves as Swap. Merging a list
// into itself is a no-op.
func (l *List[T]) Merge(other *List[T]) {
	if l == other {
		return
	}
	if l.len == 0 {
		l.Swap(other)
		return
	}
	first, last, count := other.detach()
	l.attachBefore(&l.root, first, last, count)
}

// Splice moves the entire chain of [other] in front of [pos], updating both
// lists' sizes, in O(1). Reports false, without mutating, when [pos] does
// not belong to this list or [other] is the receiver itself.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) bool {
	if l == other || !l.owns(pos) {
		return false
	}
	first, last, count := other.detach()
	l.attachBefore(pos.n, first, last, count)
	return true
}

// SpliceElement moves the single element at [it] out of [other] and relinks
// it in front of [pos]. Reports false, without mutating, when [pos] does not
// belong to this list, [it] does not belong to [other] or is its End(), or
// [other] is the receiver itself.
func (l *List[T]) SpliceElement(pos Iterator[T], other *List[T], it Iterator[T]) bool {
	if l == other || !l.owns(pos) || !other.owns(it) || it.n == &other.root {
		return false
	}
	n := it.n
	other.cut(n)
	l.attachBefore(pos.n, n, n, 1)
	return true
}

// SpliceRange moves the half-open range [first, last) out of [other] and
// relinks it in front of [pos], updating both lists' sizes. Reports false,
// without mutating, when the iterators do not belong to the expected lists,
// [last] is not reachable from [first], or [other] is the receiver itself.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) bool {
	if l == other || !l.owns(pos) || !other.owns(first) || !other.owns(last) {
		return false
	}
	count := 0
	for at := first.n; at != last.n; at = at.next {
		if at == &other.root {
			return false
		}
		count++
	}
	if count == 0 {
		return true
	}
	firstN, lastN := first.n, last.n.prev
	firstN.prev.next = last.n
	last.n.prev = firstN.prev
	other.len -= count
	l.attachBefore(pos.n, firstN, lastN, count)
	return true
}

// Remove deletes every element equal to [v] in one pass, preserving the
// relative order of the survivors. Returns the number of elements removed.
func (l *List[T]) Remove(v T) int {
	removed := 0
	for n := l.root.next; n != nil && n != &l.root; {
		next := n.next
		if n.value == v {
			l.cut(n)
			removed++
		}
		n = next
	}
	return removed
}

// Reverse reverses the order of the elements in place in O(n). A list with
// fewer than two elements is left unchanged.
func (l *List[T]) Reverse() {
	if l.len < 2 {
		return
	}
	n := &l.root
	for {
		n.next, n.prev = n.prev, n.next
		n = n.prev // the old next
		if n == &l.root {
			return
		}
	}
}

// Unique removes every element that is equal to any earlier element, keeping
// only the first occurrence of each value. This is global
// first-occurrence-wins deduplication, not the adjacent-only semantics of
// the standard sequence containers.
func (l *List[T]) Unique() {
	for n := l.root.next; n != nil && n != &l.root; n = n.next {
		for m := n.next; m != &l.root; {
			next := m.next
			if m.value == n.value {
				l.cut(m)
			}
			m = next
		}
	}
}

// Clone returns a deep copy of the list. The copy shares no nodes with [l];
// mutating one never affects the other.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for n := l.root.next; n != nil && n != &l.root; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Equal reports whether [l] and [other] hold equal elements in the same
// order. The sizes are compared first.
func (l *List[T]) Equal(other *List[T]) bool {
	if l.len != other.len {
		return false
	}
	n1, n2 := l.root.next, other.root.next
	for i := 0; i < l.len; i++ {
		if n1.value != n2.value {
			return false
		}
		n1, n2 = n1.next, n2.next
	}
	return true
}

// Append deep-copies every element of [other] onto the end of [l]. Appending
// a list to itself appends a copy of the elements held at the call.
func (l *List[T]) Append(other *List[T]) {
	if l == other {
		l.AppendSlice(other.Slice())
		return
	}
	for n := other.root.next; n != nil && n != &other.root; n = n.next {
		l.PushBack(n.value)
	}
}

// AppendSlice appends the elements of [vals] in order.
func (l *List[T]) AppendSlice(vals []T) {
	for _, v := range vals {
		l.PushBack(v)
	}
}

// Slice returns the contents of the list as a freshly allocated slice, in
// order.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.len)
	for n := l.root.next; n != nil && n != &l.root; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// Concat returns a new list holding the elements of [a] followed by the
// elements of [b]. Both inputs are deep-copied and left unchanged.
func Concat[T comparable](a, b *List[T]) *List[T] {
	c := a.Clone()
	c.Append(b)
	return c
}
