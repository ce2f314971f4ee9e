// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meterlist wraps a linked.List with prometheus metrics for its
// operations.
package meterlist

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/linear/linked"
	"github.com/ava-labs/linear/utils"
)

// List wraps a linked.List and counts its operations.
type List[T comparable] struct {
	metrics metrics
	list    *linked.List[T]
}

// New returns a new empty metered list whose metrics are registered on
// [registerer] under [namespace].
func New[T comparable](
	namespace string,
	registerer prometheus.Registerer,
) (*List[T], error) {
	meterList := &List[T]{
		list: linked.New[T](),
	}
	return meterList, meterList.metrics.Initialize(namespace, registerer)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.list.Len()
}

// PushFront prepends [v].
func (l *List[T]) PushFront(v T) {
	l.list.PushFront(v)
	l.metrics.push.Inc()
	l.metrics.size.Set(float64(l.list.Len()))
}

// PushBack appends [v].
func (l *List[T]) PushBack(v T) {
	l.list.PushBack(v)
	l.metrics.push.Inc()
	l.metrics.size.Set(float64(l.list.Len()))
}

// PopFront removes and returns the first element. Reports false when the
// list is empty.
func (l *List[T]) PopFront() (T, bool) {
	v, ok := l.list.Front()
	if !ok {
		return utils.Zero[T](), false
	}
	l.list.PopFront()
	l.metrics.pop.Inc()
	l.metrics.size.Set(float64(l.list.Len()))
	return v, true
}

// PopBack removes and returns the last element. Reports false when the list
// is empty.
func (l *List[T]) PopBack() (T, bool) {
	v, ok := l.list.Back()
	if !ok {
		return utils.Zero[T](), false
	}
	l.list.PopBack()
	l.metrics.pop.Inc()
	l.metrics.size.Set(float64(l.list.Len()))
	return v, true
}

// Front returns the first element. Reports false when the list is empty.
func (l *List[T]) Front() (T, bool) {
	return l.list.Front()
}

// Back returns the last element. Reports false when the list is empty.
func (l *List[T]) Back() (T, bool) {
	return l.list.Back()
}

// Merge concatenates the entire contents of [other] onto the end of the
// list, leaving [other] empty.
func (l *List[T]) Merge(other *List[T]) {
	if l == other {
		return
	}
	l.list.Merge(other.list)
	l.metrics.splice.Inc()
	l.metrics.size.Set(float64(l.list.Len()))
	other.metrics.size.Set(float64(other.list.Len()))
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.list.Clear()
	l.metrics.clear.Inc()
	l.metrics.size.Set(0)
}

// Slice returns the contents of the list as a slice, in order.
func (l *List[T]) Slice() []T {
	return l.list.Slice()
}
