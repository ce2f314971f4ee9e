// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueueNew(t *testing.T) {
	require := require.New(t)

	q := New[int]()
	require.Zero(q.Len())
	require.True(q.Empty())

	_, ok := q.Pop()
	require.False(ok, "shouldn't have popped from an empty queue")
	_, ok = q.Front()
	require.False(ok)
	_, ok = q.Back()
	require.False(ok)
}

func TestQueueZeroValue(t *testing.T) {
	require := require.New(t)

	var q Queue[string]
	q.Push("a")
	q.Push("b")

	v, ok := q.Pop()
	require.True(ok)
	require.Equal("a", v)
	require.Equal(1, q.Len())
}

func TestQueueFIFO(t *testing.T) {
	require := require.New(t)

	q := Of(1, 2, 3)

	front, ok := q.Front()
	require.True(ok)
	require.Equal(1, front)

	back, ok := q.Back()
	require.True(ok)
	require.Equal(3, back)

	// Elements come out in insertion order.
	for _, expected := range []int{1, 2, 3} {
		v, ok := q.Pop()
		require.True(ok)
		require.Equal(expected, v)
	}
	require.True(q.Empty())

	// Draining resets head and tail together.
	q.Push(4)
	v, ok := q.Pop()
	require.True(ok)
	require.Equal(4, v)
	_, ok = q.Pop()
	require.False(ok)
}

func TestQueuePushSlice(t *testing.T) {
	require := require.New(t)

	q := New[int]()
	q.PushSlice([]int{1, 2})
	q.PushSlice(nil)
	q.PushSlice([]int{3})
	require.Equal([]int{1, 2, 3}, q.Slice())
}

func TestQueueClear(t *testing.T) {
	require := require.New(t)

	q := Of(1, 2, 3)
	q.Clear()
	require.True(q.Empty())

	q.Push(4)
	require.Equal([]int{4}, q.Slice())
}

func TestQueueSwap(t *testing.T) {
	require := require.New(t)

	q1 := Of(1, 2)
	q2 := Of(10, 20, 30)

	q1.Swap(q2)
	require.Equal([]int{10, 20, 30}, q1.Slice())
	require.Equal([]int{1, 2}, q2.Slice())

	// Self-swap is a no-op.
	q1.Swap(q1)
	require.Equal([]int{10, 20, 30}, q1.Slice())

	// The swapped-in tail must keep working.
	q2.Push(3)
	require.Equal([]int{1, 2, 3}, q2.Slice())
}

func TestQueueCloneEqual(t *testing.T) {
	require := require.New(t)

	q := Of(1, 2, 3)
	c := q.Clone()
	require.True(q.Equal(c))

	// The copy is independent of the original.
	c.Push(4)
	require.Equal([]int{1, 2, 3}, q.Slice())
	require.False(q.Equal(c))

	c.Pop()
	require.False(q.Equal(c), "same length, different elements")

	require.True(New[int]().Equal(New[int]()))
}

func Benchmark_Queue_PushPop(b *testing.B) {
	q := New[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
		q.Pop()
	}
}
