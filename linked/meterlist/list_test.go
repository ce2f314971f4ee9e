// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterlist

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMeterListNew(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	l, err := New[int]("test", registry)
	require.NoError(err)
	require.Zero(l.Len())

	// Registering the same namespace twice must fail.
	_, err = New[int]("test", registry)
	require.Error(err)

	// A different namespace on the same registry is fine.
	_, err = New[int]("other", registry)
	require.NoError(err)
}

func TestMeterListPushPop(t *testing.T) {
	require := require.New(t)

	l, err := New[int]("test", prometheus.NewRegistry())
	require.NoError(err)

	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)
	require.Equal([]int{1, 2, 3}, l.Slice())
	require.Equal(float64(3), testutil.ToFloat64(l.metrics.push))
	require.Equal(float64(3), testutil.ToFloat64(l.metrics.size))

	v, ok := l.PopFront()
	require.True(ok)
	require.Equal(1, v)

	v, ok = l.PopBack()
	require.True(ok)
	require.Equal(3, v)
	require.Equal(float64(2), testutil.ToFloat64(l.metrics.pop))
	require.Equal(float64(1), testutil.ToFloat64(l.metrics.size))

	front, ok := l.Front()
	require.True(ok)
	require.Equal(2, front)
	back, ok := l.Back()
	require.True(ok)
	require.Equal(2, back)

	_, ok = l.PopFront()
	require.True(ok)

	// Pops on an empty list report failure and are not counted.
	_, ok = l.PopFront()
	require.False(ok)
	_, ok = l.PopBack()
	require.False(ok)
	require.Equal(float64(3), testutil.ToFloat64(l.metrics.pop))
	require.Equal(float64(0), testutil.ToFloat64(l.metrics.size))
}

func TestMeterListMerge(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	l1, err := New[int]("l1", registry)
	require.NoError(err)
	l2, err := New[int]("l2", registry)
	require.NoError(err)

	l1.PushBack(1)
	l1.PushBack(2)
	l2.PushBack(10)

	l1.Merge(l2)
	require.Equal([]int{1, 2, 10}, l1.Slice())
	require.Zero(l2.Len())
	require.Equal(float64(1), testutil.ToFloat64(l1.metrics.splice))
	require.Equal(float64(3), testutil.ToFloat64(l1.metrics.size))
	require.Equal(float64(0), testutil.ToFloat64(l2.metrics.size))

	// Self-merge is a no-op.
	l1.Merge(l1)
	require.Equal(3, l1.Len())
	require.Equal(float64(1), testutil.ToFloat64(l1.metrics.splice))
}

func TestMeterListClear(t *testing.T) {
	require := require.New(t)

	l, err := New[int]("test", prometheus.NewRegistry())
	require.NoError(err)

	l.PushBack(1)
	l.PushBack(2)
	l.Clear()
	require.Zero(l.Len())
	require.Equal(float64(1), testutil.ToFloat64(l.metrics.clear))
	require.Equal(float64(0), testutil.ToFloat64(l.metrics.size))
}
