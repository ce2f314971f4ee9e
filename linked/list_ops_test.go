// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListReverse(t *testing.T) {
	require := require.New(t)

	l := Of(1, 2, 3, 4, 5)
	l.Reverse()
	require.Equal([]int{5, 4, 3, 2, 1}, l.Slice())
	requireValidList(t, l)

	// Reversing twice restores the original order.
	l.Reverse()
	require.Equal([]int{1, 2, 3, 4, 5}, l.Slice())

	// Lists shorter than two elements are unchanged.
	single := Of(7)
	single.Reverse()
	require.Equal([]int{7}, single.Slice())

	empty := New[int]()
	empty.Reverse()
	require.True(empty.Empty())
	requireValidList(t, empty)

	even := Of(1, 2)
	even.Reverse()
	require.Equal([]int{2, 1}, even.Slice())
	requireValidList(t, even)
}

func TestListRemove(t *testing.T) {
	require := require.New(t)

	l := Of(1, 2, 1, 3, 1)
	require.Equal(3, l.Remove(1))
	require.Equal([]int{2, 3}, l.Slice())
	requireValidList(t, l)

	// Removing an absent value reports zero.
	require.Zero(l.Remove(9))
	require.Equal([]int{2, 3}, l.Slice())

	// Removing everything leaves a usable empty list.
	all := Of(4, 4, 4)
	require.Equal(3, all.Remove(4))
	require.True(all.Empty())
	all.PushBack(5)
	require.Equal([]int{5}, all.Slice())
	requireValidList(t, all)
}

func TestListUnique(t *testing.T) {
	require := require.New(t)

	// Duplicates are removed globally, keeping the first occurrence.
	l := Of(1, 4, 2, 3, 2, 4, 3, 5, 1)
	l.Unique()
	require.Equal([]int{1, 4, 2, 3, 5}, l.Slice())
	requireValidList(t, l)

	// A list without duplicates is unchanged.
	l.Unique()
	require.Equal([]int{1, 4, 2, 3, 5}, l.Slice())

	runs := Of(1, 1, 1, 2, 2, 3)
	runs.Unique()
	require.Equal([]int{1, 2, 3}, runs.Slice())

	same := Of(7, 7, 7, 7)
	same.Unique()
	require.Equal([]int{7}, same.Slice())

	empty := New[int]()
	empty.Unique()
	require.True(empty.Empty())
	requireValidList(t, empty)
}

func TestListEqual(t *testing.T) {
	require := require.New(t)

	require.True(Of(1, 2, 3).Equal(Of(1, 2, 3)))
	require.False(Of(1, 2, 3).Equal(Of(1, 2, 4)))
	require.False(Of(1, 2, 3).Equal(Of(1, 2)))
	require.True(New[int]().Equal(New[int]()))

	l := Of(1, 2, 3)
	require.True(l.Equal(l))
}

func TestListCompare(t *testing.T) {
	require := require.New(t)

	require.Zero(Compare(Of(1, 2, 3), Of(1, 2, 3)))

	// The first differing element decides.
	require.Equal(-1, Compare(Of(1, 2, 3, 4, 5), Of(10, 20, 30, 40, 50)))
	require.Equal(1, Compare(Of(10, 20, 30, 40, 50), Of(1, 2, 3, 4, 5)))
	require.Equal(-1, Compare(Of(1, 2, 3), Of(1, 2, 4)))

	// A proper prefix orders before the longer list.
	require.Equal(-1, Compare(Of(1, 2), Of(1, 2, 3)))
	require.Equal(1, Compare(Of(1, 2, 3), Of(1, 2)))

	require.Equal(-1, Compare(New[int](), Of(1)))
	require.Zero(Compare(New[int](), New[int]()))
}

func TestListLess(t *testing.T) {
	require := require.New(t)

	require.True(Less(Of(1, 2, 3, 4, 5), Of(10, 20, 30, 40, 50)))
	require.False(Less(Of(10, 20, 30, 40, 50), Of(1, 2, 3, 4, 5)))
	require.False(Less(Of(1, 2, 3), Of(1, 2, 3)))
	require.True(Less(Of("ab"), Of("b")))
}

func TestListAppend(t *testing.T) {
	require := require.New(t)

	l1 := Of(1, 2)
	l2 := Of(3, 4)

	l1.Append(l2)
	require.Equal([]int{1, 2, 3, 4}, l1.Slice())
	require.Equal([]int{3, 4}, l2.Slice(), "Append must not drain the argument")
	requireValidList(t, l1)

	// Appending a list to itself doubles its contents.
	l2.Append(l2)
	require.Equal([]int{3, 4, 3, 4}, l2.Slice())
	requireValidList(t, l2)

	l1.AppendSlice([]int{5, 6})
	require.Equal([]int{1, 2, 3, 4, 5, 6}, l1.Slice())
}

func TestListConcat(t *testing.T) {
	require := require.New(t)

	a := Of(1, 2)
	b := Of(3, 4)

	c := Concat(a, b)
	require.Equal([]int{1, 2, 3, 4}, c.Slice())
	require.Equal([]int{1, 2}, a.Slice(), "Concat must not mutate its inputs")
	require.Equal([]int{3, 4}, b.Slice())
	requireValidList(t, c)

	// The result shares no nodes with the inputs.
	c.Set(0, 9)
	require.Equal([]int{1, 2}, a.Slice())
}
