// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linked

import "golang.org/x/exp/constraints"

// Compare compares [a] and [b] elementwise in lexicographic order, with the
// shorter list ordering first when one is a prefix of the other. The result
// is -1 when a < b, 0 when the lists are equal, and +1 when a > b, following
// the convention of slices.Compare.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	ai, bi := a.Begin(), b.Begin()
	for ai != a.End() && bi != b.End() {
		av, bv := ai.Value(), bi.Value()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		ai = ai.Next()
		bi = bi.Next()
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	default:
		return 0
	}
}

// Less reports whether [a] orders strictly before [b] under Compare.
func Less[T constraints.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}
