// SPDX-License-Identifier: MIT

// Package sparse - iteration over populated cells.
//
// All three surfaces share one contract: populated cells only, ascending
// lexicographic coordinate order, finite (bounded by Len() at entry), and
// restartable — each call starts a fresh enumeration. Mutating the matrix
// while an enumeration is in flight is undefined behavior; callers must
// finish (or abandon) the walk first.
//
// Coordinate slices handed to callbacks and iterators are per-entry copies;
// callers own them and may retain or mutate them freely.

package sparse

import (
	"iter"
	"slices"
)

// Do visits each populated cell in ascending coordinate order and calls
// f(coord, v); it stops early when f returns false.
// Complexity: O(S·N), Space O(N) per visited cell (coordinate copy).
func (m *Matrix[T]) Do(f func(coord []int, v T) bool) {
	m.tree.Ascend(func(c cell[T]) bool {
		return f(slices.Clone(c.key), c.val)
	})
}

// All returns a lazy enumerator over the populated cells, suitable for
// range-over-func:
//
//	for coord, v := range m.All() { ... }
//
// Each call yields a fresh, single-pass enumeration in ascending coordinate
// order; re-enumerate by calling All again. An empty matrix terminates
// immediately.
// Complexity: O(S·N) for a full walk.
func (m *Matrix[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		m.tree.Ascend(func(c cell[T]) bool {
			return yield(slices.Clone(c.key), c.val)
		})
	}
}

// Entries materializes the current populated cells as an ordered slice.
// The result is a snapshot: later matrix mutations do not affect it.
// Complexity: O(S·N), Space O(S·N).
func (m *Matrix[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, m.tree.Len())
	m.tree.Ascend(func(c cell[T]) bool {
		out = append(out, Entry[T]{Coord: slices.Clone(c.key), Value: c.val})

		return true
	})

	return out
}
