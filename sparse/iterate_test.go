// SPDX-License-Identifier: MIT

package sparse_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/sparsend/sparse"
	"github.com/stretchr/testify/require"
)

func TestIterate_AscendingLexOrderNoDuplicates(t *testing.T) {
	m := mustNew(t, 2, 0)
	fillCross(m)

	coords := collectCoords(m)
	require.Len(t, coords, m.Len())
	for i := 1; i < len(coords); i++ {
		require.Negative(t, slices.Compare(coords[i-1], coords[i]),
			"coordinates must be strictly ascending at position %d", i)
	}
}

func TestIterate_EmptyMatrixTerminatesImmediately(t *testing.T) {
	m := mustNew(t, 2, 0)

	visited := 0
	for range m.All() {
		visited++
	}
	require.Zero(t, visited)
	require.Empty(t, m.Entries())
	m.Do(func([]int, int) bool {
		t.Fatal("Do must not visit anything on an empty matrix")

		return false
	})
}

func TestIterate_AllYieldsCoordValuePairs(t *testing.T) {
	m := mustNew(t, 3, 0)
	m.Set(1, 0, 0, 1)
	m.Set(2, 0, 1, 0)
	m.Set(3, 1, 0, 0)

	var got []sparse.Entry[int]
	for coord, v := range m.All() {
		got = append(got, sparse.Entry[int]{Coord: coord, Value: v})
	}
	want := []sparse.Entry[int]{
		{Coord: []int{0, 0, 1}, Value: 1},
		{Coord: []int{0, 1, 0}, Value: 2},
		{Coord: []int{1, 0, 0}, Value: 3},
	}
	require.Equal(t, want, got)
	require.Equal(t, want, m.Entries())
}

func TestIterate_AllSupportsEarlyBreak(t *testing.T) {
	m := mustNew(t, 2, 0)
	fillCross(m)

	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)

	// A fresh call restarts from the first entry (restartable, not resumable).
	first := m.Entries()[0]
	for coord, v := range m.All() {
		require.Equal(t, first.Coord, coord)
		require.Equal(t, first.Value, v)

		break
	}
}

func TestIterate_DoStopsEarly(t *testing.T) {
	m := mustNew(t, 2, 0)
	fillCross(m)

	visited := 0
	m.Do(func([]int, int) bool {
		visited++

		return visited < 5
	})
	require.Equal(t, 5, visited)
}

func TestIterate_YieldedCoordsAreCopies(t *testing.T) {
	m := mustNew(t, 2, 0)
	m.Set(1, 2, 3)

	m.Do(func(coord []int, _ int) bool {
		coord[0] = 999 // clobbering the yielded slice must not touch the store

		return true
	})
	require.Equal(t, 1, m.At(2, 3))
	require.Equal(t, []int{2, 3}, m.Entries()[0].Coord)
}

func TestIterate_EntriesIsSnapshot(t *testing.T) {
	m := mustNew(t, 2, 0)
	m.Set(1, 1, 1)
	snap := m.Entries()

	m.Set(2, 2, 2)
	m.Set(0, 1, 1) // erase the snapshotted cell
	require.Len(t, snap, 1)
	require.Equal(t, []int{1, 1}, snap[0].Coord)
	require.Equal(t, 1, snap[0].Value)
}
