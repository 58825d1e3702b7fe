// SPDX-License-Identifier: MIT

// Package sparse_test: shared fixtures for the sparse test suite.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsend/sparse"
	"github.com/stretchr/testify/require"
)

// mustNew builds a matrix or fails the test; keeps call sites terse.
func mustNew[T comparable](t *testing.T, dims int, def T, opts ...sparse.Option) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.New(dims, def, opts...)
	require.NoError(t, err)

	return m
}

// fillCross writes the reference diagonal/anti-diagonal pattern on a 2-D
// matrix with default 0: v=i at (i,i) and at (i,9-i) for i in 0..9.
// The i=0 writes carry the default value and therefore store nothing, so
// the populated count after fillCross is 18.
func fillCross(m *sparse.Matrix[int]) {
	for i := 0; i < 10; i++ {
		m.Set(i, i, i)
		m.Set(i, i, 9-i)
	}
}

// collectCoords runs a full enumeration and returns the visited coordinates
// in visit order.
func collectCoords(m *sparse.Matrix[int]) [][]int {
	var out [][]int
	m.Do(func(coord []int, _ int) bool {
		out = append(out, coord)

		return true
	})

	return out
}
