// SPDX-License-Identifier: MIT

// Package sparse - Matrix[T]: the sparse store and its fixed-arity surface.
//
// Purpose:
//   - Own the ordered Coordinate→Value store (B-tree, lexicographic keys).
//   - Guarantee the sparsity invariant at the single write path: a stored
//     cell never holds the default value (Set erases instead).
//   - Keep the public surface total over valid coordinates: At never fails,
//     Set always succeeds, absent keys read as the default.
//   - Fail fast on contract violations (wrong arity, negative components)
//     with stable panic messages — never proceed with a partial coordinate.
//
// Complexity quicksheet:
//   - New: O(1); At/Set/Has: O(N·log S); Len: O(1); Clone: O(1) (COW);
//     Clear: O(S) teardown.

package sparse

import (
	"fmt"
	"slices"

	"github.com/google/btree"
)

// ---------- contract-violation panic messages ----------

const (
	panicArity    = "sparse: coordinate arity mismatch"
	panicNegative = "sparse: negative coordinate component"
)

// Matrix is a sparse N-dimensional matrix over element type T.
//   - dims is the fixed dimensionality N (≥ MinDims), set at construction.
//   - def is the default value: returned for unassigned coordinates and
//     never stored (assigning it deletes the cell).
//   - tree holds the populated cells keyed by coordinate, ordered
//     lexicographically; this order is observable through iteration.
//
// A Matrix is not safe for concurrent use.
type Matrix[T comparable] struct {
	dims int               // dimensionality N, fixed for the lifetime
	def  T                 // default value, fixed for the lifetime
	tree *btree.BTreeG[cell[T]] // ordered store of non-default cells
}

// New creates an empty sparse matrix of the given dimensionality.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimensionality validation; the default
//     value and dimensionality are fixed for the instance's lifetime.
//
// Implementation:
//   - Stage 1: validate dims ≥ MinDims; else ErrDimensionality.
//   - Stage 2: resolve options (gatherOptions).
//   - Stage 3: allocate the B-tree with a lexicographic less over keys.
//
// Behavior highlights:
//   - No panics on user errors; returns a sentinel error.
//   - The matrix starts empty: Len()==0, every read yields defaultValue.
//
// Inputs:
//   - dims: number of coordinate components, ≥ MinDims.
//   - defaultValue: value reported for unassigned coordinates.
//   - opts: optional tuning (WithDegree).
//
// Returns:
//   - *Matrix[T]: empty matrix.
//
// Errors:
//   - ErrDimensionality when dims < MinDims.
//
// Determinism:
//   - Iteration order is a function of the stored keys alone; the tree
//     degree never changes observable behavior.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T comparable](dims int, defaultValue T, opts ...Option) (*Matrix[T], error) {
	// Validate dimensionality once; it can never change afterwards.
	if dims < MinDims {
		return nil, ErrDimensionality
	}
	o := gatherOptions(opts...)

	// Keys inside one tree share the same length, so plain lexicographic
	// component comparison is a total order.
	less := func(a, b cell[T]) bool { return slices.Compare(a.key, b.key) < 0 }

	return &Matrix[T]{
		dims: dims,
		def:  defaultValue,
		tree: btree.NewG(o.degree, less),
	}, nil
}

// Dims returns the fixed dimensionality N. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Dims() int { return m.dims }

// Default returns the configured default value. No side effects.
// Complexity: O(1).
func (m *Matrix[T]) Default() T { return m.def }

// Len returns the number of populated (non-default) cells.
// Complexity: O(1).
func (m *Matrix[T]) Len() int { return m.tree.Len() }

// At returns the value at the given coordinate, or the default value when
// the coordinate was never assigned (or was assigned the default).
// MAIN DESCRIPTION:
//   - Total read over valid coordinates; never fails, never mutates.
//
// Implementation:
//   - Stage 1: checkCoord (arity + non-negativity; panics on violation).
//   - Stage 2: probe the tree; absent key ⇒ default value.
//
// Inputs:
//   - coord: exactly Dims() non-negative components.
//
// Returns:
//   - T: stored value, or the default when absent.
//
// Complexity:
//   - Time O(N·log S), Space O(1).
func (m *Matrix[T]) At(coord ...int) T {
	m.checkCoord(coord)
	if c, ok := m.tree.Get(cell[T]{key: coord}); ok {
		return c.val
	}

	return m.def
}

// Set assigns v at the given coordinate. Assigning the default value erases
// the cell (a no-op when the cell is absent); any other value inserts or
// overwrites.
// MAIN DESCRIPTION:
//   - The single write path; enforces the "no stored default" invariant.
//
// Implementation:
//   - Stage 1: checkCoord (arity + non-negativity; panics on violation).
//   - Stage 2: v == default ⇒ Delete (idempotent).
//   - Stage 3: otherwise clone the coordinate and ReplaceOrInsert.
//
// Behavior highlights:
//   - Always succeeds; there is no recoverable-error category here.
//   - The coordinate slice is copied on insert, so callers may reuse their
//     argument buffer freely.
//
// Inputs:
//   - v: value to store; coord: exactly Dims() non-negative components.
//
// Complexity:
//   - Time O(N·log S), Space O(N) on insert.
func (m *Matrix[T]) Set(v T, coord ...int) {
	m.checkCoord(coord)
	// Erase-on-default keeps Len() and iteration meaningful.
	if v == m.def {
		m.tree.Delete(cell[T]{key: coord})

		return
	}
	m.tree.ReplaceOrInsert(cell[T]{key: slices.Clone(coord), val: v})
}

// Has reports whether the coordinate holds an explicitly stored value.
// Unlike At, it distinguishes "stored default-equal? impossible" from
// "absent": a true result means a non-default value is present.
// Complexity: O(N·log S).
func (m *Matrix[T]) Has(coord ...int) bool {
	m.checkCoord(coord)

	return m.tree.Has(cell[T]{key: coord})
}

// Clone returns an independent copy sharing no observable state with the
// receiver: same dimensionality, same default, same cells at the moment of
// the call.
// Implementation:
//   - Copy-on-write tree clone; later writes to either side diverge lazily.
//
// Complexity: O(1) now, amortized O(S) across subsequent writes.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		dims: m.dims,
		def:  m.def, // default travels with the clone
		tree: m.tree.Clone(),
	}
}

// Clear removes every cell, returning the matrix to its freshly-constructed
// state. Dimensionality and default value are retained.
// Complexity: O(S).
func (m *Matrix[T]) Clear() {
	m.tree.Clear(false)
}

// checkCoord validates arity and non-negativity of a coordinate.
// Violations are programmer errors (contract violations), so this panics
// with a stable message instead of returning — the matrix must never
// operate on a partial or malformed coordinate.
// Complexity: O(N).
func (m *Matrix[T]) checkCoord(coord []int) {
	if len(coord) != m.dims {
		panic(fmt.Sprintf("%s: got %d components, want %d", panicArity, len(coord), m.dims))
	}
	for i, c := range coord {
		if c < 0 {
			panic(fmt.Sprintf("%s: component %d is %d", panicNegative, i, c))
		}
	}
}
