// SPDX-License-Identifier: MIT

// Package sparse: domain types shared across the matrix, cursor and
// iteration files. Errors live in errors.go and options in options.go per
// the package conventions.

package sparse

// MinDims is the smallest dimensionality a Matrix accepts. One-dimensional
// sparse vectors are out of scope; New rejects anything below this with
// ErrDimensionality.
const MinDims = 2

// Entry is one populated cell: its full coordinate and the stored value.
// Coord always has length Matrix.Dims() and is owned by the caller — the
// matrix hands out copies, never its internal key slices.
type Entry[T comparable] struct {
	Coord []int // full coordinate, len == Dims()
	Value T     // stored value, never equal to the matrix default
}

// cell is the internal B-tree item: a coordinate key plus its value.
// Keys inside one tree always share the same length, so lexicographic
// comparison never has to break ties on length.
type cell[T comparable] struct {
	key []int
	val T
}
