// SPDX-License-Identifier: MIT

// Package sparse - Cursor[T]: chained multi-step indexing.
//
// Purpose:
//   - Model m[a][b]…[z] as a builder: one coordinate per step, resolvable to
//     a cell only once all Dims() coordinates have been supplied.
//   - Share no mutable state: every Index step returns a fresh cursor with
//     its own copied buffer, so intermediate cursors may be held across
//     other expressions, branched into several suffixes, or used from
//     different goroutines (the Matrix itself still needs external locking
//     for writes).
//
// The cursor never creates store entries on its own; only Set does, through
// the matrix's single write path.

package sparse

import "fmt"

const (
	panicUnresolved = "sparse: cursor is not resolved"
	panicOverIndex  = "sparse: cursor is already resolved"
)

// Cursor accumulates one coordinate per Index step. It is immutable: Index
// never modifies the receiver. The zero Cursor is invalid; obtain one from
// Matrix.Index.
type Cursor[T comparable] struct {
	m     *Matrix[T] // owning matrix, borrowed for the cursor's lifetime
	coord []int      // coordinates supplied so far; owned by this cursor
}

// Index starts a chained indexing expression with its first coordinate.
// The returned cursor is in state "1 of Dims() supplied".
// Complexity: O(1).
func (m *Matrix[T]) Index(i int) *Cursor[T] {
	if i < 0 {
		panic(fmt.Sprintf("%s: component 0 is %d", panicNegative, i))
	}

	return &Cursor[T]{m: m, coord: []int{i}}
}

// Index supplies the next coordinate and returns a new cursor; the receiver
// is left untouched and remains usable (e.g. to branch a shared prefix).
// Panics when the cursor is already resolved — a chain of more than Dims()
// steps is a contract violation, not a runtime condition.
// Complexity: O(k) for k coordinates accumulated so far (buffer copy).
func (c *Cursor[T]) Index(i int) *Cursor[T] {
	if c.Resolved() {
		panic(fmt.Sprintf("%s: all %d coordinates supplied", panicOverIndex, c.m.dims))
	}
	if i < 0 {
		panic(fmt.Sprintf("%s: component %d is %d", panicNegative, len(c.coord), i))
	}

	// Fresh buffer per step: cursors never share coordinate storage.
	next := make([]int, len(c.coord)+1)
	copy(next, c.coord)
	next[len(c.coord)] = i

	return &Cursor[T]{m: c.m, coord: next}
}

// Depth returns how many coordinates have been supplied so far.
// Complexity: O(1).
func (c *Cursor[T]) Depth() int { return len(c.coord) }

// Resolved reports whether the cursor addresses a single cell, i.e. all
// Dims() coordinates have been supplied. Get and Set are legal only then.
// Complexity: O(1).
func (c *Cursor[T]) Resolved() bool { return len(c.coord) == c.m.dims }

// Get reads the addressed cell: the stored value, or the matrix default
// when the cell is absent. Panics when the cursor is not resolved.
// Complexity: O(N·log S).
func (c *Cursor[T]) Get() T {
	c.mustResolved()

	return c.m.At(c.coord...)
}

// Set writes v into the addressed cell through the matrix's write path,
// including erase-on-default. Panics when the cursor is not resolved.
// Complexity: O(N·log S).
func (c *Cursor[T]) Set(v T) {
	c.mustResolved()
	c.m.Set(v, c.coord...)
}

// mustResolved guards the terminal operations; reading or writing with
// fewer than Dims() coordinates is a contract violation.
func (c *Cursor[T]) mustResolved() {
	if !c.Resolved() {
		panic(fmt.Sprintf("%s: %d of %d coordinates supplied", panicUnresolved, len(c.coord), c.m.dims))
	}
}
