// Package sparsend is an in-memory sparse N-dimensional matrix: it behaves
// like a dense N-D array from the caller's side, but stores only the cells
// that were explicitly assigned a non-default value.
//
// 🚀 What is sparsend?
//
//	A small, deterministic library built around one container:
//		• Matrix[T]: ordered Coordinate→Value store with a configured default
//		• Reads of unassigned coordinates return the default — never an error
//		• Writing the default value erases the cell (size stays meaningful)
//		• Cursor: chained one-coordinate-at-a-time indexing, safe to branch
//		• Iteration: populated cells only, ascending coordinate order
//
// ✨ Why choose sparsend?
//
//   - Honest sparsity – Len() counts exactly the non-default cells
//   - Ordered walks – enumeration is lexicographic, not map-random
//   - Generic – any comparable element type, any dimensionality ≥ 2
//   - Fail-fast contracts – wrong arity panics; it never limps along
//
// Everything lives in one subpackage:
//
//	sparse/ — Matrix, Cursor, iteration, options & sentinel errors
//
// Quick taste (N=2, default 0):
//
//	m, _ := sparse.New[int](2, 0)
//	m.Set(7, 3, 4)            // m[3][4] = 7
//	_ = m.At(3, 4)            // 7
//	_ = m.At(8, 8)            // 0 — default, nothing stored
//	m.Set(0, 3, 4)            // erases the cell again
//
// See sparse/doc.go for the full contract and examples/ for a runnable tour.
//
//	go get github.com/katalvlaran/sparsend/sparse
package sparsend
