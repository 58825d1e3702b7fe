// Package sparse implements a sparse, fixed-dimensionality N-D matrix:
// an ordered Coordinate→Value mapping that presents itself as an unbounded
// dense array with a configured default value.
//
// What:
//
//   - Matrix[T] stores only explicitly assigned, non-default cells; reading
//     any other coordinate yields the default value, never an error.
//   - Writing the default value to a coordinate erases its cell, so Len()
//     always equals the number of genuinely populated cells.
//   - Cursor[T] models chained indexing m[a][b]…[z]: one coordinate per
//     step, read/write only once all N coordinates are supplied. Every step
//     returns a fresh cursor with its own buffer; intermediate cursors may
//     be held and branched freely.
//   - Iteration (All, Do, Entries) visits populated cells only, in
//     ascending lexicographic coordinate order.
//
// Why:
//
//   - Huge logical grids with few live cells: game boards, score tables,
//     adjacency-like tallies, N-way counters.
//   - Deterministic ordered dumps without sorting at the call site.
//
// Complexity:
//
//   - At/Set/Has: O(N·log S) for S stored cells (B-tree lookup with
//     component-wise key comparison).
//   - Len: O(1). Iteration: O(S). Clone: O(1) (copy-on-write).
//
// Options:
//
//   - WithDegree: B-tree branching factor (default DefaultDegree).
//
// Errors:
//
//   - ErrDimensionality: construction with fewer than MinDims dimensions.
//   - Wrong coordinate arity, negative components, reading or writing an
//     unresolved Cursor: programmer errors — these panic with stable
//     messages instead of returning.
//
// Concurrency: a Matrix is not safe for concurrent use; guard shared
// instances externally. Cursors share no mutable state with each other.
// Mutating the matrix while iterating it is undefined behavior.
package sparse
