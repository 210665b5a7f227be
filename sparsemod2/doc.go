// Package sparsemod2 provides an orthogonally linked sparse binary matrix:
// every nonzero entry can be traversed in row-major or column-major order,
// and from any entry its row/column neighbors are reachable in O(1).
//
// Unlike a pointer-based doubly linked list, entries and sentinels live in a
// single contiguous arena ([]entry) indexed by int32. Four link fields per
// entry (rowNext, rowPrev, colNext, colPrev) replace pointers, avoiding
// reference cycles while preserving O(1) bidirectional traversal in both
// directions. Each row and each column owns one sentinel entry marking the
// end of its list.
//
// Message state (bit-to-check, check-to-bit, a sign accumulator) lives on
// the entry itself rather than in a side array indexed by nonzero position:
// belief-propagation kernels write a partial sweep result into an entry's
// own slot and read it back during the complementary sweep, so the message
// storage must be addressable by entry index, not recomputed from (row,col).
//
// Complexity: construction is O(nnz + rows + cols) plus a per-row/per-column
// insertion sort (see NewMatrix); MulVec is O(nnz); traversal primitives
// are O(1) per step.
package sparsemod2
