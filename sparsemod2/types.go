package sparsemod2

import "errors"

// Sentinel errors for sparsemod2 operations. Prefixed with the package name
// so matched errors are legible when logged or wrapped further upstream.
var (
	// ErrInvalidMatrix indicates a bad shape, an out-of-range nonzero index,
	// or a duplicate nonzero position supplied to NewMatrix.
	ErrInvalidMatrix = errors.New("sparsemod2: invalid matrix")

	// ErrOutOfRange indicates a row or column index outside [0, n_rows) /
	// [0, n_cols).
	ErrOutOfRange = errors.New("sparsemod2: index out of range")

	// ErrLengthMismatch indicates a vector argument (e.g. to MulVec) whose
	// length does not match the matrix's declared shape.
	ErrLengthMismatch = errors.New("sparsemod2: vector length mismatch")
)

// entry is one arena slot: either a real nonzero (Row, Col, message state,
// all four link fields meaningful) or a sentinel (only the link fields for
// the single list it terminates are meaningful; the other pair is unused
// and left at -1).
//
// Entries are allocated once at construction and never freed or moved for
// the lifetime of the Matrix; message fields are mutated in place by BP
// kernels and reset between runs via ResetMessages.
type entry struct {
	Row, Col int // coordinates; -1 on sentinels

	// Message state, mutable during decoding. Reset by ResetMessages.
	BitToCheck  float64 // bit-to-check message (ratio or LLR, kernel-dependent)
	CheckToBit  float64 // check-to-bit message
	Sign        int     // sign accumulator, used by the min-sum kernel

	rowNext, rowPrev int32 // row-list links; -1 if this entry has no row list
	colNext, colPrev int32 // column-list links; -1 if this entry has no column list
}

// Matrix is an orthogonally linked sparse binary matrix of shape m×n. It
// stores only the positions of 1-valued entries; every nonzero carries the
// mutable message state BP kernels read and write in place.
//
// A Matrix is not safe for concurrent decode calls: message state lives on
// the shared entries. Independent decoders over the same parity-check
// structure must each own a separate Matrix built from the same nonzero
// list.
type Matrix struct {
	rows, cols int
	nnz        int

	arena []entry // [0:nnz) real entries, [nnz:nnz+rows) row sentinels, [nnz+rows:nnz+rows+cols) column sentinels
}

// Rows returns the declared row count m.
func (mat *Matrix) Rows() int { return mat.rows }

// Cols returns the declared column count n.
func (mat *Matrix) Cols() int { return mat.cols }

// NNZ returns the number of stored nonzero entries.
func (mat *Matrix) NNZ() int { return mat.nnz }

// rowHead returns the arena index of row i's sentinel.
func (mat *Matrix) rowHead(i int) int32 { return int32(mat.nnz + i) }

// colHead returns the arena index of column j's sentinel.
func (mat *Matrix) colHead(j int) int32 { return int32(mat.nnz + mat.rows + j) }
