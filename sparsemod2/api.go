package sparsemod2

import "fmt"

// sparsemod2Errorf wraps an underlying error with a short operation tag,
// matching the matrixErrorf / denseErrorf convention used by sibling
// linear-algebra packages in this module.
func sparsemod2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewMatrix builds an m×n Matrix from a list of nonzero (row, col)
// coordinates.
//
// Stage 1 (Validate): shape must be positive; every coordinate must lie in
// range and no coordinate may repeat.
// Stage 2 (Prepare): bucket nonzeros per row and per column, sorted by the
// orthogonal coordinate so traversal order is strictly increasing.
// Stage 3 (Execute): allocate the arena and stitch the four link fields.
// Stage 4 (Finalize): return the Matrix or a wrapped ErrInvalidMatrix.
//
// Complexity: O(nnz + rows + cols) plus an O(d^2) insertion sort of each
// row/column bucket of degree d; O(nnz + rows + cols) space for the arena.
func NewMatrix(rows, cols int, nonzeros [][2]int) (*Matrix, error) {
	// Stage 1: validate shape
	if rows <= 0 || cols <= 0 {
		return nil, sparsemod2Errorf("NewMatrix", fmt.Errorf("shape %dx%d must be positive: %w", rows, cols, ErrInvalidMatrix))
	}

	nnz := len(nonzeros)
	seen := make(map[int64]struct{}, nnz)
	byRow := make([][]int, rows)
	byCol := make([][]int, cols)

	// Stage 1/2: validate each coordinate and bucket its future arena index.
	for idx, rc := range nonzeros {
		r, c := rc[0], rc[1]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return nil, sparsemod2Errorf("NewMatrix", fmt.Errorf("nonzero (%d,%d) out of %dx%d: %w", r, c, rows, cols, ErrInvalidMatrix))
		}
		key := int64(r)*int64(cols) + int64(c)
		if _, dup := seen[key]; dup {
			return nil, sparsemod2Errorf("NewMatrix", fmt.Errorf("duplicate nonzero (%d,%d): %w", r, c, ErrInvalidMatrix))
		}
		seen[key] = struct{}{}
		byRow[r] = append(byRow[r], idx)
		byCol[c] = append(byCol[c], idx)
	}

	// Stage 2: sort each row's bucket by column, each column's bucket by row.
	for r := 0; r < rows; r++ {
		sortByCoord(byRow[r], nonzeros, false)
	}
	for c := 0; c < cols; c++ {
		sortByCoord(byCol[c], nonzeros, true)
	}

	// Stage 3: allocate the arena: [0:nnz) entries, then row sentinels, then column sentinels.
	arena := make([]entry, nnz+rows+cols)
	for idx, rc := range nonzeros {
		arena[idx] = entry{Row: rc[0], Col: rc[1], rowNext: -1, rowPrev: -1, colNext: -1, colPrev: -1}
	}
	for r := 0; r < rows; r++ {
		arena[nnz+r] = entry{Row: r, Col: -1, colNext: -1, colPrev: -1}
	}
	for c := 0; c < cols; c++ {
		arena[nnz+rows+c] = entry{Row: -1, Col: c, rowNext: -1, rowPrev: -1}
	}

	mat := &Matrix{rows: rows, cols: cols, nnz: nnz, arena: arena}

	// Stage 3: stitch row lists (circular, via each row's sentinel).
	for r := 0; r < rows; r++ {
		head := mat.rowHead(r)
		stitchCircular(arena, head, byRow[r], true)
	}
	// Stage 3: stitch column lists (circular, via each column's sentinel).
	for c := 0; c < cols; c++ {
		head := mat.colHead(c)
		stitchCircular(arena, head, byCol[c], false)
	}

	// Stage 4: return the fully linked Matrix.
	return mat, nil
}

// sortByCoord sorts idxs (indices into nonzeros) by the row coordinate when
// byRowCoord is true, or by the column coordinate otherwise. Simple
// insertion sort: row/column degree in an LDPC check matrix is small, so
// O(d^2) per bucket is negligible next to the O(nnz) total work.
func sortByCoord(idxs []int, nonzeros [][2]int, byRowCoord bool) {
	for i := 1; i < len(idxs); i++ {
		j := i
		for j > 0 {
			var a, b int
			if byRowCoord {
				a, b = nonzeros[idxs[j-1]][0], nonzeros[idxs[j]][0]
			} else {
				a, b = nonzeros[idxs[j-1]][1], nonzeros[idxs[j]][1]
			}
			if a <= b {
				break
			}
			idxs[j-1], idxs[j] = idxs[j], idxs[j-1]
			j--
		}
	}
}

// stitchCircular links sentinel→idxs[0]→idxs[1]→...→sentinel and the
// matching reverse chain, writing into either the row or the column link
// fields of each participating entry depending on forRow.
func stitchCircular(arena []entry, head int32, idxs []int, forRow bool) {
	prev := head
	for _, idx := range idxs {
		cur := int32(idx)
		if forRow {
			arena[prev].rowNext = cur
			arena[cur].rowPrev = prev
		} else {
			arena[prev].colNext = cur
			arena[cur].colPrev = prev
		}
		prev = cur
	}
	if forRow {
		arena[prev].rowNext = head
		arena[head].rowPrev = prev
	} else {
		arena[prev].colNext = head
		arena[head].colPrev = prev
	}
}

// AtEnd reports whether e refers to a sentinel (the end of a row or column
// traversal), as opposed to a real nonzero entry.
//
// Complexity: O(1).
func (mat *Matrix) AtEnd(e int32) bool {
	return e >= int32(mat.nnz)
}

// FirstInRow returns the first entry of row i in increasing column order,
// or a sentinel (AtEnd returns true) if row i has no nonzeros.
//
// Complexity: O(1).
func (mat *Matrix) FirstInRow(i int) int32 { return mat.arena[mat.rowHead(i)].rowNext }

// LastInRow returns the last entry of row i in increasing column order, or
// a sentinel if row i is empty.
//
// Complexity: O(1).
func (mat *Matrix) LastInRow(i int) int32 { return mat.arena[mat.rowHead(i)].rowPrev }

// NextInRow returns the entry following e within e's row, or that row's
// sentinel if e is the last entry.
//
// Complexity: O(1).
func (mat *Matrix) NextInRow(e int32) int32 { return mat.arena[e].rowNext }

// PrevInRow returns the entry preceding e within e's row, or that row's
// sentinel if e is the first entry.
//
// Complexity: O(1).
func (mat *Matrix) PrevInRow(e int32) int32 { return mat.arena[e].rowPrev }

// FirstInCol returns the first entry of column j in increasing row order,
// or a sentinel if column j has no nonzeros.
//
// Complexity: O(1).
func (mat *Matrix) FirstInCol(j int) int32 { return mat.arena[mat.colHead(j)].colNext }

// LastInCol returns the last entry of column j in increasing row order, or
// a sentinel if column j is empty.
//
// Complexity: O(1).
func (mat *Matrix) LastInCol(j int) int32 { return mat.arena[mat.colHead(j)].colPrev }

// NextInCol returns the entry following e within e's column, or that
// column's sentinel if e is the last entry.
//
// Complexity: O(1).
func (mat *Matrix) NextInCol(e int32) int32 { return mat.arena[e].colNext }

// PrevInCol returns the entry preceding e within e's column, or that
// column's sentinel if e is the first entry.
//
// Complexity: O(1).
func (mat *Matrix) PrevInCol(e int32) int32 { return mat.arena[e].colPrev }

// EntryRow returns the row coordinate stored on entry e.
//
// Complexity: O(1).
func (mat *Matrix) EntryRow(e int32) int { return mat.arena[e].Row }

// EntryCol returns the column coordinate stored on entry e.
//
// Complexity: O(1).
func (mat *Matrix) EntryCol(e int32) int { return mat.arena[e].Col }

// BitToCheck returns entry e's bit-to-check message slot.
//
// Complexity: O(1).
func (mat *Matrix) BitToCheck(e int32) float64 { return mat.arena[e].BitToCheck }

// SetBitToCheck writes entry e's bit-to-check message slot.
//
// Complexity: O(1).
func (mat *Matrix) SetBitToCheck(e int32, v float64) { mat.arena[e].BitToCheck = v }

// CheckToBit returns entry e's check-to-bit message slot.
//
// Complexity: O(1).
func (mat *Matrix) CheckToBit(e int32) float64 { return mat.arena[e].CheckToBit }

// SetCheckToBit writes entry e's check-to-bit message slot.
//
// Complexity: O(1).
func (mat *Matrix) SetCheckToBit(e int32, v float64) { mat.arena[e].CheckToBit = v }

// Sign returns entry e's sign accumulator, used by the min-sum kernel.
//
// Complexity: O(1).
func (mat *Matrix) Sign(e int32) int { return mat.arena[e].Sign }

// SetSign writes entry e's sign accumulator.
//
// Complexity: O(1).
func (mat *Matrix) SetSign(e int32, v int) { mat.arena[e].Sign = v }

// ResetMessages zeroes every nonzero entry's message state. BP kernels call
// this once per decode invocation before seeding priors; per-iteration
// reseeding (e.g. writing the prior LLR back into bit_to_check) is the
// kernel's own responsibility since the seed value is kernel-specific.
//
// Complexity: O(nnz).
func (mat *Matrix) ResetMessages() {
	for i := 0; i < mat.nnz; i++ {
		mat.arena[i].BitToCheck = 0
		mat.arena[i].CheckToBit = 0
		mat.arena[i].Sign = 0
	}
}

// RowIndices materializes the column indices of row i's nonzeros, in
// increasing order.
//
// Complexity: O(degree(row i)).
func (mat *Matrix) RowIndices(i int) []int {
	out := make([]int, 0)
	for e := mat.FirstInRow(i); !mat.AtEnd(e); e = mat.NextInRow(e) {
		out = append(out, mat.EntryCol(e))
	}
	return out
}

// ColIndices materializes the row indices of column j's nonzeros, in
// increasing order.
//
// Complexity: O(degree(col j)).
func (mat *Matrix) ColIndices(j int) []int {
	out := make([]int, 0)
	for e := mat.FirstInCol(j); !mat.AtEnd(e); e = mat.NextInCol(e) {
		out = append(out, mat.EntryRow(e))
	}
	return out
}
