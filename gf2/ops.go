package gf2

// swapRows exchanges the word slices backing rows i and j.
func (m *Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.rowWords(i), m.rowWords(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// RowReduce performs Gauss-Jordan elimination on m in place, producing
// reduced row-echelon form, and returns the pivot column indices in the
// order they were discovered (ascending).
//
// Stage 1 (Prepare): scan columns left to right, tracking the next free
// pivot row.
// Stage 2 (Execute): for each column with a nonzero entry at or below the
// pivot row, swap it into place and XOR it out of every other row.
// Stage 3 (Finalize): return the pivot columns.
//
// Complexity: O(rows^2 * cols/64).
func RowReduce(m *Matrix) ([]int, error) {
	if m == nil {
		return nil, gf2Errorf("RowReduce", ErrDimensionMismatch)
	}

	pivots := make([]int, 0, m.rows)
	pivotRow := 0
	for col := 0; col < m.cols && pivotRow < m.rows; col++ {
		// Stage 1: find a candidate row at or below pivotRow with a 1 in this column.
		sel := -1
		for r := pivotRow; r < m.rows; r++ {
			b, _ := m.Get(r, col)
			if b == 1 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue // no pivot in this column; move on
		}

		// Stage 2: bring the pivot row into place and clear this column everywhere else.
		m.swapRows(pivotRow, sel)
		for r := 0; r < m.rows; r++ {
			if r == pivotRow {
				continue
			}
			b, _ := m.Get(r, col)
			if b == 1 {
				xorRowInto(m.rowWords(r), m.rowWords(pivotRow))
			}
		}

		pivots = append(pivots, col)
		pivotRow++
	}

	return pivots, nil
}

// Invert computes m^{-1} over GF(2) via Gauss-Jordan elimination on the
// augmented matrix [m | I].
//
// Contract: m must be square. Returns ErrSingular if m has rank < rows.
//
// Complexity: O(rows^3 / 64).
func Invert(m *Matrix) (*Matrix, error) {
	if m.rows != m.cols {
		return nil, gf2Errorf("Invert", ErrNonSquare)
	}
	n := m.rows

	aug, err := NewMatrix(n, 2*n)
	if err != nil {
		return nil, gf2Errorf("Invert", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b, _ := m.Get(i, j)
			_ = aug.Set(i, j, b)
		}
		_ = aug.Set(i, n+i, 1)
	}

	pivots, err := RowReduce(aug)
	if err != nil {
		return nil, gf2Errorf("Invert", err)
	}
	if len(pivots) != n {
		return nil, gf2Errorf("Invert", ErrSingular)
	}
	for i, p := range pivots {
		if p != i {
			return nil, gf2Errorf("Invert", ErrSingular)
		}
	}

	inv, err := NewMatrix(n, n)
	if err != nil {
		return nil, gf2Errorf("Invert", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b, _ := aug.Get(i, n+j)
			_ = inv.Set(i, j, b)
		}
	}

	return inv, nil
}

// MulVec computes y = m·x over GF(2): y[i] = XOR_j (m[i][j] AND x[j]).
//
// Contract: len(x) == m.Cols().
//
// Complexity: O(rows*cols).
func MulVec(m *Matrix, x []byte) ([]byte, error) {
	if len(x) != m.cols {
		return nil, gf2Errorf("MulVec", ErrDimensionMismatch)
	}

	y := make([]byte, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc byte
		for j := 0; j < m.cols; j++ {
			if x[j] == 0 {
				continue
			}
			b, _ := m.Get(i, j)
			acc ^= b
		}
		y[i] = acc
	}

	return y, nil
}

// submatrixCols extracts the columns listed in cols (in the given order)
// from m into a new len(m.Rows())×len(cols) Matrix.
func submatrixCols(m *Matrix, cols []int) (*Matrix, error) {
	sub, err := NewMatrix(m.rows, len(cols))
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		for k, c := range cols {
			b, _ := m.Get(i, c)
			_ = sub.Set(i, k, b)
		}
	}
	return sub, nil
}

// Solve finds x such that s·x = t over GF(2), restricted to a pivot-column
// basis: row-echelon on a copy of s identifies pivot columns P; s
// restricted to P (from the ORIGINAL s, not the reduced copy) is inverted;
// x[P] = S[:,P]^{-1}·t; every other entry of x is zero.
//
// Returns ErrSingular if s does not have full row rank (len(P) != s.Rows()),
// i.e. there is no solution obtainable by this pivot-restriction method.
//
// Complexity: O(rows^3/64 + rows*cols).
func Solve(s *Matrix, t []byte) ([]byte, error) {
	if len(t) != s.rows {
		return nil, gf2Errorf("Solve", ErrDimensionMismatch)
	}

	reduced := s.Clone()
	pivots, err := RowReduce(reduced)
	if err != nil {
		return nil, gf2Errorf("Solve", err)
	}
	if len(pivots) != s.rows {
		return nil, gf2Errorf("Solve", ErrSingular)
	}

	sp, err := submatrixCols(s, pivots)
	if err != nil {
		return nil, gf2Errorf("Solve", err)
	}
	spInv, err := Invert(sp)
	if err != nil {
		return nil, gf2Errorf("Solve", err)
	}
	y, err := MulVec(spInv, t)
	if err != nil {
		return nil, gf2Errorf("Solve", err)
	}

	x := make([]byte, s.cols)
	for i, p := range pivots {
		x[p] = y[i]
	}

	return x, nil
}
