package sparsemod2

// MulVec computes out[i] = XOR over j of H[i,j]·v[j] for all rows i, by
// row traversal. This is the matrix-vector product over GF(2) used to turn
// a received word into a syndrome and, internally, to test BP convergence.
//
// Contract: len(v) == n_cols, len(out) == n_rows. out is overwritten
// entirely; it is safe to reuse the same backing array across calls.
//
// Complexity: O(nnz).
func (mat *Matrix) MulVec(v []byte, out []byte) error {
	if len(v) != mat.cols {
		return sparsemod2Errorf("MulVec", ErrLengthMismatch)
	}
	if len(out) != mat.rows {
		return sparsemod2Errorf("MulVec", ErrLengthMismatch)
	}

	for i := 0; i < mat.rows; i++ {
		var acc byte
		for e := mat.FirstInRow(i); !mat.AtEnd(e); e = mat.NextInRow(e) {
			acc ^= v[mat.EntryCol(e)]
		}
		out[i] = acc
	}

	return nil
}
