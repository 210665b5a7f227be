// Package gf2 provides row-echelon reduction, pivot identification, and
// square-matrix inversion over GF(2), the small linear-algebra utility the
// stabilizer-inactivation postprocessor uses as an external collaborator.
// It stands apart from the core decoder, touched only through its contract
// (RowReduce, Invert, Solve); no such utility existed in the surrounding
// package family, so it is implemented here, modeled on matrix.LU /
// matrix.Inverse but re-derived for XOR/AND arithmetic.
//
// Matrix is a bit-packed row-major matrix: addition is XOR, multiplication
// is AND, and there is no pivoting preference beyond "first nonzero row" —
// over GF(2) every nonzero entry is equally good as a pivot.
package gf2
