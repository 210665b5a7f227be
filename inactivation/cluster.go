package inactivation

import "github.com/KuantumBS/ldpc/sparsemod2"

// cluster is the local neighborhood built around one candidate check c: B is
// the set of bits check c touches (the bits that will be inactivated), C is
// c together with every other check that shares a bit with c (the checks
// that will be inactivated). H's incidence restricted to C×B is built on
// demand by incidenceMatrix.
type cluster struct {
	B []int // inactivated bits, in row-c's ascending column order
	C []int // inactivated checks, c first then discovery order
}

// buildCluster constructs the local cluster around candidate check c, per
// the stabilizer-inactivation neighborhood rule: B is check c's own support,
// C is c plus every check incident to any bit in B.
func buildCluster(h *sparsemod2.Matrix, c int) cluster {
	b := h.RowIndices(c)

	seen := map[int]bool{c: true}
	cSet := []int{c}
	for _, j := range b {
		for _, i := range h.ColIndices(j) {
			if !seen[i] {
				seen[i] = true
				cSet = append(cSet, i)
			}
		}
	}

	return cluster{B: b, C: cSet}
}

// incidenceMatrix builds the |C|x|B| GF(2) incidence matrix S for the
// cluster: S[row(i)][col(j)] = 1 iff H[i,j] = 1, rows ordered by cl.C,
// columns ordered by cl.B.
func incidenceMatrix(h *sparsemod2.Matrix, cl cluster) ([][]byte, error) {
	colIndex := make(map[int]int, len(cl.B))
	for k, j := range cl.B {
		colIndex[j] = k
	}

	s := make([][]byte, len(cl.C))
	for r, i := range cl.C {
		s[r] = make([]byte, len(cl.B))
		for _, j := range h.RowIndices(i) {
			if k, ok := colIndex[j]; ok {
				s[r][k] = 1
			}
		}
	}
	return s, nil
}
