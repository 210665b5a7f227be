package inactivation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/KuantumBS/ldpc/bpengine"
	"github.com/KuantumBS/ldpc/channel"
	"github.com/KuantumBS/ldpc/gf2"
	"github.com/KuantumBS/ldpc/sparsemod2"
)

// errResidualSolveFailed is never returned to the caller directly; it marks
// a candidate cluster whose residual system turned out singular, which
// Postprocess treats as "try the next candidate", not a hard failure.
var errResidualSolveFailed = errors.New("inactivation: residual system is singular")

func inactivationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Postprocess runs stabilizer inactivation against a syndrome BP already
// failed to converge on. origSynd is the syndrome BP was run against;
// bpDecoding and llr are BP's final hard decision and posterior LLRs; only
// llr is read (for reliability ranking), and neither is mutated. bpCfg is reused
// verbatim for every re-run BP attempt. Returns the recovered decoding (a
// fresh slice; bpDecoding itself is never mutated) and whether any
// candidate cluster succeeded.
//
// Complexity: O(checks_tried * (nnz + cluster_size^3/64)).
func Postprocess(h *sparsemod2.Matrix, priors *channel.Model, origSynd []byte, bpCfg bpengine.Config, bpDecoding []byte, llr []float64) ([]byte, bool, error) {
	m, n := h.Rows(), h.Cols()

	reliability := make([]float64, m)
	for i := 0; i < m; i++ {
		var r float64
		for _, j := range h.RowIndices(i) {
			r += absF(llr[j])
		}
		reliability[i] = r
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return reliability[order[a]] < reliability[order[b]]
	})

	inactivatedChecks := make([]byte, m)
	maskedSynd := make([]byte, m)
	scratchDecoding := make([]byte, n)
	scratchLLR := make([]float64, n)

	for _, c := range order {
		cl := buildCluster(h, c)

		for k := range inactivatedChecks {
			inactivatedChecks[k] = 0
		}
		for _, i := range cl.C {
			inactivatedChecks[i] = 1
		}
		copy(maskedSynd, origSynd)
		for _, i := range cl.C {
			maskedSynd[i] = 0
		}

		_, converged, err := bpengine.Run(h, priors, maskedSynd, inactivatedChecks, bpCfg, scratchDecoding, scratchLLR)
		if err != nil {
			return nil, false, inactivationErrorf("Postprocess", err)
		}
		if !converged {
			continue
		}

		x, err := solveResidual(h, cl, origSynd, scratchDecoding)
		if err != nil {
			if errors.Is(err, errResidualSolveFailed) {
				continue
			}
			return nil, false, inactivationErrorf("Postprocess", err)
		}

		result := make([]byte, n)
		copy(result, scratchDecoding)
		for k, j := range cl.B {
			result[j] = x[k]
		}
		return result, true, nil
	}

	return nil, false, nil
}

// solveResidual builds the cluster's glue syndrome and residual GF(2)
// system and solves for the B bits.
func solveResidual(h *sparsemod2.Matrix, cl cluster, origSynd []byte, reRunDecoding []byte) ([]byte, error) {
	inB := make(map[int]bool, len(cl.B))
	for _, j := range cl.B {
		inB[j] = true
	}

	t := make([]byte, len(cl.C))
	for r, i := range cl.C {
		var g byte
		for _, j := range h.RowIndices(i) {
			if inB[j] {
				continue
			}
			g ^= reRunDecoding[j]
		}
		t[r] = origSynd[i] ^ g
	}

	if len(cl.B) == 0 {
		// A candidate check with no incident bits: nothing to solve for.
		// The residual system is consistent only if every glue target is
		// already zero.
		for _, v := range t {
			if v != 0 {
				return nil, errResidualSolveFailed
			}
		}
		return []byte{}, nil
	}

	rows, err := incidenceMatrix(h, cl)
	if err != nil {
		return nil, err
	}
	s, err := gf2.NewMatrix(len(cl.C), len(cl.B))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if err := s.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	x, err := gf2.Solve(s, t)
	if err != nil {
		if errors.Is(err, gf2.ErrSingular) {
			return nil, errResidualSolveFailed
		}
		return nil, err
	}
	return x, nil
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
