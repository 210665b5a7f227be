package bpengine

import (
	"math"
	"testing"

	"github.com/KuantumBS/ldpc/sparsemod2"
	"github.com/stretchr/testify/require"
)

// smallRowMatrix builds a single row of degree 3 spanning 3 columns, used to
// exercise the exclude-self row formulas directly.
func smallRowMatrix(t *testing.T) *sparsemod2.Matrix {
	t.Helper()
	m, err := sparsemod2.NewMatrix(1, 3, [][2]int{{0, 0}, {0, 1}, {0, 2}})
	require.NoError(t, err)
	return m
}

// rowEdges materializes row i's entries in traversal order.
func rowEdges(m *sparsemod2.Matrix, i int) []int32 {
	out := make([]int32, 0, 3)
	for e := m.FirstInRow(i); !m.AtEnd(e); e = m.NextInRow(e) {
		out = append(out, e)
	}
	return out
}

func TestEffectiveAlpha_Adaptive(t *testing.T) {
	// ms_scaling_factor == 0 selects alpha_t = 1 - 2^-t.
	require.InDelta(t, 0.5, effectiveAlpha(0, 1), 1e-12)
	require.InDelta(t, 0.75, effectiveAlpha(0, 2), 1e-12)
	require.InDelta(t, 0.875, effectiveAlpha(0, 3), 1e-12)
}

func TestEffectiveAlpha_Fixed(t *testing.T) {
	require.Equal(t, 0.8, effectiveAlpha(0.8, 1))
	require.Equal(t, 0.8, effectiveAlpha(0.8, 50))
}

func TestHalfTanhRatio_MatchesTanhViaLLR(t *testing.T) {
	// For r = exp(-L), halfTanhRatio(r) must equal tanh(L/2).
	l := 1.3
	r := math.Exp(-l)
	require.InDelta(t, math.Tanh(l/2), halfTanhRatio(r), 1e-9)
}

func TestMinSumExclude_PicksSmallestMagnitudeAndCorrectSign(t *testing.T) {
	h := smallRowMatrix(t)
	// Row 0 has three edges with bit_to_check = 2.0, -0.5, 3.0 and
	// synd[0] = 0. Excluding edge 0 (value 2.0), the remaining entries are
	// -0.5 and 3.0: min magnitude 0.5, one negative value -> odd sign flips.
	edges := rowEdges(h, 0)
	h.SetBitToCheck(edges[0], 2.0)
	h.SetBitToCheck(edges[1], -0.5)
	h.SetBitToCheck(edges[2], 3.0)

	got := minSumExclude(h, 0, edges[0], 0, 1.0)
	require.InDelta(t, -0.5, got, 1e-12)
}

func TestProdSumExclude_AllPositiveGivesPositiveResult(t *testing.T) {
	h := smallRowMatrix(t)
	edges := rowEdges(h, 0)
	h.SetBitToCheck(edges[0], 2.0)
	h.SetBitToCheck(edges[1], 1.0)
	h.SetBitToCheck(edges[2], 1.5)

	got := prodSumExclude(h, 0, edges[0], 0)
	require.Greater(t, got, 0.0)
}
