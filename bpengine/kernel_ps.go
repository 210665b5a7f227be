package bpengine

import (
	"math"

	"github.com/KuantumBS/ldpc/channel"
	"github.com/KuantumBS/ldpc/sparsemod2"
)

// initPS seeds every entry's bit_to_check with its column's channel ratio
// r_j = p_j/(1-p_j), the probability-ratio-domain prior.
func initPS(h *sparsemod2.Matrix, priors *channel.Model) {
	for j := 0; j < h.Cols(); j++ {
		r := priors.Ratio(j)
		for e := h.FirstInCol(j); !h.AtEnd(e); e = h.NextInCol(e) {
			h.SetBitToCheck(e, r)
		}
	}
}

// parallelRowPS computes check-to-bit messages for row i via a two-pass
// exclude-self sweep in probability-ratio form.
//
// Forward: running product T seeded (-1)^synd, written into each edge before
// folding in that edge's own factor. Backward: each edge's stored forward
// value is combined with the backward running product and mapped back into
// the (1-x)/(1+x) ratio form.
func parallelRowPS(h *sparsemod2.Matrix, i int, synd byte) {
	t := 1.0
	if synd == 1 {
		t = -1.0
	}
	for e := h.FirstInRow(i); !h.AtEnd(e); e = h.NextInRow(e) {
		h.SetCheckToBit(e, t)
		t *= halfTanhRatio(h.BitToCheck(e))
	}

	t = 1.0
	for e := h.LastInRow(i); !h.AtEnd(e); e = h.PrevInRow(e) {
		ctb := h.CheckToBit(e) * t
		ctb = (1 - ctb) / (1 + ctb)
		h.SetCheckToBit(e, ctb)
		t *= halfTanhRatio(h.BitToCheck(e))
	}
}

// parallelColPS folds check-to-bit messages back into bit-to-check messages
// and the column's posterior, in probability-ratio form.
func parallelColPS(h *sparsemod2.Matrix, j int, priors *channel.Model, llr []float64, decoding []byte) {
	r := priors.Ratio(j)

	t := r
	for e := h.FirstInCol(j); !h.AtEnd(e); e = h.NextInCol(e) {
		h.SetBitToCheck(e, t)
		t *= h.CheckToBit(e)
		if math.IsNaN(t) {
			t = 1
		}
	}
	llr[j] = math.Log(1 / t)
	if t >= 1 {
		decoding[j] = 1
	} else {
		decoding[j] = 0
	}

	t = 1
	for e := h.LastInCol(j); !h.AtEnd(e); e = h.PrevInCol(e) {
		bt := h.BitToCheck(e) * t
		h.SetBitToCheck(e, bt)
		t *= h.CheckToBit(e)
		if math.IsNaN(t) {
			t = 1
		}
	}
}

// halfTanhRatio is the probability-ratio-domain equivalent of tanh(L/2) for
// an edge whose bit_to_check is stored as a ratio r = exp(-L): algebraically
// tanh(L/2) = (1-r)/(1+r) = 2/(1+r) - 1.
func halfTanhRatio(r float64) float64 {
	return 2/(1+r) - 1
}
