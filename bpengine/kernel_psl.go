package bpengine

import (
	"math"

	"github.com/KuantumBS/ldpc/channel"
	"github.com/KuantumBS/ldpc/sparsemod2"
)

// initPSL seeds every entry's bit_to_check with its column's channel LLR.
func initPSL(h *sparsemod2.Matrix, priors *channel.Model) {
	for j := 0; j < h.Cols(); j++ {
		l := priors.LLR(j)
		for e := h.FirstInCol(j); !h.AtEnd(e); e = h.NextInCol(e) {
			h.SetBitToCheck(e, l)
		}
	}
}

// parallelRowPSL computes check-to-bit messages for row i via a two-pass
// exclude-self tanh-product sweep in the log-likelihood domain.
func parallelRowPSL(h *sparsemod2.Matrix, i int, synd byte) {
	t := 1.0
	for e := h.FirstInRow(i); !h.AtEnd(e); e = h.NextInRow(e) {
		h.SetCheckToBit(e, t)
		t *= math.Tanh(h.BitToCheck(e) / 2)
	}

	sign := 1.0
	if synd == 1 {
		sign = -1.0
	}
	t = 1.0
	for e := h.LastInRow(i); !h.AtEnd(e); e = h.PrevInRow(e) {
		ctb := h.CheckToBit(e) * t
		ctb = sign * math.Log((1+ctb)/(1-ctb))
		h.SetCheckToBit(e, ctb)
		t *= math.Tanh(h.BitToCheck(e) / 2)
	}
}

// parallelColPSL folds check-to-bit messages back into bit-to-check messages
// and the column's posterior LLR.
func parallelColPSL(h *sparsemod2.Matrix, j int, priors *channel.Model, llr []float64, decoding []byte) {
	l := priors.LLR(j)

	t := l
	for e := h.FirstInCol(j); !h.AtEnd(e); e = h.NextInCol(e) {
		h.SetBitToCheck(e, t)
		t += h.CheckToBit(e)
	}
	llr[j] = t
	if t <= 0 {
		decoding[j] = 1
	} else {
		decoding[j] = 0
	}

	t = 0
	for e := h.LastInCol(j); !h.AtEnd(e); e = h.PrevInCol(e) {
		bt := h.BitToCheck(e) + t
		h.SetBitToCheck(e, bt)
		t += h.CheckToBit(e)
	}
}
