package bpengine

import (
	"math"

	"github.com/KuantumBS/ldpc/channel"
	"github.com/KuantumBS/ldpc/sparsemod2"
)

// runSerial performs one serial-schedule iteration: bits are visited one at
// a time, and each bit's column update immediately recomputes the
// check-to-bit messages of its incident (active) rows by excluding that
// bit's own edge, so later bits in the same pass see the freshest messages
// of earlier bits. Every edge's bit_to_check is kept in the log-likelihood
// domain for the duration of the serial pass regardless of method, since the
// per-column bookkeeping (reset to prior, accumulate, snapshot) is additive
// by construction; only the row-side exclusion formula differs by method
// family (product-sum: tanh-product; min-sum: min-and-sign).
func runSerial(h *sparsemod2.Matrix, priors *channel.Model, synd []byte, inactivated []byte, method Method, alpha float64, llr []float64, decoding []byte) {
	for j := 0; j < h.Cols(); j++ {
		serialColumn(h, j, priors.LLR(j), synd, inactivated, method, alpha, llr, decoding)
	}
}

func serialColumn(h *sparsemod2.Matrix, j int, priorLLR float64, synd []byte, inactivated []byte, method Method, alpha float64, llr []float64, decoding []byte) {
	llr[j] = priorLLR

	for e := h.FirstInCol(j); !h.AtEnd(e); e = h.NextInCol(e) {
		row := h.EntryRow(e)
		if inactivated[row] == 1 {
			h.SetCheckToBit(e, 0)
			continue
		}

		var ctb float64
		if method == MethodMinSumLog {
			ctb = minSumExclude(h, row, e, synd[row], alpha)
		} else {
			ctb = prodSumExclude(h, row, e, synd[row])
		}
		h.SetCheckToBit(e, ctb)
		h.SetBitToCheck(e, llr[j])
		llr[j] += ctb
	}

	if llr[j] <= 0 {
		decoding[j] = 1
	} else {
		decoding[j] = 0
	}

	t := 0.0
	for e := h.LastInCol(j); !h.AtEnd(e); e = h.PrevInCol(e) {
		h.SetBitToCheck(e, h.BitToCheck(e)+t)
		t += h.CheckToBit(e)
	}
}

// prodSumExclude recomputes the check-to-bit message for edge "exclude" in
// row using the product-sum family's tanh-product formula, reading every
// other edge's current bit_to_check LLR.
func prodSumExclude(h *sparsemod2.Matrix, row int, exclude int32, sRow byte) float64 {
	p := 1.0
	for g := h.FirstInRow(row); !h.AtEnd(g); g = h.NextInRow(g) {
		if g == exclude {
			continue
		}
		p *= math.Tanh(h.BitToCheck(g) / 2)
	}
	sign := 1.0
	if sRow == 1 {
		sign = -1.0
	}
	return sign * math.Log((1+p)/(1-p))
}

// minSumExclude recomputes the check-to-bit message for edge "exclude" in
// row using the min-sum family's min-magnitude-and-sign formula.
func minSumExclude(h *sparsemod2.Matrix, row int, exclude int32, sRow byte, alpha float64) float64 {
	minAbs := minSumSentinel
	sgn := int(sRow)
	for g := h.FirstInRow(row); !h.AtEnd(g); g = h.NextInRow(g) {
		if g == exclude {
			continue
		}
		v := h.BitToCheck(g)
		if av := math.Abs(v); av < minAbs {
			minAbs = av
		}
		if v <= 0 {
			sgn++
		}
	}
	sign := 1.0
	if sgn%2 != 0 {
		sign = -1.0
	}
	return sign * alpha * minAbs
}
