package bpengine

import (
	"math"

	"github.com/KuantumBS/ldpc/channel"
	"github.com/KuantumBS/ldpc/sparsemod2"
)

// minSumSentinel stands in for +infinity as the seed for the running
// minimum, matching the convention of using a very large finite double
// rather than math.Inf so downstream arithmetic never has to special-case
// an actual infinity.
const minSumSentinel = 1e308

// initMSL seeds every entry's bit_to_check with its column's channel LLR,
// identical to PSL's initialization.
func initMSL(h *sparsemod2.Matrix, priors *channel.Model) {
	initPSL(h, priors)
}

// parallelRowMSL computes check-to-bit messages for row i via a two-pass
// exclude-self min-magnitude-and-sign sweep, scaled by alpha (the min-sum
// normalization factor for this iteration).
func parallelRowMSL(h *sparsemod2.Matrix, i int, synd byte, alpha float64) {
	minRun := minSumSentinel
	sgn := int(synd)
	for e := h.FirstInRow(i); !h.AtEnd(e); e = h.NextInRow(e) {
		h.SetCheckToBit(e, minRun)
		h.SetSign(e, sgn)
		bt := h.BitToCheck(e)
		if math.Abs(bt) < minRun {
			minRun = math.Abs(bt)
		}
		if bt <= 0 {
			sgn++
		}
	}

	runningMin := minSumSentinel
	runningSgn := 0
	for e := h.LastInRow(i); !h.AtEnd(e); e = h.PrevInRow(e) {
		ctb := h.CheckToBit(e)
		if runningMin < ctb {
			ctb = runningMin
		}
		sgnTotal := h.Sign(e) + runningSgn
		sign := 1.0
		if sgnTotal%2 != 0 {
			sign = -1.0
		}
		h.SetCheckToBit(e, sign*alpha*ctb)

		bt := h.BitToCheck(e)
		if math.Abs(bt) < runningMin {
			runningMin = math.Abs(bt)
		}
		if bt <= 0 {
			runningSgn++
		}
	}
}

// parallelColMSL is identical to the PSL bit-to-check and posterior sweep:
// the min-sum kernel differs from PSL only in how check-to-bit messages are
// produced, not in how they are folded back into bit-to-check messages.
func parallelColMSL(h *sparsemod2.Matrix, j int, priors *channel.Model, llr []float64, decoding []byte) {
	parallelColPSL(h, j, priors, llr, decoding)
}

// effectiveAlpha resolves the min-sum normalization factor for iteration t
// (1-indexed): a configured nonzero scale is used directly; zero selects the
// adaptive schedule alpha_t = 1 - 2^-t.
func effectiveAlpha(configured float64, t int) float64 {
	if configured != 0 {
		return configured
	}
	return 1 - math.Pow(2, -float64(t))
}
