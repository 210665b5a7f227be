package bpengine

import (
	"github.com/KuantumBS/ldpc/channel"
	"github.com/KuantumBS/ldpc/sparsemod2"
)

// Run executes belief propagation over h against the target syndrome synd,
// writing the final hard-decision decoding into decoding and the final
// posterior LLRs into llr, both caller-owned and length h.Cols(). inactivated
// has length h.Rows(); a 1 at row i excludes check i from every message
// update, as required by the stabilizer-inactivation postprocessor. Method
// and Schedule on cfg are assumed already normalized (see ParseMethod,
// ParseSchedule).
//
// Stage 1 (Prepare): validate cfg, reset and seed every edge message.
// Stage 2 (Execute): for up to cfg.MaxIter iterations, run one schedule pass
// and test convergence (H*decoding == synd).
// Stage 3 (Finalize): return the iteration count and whether it converged.
//
// Complexity: O(MaxIter * nnz).
func Run(h *sparsemod2.Matrix, priors *channel.Model, synd []byte, inactivated []byte, cfg Config, decoding []byte, llr []float64) (iter int, converged bool, err error) {
	if err := cfg.validate(); err != nil {
		return 0, false, err
	}

	h.ResetMessages()
	switch {
	case cfg.Method == MethodProdSum && cfg.Schedule == Parallel:
		initPS(h, priors)
	default:
		// Serial always runs in the LLR domain, even for ProdSum: its
		// exclude-self recompute reads bit_to_check through tanh(x/2) and
		// snapshots llr[j] straight into it, so the seed must already be an
		// LLR. PSL and MSL share this same seed under either schedule.
		initPSL(h, priors)
	}

	decodingSynd := make([]byte, h.Rows())
	for t := 1; t <= cfg.MaxIter; t++ {
		alpha := effectiveAlpha(cfg.MSScalingFactor, t)

		if cfg.Schedule == Parallel {
			runParallelIteration(h, priors, synd, inactivated, cfg.Method, alpha, llr, decoding)
		} else {
			runSerial(h, priors, synd, inactivated, cfg.Method, alpha, llr, decoding)
		}

		if err := h.MulVec(decoding, decodingSynd); err != nil {
			return t, false, err
		}
		if bytesEqual(decodingSynd, synd) {
			return t, true, nil
		}
	}

	return cfg.MaxIter, false, nil
}

// runParallelIteration performs one flooding-schedule iteration: every
// active row's check-to-bit sweep, then every column's bit-to-check-and-
// posterior sweep, both using only messages from the previous iteration.
func runParallelIteration(h *sparsemod2.Matrix, priors *channel.Model, synd []byte, inactivated []byte, method Method, alpha float64, llr []float64, decoding []byte) {
	for i := 0; i < h.Rows(); i++ {
		if inactivated[i] == 1 {
			zeroRowCheckToBit(h, i)
			continue
		}
		switch method {
		case MethodProdSum:
			parallelRowPS(h, i, synd[i])
		case MethodProdSumLog:
			parallelRowPSL(h, i, synd[i])
		case MethodMinSumLog:
			parallelRowMSL(h, i, synd[i], alpha)
		}
	}

	for j := 0; j < h.Cols(); j++ {
		switch method {
		case MethodProdSum:
			parallelColPS(h, j, priors, llr, decoding)
		case MethodProdSumLog:
			parallelColPSL(h, j, priors, llr, decoding)
		case MethodMinSumLog:
			parallelColMSL(h, j, priors, llr, decoding)
		}
	}
}

// zeroRowCheckToBit clears every edge of an inactivated row's check-to-bit
// message, so it contributes no information to the bit-to-check sweep that
// follows — the parallel-schedule analogue of the serial schedule's explicit
// zeroing of inactivated checks.
func zeroRowCheckToBit(h *sparsemod2.Matrix, i int) {
	for e := h.FirstInRow(i); !h.AtEnd(e); e = h.NextInRow(e) {
		h.SetCheckToBit(e, 0)
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
