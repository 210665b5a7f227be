// Package bpengine implements the three belief-propagation message-update
// kernels (product-sum in probability-ratio form, product-sum in the log
// domain, normalized min-sum in the log domain) over a sparsemod2.Matrix,
// each runnable under a parallel (flooding) or serial schedule, with
// convergence detection against a target syndrome.
//
// Run owns no state beyond what a single invocation needs: it mutates the
// caller-supplied parity-check Matrix's edge messages and writes into the
// caller-supplied decoding/log_prob_ratios buffers, mirroring
// flow.Dinic's "one function, internal dispatch on an options field" shape.
//
// Per-kernel files (kernel_ps.go, kernel_psl.go, kernel_msl.go) implement
// the parallel schedule, since its two-phase forward/backward sweep truly
// differs by numeric domain (probability ratio vs log-likelihood ratio).
// serial.go implements the serial schedule once, shared across methods,
// because the serial update is domain-family based (product-sum family
// covers both PS and PSL; min-sum family covers MSL) and runs entirely in
// the log-likelihood domain regardless of which domain the matching
// parallel kernel uses — so Run seeds every edge with an LLR whenever the
// serial schedule is selected, even for ProdSum.
package bpengine
