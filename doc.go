// Package ldpc is the root of a belief-propagation decoder for binary
// low-density parity-check codes, together with a stabilizer-inactivation
// post-processor that recovers a decoding when plain BP fails to converge.
//
// Subpackages, leaves first:
//
//	sparsemod2/    — orthogonally linked sparse binary matrix with in-place
//	                 per-edge BP messages.
//	channel/       — per-bit channel priors and their LLR/ratio conversions.
//	gf2/           — GF(2) row reduction, inversion, and linear-system
//	                 solving, used by stabilizer inactivation.
//	bpengine/      — the three message-update kernels (product-sum in
//	                 probability-ratio form, product-sum and normalized
//	                 min-sum in the log domain), each under a parallel or
//	                 serial schedule.
//	syndrome/      — adapts a received word or syndrome into the syndrome
//	                 BP runs against, and adapts the result back.
//	inactivation/  — the stabilizer-inactivation outer loop.
//	ldpcdecoder/   — the top-level Decoder composing all of the above.
//
//	go get github.com/KuantumBS/ldpc
package ldpc
