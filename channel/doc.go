// Package channel holds the per-bit a-priori error probabilities that seed
// belief propagation: a vector p[0..n) of channel flip probabilities, each
// strictly inside (0,1), together with the log-likelihood-ratio and
// probability-ratio views BP kernels consume.
//
// A Model is built once per decoder (Uniform or PerBit) and may be replaced
// wholesale via Update, mirroring update_channel_probs at the decoder's
// public surface.
package channel
