// Package ldpcdecoder wires sparsemod2, channel, bpengine, syndrome, and
// inactivation into the single top-level Decoder: construct once against a
// parity-check matrix and channel model, then call Decode or SIDecode
// repeatedly against syndromes or received words.
//
// Decoder owns no concurrency of its own (see bpengine's synchronous
// model): every buffer is sized once at construction and overwritten
// deterministically on each call, so a single Decoder must not be shared
// across concurrent decode calls without external synchronization — exactly
// the discipline the underlying sparsemod2.Matrix already requires.
package ldpcdecoder
