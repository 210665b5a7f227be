// Package syndrome adapts a decoder's caller-facing input vector — which
// may be a syndrome or a received word, and for a non-square parity-check
// matrix can be told apart by length alone — into the syndrome BP actually
// runs against, and adapts BP's hard-decision output back into the
// estimate the caller asked for (an error pattern for syndrome input, a
// corrected codeword for received-word input).
package syndrome
