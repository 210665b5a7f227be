package syndrome

import (
	"errors"
	"fmt"

	"github.com/KuantumBS/ldpc/sparsemod2"
)

// Sentinel errors for syndrome adaptation.
var (
	// ErrInvalidInputType indicates a type value outside {Syndrome, Received, Auto}.
	ErrInvalidInputType = errors.New("syndrome: unrecognized input type")

	// ErrAmbiguousInput indicates Auto was requested against a square parity-check matrix.
	ErrAmbiguousInput = errors.New("syndrome: input type is ambiguous for a square parity-check matrix")

	// ErrInvalidInputLength indicates an input vector whose length matches
	// neither the check count nor the bit count (or a declared type whose
	// length requirement the vector doesn't meet).
	ErrInvalidInputLength = errors.New("syndrome: input length matches neither m nor n")
)

func syndromeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// InputType selects how a caller-supplied vector should be interpreted.
type InputType int

const (
	// Syndrome treats the input vector as already being a syndrome.
	Syndrome InputType = iota
	// Received treats the input vector as a received (possibly corrupted) codeword.
	Received
	// Auto infers Syndrome or Received from the input vector's length,
	// which requires a non-square parity-check matrix.
	Auto
)

// String returns the canonical label for t.
func (t InputType) String() string {
	switch t {
	case Syndrome:
		return "syndrome"
	case Received:
		return "received"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Normalize resolves t (inferring from v's length if t is Auto) and writes
// the syndrome BP should run against into synd (length h.Rows()). If the
// resolved type is Received, v is also copied into received (length
// h.Cols()) so Recover can later XOR it back in. Returns the resolved type.
//
// Contract: len(synd) == h.Rows(), len(received) == h.Cols().
//
// Complexity: O(nnz) when resolved to Received (one MulVec); O(m) otherwise.
func Normalize(h *sparsemod2.Matrix, v []byte, t InputType, synd []byte, received []byte) (InputType, error) {
	m, n := h.Rows(), h.Cols()
	if len(synd) != m {
		return 0, syndromeErrorf("Normalize", ErrInvalidInputLength)
	}

	resolved := t
	if t == Auto {
		if m == n {
			return 0, syndromeErrorf("Normalize", ErrAmbiguousInput)
		}
		switch len(v) {
		case n:
			resolved = Received
		case m:
			resolved = Syndrome
		default:
			return 0, syndromeErrorf("Normalize", ErrInvalidInputLength)
		}
	}

	switch resolved {
	case Received:
		if len(v) != n || len(received) != n {
			return 0, syndromeErrorf("Normalize", ErrInvalidInputLength)
		}
		copy(received, v)
		if err := h.MulVec(received, synd); err != nil {
			return 0, syndromeErrorf("Normalize", err)
		}
	case Syndrome:
		if len(v) != m {
			return 0, syndromeErrorf("Normalize", ErrInvalidInputLength)
		}
		copy(synd, v)
	default:
		return 0, syndromeErrorf("Normalize", ErrInvalidInputType)
	}

	return resolved, nil
}

// Recover turns BP's hard-decision output into the estimate Normalize's
// caller asked for: bp_decoding XOR received for Received input, bp_decoding
// unchanged for Syndrome input.
//
// Contract: len(out) == len(bpDecoding); for Received, len(received) ==
// len(bpDecoding) too.
//
// Complexity: O(n).
func Recover(resolved InputType, bpDecoding []byte, received []byte, out []byte) error {
	if len(out) != len(bpDecoding) {
		return syndromeErrorf("Recover", ErrInvalidInputLength)
	}

	switch resolved {
	case Received:
		if len(received) != len(bpDecoding) {
			return syndromeErrorf("Recover", ErrInvalidInputLength)
		}
		for i := range out {
			out[i] = bpDecoding[i] ^ received[i]
		}
	case Syndrome:
		copy(out, bpDecoding)
	default:
		return syndromeErrorf("Recover", ErrInvalidInputType)
	}

	return nil
}
