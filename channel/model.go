package channel

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for channel operations.
var (
	// ErrInvalidErrorRate indicates a scalar error rate outside the open
	// interval (0,1); the endpoints would produce infinite or undefined LLRs.
	ErrInvalidErrorRate = errors.New("channel: error rate must lie strictly in (0,1)")

	// ErrLengthMismatch indicates a per-bit probability vector whose length
	// does not match the declared code length n.
	ErrLengthMismatch = errors.New("channel: probability vector length mismatch")
)

func channelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Model holds a-priori per-bit error probabilities P, each strictly inside
// (0,1).
type Model struct {
	p []float64
}

// validateProbs checks every entry of p lies strictly inside (0,1).
func validateProbs(p []float64) error {
	for _, v := range p {
		if !(v > 0 && v < 1) {
			return fmt.Errorf("probability %g out of (0,1): %w", v, ErrInvalidErrorRate)
		}
	}
	return nil
}

// Uniform constructs a Model of length n with every bit sharing the same
// error rate p.
//
// Complexity: O(n).
func Uniform(p float64, n int) (*Model, error) {
	if !(p > 0 && p < 1) {
		return nil, channelErrorf("Uniform", ErrInvalidErrorRate)
	}
	if n <= 0 {
		return nil, channelErrorf("Uniform", fmt.Errorf("n must be positive: %w", ErrLengthMismatch))
	}

	probs := make([]float64, n)
	for i := range probs {
		probs[i] = p
	}

	return &Model{p: probs}, nil
}

// PerBit constructs a Model from an explicit length-n probability vector.
// probs is copied; the caller's slice may be reused afterward.
//
// Complexity: O(n).
func PerBit(probs []float64) (*Model, error) {
	if err := validateProbs(probs); err != nil {
		return nil, channelErrorf("PerBit", err)
	}

	cp := make([]float64, len(probs))
	copy(cp, probs)

	return &Model{p: cp}, nil
}

// Update replaces the Model's probability vector wholesale. The new vector
// must have the same length as the current one and every entry must lie in
// (0,1).
//
// Complexity: O(n).
func (m *Model) Update(probs []float64) error {
	if len(probs) != len(m.p) {
		return channelErrorf("Update", ErrLengthMismatch)
	}
	if err := validateProbs(probs); err != nil {
		return channelErrorf("Update", err)
	}
	copy(m.p, probs)

	return nil
}

// Len returns the code length n.
func (m *Model) Len() int { return len(m.p) }

// P returns the a-priori error probability of bit j.
func (m *Model) P(j int) float64 { return m.p[j] }

// Probs returns a copy of the full probability vector.
func (m *Model) Probs() []float64 {
	cp := make([]float64, len(m.p))
	copy(cp, m.p)
	return cp
}

// LLR returns the prior log-likelihood ratio of bit j: log((1-p_j)/p_j).
//
// Complexity: O(1).
func (m *Model) LLR(j int) float64 {
	p := m.p[j]
	return math.Log((1 - p) / p)
}

// Ratio returns the prior probability ratio of bit j: p_j/(1-p_j).
//
// Complexity: O(1).
func (m *Model) Ratio(j int) float64 {
	p := m.p[j]
	return p / (1 - p)
}

// LLRs returns the prior LLR of every bit, computed once so BP kernels can
// seed edges without recomputing a log/division per edge per iteration.
//
// Complexity: O(n).
func (m *Model) LLRs() []float64 {
	out := make([]float64, len(m.p))
	for j, p := range m.p {
		out[j] = math.Log((1 - p) / p)
	}
	return out
}

// Ratios returns the prior probability ratio of every bit.
//
// Complexity: O(n).
func (m *Model) Ratios() []float64 {
	out := make([]float64, len(m.p))
	for j, p := range m.p {
		out[j] = p / (1 - p)
	}
	return out
}
