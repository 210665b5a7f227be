package ldpcdecoder

import (
	"github.com/KuantumBS/ldpc/bpengine"
	"github.com/KuantumBS/ldpc/channel"
	"github.com/KuantumBS/ldpc/inactivation"
	"github.com/KuantumBS/ldpc/sparsemod2"
	"github.com/KuantumBS/ldpc/syndrome"
)

// Decoder is the top-level BP+SI decoder for one parity-check matrix and
// channel model. Construct with New; all buffers are sized once and reused
// across Decode/SIDecode calls.
type Decoder struct {
	h      *sparsemod2.Matrix
	priors *channel.Model

	m, n int

	method    bpengine.Method
	schedule  bpengine.Schedule
	maxIter   int
	msScale   float64
	inputType syndrome.InputType

	synd              []byte
	received          []byte
	bpDecoding        []byte
	llr               []float64
	inactivatedChecks []byte

	iter     int
	converge bool
}

// New builds H via sparsemod2.NewMatrix from (rows, cols, nonzeros) and
// constructs a Decoder around it. All configuration errors fail
// construction; no partially-initialized Decoder is ever returned.
//
// Stage 1 (Prepare): build H, resolve method/schedule/input-type aliases.
// Stage 2 (Validate): max_iter, channel probabilities.
// Stage 3 (Finalize): allocate buffers and return.
func New(rows, cols int, nonzeros [][2]int, opts ...Option) (*Decoder, error) {
	h, err := sparsemod2.NewMatrix(rows, cols, nonzeros)
	if err != nil {
		return nil, ldpcdecoderErrorf("New", err)
	}

	cfg := newConfig(opts)

	method, err := bpengine.ParseMethod(cfg.bpMethod)
	if err != nil {
		return nil, ldpcdecoderErrorf("New", err)
	}
	schedule, err := bpengine.ParseSchedule(cfg.schedule)
	if err != nil {
		return nil, ldpcdecoderErrorf("New", err)
	}
	inputType, err := parseInputType(cfg.inputType)
	if err != nil {
		return nil, ldpcdecoderErrorf("New", err)
	}

	maxIter := cfg.maxIter
	if !cfg.hasMaxIter || maxIter == 0 {
		maxIter = cols
	}
	if maxIter < 0 {
		return nil, ldpcdecoderErrorf("New", bpengine.ErrInvalidMaxIter)
	}

	var priors *channel.Model
	switch {
	case cfg.channelProbs != nil:
		priors, err = channel.PerBit(cfg.channelProbs)
	case cfg.hasErrorRate:
		priors, err = channel.Uniform(cfg.errorRate, cols)
	default:
		return nil, ldpcdecoderErrorf("New", ErrNoErrorRate)
	}
	if err != nil {
		return nil, ldpcdecoderErrorf("New", err)
	}
	if priors.Len() != cols {
		return nil, ldpcdecoderErrorf("New", channel.ErrLengthMismatch)
	}

	return &Decoder{
		h:                 h,
		priors:            priors,
		m:                 rows,
		n:                 cols,
		method:            method,
		schedule:          schedule,
		maxIter:           maxIter,
		msScale:           cfg.msScalingFactor,
		inputType:         inputType,
		synd:              make([]byte, rows),
		received:          make([]byte, cols),
		bpDecoding:        make([]byte, cols),
		llr:               make([]float64, cols),
		inactivatedChecks: make([]byte, rows),
	}, nil
}

func (d *Decoder) bpConfig() bpengine.Config {
	return bpengine.Config{Method: d.method, Schedule: d.schedule, MaxIter: d.maxIter, MSScalingFactor: d.msScale}
}

// runBP normalizes v into d.synd/d.received, runs one BP decode, and records
// d.iter/d.converge. Returns the resolved input type for Recover.
func (d *Decoder) runBP(v []byte) (syndrome.InputType, error) {
	resolved, err := syndrome.Normalize(d.h, v, d.inputType, d.synd, d.received)
	if err != nil {
		return 0, err
	}

	iter, converged, err := bpengine.Run(d.h, d.priors, d.synd, d.inactivatedChecks, d.bpConfig(), d.bpDecoding, d.llr)
	if err != nil {
		return 0, err
	}
	d.iter, d.converge = iter, converged

	return resolved, nil
}

// Decode runs plain BP against v (interpreted per the decoder's configured
// input_vector_type) and returns the n-bit estimate.
func (d *Decoder) Decode(v []byte) ([]byte, error) {
	resolved, err := d.runBP(v)
	if err != nil {
		return nil, ldpcdecoderErrorf("Decode", err)
	}

	out := make([]byte, d.n)
	if err := syndrome.Recover(resolved, d.bpDecoding, d.received, out); err != nil {
		return nil, ldpcdecoderErrorf("Decode", err)
	}
	return out, nil
}

// SIDecode runs plain BP, and if it fails to converge, hands off to
// stabilizer inactivation before recovering the estimate. If plain BP
// already converged, it returns exactly the plain BP output without
// invoking the SI loop.
func (d *Decoder) SIDecode(v []byte) ([]byte, error) {
	resolved, err := d.runBP(v)
	if err != nil {
		return nil, ldpcdecoderErrorf("SIDecode", err)
	}

	if !d.converge {
		result, ok, err := inactivation.Postprocess(d.h, d.priors, d.synd, d.bpConfig(), d.bpDecoding, d.llr)
		if err != nil {
			return nil, ldpcdecoderErrorf("SIDecode", err)
		}
		if ok {
			copy(d.bpDecoding, result)
			d.converge = true
		}
	}

	out := make([]byte, d.n)
	if err := syndrome.Recover(resolved, d.bpDecoding, d.received, out); err != nil {
		return nil, ldpcdecoderErrorf("SIDecode", err)
	}
	return out, nil
}

// UpdateChannelProbs replaces the per-bit channel probability vector.
func (d *Decoder) UpdateChannelProbs(p []float64) error {
	if err := d.priors.Update(p); err != nil {
		return ldpcdecoderErrorf("UpdateChannelProbs", err)
	}
	return nil
}

// SetInactivatedChecks marks the given check (row) indices as inactivated;
// every other check is left untouched. An out-of-range index is reported as
// an error wrapping syndrome.ErrInvalidInputLength, and then no check is marked.
func (d *Decoder) SetInactivatedChecks(indices []int) error {
	for _, i := range indices {
		if i < 0 || i >= d.m {
			return ldpcdecoderErrorf("SetInactivatedChecks", syndrome.ErrInvalidInputLength)
		}
	}
	for _, i := range indices {
		d.inactivatedChecks[i] = 1
	}
	return nil
}

// ResetInactivatedChecks clears every inactivated check.
func (d *Decoder) ResetInactivatedChecks() {
	for i := range d.inactivatedChecks {
		d.inactivatedChecks[i] = 0
	}
}

// Iter returns the iteration count of the most recent Decode/SIDecode call.
func (d *Decoder) Iter() int { return d.iter }

// Converged reports whether the most recent Decode/SIDecode call converged.
func (d *Decoder) Converged() bool { return d.converge }

// BPDecoding returns a copy of the most recent hard-decision BP output.
func (d *Decoder) BPDecoding() []byte {
	out := make([]byte, len(d.bpDecoding))
	copy(out, d.bpDecoding)
	return out
}

// LogProbRatios returns a copy of the most recent posterior LLRs.
func (d *Decoder) LogProbRatios() []float64 {
	out := make([]float64, len(d.llr))
	copy(out, d.llr)
	return out
}

// ChannelProbs returns a copy of the current per-bit channel probabilities.
func (d *Decoder) ChannelProbs() []float64 { return d.priors.Probs() }

// BPMethod returns the configured method's string label.
func (d *Decoder) BPMethod() string { return d.method.String() }

// Schedule returns the configured schedule's string label.
func (d *Decoder) Schedule() string { return d.schedule.String() }

// MSScalingFactor returns the configured min-sum scaling factor.
func (d *Decoder) MSScalingFactor() float64 { return d.msScale }

// MaxIter returns the configured maximum iteration count.
func (d *Decoder) MaxIter() int { return d.maxIter }

// InactivatedChecks returns the row indices currently marked inactivated, in
// ascending order.
func (d *Decoder) InactivatedChecks() []int {
	out := make([]int, 0)
	for i, v := range d.inactivatedChecks {
		if v == 1 {
			out = append(out, i)
		}
	}
	return out
}
