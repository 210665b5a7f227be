package ldpcdecoder

import (
	"errors"
	"fmt"

	"github.com/KuantumBS/ldpc/bpengine"
	"github.com/KuantumBS/ldpc/syndrome"
)

// Sentinel errors specific to Decoder construction; decode-time failures
// surface the sub-package error they originate from (channel, bpengine,
// syndrome) wrapped with a Decode/SIDecode tag, since each of those packages
// already owns a sentinel for its own failure mode.
var (
	// ErrNoErrorRate indicates construction supplied neither an error rate nor channel probs.
	ErrNoErrorRate = errors.New("ldpcdecoder: one of WithErrorRate or WithChannelProbs is required")
)

func ldpcdecoderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// config collects the options New needs before H and the channel model can
// be constructed.
type config struct {
	errorRate    float64
	hasErrorRate bool

	channelProbs []float64

	maxIter  int
	hasMaxIter bool

	bpMethod   interface{}
	schedule   interface{}
	inputType  interface{}

	msScalingFactor float64
}

// Option customizes Decoder construction.
type Option func(*config)

// WithErrorRate sets a uniform per-bit channel error rate in (0,1).
// Overridden by WithChannelProbs if both are supplied.
func WithErrorRate(p float64) Option {
	return func(c *config) {
		c.errorRate = p
		c.hasErrorRate = true
	}
}

// WithChannelProbs sets an explicit per-bit channel probability vector,
// overriding any WithErrorRate.
func WithChannelProbs(p []float64) Option {
	return func(c *config) {
		c.channelProbs = append([]float64(nil), p...)
	}
}

// WithMaxIter sets the maximum BP iteration count. 0 (the default) means
// "use n", the code length.
func WithMaxIter(n int) Option {
	return func(c *config) {
		c.maxIter = n
		c.hasMaxIter = true
	}
}

// WithBPMethod sets the message-update kernel; accepts anything
// bpengine.ParseMethod accepts.
func WithBPMethod(v interface{}) Option {
	return func(c *config) { c.bpMethod = v }
}

// WithSchedule sets the update schedule; accepts anything
// bpengine.ParseSchedule accepts.
func WithSchedule(v interface{}) Option {
	return func(c *config) { c.schedule = v }
}

// WithMSScalingFactor sets the min-sum normalization factor. 0 (the
// default) selects the adaptive schedule alpha_t = 1 - 2^-t.
func WithMSScalingFactor(alpha float64) Option {
	return func(c *config) { c.msScalingFactor = alpha }
}

// WithInputType sets how decode input vectors are interpreted; accepts
// anything a syndrome.InputType-compatible parse would (see parseInputType).
func WithInputType(v interface{}) Option {
	return func(c *config) { c.inputType = v }
}

func newConfig(opts []Option) config {
	c := config{inputType: syndrome.Auto, bpMethod: bpengine.MethodProdSum, schedule: bpengine.Parallel}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// parseInputType resolves a WithInputType value into a syndrome.InputType:
// the InputType itself, an int (0=syndrome, 1=received, 2=auto), or the
// exact strings "syndrome"/"Syndrome", "received"/"Received", "auto"/"Auto"
// (no other case folding and no space trimming, unlike bpengine's ParseMethod).
func parseInputType(v interface{}) (syndrome.InputType, error) {
	switch t := v.(type) {
	case syndrome.InputType:
		return t, nil
	case int:
		switch t {
		case 0:
			return syndrome.Syndrome, nil
		case 1:
			return syndrome.Received, nil
		case 2:
			return syndrome.Auto, nil
		}
	case string:
		switch t {
		case "syndrome", "Syndrome":
			return syndrome.Syndrome, nil
		case "received", "Received":
			return syndrome.Received, nil
		case "auto", "Auto":
			return syndrome.Auto, nil
		}
	}
	return 0, syndrome.ErrInvalidInputType
}
