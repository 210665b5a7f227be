package bpengine

import (
	"errors"
	"fmt"
)

// Sentinel errors for bpengine configuration and execution.
var (
	// ErrInvalidMaxIter indicates a non-positive MaxIter.
	ErrInvalidMaxIter = errors.New("bpengine: max_iter must be > 0")

	// ErrInvalidBPMethod indicates a method value that matches none of the
	// accepted string or integer aliases.
	ErrInvalidBPMethod = errors.New("bpengine: unrecognized bp method")

	// ErrInvalidSchedule indicates a schedule value that matches none of the
	// accepted string or integer aliases.
	ErrInvalidSchedule = errors.New("bpengine: unrecognized schedule")
)

func bpengineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Method selects the message-update kernel. The zero value is MethodProdSum.
type Method int

const (
	// MethodProdSum is the product-sum kernel in probability-ratio form.
	MethodProdSum Method = iota
	// MethodProdSumLog is the product-sum kernel in the log-likelihood domain.
	MethodProdSumLog
	// MethodMinSumLog is the normalized min-sum kernel in the log-likelihood domain.
	MethodMinSumLog
)

// MethodMinSum is not a distinct kernel: legacy "min_sum" configurations are
// silently redirected to MethodMinSumLog, matching how plain min-sum was
// never actually wired up to its own messages in the system this decoder is
// modeled on. Code should never branch on MethodMinSum; ParseMethod never
// returns anything but MethodProdSum, MethodProdSumLog, or MethodMinSumLog.
const MethodMinSum = MethodMinSumLog

// String returns the canonical label for m.
func (m Method) String() string {
	switch m {
	case MethodProdSum:
		return "prod_sum"
	case MethodProdSumLog:
		return "prod_sum_log"
	case MethodMinSumLog:
		return "min_sum_log"
	default:
		return "unknown"
	}
}

// Schedule selects how edges are revisited within one BP iteration.
type Schedule int

const (
	// Parallel updates every check, then every bit, from the previous iteration's state (flooding).
	Parallel Schedule = iota
	// Serial updates bits one at a time, each seeing the others' freshest messages within the same iteration.
	Serial
)

// String returns the canonical label for s.
func (s Schedule) String() string {
	switch s {
	case Parallel:
		return "parallel"
	case Serial:
		return "serial"
	default:
		return "unknown"
	}
}

// Config carries the tunables for one Run invocation.
type Config struct {
	Method          Method
	Schedule        Schedule
	MaxIter         int
	MSScalingFactor float64 // 0 selects the adaptive schedule alpha_t = 1 - 2^-t
}

// validate checks the numeric invariants Run depends on; Method and Schedule
// are assumed already normalized by ParseMethod/ParseSchedule.
func (c Config) validate() error {
	if c.MaxIter <= 0 {
		return bpengineErrorf("Config", ErrInvalidMaxIter)
	}
	return nil
}
