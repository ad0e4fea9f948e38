package blend

import (
	"fmt"
	"strings"
)

// Executor evaluates the screen blend of src1 and src2 into dst. All three
// slices must have the same length; dst may alias a source exactly.
// Implementations validate their inputs before writing anything.
type Executor interface {
	Run(dst, src1, src2 []float64) error
	Name() string
}

// Strategy names one of the interchangeable executors.
type Strategy int

const (
	// StrategyScalar runs the sequential reference executor.
	StrategyScalar Strategy = iota
	// StrategyThreaded splits the samples across worker goroutines.
	StrategyThreaded
	// StrategyVectorized runs fixed-width packets through a lane backend.
	StrategyVectorized
)

// String returns the canonical name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyThreaded:
		return "threaded"
	case StrategyVectorized:
		return "vectorized"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name. Besides the canonical names it
// accepts "single", "threads", "multi-thread" and "simd".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "single", "single-thread":
		return StrategyScalar, nil
	case "threaded", "threads", "multi-thread":
		return StrategyThreaded, nil
	case "vectorized", "vector", "simd":
		return StrategyVectorized, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
