package blend

import (
	"fmt"
	"runtime"
)

// Config holds executor settings. Zero values select automatic behaviour.
type Config struct {
	// Threads is the worker count for the threaded strategy; 0 means
	// runtime.GOMAXPROCS(0).
	Threads int

	// Pin pins threaded workers to CPUs.
	Pin bool

	// LaneWidth is the packet width for the vectorized strategy; 0 means the
	// backend's native width.
	LaneWidth int

	// Alignment is the vectorized strategy's alignment policy.
	Alignment Alignment

	// BlockOps evaluates vector packets with whole-block primitives.
	BlockOps bool

	// Backend names the lane backend; "" picks the best for the CPU.
	Backend string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns automatic settings for every strategy.
func DefaultConfig() Config {
	return Config{Alignment: AlignAny}
}

// WithThreads sets the worker count. Negative values are rejected by New.
func WithThreads(n int) Option {
	return func(cfg *Config) {
		cfg.Threads = n
	}
}

// WithPinning enables or disables CPU pinning of workers.
func WithPinning(pin bool) Option {
	return func(cfg *Config) {
		cfg.Pin = pin
	}
}

// WithLaneWidth sets the packet width. Negative values are rejected by New.
func WithLaneWidth(n int) Option {
	return func(cfg *Config) {
		cfg.LaneWidth = n
	}
}

// WithAlignment sets the alignment policy of the vectorized strategy.
func WithAlignment(a Alignment) Option {
	return func(cfg *Config) {
		cfg.Alignment = a
	}
}

// WithBlockOps enables block-primitive evaluation of vector packets.
func WithBlockOps(enabled bool) Option {
	return func(cfg *Config) {
		cfg.BlockOps = enabled
	}
}

// WithBackend selects a lane backend by name.
func WithBackend(name string) Option {
	return func(cfg *Config) {
		cfg.Backend = name
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// New returns the executor for strategy configured by opts.
func New(strategy Strategy, opts ...Option) (Executor, error) {
	cfg := ApplyOptions(opts...)

	switch strategy {
	case StrategyScalar:
		return Scalar{}, nil

	case StrategyThreaded:
		if cfg.Threads < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidThreadCount, cfg.Threads)
		}
		threads := cfg.Threads
		if threads == 0 {
			threads = runtime.GOMAXPROCS(0)
		}
		return Threaded{Threads: threads, Pin: cfg.Pin}, nil

	case StrategyVectorized:
		if cfg.LaneWidth < 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidLaneWidth, cfg.LaneWidth)
		}
		if cfg.Alignment < AlignAny || cfg.Alignment > AlignCopy {
			return nil, fmt.Errorf("%w: %v", ErrUnknownAlignment, cfg.Alignment)
		}
		if _, err := lookupBackend(cfg.Backend); err != nil {
			return nil, err
		}
		return Vector{
			LaneWidth: cfg.LaneWidth,
			Alignment: cfg.Alignment,
			Block:     cfg.BlockOps,
			Backend:   cfg.Backend,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
}
