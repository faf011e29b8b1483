package pitch

import (
	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/dsp/fft"
	"github.com/cwbudde/algo-tuner/dsp/interp"
)

const (
	DefaultMinFreq = 60.0
	DefaultMaxFreq = 1200.0
)

// Fallback selects the result when parabolic refinement is degenerate.
type Fallback int

const (
	// FallbackUnrefined reports sampleRate/L for the integer peak lag L.
	FallbackUnrefined Fallback = iota
	// FallbackNone reports 0 (no pitch).
	FallbackNone
)

func (f Fallback) String() string {
	switch f {
	case FallbackUnrefined:
		return "unrefined"
	case FallbackNone:
		return "none"
	default:
		return "unknown"
	}
}

// Config holds estimator parameters.
type Config struct {
	core.ProcessorConfig

	MinFreq       float64
	MaxFreq       float64
	Backend       fft.Backend
	Fallback      Fallback
	RefineEpsilon float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the tuner defaults: 60–1200 Hz band, automatic FFT
// backend, unrefined-lag fallback.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		MinFreq:         DefaultMinFreq,
		MaxFreq:         DefaultMaxFreq,
		Backend:         fft.BackendAuto,
		Fallback:        FallbackUnrefined,
		RefineEpsilon:   interp.DefaultEpsilon,
	}
}

// WithBand sets the search band in Hz. Invalid bands are ignored.
func WithBand(minHz, maxHz float64) Option {
	return func(cfg *Config) {
		if minHz > 0 && maxHz > minHz {
			cfg.MinFreq = minHz
			cfg.MaxFreq = maxHz
		}
	}
}

// WithBackend selects the FFT backend.
func WithBackend(backend fft.Backend) Option {
	return func(cfg *Config) {
		cfg.Backend = backend
	}
}

// WithDegenerateFallback selects the result for a degenerate parabolic fit.
func WithDegenerateFallback(fallback Fallback) Option {
	return func(cfg *Config) {
		cfg.Fallback = fallback
	}
}

// WithRefineEpsilon sets the relative curvature threshold of the parabolic fit.
func WithRefineEpsilon(eps float64) Option {
	return func(cfg *Config) {
		if eps > 0 {
			cfg.RefineEpsilon = eps
		}
	}
}

// WithProcessor applies shared frame-analyzer options to the embedded
// [core.ProcessorConfig].
func WithProcessor(opts ...core.ProcessorOption) Option {
	return func(cfg *Config) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.ProcessorConfig)
			}
		}
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
