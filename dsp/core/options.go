package core

import "time"

// ProcessorConfig carries the settings shared by frame analyzers: the
// capture sample rate and the nominal frame length.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig matches a Web Audio analyser node at 48 kHz with a
// 2048-sample time-domain buffer.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: 48000, BlockSize: 2048}
}

// WithSampleRate sets the sample rate in Hz. Non-positive rates are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the nominal frame length. Non-positive sizes are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies opts in order to DefaultProcessorConfig.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// FrameDuration is the time spanned by one block.
func (c ProcessorConfig) FrameDuration() time.Duration {
	return SamplesToDuration(c.BlockSize, c.SampleRate)
}

// SamplesToDuration converts a sample offset to time. A non-positive rate
// yields 0.
func SamplesToDuration(samples int, sampleRate float64) time.Duration {
	if !(sampleRate > 0) {
		return 0
	}
	return time.Duration(float64(samples) / sampleRate * float64(time.Second))
}
