// Package tracker stabilizes per-frame pitch estimates for display.
//
// A Tracker combines a two-threshold (Schmitt trigger) RMS gate, a rolling
// average over the most recent accepted estimates and a grace period that
// keeps the last value on screen through short dropouts.
package tracker

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultAttackLevel  = 0.01
	DefaultSustainLevel = 0.001
	DefaultWindow       = 5
	DefaultGrace        = 300 * time.Millisecond
)

// Config holds gate and smoothing parameters.
type Config struct {
	// AttackLevel is the RMS level a frame must exceed to start a note.
	AttackLevel float64
	// SustainLevel is the RMS level a frame must exceed to keep a note.
	SustainLevel float64
	// Window is the number of accepted estimates averaged.
	Window int
	// Grace is how long a note is held after the gate closes.
	Grace time.Duration
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the gate settings of the interactive tuner.
func DefaultConfig() Config {
	return Config{
		AttackLevel:  DefaultAttackLevel,
		SustainLevel: DefaultSustainLevel,
		Window:       DefaultWindow,
		Grace:        DefaultGrace,
	}
}

// WithLevels sets attack and sustain thresholds. Invalid pairs are ignored.
func WithLevels(attack, sustain float64) Option {
	return func(cfg *Config) {
		if attack > 0 && sustain > 0 && sustain <= attack {
			cfg.AttackLevel = attack
			cfg.SustainLevel = sustain
		}
	}
}

// WithWindow sets the smoothing window length.
func WithWindow(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Window = n
		}
	}
}

// WithGrace sets the hold time after the gate closes.
func WithGrace(d time.Duration) Option {
	return func(cfg *Config) {
		if d >= 0 {
			cfg.Grace = d
		}
	}
}

// Tracker is not safe for concurrent use.
type Tracker struct {
	cfg Config

	history    []float64
	sustaining bool
	pitch      float64

	silent       bool
	silenceStart time.Duration
}

// New creates a tracker with the given options applied to DefaultConfig.
func New(opts ...Option) *Tracker {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Tracker{
		cfg:     cfg,
		history: make([]float64, 0, cfg.Window),
	}
}

// Config returns the tracker configuration.
func (t *Tracker) Config() Config { return t.cfg }

// Update feeds one raw estimate with the RMS level of its frame. now is a
// monotonic timestamp (for example the elapsed time since the stream
// started). The returned value is the smoothed pitch to display, 0 when no
// note is held.
func (t *Tracker) Update(raw, level float64, now time.Duration) float64 {
	threshold := t.cfg.AttackLevel
	if t.sustaining {
		threshold = t.cfg.SustainLevel
	}

	if raw > 0 && level > threshold {
		t.sustaining = true
		t.silent = false
		t.push(raw)
		t.pitch = floats.Sum(t.history) / float64(len(t.history))
		return t.pitch
	}

	switch {
	case !t.silent:
		t.silent = true
		t.silenceStart = now
	case now-t.silenceStart > t.cfg.Grace:
		t.Reset()
	}
	return t.pitch
}

// Pitch returns the currently displayed pitch.
func (t *Tracker) Pitch() float64 { return t.pitch }

// Sustaining reports whether the gate is open at the sustain threshold.
func (t *Tracker) Sustaining() bool { return t.sustaining }

// Reset clears the history and closes the gate.
func (t *Tracker) Reset() {
	t.history = t.history[:0]
	t.sustaining = false
	t.pitch = 0
	t.silent = false
	t.silenceStart = 0
}

func (t *Tracker) push(v float64) {
	if len(t.history) == t.cfg.Window {
		copy(t.history, t.history[1:])
		t.history = t.history[:len(t.history)-1]
	}
	t.history = append(t.history, v)
}

// Level returns the RMS level of frame, 0 for an empty frame.
func Level(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}
	return floats.Norm(frame, 2) / math.Sqrt(float64(len(frame)))
}

// Level32 is Level for float32 frames.
func Level32(frame []float32) float64 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range frame {
		x := float64(v)
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(frame)))
}
