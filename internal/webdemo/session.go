package webdemo

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-tuner/internal/tracker"
	"github.com/cwbudde/algo-tuner/measure/pitch"
)

// Reading is the result of one processed frame.
type Reading struct {
	// Raw is the estimator output for the frame.
	Raw float64
	// Pitch is the smoothed value to display.
	Pitch float64
	Level float64
	Note  Note
}

// Session runs the tuner pipeline for the web host: estimator, gate and
// smoothing, note mapping.
type Session struct {
	sampleRate float64
	estimator  *pitch.Estimator
	tracker    *tracker.Tracker
}

// NewSession creates a tuner session.
func NewSession(sampleRate float64, bufferSize int, opts ...pitch.Option) (*Session, error) {
	est, err := pitch.New(sampleRate, bufferSize, opts...)
	if err != nil {
		return nil, fmt.Errorf("webdemo: create estimator: %w", err)
	}
	return &Session{
		sampleRate: sampleRate,
		estimator:  est,
		tracker:    tracker.New(),
	}, nil
}

// SampleRate returns the session sample rate in Hz.
func (s *Session) SampleRate() float64 { return s.sampleRate }

// Process analyzes one Web Audio frame captured at now.
func (s *Session) Process(frame []float32, now time.Duration) Reading {
	raw := s.estimator.Detect32(frame)
	level := tracker.Level32(frame)
	smoothed := s.tracker.Update(raw, level, now)

	return Reading{
		Raw:   raw,
		Pitch: smoothed,
		Level: level,
		Note:  NoteFor(smoothed),
	}
}

// Reset clears smoothing state.
func (s *Session) Reset() {
	s.tracker.Reset()
}
