package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/internal/config"
	"github.com/cwbudde/algo-tuner/internal/tracker"
	"github.com/cwbudde/algo-tuner/internal/webdemo"
	"github.com/cwbudde/algo-tuner/measure/pitch"
)

// frameResult is one row of the report.
type frameResult struct {
	Index  int     `json:"index" yaml:"index"`
	Time   float64 `json:"time" yaml:"time"`
	Raw    float64 `json:"raw_hz" yaml:"raw_hz"`
	Pitch  float64 `json:"pitch_hz" yaml:"pitch_hz"`
	Level  float64 `json:"level" yaml:"level"`
	Note   string  `json:"note" yaml:"note"`
	Cents  float64 `json:"cents" yaml:"cents"`
	Status string  `json:"status" yaml:"status"`
}

// scan runs the estimator over consecutive frames of samples. Signals
// shorter than one frame are analyzed as a single frame.
func scan(samples []float64, sampleRate float64, cfg config.Config, log *zap.Logger) ([]frameResult, error) {
	opts, err := cfg.PitchOptions()
	if err != nil {
		return nil, err
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("pitchscan: %w: %v", pitch.ErrInvalidSampleRate, sampleRate)
	}
	opts = append(opts, pitch.WithProcessor(core.WithSampleRate(sampleRate), core.WithBlockSize(cfg.FrameSize)))
	est, err := pitch.NewWithConfig(pitch.ApplyOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("pitchscan: %w", err)
	}

	var tr *tracker.Tracker
	if cfg.Tracker.Enabled {
		tr = tracker.New(cfg.TrackerOptions()...)
	}

	size := min(cfg.FrameSize, len(samples))
	hop := cfg.HopSize()

	var out []frameResult
	for start := 0; start+size <= len(samples) && size > 0; start += hop {
		frame := samples[start : start+size]

		res, err := est.Estimate(frame)
		if err != nil {
			return nil, fmt.Errorf("pitchscan: frame %d: %w", len(out), err)
		}

		at := core.SamplesToDuration(start, sampleRate)
		level := tracker.Level(frame)
		shown := res.Frequency
		if tr != nil {
			shown = tr.Update(res.Frequency, level, at)
		}

		note := webdemo.NoteFor(shown)
		out = append(out, frameResult{
			Index:  len(out),
			Time:   at.Seconds(),
			Raw:    res.Frequency,
			Pitch:  shown,
			Level:  level,
			Note:   note.String(),
			Cents:  note.Cents,
			Status: note.Status().String(),
		})

		log.Debug("frame",
			zap.Int("index", len(out)-1),
			zap.Float64("raw_hz", res.Frequency),
			zap.Int("lag", res.Lag),
			zap.Float64("offset", res.Offset),
			zap.Bool("refined", res.Refined),
			zap.Float64("clarity", res.Clarity),
		)
	}
	return out, nil
}
