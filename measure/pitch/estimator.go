package pitch

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-tuner/dsp/core"
	"github.com/cwbudde/algo-tuner/dsp/fft"
	"github.com/cwbudde/algo-tuner/dsp/interp"
	"github.com/cwbudde/algo-tuner/dsp/spectrum"
)

var (
	ErrInvalidSampleRate = errors.New("pitch: sample rate must be > 0")
	ErrInvalidBufferSize = errors.New("pitch: buffer size must be > 0")
	ErrInvalidBand       = errors.New("pitch: invalid frequency band")
)

// Result describes one frame estimate.
type Result struct {
	// Frequency is the estimate in Hz, or 0 when no pitch was found.
	Frequency float64
	// Lag is the winning integer autocorrelation lag in samples, 0 if none.
	Lag int
	// Offset is the parabolic correction applied to Lag.
	Offset float64
	// Refined reports whether Offset came from a non-degenerate fit.
	Refined bool
	// Clarity is the interpolated autocorrelation peak normalized by the
	// zero-lag energy, clamped to [0, 1]. Degenerate fits use the value at Lag.
	Clarity float64
}

// Voiced reports whether r carries a pitch estimate.
func (r Result) Voiced() bool { return r.Frequency > 0 }

// Period returns the refined period in seconds, or 0 when unvoiced.
func (r Result) Period() float64 {
	if !r.Voiced() {
		return 0
	}
	return 1 / r.Frequency
}

// Estimator detects the fundamental frequency of audio frames.
//
// It owns a working buffer and an FFT scratch buffer, both 2n complex
// values long for the last frame length n. Buffers are reallocated whenever
// the frame length changes.
type Estimator struct {
	cfg     Config
	planner *fft.Planner
	buf     []complex128
	scratch []complex128
}

// New creates an estimator for sampleRate, preallocating buffers for frames
// of bufferSize samples.
func New(sampleRate float64, bufferSize int, opts ...Option) (*Estimator, error) {
	cfg := ApplyOptions(opts...)
	cfg.SampleRate = sampleRate
	cfg.BlockSize = bufferSize
	return NewWithConfig(cfg)
}

// NewWithConfig creates an estimator from an explicit configuration.
func NewWithConfig(cfg Config) (*Estimator, error) {
	if !(cfg.SampleRate > 0) || !core.IsFinite(cfg.SampleRate) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufferSize, cfg.BlockSize)
	}
	if !(cfg.MinFreq > 0) || !(cfg.MaxFreq > cfg.MinFreq) {
		return nil, fmt.Errorf("%w: [%v, %v] Hz", ErrInvalidBand, cfg.MinFreq, cfg.MaxFreq)
	}
	if !slices.Contains(fft.Backends(), cfg.Backend) {
		return nil, fmt.Errorf("pitch: %w: %v", fft.ErrUnknownBackend, cfg.Backend)
	}
	if cfg.RefineEpsilon <= 0 {
		cfg.RefineEpsilon = interp.DefaultEpsilon
	}

	padded := 2 * cfg.BlockSize
	return &Estimator{
		cfg:     cfg,
		planner: fft.NewPlanner(cfg.Backend),
		buf:     make([]complex128, padded),
		scratch: make([]complex128, padded),
	}, nil
}

// Config returns the estimator configuration.
func (e *Estimator) Config() Config { return e.cfg }

// SampleRate returns the sample rate in Hz.
func (e *Estimator) SampleRate() float64 { return e.cfg.SampleRate }

// BufferLen returns the current working buffer length (twice the last frame
// length, or twice the nominal buffer size before the first call).
func (e *Estimator) BufferLen() int { return len(e.buf) }

// Detect returns the fundamental frequency of frame in Hz, or 0 when no
// pitch is found. FFT engine failures are also reported as 0; use
// [Estimator.Estimate] to observe them.
func (e *Estimator) Detect(frame []float64) float64 {
	res, err := e.Estimate(frame)
	if err != nil {
		return 0
	}
	return res.Frequency
}

// Detect32 is [Estimator.Detect] for float32 frames.
func (e *Estimator) Detect32(frame []float32) float64 {
	res, err := e.Estimate32(frame)
	if err != nil {
		return 0
	}
	return res.Frequency
}

// Estimate analyzes frame and returns the full result.
func (e *Estimator) Estimate(frame []float64) (Result, error) {
	n := len(frame)
	if n == 0 {
		return Result{}, nil
	}
	e.resize(n)
	core.LoadReal(e.buf, frame)
	return e.analyze(n)
}

// Estimate32 is [Estimator.Estimate] for float32 frames.
func (e *Estimator) Estimate32(frame []float32) (Result, error) {
	n := len(frame)
	if n == 0 {
		return Result{}, nil
	}
	e.resize(n)
	core.LoadReal32(e.buf, frame)
	return e.analyze(n)
}

// LagBounds returns the half-open lag range [lo, hi) scanned for a frame of
// n samples. ok is false when the band collapses.
func (e *Estimator) LagBounds(n int) (lo, hi int, ok bool) {
	return lagBounds(e.cfg.SampleRate, e.cfg.MinFreq, e.cfg.MaxFreq, n)
}

func (e *Estimator) resize(n int) {
	padded := 2 * n
	if len(e.buf) == padded {
		return
	}
	e.buf = core.ResizeComplex(e.buf, padded)
	e.scratch = core.ResizeComplex(e.scratch, padded)
}

// analyze expects the first n slots of e.buf to hold the frame and the rest
// to be zero.
func (e *Estimator) analyze(n int) (Result, error) {
	lo, hi, ok := e.LagBounds(n)
	if !ok {
		return Result{}, nil
	}

	eng, err := e.planner.Plan(len(e.buf))
	if err != nil {
		return Result{}, fmt.Errorf("pitch: failed to plan FFT: %w", err)
	}

	if err := eng.Forward(e.buf, e.scratch); err != nil {
		return Result{}, fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	spectrum.PowerInPlace(e.buf)

	if err := eng.Inverse(e.buf, e.scratch); err != nil {
		return Result{}, fmt.Errorf("pitch: inverse FFT failed: %w", err)
	}

	lag, found := e.peakLag(lo, hi)
	if !found {
		return Result{}, nil
	}

	return e.refine(lag), nil
}

// peakLag scans [lo, hi) for the largest strict local maximum of the
// autocorrelation held in the real parts of e.buf. Only strictly larger
// values replace the running maximum, so the earliest lag wins ties. Peaks
// must be positive.
func (e *Estimator) peakLag(lo, hi int) (int, bool) {
	best := 0.0
	lag := 0
	for i := lo; i < hi; i++ {
		v := real(e.buf[i])
		if v > best && v > real(e.buf[i-1]) && v > real(e.buf[i+1]) {
			best = v
			lag = i
		}
	}
	return lag, lag > 0
}

func (e *Estimator) refine(lag int) Result {
	y1 := real(e.buf[lag-1])
	y2 := real(e.buf[lag])
	y3 := real(e.buf[lag+1])

	res := Result{Lag: lag}
	d, peak, ok := interp.ParabolicPeak(y1, y2, y3, e.cfg.RefineEpsilon)
	if energy := real(e.buf[0]); energy > 0 {
		// The vertex may overshoot the zero-lag energy on short frames.
		res.Clarity = core.Clamp(peak/energy, 0, 1)
	}

	sr := e.cfg.SampleRate
	if ok && float64(lag)+d > 0 {
		res.Offset = d
		res.Refined = true
		res.Frequency = sr / (float64(lag) + d)
		return res
	}

	if e.cfg.Fallback == FallbackUnrefined {
		res.Frequency = sr / float64(lag)
	}
	return res
}

// lagBounds maps the [minHz, maxHz] band to lags floor(sr/maxHz) and
// floor(sr/minHz), clamping the upper lag to n-1 so that lag+1 stays inside
// the autocorrelation. The lower lag is raised to 1 so that lag-1 exists.
func lagBounds(sampleRate, minHz, maxHz float64, n int) (lo, hi int, ok bool) {
	lo = int(math.Floor(sampleRate / maxHz))
	hi = int(math.Floor(sampleRate / minHz))
	if hi > n-1 {
		hi = n - 1
	}
	if lo >= hi {
		return 0, 0, false
	}
	if lo < 1 {
		lo = 1
	}
	return lo, hi, true
}

// Detect is a one-shot helper that estimates the pitch of frame with a
// temporary [Estimator] and default options.
func Detect(frame []float64, sampleRate float64) float64 {
	est, err := New(sampleRate, max(len(frame), 1))
	if err != nil {
		return 0
	}
	return est.Detect(frame)
}
