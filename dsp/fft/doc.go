// Package fft adapts external FFT libraries to a single in-place engine
// interface.
//
// The package does not implement a transform itself. Each [Engine] wraps a
// library backend and exposes forward and inverse complex-to-complex
// transforms of a fixed length that operate in place on a caller buffer,
// using an auxiliary scratch buffer of the same length:
//
//	eng, err := fft.NewEngine(fft.BackendAuto, 4096)
//	buf := make([]complex128, 4096)
//	scratch := make([]complex128, 4096)
//	err = eng.Forward(buf, scratch)
//	err = eng.Inverse(buf, scratch)
//
// The scratch contents are private to the engine and undefined after a call.
// Inverse transforms are normalized by 1/Len for every backend, so a forward
// transform followed by an inverse transform returns the original sequence.
//
// # Backends
//
//   - [BackendAlgoFFT]: github.com/MeKo-Christian/algo-fft plans (power-of-two lengths)
//   - [BackendGonum]:   gonum.org/v1/gonum/dsp/fourier (any length)
//   - [BackendGoDSP]:   github.com/mjibson/go-dsp/fft (any length, allocates per call)
//   - [BackendAuto]:    algo-fft for power-of-two lengths, gonum otherwise
//
// A [Planner] caches engines by length for callers whose transform size
// changes between calls.
package fft
