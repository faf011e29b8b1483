// Package pitch estimates the fundamental frequency of a single audio frame.
//
// The [Estimator] computes the frame's autocorrelation through a Fourier
// transform pair (Wiener–Khinchin), picks the strongest strict local maximum
// whose lag lies in the configured frequency band (60–1200 Hz by default),
// and refines that lag with a three-point parabolic fit:
//
//	frame ─▶ zero-pad to 2n ─▶ FFT ─▶ |X|² ─▶ IFFT ─▶ peak search ─▶ refine ─▶ Hz
//
// Zero-padding to twice the frame length turns the circular autocorrelation
// of the DFT into a linear one, so lags never wrap onto the frame itself.
//
// # Usage
//
//	est, err := pitch.New(48000, 2048)
//	if err != nil {
//		return err
//	}
//	hz := est.Detect(frame) // 0 means "no pitch"
//
// The result 0 is a sentinel, never a measurement: it is returned for empty
// frames, for a band that collapses at the given frame length and sample
// rate, and when no lag in the band is a strict local maximum (silence,
// DC, noise-like frames).
//
// The estimator keeps no pitch history. Smoothing, gating and note
// quantization are left to the caller.
//
// An Estimator owns its working buffers and is not safe for concurrent use.
// Use one Estimator per goroutine or guard it with a mutex.
package pitch
