package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// HarmonicTone sums sine partials at integer multiples of freqHz.
// amplitudes[k] is the amplitude of harmonic k+1.
func HarmonicTone(freqHz, sampleRate float64, amplitudes []float64, length int) []float64 {
	out := make([]float64, length)
	for k, amp := range amplitudes {
		step := 2 * math.Pi * freqHz * float64(k+1) / sampleRate
		for i := range out {
			out[i] += amp * math.Sin(step*float64(i))
		}
	}
	return out
}

// Sawtooth generates a naive (non band-limited) sawtooth in [-amplitude, amplitude).
func Sawtooth(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	inc := freqHz / sampleRate
	for i := range out {
		_, frac := math.Modf(float64(i) * inc)
		out[i] = amplitude * (2*frac - 1)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Add returns the element-wise sum of a and b, truncated to the shorter length.
func Add(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// ToFloat32 converts samples to float32, as delivered by Web Audio hosts.
func ToFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}
