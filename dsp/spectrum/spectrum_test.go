package spectrum

import (
	"math"
	"testing"
)

func TestPowerInPlaceDiscardsPhase(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0, 0.5i, -2}
	want := []float64{25, 2, 0, 0.25, 4}

	PowerInPlace(bins)

	for i, c := range bins {
		if imag(c) != 0 {
			t.Fatalf("bin %d: imaginary part %v, want 0", i, imag(c))
		}
		if math.Abs(real(c)-want[i]) > 1e-12 {
			t.Fatalf("bin %d: got %v want %v", i, real(c), want[i])
		}
	}
}

func TestPowerInPlaceLargeBuffer(t *testing.T) {
	bins := make([]complex128, 1031)
	want := make([]float64, len(bins))
	for i := range bins {
		re, im := math.Sin(float64(i)*0.1), math.Cos(float64(i)*0.7)
		bins[i] = complex(re, im)
		want[i] = re*re + im*im
	}

	PowerInPlace(bins)

	for i := range bins {
		if math.Abs(real(bins[i])-want[i]) > 1e-12 || imag(bins[i]) != 0 {
			t.Fatalf("index %d: got %v want %v", i, bins[i], want[i])
		}
	}
}

func TestPowerInPlaceEmpty(t *testing.T) {
	PowerInPlace(nil)
	PowerInPlace([]complex128{})
}
