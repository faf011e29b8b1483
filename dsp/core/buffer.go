package core

// ResizeComplex returns buf when it already has length n, otherwise a newly
// allocated zeroed slice of length n. Contents are never carried over.
func ResizeComplex(buf []complex128, n int) []complex128 {
	if n <= 0 {
		return buf[:0]
	}
	if len(buf) == n {
		return buf
	}
	return make([]complex128, n)
}

// LoadReal copies src into the real parts of dst and zeroes every remaining
// slot of dst. It returns the number of samples loaded.
func LoadReal(dst []complex128, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = complex(src[i], 0)
	}
	ZeroComplex(dst[n:])
	return n
}

// LoadReal32 is [LoadReal] for float32 input.
func LoadReal32(dst []complex128, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = complex(float64(src[i]), 0)
	}
	ZeroComplex(dst[n:])
	return n
}

// ZeroComplex sets all values in buf to 0.
func ZeroComplex(buf []complex128) {
	clear(buf)
}
