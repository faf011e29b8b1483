package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im, pow []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// PowerInPlace replaces every bin X[k] with (|X[k]|^2, 0), discarding phase.
//
// Applied to the spectrum of a zero-padded frame this yields the
// frequency-domain form of the frame's autocorrelation. It does not
// allocate in steady state.
func PowerInPlace(bins []complex128) {
	if len(bins) == 0 {
		return
	}

	re, im, pow, buf := getScratch(len(bins))
	split(bins, re, im)
	vecmath.Power(pow, re, im)
	for i, p := range pow {
		bins[i] = complex(p, 0)
	}
	putScratch(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}
