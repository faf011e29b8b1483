package fft

import "github.com/mjibson/go-dsp/fft"

// goDSPEngine allocates its output on every call; scratch is unused.
type goDSPEngine struct {
	n int
}

func newGoDSPEngine(n int) *goDSPEngine {
	return &goDSPEngine{n: n}
}

func (e *goDSPEngine) Len() int         { return e.n }
func (e *goDSPEngine) Backend() Backend { return BackendGoDSP }

func (e *goDSPEngine) Forward(buf, scratch []complex128) error {
	if err := checkLengths(e.n, buf, scratch); err != nil {
		return err
	}
	copy(buf, fft.FFT(buf))
	return nil
}

func (e *goDSPEngine) Inverse(buf, scratch []complex128) error {
	if err := checkLengths(e.n, buf, scratch); err != nil {
		return err
	}
	copy(buf, fft.IFFT(buf))
	return nil
}
