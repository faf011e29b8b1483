package fft

import "gonum.org/v1/gonum/dsp/fourier"

type gonumEngine struct {
	t     *fourier.CmplxFFT
	scale complex128
}

func newGonumEngine(n int) *gonumEngine {
	return &gonumEngine{
		t:     fourier.NewCmplxFFT(n),
		scale: complex(1/float64(n), 0),
	}
}

func (e *gonumEngine) Len() int         { return e.t.Len() }
func (e *gonumEngine) Backend() Backend { return BackendGonum }

func (e *gonumEngine) Forward(buf, scratch []complex128) error {
	if err := checkLengths(e.t.Len(), buf, scratch); err != nil {
		return err
	}
	copy(scratch, buf)
	e.t.Coefficients(buf, scratch)
	return nil
}

// Inverse applies the 1/n factor that gonum leaves to the caller.
func (e *gonumEngine) Inverse(buf, scratch []complex128) error {
	if err := checkLengths(e.t.Len(), buf, scratch); err != nil {
		return err
	}
	copy(scratch, buf)
	e.t.Sequence(buf, scratch)
	for i := range buf {
		buf[i] *= e.scale
	}
	return nil
}
