package fft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tuner/dsp/fft"
)

func ExampleNewEngine() {
	const n = 8

	eng, err := fft.NewEngine(fft.BackendAuto, n)
	if err != nil {
		panic(err)
	}

	buf := make([]complex128, n)
	buf[1] = 1
	scratch := make([]complex128, n)

	if err := eng.Forward(buf, scratch); err != nil {
		panic(err)
	}

	// A delayed impulse has a flat magnitude spectrum.
	fmt.Printf("%.3f %.3f\n", math.Hypot(real(buf[0]), imag(buf[0])), math.Hypot(real(buf[3]), imag(buf[3])))
	// Output:
	// 1.000 1.000
}
