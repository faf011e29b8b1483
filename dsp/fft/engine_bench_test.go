package fft

import "testing"

func BenchmarkForwardInverse(b *testing.B) {
	for _, backend := range []Backend{BackendAlgoFFT, BackendGonum, BackendGoDSP} {
		for _, n := range []int{1024, 4096} {
			b.Run(backend.String()+"_"+itoa(n), func(b *testing.B) {
				eng, err := NewEngine(backend, n)
				if err != nil {
					b.Fatalf("NewEngine: %v", err)
				}
				buf := rampSequence(n)
				scratch := make([]complex128, n)

				b.ReportAllocs()
				b.ResetTimer()

				for range b.N {
					_ = eng.Forward(buf, scratch)
					_ = eng.Inverse(buf, scratch)
				}
			})
		}
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
