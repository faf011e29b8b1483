package fft

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLength  = errors.New("fft: length must be > 0")
	ErrLengthMismatch = errors.New("fft: buffer length mismatch")
	ErrUnknownBackend = errors.New("fft: unknown backend")
)

// Engine is a fixed-length complex transform operating in place.
//
// Forward and Inverse overwrite buf with its transform. scratch must have
// the same length as buf; its contents are owned by the engine for the
// duration of the call and must not be interpreted by the caller.
type Engine interface {
	Len() int
	Backend() Backend
	Forward(buf, scratch []complex128) error
	Inverse(buf, scratch []complex128) error
}

// Backend identifies an FFT library.
type Backend int

const (
	BackendAuto Backend = iota
	BackendAlgoFFT
	BackendGonum
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAuto:    "auto",
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// Backends lists the selectable backends in declaration order.
func Backends() []Backend {
	return []Backend{BackendAuto, BackendAlgoFFT, BackendGonum, BackendGoDSP}
}

// ParseBackend maps a backend name (case-insensitive) to a Backend.
func ParseBackend(name string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "auto":
		return BackendAuto, nil
	case "algofft", "algo-fft":
		return BackendAlgoFFT, nil
	case "gonum", "fourier":
		return BackendGonum, nil
	case "godsp", "go-dsp":
		return BackendGoDSP, nil
	}
	return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// NewEngine creates an engine of length n for the given backend.
// BackendAuto resolves to algo-fft when n is a power of two and to gonum
// otherwise.
func NewEngine(backend Backend, n int) (Engine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	switch backend {
	case BackendAuto:
		if isPowerOf2(n) {
			return newAlgoEngine(n)
		}
		return newGonumEngine(n), nil
	case BackendAlgoFFT:
		return newAlgoEngine(n)
	case BackendGonum:
		return newGonumEngine(n), nil
	case BackendGoDSP:
		return newGoDSPEngine(n), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, backend)
	}
}

func checkLengths(n int, buf, scratch []complex128) error {
	if len(buf) != n || len(scratch) != n {
		return fmt.Errorf("%w: engine=%d buf=%d scratch=%d", ErrLengthMismatch, n, len(buf), len(scratch))
	}
	return nil
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
