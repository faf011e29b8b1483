package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

type algoEngine struct {
	n    int
	plan *algofft.Plan[complex128]
}

func newAlgoEngine(n int) (*algoEngine, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create algo-fft plan of length %d: %w", n, err)
	}
	return &algoEngine{n: n, plan: plan}, nil
}

func (e *algoEngine) Len() int         { return e.n }
func (e *algoEngine) Backend() Backend { return BackendAlgoFFT }

// Forward stages buf in scratch and transforms scratch back into buf.
func (e *algoEngine) Forward(buf, scratch []complex128) error {
	if err := checkLengths(e.n, buf, scratch); err != nil {
		return err
	}
	copy(scratch, buf)
	if err := e.plan.Forward(buf, scratch); err != nil {
		return fmt.Errorf("fft: algo-fft forward failed: %w", err)
	}
	return nil
}

// Inverse is normalized by the plan.
func (e *algoEngine) Inverse(buf, scratch []complex128) error {
	if err := checkLengths(e.n, buf, scratch); err != nil {
		return err
	}
	copy(scratch, buf)
	if err := e.plan.Inverse(buf, scratch); err != nil {
		return fmt.Errorf("fft: algo-fft inverse failed: %w", err)
	}
	return nil
}
