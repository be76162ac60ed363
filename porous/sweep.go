package porous

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultSweep returns the conventional measurement sweep of
// 100 Hz to 10 kHz in 1 Hz steps.
func DefaultSweep() []float64 {
	return floats.Span(make([]float64, 9901), 100, 10000)
}

// Sweep returns frequencies from lo to at most hi in the given step.
// All frequencies must end up strictly positive.
func Sweep(lo, hi, step float64) ([]float64, error) {
	if lo <= 0 {
		return nil, fmt.Errorf("%w: sweep start must be > 0 Hz: %g", ErrDomain, lo)
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: sweep end %g Hz below start %g Hz", ErrDomain, hi, lo)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: sweep step must be > 0 Hz: %g", ErrDomain, step)
	}

	// Rounding in (hi-lo)/step must not drop a representable endpoint,
	// e.g. Sweep(100, 200, 0.1) has to reach 200.
	steps := (hi - lo) / step
	n := int(math.Floor(steps+1e-9)) + 1
	if n == 1 {
		return []float64{lo}, nil
	}
	end := lo + float64(n-1)*step
	if end > hi {
		end = hi
	}
	return floats.Span(make([]float64, n), lo, end), nil
}

// validateFrequencies rejects sweeps containing non-positive entries
// before any elementwise work starts.
func validateFrequencies(freqs []float64) error {
	for i, f := range freqs {
		if f <= 0 {
			return fmt.Errorf("%w: frequency[%d] must be > 0 Hz: %g", ErrDomain, i, f)
		}
	}
	return nil
}
