package porous

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-absorb/air"
)

// Response holds the per-frequency characteristic impedance and wave
// number produced by one model evaluation. Both slices have the length
// of the frequency sweep that produced them.
type Response struct {
	Impedance  []complex128 // Pa·s/m, equivalent-fluid convention
	WaveNumber []complex128 // rad/m
}

// Len returns the number of frequency points in the response.
func (r Response) Len() int {
	return len(r.Impedance)
}

// Absorption converts the response into the normal-incidence absorption
// coefficient of a rigidly backed layer of the given thickness against
// the given characteristic impedance of air.
func (r Response) Absorption(thickness, airImpedance float64) ([]float64, error) {
	return Absorption(r.Impedance, r.WaveNumber, thickness, airImpedance)
}

// Absorption computes the normal-incidence sound absorption coefficient
// from characteristic impedance and wave number arrays:
//
//	zs    = -j zc cot(kc d)
//	alpha = 1 - |(zs - z0)/(zs + z0)|²
//
// zc must already be in the equivalent-fluid (porosity-normalized)
// convention; no porosity correction is applied here. Resonance poles of
// the cotangent (kc·d at odd multiples of pi/2) are legitimate physical
// behavior and pass through as zs -> 0.
//
// In exact arithmetic the result lies in [0, 1]; floating-point rounding
// may exceed the bounds by a few ulps.
func Absorption(zc, kc []complex128, thickness, airImpedance float64) ([]float64, error) {
	if len(zc) != len(kc) {
		return nil, fmt.Errorf("%w: impedance and wave number length mismatch: %d != %d",
			ErrDomain, len(zc), len(kc))
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("%w: thickness must be > 0 m: %g", ErrDomain, thickness)
	}
	if airImpedance <= 0 {
		return nil, fmt.Errorf("%w: air impedance must be > 0: %g", ErrDomain, airImpedance)
	}

	d := complex(thickness, 0)
	z0 := complex(airImpedance, 0)

	re := make([]float64, len(zc))
	im := make([]float64, len(zc))
	for i := range zc {
		zs := -1i * zc[i] / cmplx.Tan(kc[i]*d)
		refl := (zs - z0) / (zs + z0)
		re[i], im[i] = real(refl), imag(refl)
	}

	alpha := make([]float64, len(zc))
	vecmath.Power(alpha, re, im)
	for i := range alpha {
		alpha[i] = 1 - alpha[i]
	}

	return alpha, nil
}

// validateAir rejects air property sets that cannot drive a model,
// typically zero values from an uninitialized struct.
func validateAir(p air.Properties) error {
	if p.Density <= 0 {
		return fmt.Errorf("%w: air density must be > 0: %g", ErrDomain, p.Density)
	}
	if p.SoundSpeed <= 0 {
		return fmt.Errorf("%w: air sound speed must be > 0: %g", ErrDomain, p.SoundSpeed)
	}
	return nil
}
