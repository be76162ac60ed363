package porous

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-absorb/air"
)

// Rayleigh evaluates the Rayleigh model of identical parallel capillary
// pores in a rigid frame.
type Rayleigh struct {
	Air             air.Properties
	FlowResistivity float64 // N·s/m⁴
	Porosity        float64 // 0 < phi <= 1
}

// Evaluate computes the characteristic impedance and wave number over
// the given frequency sweep.
func (m Rayleigh) Evaluate(freqs []float64) (Response, error) {
	if m.FlowResistivity <= 0 {
		return Response{}, fmt.Errorf("%w: Rayleigh requires flow resistivity > 0: %g", ErrConfiguration, m.FlowResistivity)
	}
	if m.Porosity <= 0 || m.Porosity > 1 {
		return Response{}, fmt.Errorf("%w: Rayleigh requires porosity in (0, 1]: %g", ErrConfiguration, m.Porosity)
	}
	if err := validateAir(m.Air); err != nil {
		return Response{}, err
	}
	if err := validateFrequencies(freqs); err != nil {
		return Response{}, err
	}

	rho, c0 := m.Air.Density, m.Air.SoundSpeed

	zc := make([]complex128, len(freqs))
	kc := make([]complex128, len(freqs))
	for i, f := range freqs {
		omega := 2 * math.Pi * f
		a := cmplx.Sqrt(1 - complex(0, m.Porosity*m.FlowResistivity/(rho*omega)))
		kc[i] = complex(omega/c0, 0) * a
		zc[i] = complex(rho*c0/m.Porosity, 0) * a
	}

	return Response{Impedance: zc, WaveNumber: kc}, nil
}
