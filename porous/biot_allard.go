package porous

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-absorb/air"
	"github.com/cwbudde/algo-absorb/internal/cbessel"
)

// BiotAllard evaluates the rigid-frame Biot-Allard model with cylindrical
// pore corrections. The viscous and thermal boundary layers inside the
// pores are resolved through Bessel-function ratios of the shear wave
// number, rotated onto the exp(-j pi/4) ray as the theory prescribes.
type BiotAllard struct {
	Air      air.Properties
	Material Material
}

// Evaluate computes the characteristic impedance and wave number over
// the given frequency sweep. The reported impedance follows the
// equivalent-fluid convention (divided by porosity).
func (m BiotAllard) Evaluate(freqs []float64) (Response, error) {
	mat := m.Material
	if mat.FlowResistivity <= 0 {
		return Response{}, fmt.Errorf("%w: Biot-Allard requires flow resistivity > 0: %g", ErrConfiguration, mat.FlowResistivity)
	}
	if mat.Porosity <= 0 || mat.Porosity > 1 {
		return Response{}, fmt.Errorf("%w: Biot-Allard requires porosity in (0, 1]: %g", ErrConfiguration, mat.Porosity)
	}
	if mat.Tortuosity < 1 {
		return Response{}, fmt.Errorf("%w: Biot-Allard requires tortuosity >= 1: %g", ErrConfiguration, mat.Tortuosity)
	}
	if _, err := mat.Shape.Factor(); err != nil {
		return Response{}, err
	}
	if err := validateAir(m.Air); err != nil {
		return Response{}, err
	}
	if m.Air.AtmosphericPressure <= 0 {
		return Response{}, fmt.Errorf("%w: Biot-Allard requires atmospheric pressure > 0: %g", ErrDomain, m.Air.AtmosphericPressure)
	}
	if m.Air.Prandtl <= 0 {
		return Response{}, fmt.Errorf("%w: Biot-Allard requires Prandtl number > 0: %g", ErrDomain, m.Air.Prandtl)
	}
	if err := validateFrequencies(freqs); err != nil {
		return Response{}, err
	}

	omega := make([]float64, len(freqs))
	for i, f := range freqs {
		omega[i] = 2 * math.Pi * f
	}

	s, err := shearWave(omega, mat.FlowResistivity, mat.Porosity, mat.Tortuosity, mat.Shape, m.Air.Density)
	if err != nil {
		return Response{}, err
	}

	rho := m.Air.Density
	gamma := m.Air.SpecificHeatRatio
	atm := m.Air.AtmosphericPressure
	b := complex(math.Sqrt(m.Air.Prandtl), 0)

	// Branch rotation used throughout the rigid-frame theory; the same
	// principal square root must feed every argument below.
	rot := cmplx.Sqrt(complex(0, -1))

	zc := make([]complex128, len(freqs))
	kc := make([]complex128, len(freqs))
	for i := range freqs {
		w := omega[i]

		// Effective density from the viscous boundary layer.
		rhoB := complex(mat.FlowResistivity*mat.Porosity, 0) /
			(complex(0, 1) * complex(w*rho*mat.Tortuosity, 0))
		rhoC := s[i] * rot / 4
		rhoD := 2 / (s[i] * rot)
		rhoR := cbessel.RatioJ1J0(s[i] * rot)
		rhoE := complex(rho*mat.Tortuosity, 0) * (1 - rhoB*(rhoC*rhoR)/(1-rhoD*rhoR))

		// Effective bulk modulus from the Prandtl-scaled thermal layer.
		kB := rhoB / b
		kC := rhoC * b
		kD := rhoD / b
		kR := cbessel.RatioJ1J0(s[i] * b * rot)
		kE := complex(gamma*atm, 0) /
			(complex(gamma, 0) - complex(gamma-1, 0)/(1-kB*(kC*kR)/(1-kD*kR)))

		zc[i] = cmplx.Sqrt(kE*rhoE) / complex(mat.Porosity, 0)
		kc[i] = complex(w, 0) * cmplx.Sqrt(rhoE/kE)
	}

	return Response{Impedance: zc, WaveNumber: kc}, nil
}
