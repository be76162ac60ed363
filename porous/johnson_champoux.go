package porous

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-absorb/air"
)

// JohnsonChampouxVariant selects the formulation of the Johnson-Champoux
// model family.
type JohnsonChampouxVariant int

const (
	// JohnsonChampouxDefault is the Johnson-Champoux formulation.
	JohnsonChampouxDefault JohnsonChampouxVariant = iota
	// JohnsonChampouxAllard adds Champoux-Allard thermal effects driven by
	// the specific heat of air.
	JohnsonChampouxAllard
	// JohnsonChampouxLafarge replaces the thermal correction with Lafarge's
	// static thermal permeability formulation.
	JohnsonChampouxLafarge
)

func (v JohnsonChampouxVariant) String() string {
	switch v {
	case JohnsonChampouxDefault:
		return "default"
	case JohnsonChampouxAllard:
		return "allard"
	case JohnsonChampouxLafarge:
		return "lafarge"
	default:
		return fmt.Sprintf("JohnsonChampouxVariant(%d)", int(v))
	}
}

// JohnsonChampoux evaluates the Johnson-Champoux model family, which
// corrects the viscous and thermal dissipation through the characteristic
// lengths of the pore geometry.
//
// The Allard variant requires the specific heat of air; the Lafarge
// variant additionally requires the static thermal permeability of the
// material. Zero values for required parameters are configuration errors.
type JohnsonChampoux struct {
	Air      air.Properties
	Material Material
	Variant  JohnsonChampouxVariant
}

// Evaluate computes the characteristic impedance and wave number over
// the given frequency sweep. The reported impedance follows the
// equivalent-fluid convention (divided by porosity).
func (m JohnsonChampoux) Evaluate(freqs []float64) (Response, error) {
	if err := m.validate(); err != nil {
		return Response{}, err
	}
	if err := validateFrequencies(freqs); err != nil {
		return Response{}, err
	}

	zc := make([]complex128, len(freqs))
	kc := make([]complex128, len(freqs))
	for i, f := range freqs {
		omega := 2 * math.Pi * f
		rhoE, kE := m.effective(omega)
		zc[i] = cmplx.Sqrt(kE * rhoE)
		if m.Variant == JohnsonChampouxDefault {
			// The default formulation derives frame-intrinsic quantities;
			// normalize to the equivalent fluid. The other variants carry
			// the porosity inside rhoE and kE already.
			zc[i] /= complex(m.Material.Porosity, 0)
		}
		kc[i] = complex(omega, 0) * cmplx.Sqrt(rhoE/kE)
	}

	return Response{Impedance: zc, WaveNumber: kc}, nil
}

func (m JohnsonChampoux) validate() error {
	mat := m.Material
	if mat.FlowResistivity <= 0 {
		return fmt.Errorf("%w: Johnson-Champoux requires flow resistivity > 0: %g", ErrConfiguration, mat.FlowResistivity)
	}
	if mat.Porosity <= 0 || mat.Porosity > 1 {
		return fmt.Errorf("%w: Johnson-Champoux requires porosity in (0, 1]: %g", ErrConfiguration, mat.Porosity)
	}
	if mat.Tortuosity < 1 {
		return fmt.Errorf("%w: Johnson-Champoux requires tortuosity >= 1: %g", ErrConfiguration, mat.Tortuosity)
	}
	if mat.ViscousLength <= 0 {
		return fmt.Errorf("%w: Johnson-Champoux requires viscous characteristic length > 0: %g", ErrConfiguration, mat.ViscousLength)
	}
	if mat.ThermalLength <= 0 {
		return fmt.Errorf("%w: Johnson-Champoux requires thermal characteristic length > 0: %g", ErrConfiguration, mat.ThermalLength)
	}

	switch m.Variant {
	case JohnsonChampouxDefault:
		// Neither Cp nor thermal permeability are read.
	case JohnsonChampouxAllard:
		if m.Air.SpecificHeatCp <= 0 {
			return fmt.Errorf("%w: Johnson-Champoux-Allard requires specific heat Cp > 0: %g", ErrConfiguration, m.Air.SpecificHeatCp)
		}
	case JohnsonChampouxLafarge:
		if m.Air.SpecificHeatCp <= 0 {
			return fmt.Errorf("%w: Johnson-Champoux-Lafarge requires specific heat Cp > 0: %g", ErrConfiguration, m.Air.SpecificHeatCp)
		}
		if mat.ThermalPermeability <= 0 {
			return fmt.Errorf("%w: Johnson-Champoux-Lafarge requires thermal permeability > 0: %g", ErrConfiguration, mat.ThermalPermeability)
		}
	default:
		return fmt.Errorf("%w: unknown Johnson-Champoux variant %d", ErrConfiguration, int(m.Variant))
	}

	if err := validateAir(m.Air); err != nil {
		return err
	}
	if m.Air.AtmosphericPressure <= 0 {
		return fmt.Errorf("%w: Johnson-Champoux requires atmospheric pressure > 0: %g", ErrDomain, m.Air.AtmosphericPressure)
	}
	if m.Air.Prandtl <= 0 {
		return fmt.Errorf("%w: Johnson-Champoux requires Prandtl number > 0: %g", ErrDomain, m.Air.Prandtl)
	}
	if m.Air.DynamicViscosity <= 0 {
		return fmt.Errorf("%w: Johnson-Champoux requires dynamic viscosity > 0: %g", ErrDomain, m.Air.DynamicViscosity)
	}
	return nil
}

// effective returns the effective dynamic density and bulk modulus at
// one angular frequency.
func (m JohnsonChampoux) effective(omega float64) (rhoE, kE complex128) {
	mat := m.Material
	rho := m.Air.Density
	eta := m.Air.DynamicViscosity
	gamma := m.Air.SpecificHeatRatio
	prandtl := m.Air.Prandtl
	atm := m.Air.AtmosphericPressure
	cp := m.Air.SpecificHeatCp

	sigma, phi, tortu := mat.FlowResistivity, mat.Porosity, mat.Tortuosity
	visc, term := mat.ViscousLength, mat.ThermalLength

	viscousDrive := 4 * rho * tortu * tortu * eta * omega

	switch m.Variant {
	case JohnsonChampouxDefault:
		a := cmplx.Sqrt(complex(1, viscousDrive/(sigma*sigma*phi*phi*visc*visc)))
		beta := 1 - complex(0, phi*sigma/(rho*omega*tortu))*a
		rhoE = complex(rho*tortu, 0) * beta

		eps := cmplx.Sqrt(complex(1, viscousDrive*prandtl/(phi*phi*sigma*sigma*term*term)))
		zeta := 1 / (1 - complex(0, phi*sigma/(rho*omega*tortu*prandtl))*eps)
		kE = complex(gamma*atm, 0) / (complex(gamma, 0) - complex(gamma-1, 0)*zeta)

	case JohnsonChampouxAllard:
		a := cmplx.Sqrt(complex(1, -viscousDrive/(sigma*sigma*phi*phi*visc*visc)))
		beta := 1 - complex(0, phi*sigma/(rho*omega*tortu))*a
		rhoE = complex(rho*tortu/phi, 0) * beta

		eps := cmplx.Sqrt(complex(1, -rho*term*term*cp*omega/(16*air.ThermalConductivity)))
		zeta := 1 / (1 + complex(0, 8*air.ThermalConductivity/(rho*omega*term*term*cp))*eps)
		kE = complex(gamma*atm/phi, 0) / (complex(gamma, 0) - complex(gamma-1, 0)*zeta)

	case JohnsonChampouxLafarge:
		a := cmplx.Sqrt(complex(1, -viscousDrive/(sigma*sigma*phi*phi*visc*visc)))
		beta := 1 - complex(0, phi*sigma/(rho*omega*tortu))*a
		rhoE = complex(rho*tortu/phi, 0) * beta

		perm := mat.ThermalPermeability
		drive := 4 * perm * perm * cp * rho * omega
		eps := cmplx.Sqrt(complex(1, -drive/(air.ThermalConductivity*term*term*phi*phi)))
		zeta := 1 / (1 + complex(0, phi*air.ThermalConductivity/(perm*rho*cp*omega))*eps)
		kE = complex(gamma*atm/phi, 0) / (complex(gamma, 0) - complex(gamma-1, 0)*zeta)
	}

	return rhoE, kE
}
