package porous

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-absorb/air"
)

// DelanyBazleyVariant selects the empirical coefficient set of the
// Delany-Bazley model family.
type DelanyBazleyVariant int

const (
	// DelanyBazleyDefault is the original 1970 Delany-Bazley power law.
	DelanyBazleyDefault DelanyBazleyVariant = iota
	// DelanyBazleyMiki is Miki's 1990 re-fit with better low-frequency behavior.
	DelanyBazleyMiki
	// DelanyBazleyAllardChampoux is the Allard-Champoux 1992 variant, which
	// normalizes frequency by air density instead of a fixed factor.
	DelanyBazleyAllardChampoux
)

func (v DelanyBazleyVariant) String() string {
	switch v {
	case DelanyBazleyDefault:
		return "default"
	case DelanyBazleyMiki:
		return "miki"
	case DelanyBazleyAllardChampoux:
		return "allard-champoux"
	default:
		return fmt.Sprintf("DelanyBazleyVariant(%d)", int(v))
	}
}

// dbCoefficients holds one empirical power-law set: normalized impedance
// R + jX and normalized wave number a + jb, each as c·x^-e corrections.
type dbCoefficients struct {
	cR, eR, cX, eX float64
	cA, eA, cB, eB float64
	massNormalized bool // x = rho·f/sigma instead of 1000·f/sigma
}

var dbVariants = map[DelanyBazleyVariant]dbCoefficients{
	DelanyBazleyDefault: {
		cR: 9.08, eR: 0.75, cX: 11.9, eX: 0.73,
		cA: 10.8, eA: 0.70, cB: 10.3, eB: 0.59,
	},
	DelanyBazleyMiki: {
		cR: 5.50, eR: 0.632, cX: 8.43, eX: 0.632,
		cA: 7.81, eA: 0.618, cB: 11.41, eB: 0.618,
	},
	DelanyBazleyAllardChampoux: {
		cR: 0.0571, eR: 0.754, cX: 0.0870, eX: 0.732,
		cA: 0.0978, eA: 0.700, cB: 0.1890, eB: 0.595,
		massNormalized: true,
	},
}

// DelanyBazley evaluates the empirical Delany-Bazley model family.
//
// The power laws were fitted for flow-resistivity-normalized frequencies
// roughly between 0.01 and 1.0; outside that range they still evaluate
// but the published accuracy no longer applies.
type DelanyBazley struct {
	Air             air.Properties
	FlowResistivity float64 // N·s/m⁴
	Variant         DelanyBazleyVariant
}

// Evaluate computes the characteristic impedance and wave number over
// the given frequency sweep.
func (m DelanyBazley) Evaluate(freqs []float64) (Response, error) {
	coeffs, ok := dbVariants[m.Variant]
	if !ok {
		return Response{}, fmt.Errorf("%w: unknown Delany-Bazley variant %d", ErrConfiguration, int(m.Variant))
	}
	if m.FlowResistivity <= 0 {
		return Response{}, fmt.Errorf("%w: Delany-Bazley requires flow resistivity > 0: %g", ErrConfiguration, m.FlowResistivity)
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
		x := 1000 * f / m.FlowResistivity
		if coeffs.massNormalized {
			x = rho * f / m.FlowResistivity
		}

		r := 1 + coeffs.cR*math.Pow(x, -coeffs.eR)
		xi := -coeffs.cX * math.Pow(x, -coeffs.eX)
		zc[i] = complex(c0*rho*r, c0*rho*xi)

		a := 1 + coeffs.cA*math.Pow(x, -coeffs.eA)
		b := -coeffs.cB * math.Pow(x, -coeffs.eB)
		k0 := 2 * math.Pi * f / c0
		kc[i] = complex(k0*a, k0*b)
	}

	return Response{Impedance: zc, WaveNumber: kc}, nil
}
