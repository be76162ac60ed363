package porous

import "math"

// shearWave computes the dynamic shear wave number of the pore fluid for
// each angular frequency. The result is real-valued but kept complex
// because callers combine it with complex branch rotations.
func shearWave(omega []float64, flowResistivity, porosity, tortuosity float64, shape PoreShape, airDensity float64) ([]complex128, error) {
	factor, err := shape.Factor()
	if err != nil {
		return nil, err
	}

	s := make([]complex128, len(omega))
	scale := 8 * airDensity * tortuosity / (flowResistivity * porosity)
	for i, w := range omega {
		s[i] = complex(factor*math.Sqrt(w*scale), 0)
	}
	return s, nil
}
