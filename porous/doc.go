// Package porous implements classical equivalent-fluid models for the
// normal-incidence sound absorption of porous materials.
//
// Each model evaluator turns material parameters and ambient air
// properties into the complex characteristic impedance and wave number
// of the material across a frequency sweep. The shared Absorption
// transform then folds a finite material thickness against the
// impedance of air into a real absorption coefficient per frequency.
//
// Four model families are provided:
//
//   - Delany-Bazley (with Miki and Allard-Champoux coefficient variants)
//   - Rayleigh
//   - Biot-Allard
//   - Johnson-Champoux (with Allard and Lafarge variants)
//
// # Conventions
//
// All evaluators report the characteristic impedance of the EQUIVALENT
// fluid, i.e. already normalized by porosity where the underlying model
// derives frame-intrinsic quantities; the wave number is unaffected by
// that normalization. Absorption therefore applies no porosity
// correction of its own.
//
// All outputs follow the exp(+jwt) time convention: the imaginary part
// of the wave number is non-positive for a dissipative material, and
// the surface impedance of a rigidly backed layer is
//
//	zs = -j zc cot(kc d)
//
// # Usage
//
// Evaluate a model over a sweep and convert to absorption:
//
//	a := air.Default()
//	m := porous.JohnsonChampoux{
//	    Air:      a,
//	    Material: porous.Material{FlowResistivity: 35000, Porosity: 0.65, Tortuosity: 1,
//	        ViscousLength: 7.5e-3, ThermalLength: 5e-3, Thickness: 0.05},
//	}
//	resp, _ := m.Evaluate(porous.DefaultSweep())
//	alpha, _ := resp.Absorption(0.05, a.Impedance)
package porous
