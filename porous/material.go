package porous

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports an unknown model variant, an unknown pore
	// shape, or a required model parameter that is missing or zero.
	ErrConfiguration = errors.New("porous: invalid configuration")

	// ErrDomain reports inputs outside the mathematical domain of a model,
	// such as non-positive frequencies or non-physical air properties.
	ErrDomain = errors.New("porous: input outside model domain")
)

// PoreShape identifies the cross-section geometry of the idealized pores
// used by the Biot-Allard shear-wave correction.
type PoreShape int

const (
	ShapeCircle PoreShape = iota
	ShapeSquare
	ShapeEquilateralTriangle
	ShapeRectangular
)

// Factor returns the shear-wave shape factor for the pore geometry.
// Unknown shapes are a configuration error.
func (s PoreShape) Factor() (float64, error) {
	switch s {
	case ShapeCircle:
		return 1.0, nil
	case ShapeSquare:
		return 1.07, nil
	case ShapeEquilateralTriangle:
		return 1.11, nil
	case ShapeRectangular:
		return 0.81, nil
	default:
		return 0, fmt.Errorf("%w: unknown pore shape %d", ErrConfiguration, int(s))
	}
}

func (s PoreShape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeEquilateralTriangle:
		return "equilateral-triangle"
	case ShapeRectangular:
		return "rectangular"
	default:
		return fmt.Sprintf("PoreShape(%d)", int(s))
	}
}

// Material holds the physical and geometric parameters of a porous
// absorber. Not every model reads every field; each evaluator validates
// the subset it requires and rejects missing (zero) values.
type Material struct {
	FlowResistivity     float64   // N·s/m⁴
	Porosity            float64   // open volume fraction, 0 < phi <= 1
	Tortuosity          float64   // path elongation, >= 1
	ViscousLength       float64   // m
	ThermalLength       float64   // m
	ThermalPermeability float64   // m², Johnson-Champoux-Allard-Lafarge only
	Thickness           float64   // m
	Shape               PoreShape // Biot-Allard only
}
