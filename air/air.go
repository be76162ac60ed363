// Package air derives the acoustic properties of ambient air from
// temperature, relative humidity and atmospheric pressure.
//
// The fits follow Pierce's "Acoustics: An Introduction to Its Physical
// Principles and Applications" and are valid for absolute temperatures
// between roughly 260 K and 600 K; outside that range the specific-heat
// polynomial is extrapolated and the results are not meaningful.
package air

import (
	"fmt"
	"math"
)

const (
	// GasConstant is the specific gas constant of dry air in J/(kg·K).
	GasConstant = 287.031

	// WaterGasConstant is the specific gas constant of water vapor in J/(kg·K).
	WaterGasConstant = 461.521

	// ThermalConductivity is the thermal conductivity of air in W/(m·K).
	ThermalConductivity = 0.026

	kelvinOffset = 273.16
)

// Properties holds the ambient conditions and the acoustic properties of
// air derived from them.
type Properties struct {
	Temperature         float64 // °C
	Humidity            float64 // % relative humidity
	AtmosphericPressure float64 // Pa

	SoundSpeed        float64 // m/s
	Density           float64 // kg/m³
	Impedance         float64 // Pa·s/m
	DynamicViscosity  float64 // N·s/m²
	SpecificHeatRatio float64 // dimensionless
	Prandtl           float64 // dimensionless
	SpecificHeatCp    float64 // J/(kg·K)
}

// Calculate computes the air properties for the given ambient conditions.
// Temperature is in °C, humidity in percent relative humidity, pressure in Pa.
func Calculate(temperatureC, humidityPct, pressurePa float64) (Properties, error) {
	t := temperatureC + kelvinOffset

	viscosity := dynamicViscosity(t)
	cp := specificHeatCp(t)
	cv := cp - GasConstant
	gamma := cp / cv
	prandtl := viscosity * cp / ThermalConductivity

	density := pressurePa/(GasConstant*t) -
		(1/GasConstant-1/WaterGasConstant)*humidityPct/100*pierce(t)/t
	if density <= 0 || math.IsNaN(density) {
		return Properties{}, fmt.Errorf("air: conditions yield non-physical density %g kg/m³ (T=%g °C, RH=%g %%, p=%g Pa)",
			density, temperatureC, humidityPct, pressurePa)
	}

	soundSpeed := math.Sqrt(gamma * pressurePa / density)

	return Properties{
		Temperature:         temperatureC,
		Humidity:            humidityPct,
		AtmosphericPressure: pressurePa,

		SoundSpeed:        soundSpeed,
		Density:           density,
		Impedance:         soundSpeed * density,
		DynamicViscosity:  viscosity,
		SpecificHeatRatio: gamma,
		Prandtl:           prandtl,
		SpecificHeatCp:    cp,
	}, nil
}

// Default returns the properties of air at 20 °C, 50 % relative humidity
// and standard atmospheric pressure (101325 Pa).
func Default() Properties {
	p, err := Calculate(20, 50, 101325)
	if err != nil {
		panic(err) // fixed reference conditions, cannot fail
	}
	return p
}

// pierce evaluates the saturation vapor pressure fit used in the
// humidity correction of the air density, t in K.
func pierce(t float64) float64 {
	return 0.0658*t*t*t - 53.7558*t*t + 14703.8127*t - 1345485.0465
}

// dynamicViscosity evaluates the dynamic viscosity of air in N·s/m², t in K.
func dynamicViscosity(t float64) float64 {
	return 7.72488e-8*t - 5.95238e-11*t*t + 2.71368e-14*t*t*t
}

// specificHeatCp evaluates the isobaric specific heat of air in J/(kg·K),
// t in K. Polynomial fit valid for 260 K < t < 600 K.
func specificHeatCp(t float64) float64 {
	return 4168.8 * (0.249679 - 7.55179e-5*t + 1.69194e-7*t*t - 6.46128e-11*t*t*t)
}
