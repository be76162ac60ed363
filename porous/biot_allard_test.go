package porous

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-absorb/internal/testutil"
)

func biotAllardMaterial() Material {
	return Material{
		FlowResistivity: 10000,
		Porosity:        0.95,
		Tortuosity:      1.1,
		Thickness:       0.05,
		Shape:           ShapeCircle,
	}
}

func TestBiotAllardResponseLength(t *testing.T) {
	m := BiotAllard{Air: testAir(t), Material: biotAllardMaterial()}

	sweep := DefaultSweep()
	resp, err := m.Evaluate(sweep)
	require.NoError(t, err)
	require.Equal(t, len(sweep), resp.Len())
	require.Len(t, resp.WaveNumber, len(sweep))
}

func TestBiotAllardOutputsAreFiniteAndLossy(t *testing.T) {
	m := BiotAllard{Air: testAir(t), Material: biotAllardMaterial()}

	resp, err := m.Evaluate(DefaultSweep())
	require.NoError(t, err)

	testutil.RequireFiniteComplex(t, resp.Impedance)
	testutil.RequireFiniteComplex(t, resp.WaveNumber)

	for i := range resp.Impedance {
		zc, kc := resp.Impedance[i], resp.WaveNumber[i]
		assert.Greater(t, real(zc), 0.0, "Re zc[%d]", i)
		assert.Greater(t, real(kc), 0.0, "Re kc[%d]", i)
		assert.LessOrEqual(t, imag(kc), 1e-12, "Im kc[%d] must not be positive", i)
	}
}

func TestBiotAllardShapeFactorChangesResult(t *testing.T) {
	a := testAir(t)
	base := biotAllardMaterial()

	circle := base
	circle.Shape = ShapeCircle
	square := base
	square.Shape = ShapeSquare

	respCircle, err := BiotAllard{Air: a, Material: circle}.Evaluate([]float64{1000})
	require.NoError(t, err)
	respSquare, err := BiotAllard{Air: a, Material: square}.Evaluate([]float64{1000})
	require.NoError(t, err)

	assert.NotEqual(t, respCircle.Impedance[0], respSquare.Impedance[0])
}

func TestBiotAllardUnknownShape(t *testing.T) {
	mat := biotAllardMaterial()
	mat.Shape = PoreShape(42)
	_, err := BiotAllard{Air: testAir(t), Material: mat}.Evaluate([]float64{1000})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestBiotAllardMissingParameters(t *testing.T) {
	a := testAir(t)

	noSigma := biotAllardMaterial()
	noSigma.FlowResistivity = 0
	_, err := BiotAllard{Air: a, Material: noSigma}.Evaluate([]float64{1000})
	assert.ErrorIs(t, err, ErrConfiguration)

	noPhi := biotAllardMaterial()
	noPhi.Porosity = 0
	_, err = BiotAllard{Air: a, Material: noPhi}.Evaluate([]float64{1000})
	assert.ErrorIs(t, err, ErrConfiguration)

	noTortu := biotAllardMaterial()
	noTortu.Tortuosity = 0
	_, err = BiotAllard{Air: a, Material: noTortu}.Evaluate([]float64{1000})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestBiotAllardLowFrequencyDensityLimit(t *testing.T) {
	// For small shear wave numbers the viscous correction approaches the
	// static flow resistance: rhoE ~ rho*tortu - j*sigma*phi/omega, so the
	// wave number grows like sqrt(omega) with a -45 degree phase.
	m := BiotAllard{Air: testAir(t), Material: biotAllardMaterial()}

	resp, err := m.Evaluate([]float64{1})
	require.NoError(t, err)

	k := resp.WaveNumber[0]
	phase := math.Atan2(imag(k), real(k))
	assert.InDelta(t, -math.Pi/4, phase, 0.05)
}

func TestBiotAllardAbsorptionBounded(t *testing.T) {
	a := testAir(t)
	mat := biotAllardMaterial()
	m := BiotAllard{Air: a, Material: mat}

	resp, err := m.Evaluate(DefaultSweep())
	require.NoError(t, err)

	alpha, err := resp.Absorption(mat.Thickness, a.Impedance)
	require.NoError(t, err)

	testutil.RequireUnitRange(t, alpha, 1e-9)

	peak := 0.0
	for _, v := range alpha {
		if v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 0.5, "a 5 cm porous layer should absorb at resonance")
}
