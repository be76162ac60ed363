package cbessel

import (
	"math"
	"math/cmplx"
	"testing"
)

func closeTo(got, want complex128, tol float64) bool {
	return cmplx.Abs(got-want) <= tol*math.Max(1, cmplx.Abs(want))
}

func TestJ0KnownRealValues(t *testing.T) {
	cases := []struct {
		z    float64
		want float64
	}{
		{1, 0.7651976865579666},
		{2, 0.2238907791412357},
		{5, -0.1775967713143383},
		{10, -0.2459357644513483},
	}
	for _, tc := range cases {
		got := J0(complex(tc.z, 0))
		if !closeTo(got, complex(tc.want, 0), 1e-12) {
			t.Fatalf("J0(%g): got %v want %g", tc.z, got, tc.want)
		}
	}
}

func TestJ1KnownRealValues(t *testing.T) {
	cases := []struct {
		z    float64
		want float64
	}{
		{1, 0.4400505857449335},
		{2, 0.5767248077568734},
		{5, -0.3275791375914652},
		{10, 0.0434727461688614},
	}
	for _, tc := range cases {
		got := J1(complex(tc.z, 0))
		if !closeTo(got, complex(tc.want, 0), 1e-12) {
			t.Fatalf("J1(%g): got %v want %g", tc.z, got, tc.want)
		}
	}
}

func TestImaginaryAxisMatchesModifiedBessel(t *testing.T) {
	// J0(ix) = I0(x) and J1(ix) = i I1(x).
	cases := []struct {
		x      float64
		i0, i1 float64
	}{
		{1, 1.2660658777520084, 0.5651591039924851},
		{2, 2.2795853023360673, 1.5906368546373291},
	}
	for _, tc := range cases {
		got0 := J0(complex(0, tc.x))
		if !closeTo(got0, complex(tc.i0, 0), 1e-12) {
			t.Fatalf("J0(%gi): got %v want %g", tc.x, got0, tc.i0)
		}
		got1 := J1(complex(0, tc.x))
		if !closeTo(got1, complex(0, tc.i1), 1e-12) {
			t.Fatalf("J1(%gi): got %v want %gi", tc.x, got1, tc.i1)
		}
	}
}

func TestEvenOddSymmetry(t *testing.T) {
	for _, z := range []complex128{
		complex(0.7, -0.7),
		complex(3, -3),
		complex(11, -2),
	} {
		if !closeTo(J0(-z), J0(z), 1e-13) {
			t.Fatalf("J0 should be even at %v", z)
		}
		if !closeTo(J1(-z), -J1(z), 1e-13) {
			t.Fatalf("J1 should be odd at %v", z)
		}
	}
}

func TestSeriesAsymptoticContinuity(t *testing.T) {
	// Both evaluation branches overlap in accuracy near the crossover;
	// compare them directly on a ring around |z| = seriesLimit.
	for k := 0; k < 8; k++ {
		theta := -math.Pi/2 + float64(k)*math.Pi/8
		z := cmplx.Rect(seriesLimit, theta)

		s0, a0 := j0Series(z), jAsymptotic(0, z)
		if !closeTo(s0, a0, 1e-8) {
			t.Fatalf("J0 branch mismatch at %v: series %v asymptotic %v", z, s0, a0)
		}
		s1, a1 := j1Series(z), jAsymptotic(1, z)
		if !closeTo(s1, a1, 1e-8) {
			t.Fatalf("J1 branch mismatch at %v: series %v asymptotic %v", z, s1, a1)
		}
	}
}

func TestRatioMatchesDirectQuotient(t *testing.T) {
	// The shear-wave arguments of the rigid-frame models lie on the
	// exp(-i pi/4) ray; sample it along with some generic points.
	root := cmplx.Sqrt(complex(0, -1))
	points := []complex128{
		0.3 * root,
		2 * root,
		9 * root,
		20 * root,
		45 * root,
		complex(1, 0),
		complex(4, -1),
		complex(0, 6),
		complex(17, -5),
	}
	for _, z := range points {
		want := J1(z) / J0(z)
		got := RatioJ1J0(z)
		if !closeTo(got, want, 1e-9) {
			t.Fatalf("RatioJ1J0(%v): got %v want %v", z, got, want)
		}
	}
}

func TestRatioZero(t *testing.T) {
	if got := RatioJ1J0(0); got != 0 {
		t.Fatalf("RatioJ1J0(0): got %v want 0", got)
	}
}

func TestRatioSmallArgumentLimit(t *testing.T) {
	// J1(z)/J0(z) -> z/2 as z -> 0.
	z := complex(1e-4, -1e-4)
	got := RatioJ1J0(z)
	if cmplx.Abs(got-z/2) > 1e-11 {
		t.Fatalf("small-argument ratio: got %v want %v", got, z/2)
	}
}
