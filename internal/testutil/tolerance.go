// Package testutil provides shared checks for absorption and impedance
// test data.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireFiniteComplex fails t if any element is NaN or Inf in either
// component.
func RequireFiniteComplex(t testing.TB, data []complex128) {
	t.Helper()
	for i, v := range data {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireUnitRange fails t if any absorption coefficient leaves [0, 1]
// by more than eps. Rounding in the reflection magnitude makes exact
// bounds too strict.
func RequireUnitRange(t testing.TB, alpha []float64, eps float64) {
	t.Helper()
	for i, v := range alpha {
		if v < -eps || v > 1+eps {
			t.Fatalf("index %d: absorption coefficient %v outside [0, 1] by more than %v", i, v, eps)
		}
	}
}
