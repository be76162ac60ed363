package porous

import (
	"errors"
	"testing"
)

func TestPoreShapeFactors(t *testing.T) {
	cases := []struct {
		shape PoreShape
		want  float64
	}{
		{ShapeCircle, 1.0},
		{ShapeSquare, 1.07},
		{ShapeEquilateralTriangle, 1.11},
		{ShapeRectangular, 0.81},
	}
	for _, tc := range cases {
		got, err := tc.shape.Factor()
		if err != nil {
			t.Fatalf("%v.Factor() failed: %v", tc.shape, err)
		}
		if got != tc.want {
			t.Fatalf("%v.Factor(): got %g want %g", tc.shape, got, tc.want)
		}
	}
}

func TestPoreShapeUnknown(t *testing.T) {
	_, err := PoreShape(42).Factor()
	if err == nil {
		t.Fatal("expected error for unknown pore shape")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestPoreShapeString(t *testing.T) {
	cases := map[PoreShape]string{
		ShapeCircle:              "circle",
		ShapeSquare:              "square",
		ShapeEquilateralTriangle: "equilateral-triangle",
		ShapeRectangular:         "rectangular",
		PoreShape(42):            "PoreShape(42)",
	}
	for shape, want := range cases {
		if got := shape.String(); got != want {
			t.Fatalf("%d.String(): got %q want %q", int(shape), got, want)
		}
	}
}
