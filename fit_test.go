package flan

import (
	"math"
	"testing"
)

func TestGenerateFitLinear(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7} // exactly y = 2x + 1

	fitted, err := GenerateFit(x, y, 1)
	if err != nil {
		t.Fatalf("GenerateFit: %v", err)
	}
	if len(fitted) != len(x) {
		t.Fatalf("got %d fitted values, want %d", len(fitted), len(x))
	}
	for i := range x {
		want := 2*x[i] + 1
		if math.Abs(fitted[i]-want) > 1e-9 {
			t.Errorf("fitted[%d] = %v, want %v", i, fitted[i], want)
		}
	}
}

func TestPolyFitCoefficientOrder(t *testing.T) {
	// Highest degree first, matching the polyfit convention.
	coeffs, err := PolyFit([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 1)
	if err != nil {
		t.Fatalf("PolyFit: %v", err)
	}
	if len(coeffs) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(coeffs))
	}
	if math.Abs(coeffs[0]-2) > 1e-9 {
		t.Errorf("slope = %v, want 2", coeffs[0])
	}
	if math.Abs(coeffs[1]-1) > 1e-9 {
		t.Errorf("intercept = %v, want 1", coeffs[1])
	}
}

func TestPolyFitQuadratic(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := make([]float64, len(x)) // y = x^2 - 2x + 3
	for i, v := range x {
		y[i] = v*v - 2*v + 3
	}

	coeffs, err := PolyFit(x, y, 2)
	if err != nil {
		t.Fatalf("PolyFit: %v", err)
	}

	want := []float64{1, -2, 3}
	for i := range want {
		if math.Abs(coeffs[i]-want[i]) > 1e-9 {
			t.Errorf("coeffs[%d] = %v, want %v", i, coeffs[i], want[i])
		}
	}
}

func TestPolyFitDegreeZero(t *testing.T) {
	coeffs, err := PolyFit([]float64{0, 1, 2}, []float64{4, 6, 8}, 0)
	if err != nil {
		t.Fatalf("PolyFit: %v", err)
	}
	if len(coeffs) != 1 || math.Abs(coeffs[0]-6) > 1e-9 {
		t.Errorf("coeffs = %v, want [6]", coeffs)
	}
}

func TestPolyFitErrors(t *testing.T) {
	cases := []struct {
		name   string
		x, y   []float64
		degree int
	}{
		{"length mismatch", []float64{1, 2}, []float64{1}, 1},
		{"too few points", []float64{1, 2}, []float64{1, 2}, 2},
		{"empty", nil, nil, 1},
		{"negative degree", []float64{1, 2}, []float64{1, 2}, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := PolyFit(c.x, c.y, c.degree); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestPolyval(t *testing.T) {
	// 3x^2 - x + 2 at x = 2 is 12.
	if got := polyval([]float64{3, -1, 2}, 2); got != 12 {
		t.Errorf("polyval = %v, want 12", got)
	}
}
