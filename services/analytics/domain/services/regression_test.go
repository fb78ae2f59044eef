package services

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFitLinear_ExactLine(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{3, 5, 7, 9, 11} // y = 3 + 2x

	m, err := FitLinear(xs, ys)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if !almostEqual(m.Slope, 2) || !almostEqual(m.Intercept, 3) {
		t.Fatalf("expected slope 2 intercept 3, got %+v", m)
	}
	if got := m.Predict(10); !almostEqual(got, 23) {
		t.Fatalf("predict(10) = %v, want 23", got)
	}
	if r2 := RSquared(m, xs, ys); !almostEqual(r2, 1) {
		t.Fatalf("expected perfect fit, r² = %v", r2)
	}
}

func TestFitLinear_NoisyData(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}
	ys := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}

	m, err := FitLinear(xs, ys)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if m.Slope < 1.8 || m.Slope > 2.2 {
		t.Fatalf("slope out of range: %v", m.Slope)
	}
	r2 := RSquared(m, xs, ys)
	if r2 < 0.99 || r2 > 1 {
		t.Fatalf("r² out of range: %v", r2)
	}
}

func TestFitLinear_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"empty", nil, nil},
		{"single point", []float64{1}, []float64{2}},
		{"identical x", []float64{3, 3, 3}, []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FitLinear(tt.xs, tt.ys); !errors.Is(err, ErrDegenerateFit) {
				t.Fatalf("expected ErrDegenerateFit, got %v", err)
			}
		})
	}
}

func TestFitLinear_MismatchedLengths(t *testing.T) {
	if _, err := FitLinear([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched input lengths")
	}
}

func TestRSquared_ConstantObservations(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{5, 5, 5}
	m := LinearModel{Slope: 0, Intercept: 5}
	if r2 := RSquared(m, xs, ys); !almostEqual(r2, 1) {
		t.Fatalf("constant data with exact fit should score 1, got %v", r2)
	}
	bad := LinearModel{Slope: 0, Intercept: 4}
	if r2 := RSquared(bad, xs, ys); !almostEqual(r2, 0) {
		t.Fatalf("constant data with wrong fit should score 0, got %v", r2)
	}
}
