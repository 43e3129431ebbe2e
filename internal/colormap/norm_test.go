package colormap

import (
	"math"
	"testing"
)

func TestNormalizeApply(t *testing.T) {
	n := NewNormalize(0, 10)

	tests := []struct {
		v, want float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{-5, -0.5},
		{20, 2},
	}
	for _, tt := range tests {
		if got := n.Apply(tt.v); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Apply(%v): expected %v, got %v", tt.v, tt.want, got)
		}
	}

	n.Clip = true
	if got := n.Apply(20); got != 1 {
		t.Errorf("clipped Apply(20): expected 1, got %v", got)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	if got := NewNormalize(3, 3).Apply(7); got != 0 {
		t.Errorf("equal bounds should map to 0, got %v", got)
	}
	if got := NewNormalize(3, 1).Apply(2); !math.IsNaN(got) {
		t.Errorf("inverted bounds should be bad, got %v", got)
	}
	if got := NewNormalize(0, 1).Apply(math.NaN()); !math.IsNaN(got) {
		t.Errorf("NaN input should stay NaN, got %v", got)
	}
}

func TestNormalizeAutoscale(t *testing.T) {
	n := AutoNormalize()
	if n.Scaled() {
		t.Fatal("fresh auto norm should not be scaled")
	}
	if got := n.Apply(1); !math.IsNaN(got) {
		t.Errorf("unscaled norm should return NaN, got %v", got)
	}

	n.Autoscale([]float64{3, math.NaN(), -1, math.Inf(1), 7})
	if n.Vmin != -1 || n.Vmax != 7 {
		t.Errorf("expected [-1, 7], got [%v, %v]", n.Vmin, n.Vmax)
	}

	// set bounds are sticky
	n.Autoscale([]float64{-100, 100})
	if n.Vmin != -1 || n.Vmax != 7 {
		t.Errorf("autoscale should not move set bounds, got [%v, %v]", n.Vmin, n.Vmax)
	}

	partial := &Normalize{Vmin: 0, Vmax: math.NaN()}
	partial.Autoscale([]float64{-3, 4})
	if partial.Vmin != 0 || partial.Vmax != 4 {
		t.Errorf("expected [0, 4], got [%v, %v]", partial.Vmin, partial.Vmax)
	}
}

func TestLogNorm(t *testing.T) {
	n := NewLogNorm(math.NaN(), math.NaN())
	n.Autoscale([]float64{-1, 0, 1, 10, 100})
	if n.Vmin != 1 || n.Vmax != 100 {
		t.Fatalf("expected [1, 100], got [%v, %v]", n.Vmin, n.Vmax)
	}
	if got := n.Apply(10); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Apply(10): expected 0.5, got %v", got)
	}
	if got := n.Apply(0); !math.IsNaN(got) {
		t.Errorf("non-positive input should be bad, got %v", got)
	}
}
