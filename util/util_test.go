package util

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -1, 0, 1, 0},
		{"inside", 0.5, 0, 1, 0.5},
		{"above", 3, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
	if ClampInt(12, 0, 9) != 9 || ClampInt(-2, 0, 9) != 0 {
		t.Error("ClampInt out of range")
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{0.5, 1},
		{1.49, 1},
		{2.5, 3},
		{-0.5, 0},
		{-1.6, -2},
	}
	for _, tt := range tests {
		if got := RoundHalfUp(tt.v); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestFract(t *testing.T) {
	if got := Fract(3.25); got != 0.25 {
		t.Errorf("Fract(3.25) = %v", got)
	}
	if got := Fract(-0.25); got != 0.75 {
		t.Errorf("Fract(-0.25) = %v", got)
	}
	if got := Fract(-1e-20); got < 0 || got >= 1 {
		t.Errorf("Fract(-1e-20) = %v, want [0,1)", got)
	}
}

func TestGenerateLutSymmetric(t *testing.T) {
	lut := GenerateLut(10, func(x float64) float64 { return x })
	if len(lut) != 10 {
		t.Fatalf("len = %d", len(lut))
	}
	for i := range lut {
		j := len(lut) - 1 - i
		if lut[i] != lut[j] {
			t.Errorf("lut[%d]=%v != lut[%d]=%v", i, lut[i], j, lut[j])
		}
	}
	if lut[0] != 0 {
		t.Errorf("lut[0] = %v, want 0", lut[0])
	}
	peak := 0.0
	for _, v := range lut {
		peak = math.Max(peak, v)
	}
	if peak > 1 {
		t.Errorf("peak %v exceeds 1", peak)
	}
}

func TestLerp(t *testing.T) {
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Error("Lerp(10,20,0.25) != 12.5")
	}

	ends := []struct{ a, b float64 }{
		{1.1, 0.145},
		{0.1, 0.7},
		{-3.3, 1e-9},
		{98765.4321, -250.05},
	}
	for _, e := range ends {
		if got := Lerp(e.a, e.b, 0); got != e.a {
			t.Errorf("Lerp(%v, %v, 0) = %v", e.a, e.b, got)
		}
		if got := Lerp(e.a, e.b, 1); got != e.b {
			t.Errorf("Lerp(%v, %v, 1) = %v", e.a, e.b, got)
		}
	}
}
