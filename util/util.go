package util

import (
	"math"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b. It returns exactly a at t=0 and
// exactly b at t=1.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// RoundHalfUp rounds to the nearest integer with halves going towards +Inf.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Fract returns the fractional part of v in [0, 1), also for negative v.
func Fract(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1 {
		return 0
	}
	return f
}

// GenerateLut builds a symmetric rise-and-fall table of the given length,
// shaped by fn. The table is computed once and never written after.
func GenerateLut(length int, fn func(float64) float64) []float64 {
	if length < 2 {
		return []float64{fn(0)}
	}
	half := length / 2
	increment := 1.0 / float64(half)
	lut := make([]float64, length)
	for i, j := 0, length-1; i <= j; i, j = i+1, j-1 {
		value := fn(math.Min(float64(i)*increment, 1))
		lut[i] = value
		lut[j] = value
	}
	return lut
}
