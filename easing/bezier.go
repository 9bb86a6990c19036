package easing

import "math"

const (
	newtonIterations   = 8
	bisectIterations   = 24
	newtonMinSlope     = 1e-3
	bezierSolvePrecise = 1e-7
)

// CubicBezier builds a curve from the control points (x1, y1) and (x2, y2)
// of a cubic Bézier running from (0, 0) to (1, 1), the same parameterisation
// CSS uses. x1 and x2 are clamped to [0, 1] so the curve stays a function
// of t.
//
// The solver runs a fixed number of iterations from the same starting point
// for every call, so a given t always yields the same value.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	x1 = math.Max(0, math.Min(1, x1))
	x2 = math.Max(0, math.Min(1, x2))
	if x1 == y1 && x2 == y2 {
		return Linear
	}

	ax, bx, cx := coefficients(x1, x2)
	ay, by, cy := coefficients(y1, y2)

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for i := 0; i < newtonIterations; i++ {
			d := sampleX(s) - x
			if math.Abs(d) < bezierSolvePrecise {
				return s
			}
			slope := slopeX(s)
			if math.Abs(slope) < newtonMinSlope {
				break
			}
			s -= d / slope
		}

		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < bisectIterations; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < bezierSolvePrecise {
				return s
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

func coefficients(p1, p2 float64) (a, b, c float64) {
	c = 3 * p1
	b = 3*(p2-p1) - c
	a = 1 - c - b
	return a, b, c
}
