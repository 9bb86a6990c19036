package easing

import (
	"math"
	"strconv"
	"strings"
)

// Steps quantises t into n equal jumps, like the CSS steps(n, end) timing
// function. Steps(1) holds at 0 until t reaches 1.
func Steps(n int) Func {
	if n < 1 {
		n = 1
	}
	fn := float64(n)
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			return 0
		}
		return math.Floor(t*fn) / fn
	}
}

// parseSteps recognises "steps4" and "steps(4)".
func parseSteps(n string) (int, bool) {
	if !strings.HasPrefix(n, "steps") {
		return 0, false
	}
	arg := strings.Trim(strings.TrimPrefix(n, "steps"), "()")
	v, err := strconv.Atoi(arg)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}
