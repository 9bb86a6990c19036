package counter

import (
	"fmt"

	"github.com/matt-g-everett/frametx/timing"
	"github.com/matt-g-everett/frametx/util"
)

// DigitReveal rolls each digit of From towards the matching digit of To on
// its own staggered window. Characters that are not digits in To (group
// separators, decimal points, signs) are shown as-is.
type DigitReveal struct {
	from    []rune
	to      []rune
	window  timing.Window
	stagger int
}

// NewDigitReveal pads from and to to the same length and validates the
// stagger. From is padded with leading zeros, To with leading spaces.
func NewDigitReveal(from, to string, w timing.Window, staggerFrames int) (*DigitReveal, error) {
	if staggerFrames < 0 {
		return nil, fmt.Errorf("%w: stagger %d frames", ErrInvalidSpec, staggerFrames)
	}
	if w.Duration < 1 {
		return nil, fmt.Errorf("%w: duration %d frames", ErrInvalidSpec, w.Duration)
	}
	f := []rune(from)
	t := []rune(to)
	n := max(len(f), len(t))

	d := new(DigitReveal)
	d.from = padLeft(f, n, '0')
	d.to = padLeft(t, n, ' ')
	d.window = w
	d.stagger = staggerFrames
	return d, nil
}

func padLeft(r []rune, n int, pad rune) []rune {
	if len(r) >= n {
		return r
	}
	out := make([]rune, n)
	fill := n - len(r)
	for i := 0; i < fill; i++ {
		out[i] = pad
	}
	copy(out[fill:], r)
	return out
}

// Len is the padded length of the display.
func (d *DigitReveal) Len() int {
	return len(d.to)
}

// End is the frame at which the last digit settles.
func (d *DigitReveal) End() int {
	return timing.Stagger(d.window, len(d.to)-1, d.stagger).End()
}

// At returns the display at frame.
func (d *DigitReveal) At(frame int) string {
	out := make([]rune, len(d.to))
	for i, target := range d.to {
		if !isDigit(target) {
			out[i] = target
			continue
		}
		var start float64
		if isDigit(d.from[i]) {
			start = float64(d.from[i] - '0')
		}
		p := timing.Stagger(d.window, i, d.stagger).Progress(frame)
		v := util.RoundHalfUp(util.Lerp(start, float64(target-'0'), p))
		out[i] = '0' + rune(util.Clamp(v, 0, 9))
	}
	return string(out)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
