// Package counter interpolates and formats animated numbers: count-ups,
// abbreviated totals and odometer-style per-digit reveals.
package counter

import (
	"errors"
	"fmt"
	"math"

	"github.com/matt-g-everett/frametx/timing"
	"github.com/matt-g-everett/frametx/util"
)

// ErrInvalidSpec is returned when a Spec fails validation.
var ErrInvalidSpec = errors.New("invalid counter spec")

// Spec describes a number animating from From to To and how it is printed.
type Spec struct {
	From             float64
	To               float64
	Decimals         int
	GroupSeparator   string
	DecimalSeparator string
	Abbreviate       bool
	Prefix           string
	Suffix           string
}

// NewSpec creates a Spec with "," grouping and "." decimals.
func NewSpec(from, to float64, decimals int) (Spec, error) {
	s := Spec{
		From:             from,
		To:               to,
		Decimals:         decimals,
		GroupSeparator:   ",",
		DecimalSeparator: ".",
	}
	return s, s.Validate()
}

// Validate checks the spec once, before any frame is evaluated.
func (s Spec) Validate() error {
	if s.Decimals < 0 {
		return fmt.Errorf("%w: decimals %d", ErrInvalidSpec, s.Decimals)
	}
	if !finite(s.From) || !finite(s.To) {
		return fmt.Errorf("%w: from %v to %v", ErrInvalidSpec, s.From, s.To)
	}
	if s.DecimalSeparator == "" && s.Decimals > 0 {
		return fmt.Errorf("%w: empty decimal separator", ErrInvalidSpec)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Value interpolates between From and To using the window's progress. With
// an overshooting easing the value may pass To for a while; see Clamp.
func (s Spec) Value(frame int, w timing.Window) float64 {
	return util.Lerp(s.From, s.To, w.Progress(frame))
}

// Clamp limits v to the range spanned by From and To.
func (s Spec) Clamp(v float64) float64 {
	return util.Clamp(v, math.Min(s.From, s.To), math.Max(s.From, s.To))
}

// Text formats the value at frame.
func (s Spec) Text(frame int, w timing.Window) string {
	return s.Format(s.Value(frame, w))
}
