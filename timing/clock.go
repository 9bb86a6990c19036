package timing

import (
	"errors"
	"fmt"
	"math"

	"github.com/matt-g-everett/frametx/easing"
)

// ErrInvalidClock is returned when a Clock cannot be built.
var ErrInvalidClock = errors.New("invalid clock")

// Clock is the static timeline of a rendering session.
type Clock struct {
	FPS         int
	TotalFrames int
}

// NewClock creates a Clock. Both fps and totalFrames must be positive.
func NewClock(fps, totalFrames int) (Clock, error) {
	if fps < 1 {
		return Clock{}, fmt.Errorf("%w: fps %d", ErrInvalidClock, fps)
	}
	if totalFrames < 1 {
		return Clock{}, fmt.Errorf("%w: total frames %d", ErrInvalidClock, totalFrames)
	}
	return Clock{FPS: fps, TotalFrames: totalFrames}, nil
}

// Frames converts seconds to a frame count, rounding to the nearest frame.
func (c Clock) Frames(seconds float64) int {
	return int(math.Round(seconds * float64(c.FPS)))
}

// Seconds converts a frame index to seconds.
func (c Clock) Seconds(frame int) float64 {
	return float64(frame) / float64(c.FPS)
}

// Window builds a Window from seconds. A duration that rounds to zero
// frames is rejected.
func (c Clock) Window(delaySeconds, durationSeconds float64, fn easing.Func) (Window, error) {
	return NewWindow(c.Frames(delaySeconds), c.Frames(durationSeconds), fn)
}

// Contains reports whether frame lies inside the nominal play range.
func (c Clock) Contains(frame int) bool {
	return frame >= 0 && frame < c.TotalFrames
}

// Wrap folds any frame into [0, TotalFrames) for looping playback.
func (c Clock) Wrap(frame int) int {
	f := frame % c.TotalFrames
	if f < 0 {
		f += c.TotalFrames
	}
	return f
}
