package timing

import (
	"errors"
	"fmt"

	"github.com/matt-g-everett/frametx/easing"
)

// ErrInvalidWindow is returned when a Window cannot be built.
var ErrInvalidWindow = errors.New("invalid animation window")

// Progress returns the eased progress of a transition that starts at
// delayFrames and lasts durationFrames. The linear ratio is clamped to
// [0, 1] before easing. A duration below one frame is treated as one frame.
func Progress(frame, delayFrames, durationFrames int, fn easing.Func) float64 {
	return progress(float64(frame-delayFrames), float64(max(durationFrames, 1)), fn, true, true)
}

func progress(x, duration float64, fn easing.Func, clampLeft, clampRight bool) float64 {
	r := x / duration
	if clampLeft && r < 0 {
		r = 0
	}
	if clampRight && r > 1 {
		r = 1
	}
	return easing.OrLinear(fn)(r)
}

// A Window describes one scalar transition in frames.
type Window struct {
	Delay      int
	Duration   int
	Easing     easing.Func
	ClampLeft  bool
	ClampRight bool
}

// NewWindow creates a clamped Window. The duration must be at least one
// frame and the delay must not be negative.
func NewWindow(delay, duration int, fn easing.Func) (Window, error) {
	if duration < 1 {
		return Window{}, fmt.Errorf("%w: duration %d frames", ErrInvalidWindow, duration)
	}
	if delay < 0 {
		return Window{}, fmt.Errorf("%w: delay %d frames", ErrInvalidWindow, delay)
	}
	return Window{
		Delay:      delay,
		Duration:   duration,
		Easing:     easing.OrLinear(fn),
		ClampLeft:  true,
		ClampRight: true,
	}, nil
}

// MustWindow is like NewWindow but panics on error.
func MustWindow(delay, duration int, fn easing.Func) Window {
	w, err := NewWindow(delay, duration, fn)
	if err != nil {
		panic(err)
	}
	return w
}

// Progress returns the eased progress at frame.
func (w Window) Progress(frame int) float64 {
	return progress(float64(frame-w.Delay), float64(max(w.Duration, 1)), w.Easing, w.ClampLeft, w.ClampRight)
}

// Linear returns the un-eased, clamped ratio at frame.
func (w Window) Linear(frame int) float64 {
	return progress(float64(frame-w.Delay), float64(max(w.Duration, 1)), easing.Linear, w.ClampLeft, w.ClampRight)
}

// Start is the first frame of the transition.
func (w Window) Start() int {
	return w.Delay
}

// End is the frame at which progress saturates.
func (w Window) End() int {
	return w.Delay + w.Duration
}

// Done reports whether the transition has finished by frame.
func (w Window) Done(frame int) bool {
	return frame >= w.End()
}

// Shift returns a copy of the window delayed by frames. The delay may become
// negative, which simply means the transition started before frame 0.
func (w Window) Shift(frames int) Window {
	w.Delay += frames
	return w
}

// Extrapolate returns a copy with the given clamps disabled, letting the
// easing see ratios outside [0, 1].
func (w Window) Extrapolate(left, right bool) Window {
	w.ClampLeft = !left
	w.ClampRight = !right
	return w
}

// Stagger offsets w for the element at index, staggerFrames apart.
func Stagger(w Window, index, staggerFrames int) Window {
	return w.Shift(index * staggerFrames)
}

// GroupIndex maps element index of itemCount onto one of groupCount
// contiguous stagger groups. Elements in the same group share a delay.
func GroupIndex(index, itemCount, groupCount int) int {
	if itemCount < 1 || groupCount < 1 {
		return 0
	}
	if groupCount > itemCount {
		groupCount = itemCount
	}
	if index < 0 {
		return 0
	}
	if index >= itemCount {
		return groupCount - 1
	}
	return index * groupCount / itemCount
}
