// Package noise provides seeded pseudo-random values that are pure functions
// of an integer seed. There is no generator state: the same seed always
// yields the same value, so jitter and flicker stay reproducible when frames
// are rendered out of order.
package noise

import (
	"math"

	"github.com/matt-g-everett/frametx/util"
)

const (
	hashFrequency = 12.9898
	hashAmplitude = 43758.5453

	// ChannelStride spreads frames apart so that salts 0..ChannelStride-1
	// address independent channels.
	ChannelStride = 7
)

// Noise returns a value in [0, 1) derived from seed.
func Noise(seed int) float64 {
	return util.Fract(math.Sin(float64(seed)*hashFrequency) * hashAmplitude)
}

// Channel returns the noise for one independent channel at frame.
func Channel(frame, salt int) float64 {
	return Noise(frame*ChannelStride + salt)
}

// Range maps Channel onto [lo, hi).
func Range(frame, salt int, lo, hi float64) float64 {
	return lo + (hi-lo)*Channel(frame, salt)
}

// Jitter returns an offset in [-amplitude, amplitude).
func Jitter(frame, salt int, amplitude float64) float64 {
	return Range(frame, salt, -amplitude, amplitude)
}

// Flicker reports whether the channel fires at frame. threshold is the
// probability of firing: 0 never fires, 1 always does.
func Flicker(frame, salt int, threshold float64) bool {
	return Channel(frame, salt) < threshold
}

// Held returns a channel value that only changes every holdFrames frames.
func Held(frame, salt, holdFrames int) float64 {
	return Channel(Block(frame, holdFrames), salt)
}

// Smooth returns value noise: held samples every period frames, blended with
// smoothstep in between so the signal has no jumps.
func Smooth(frame, salt, period int) float64 {
	if period < 1 {
		period = 1
	}
	b := Block(frame, period)
	a := Channel(b, salt)
	c := Channel(b+1, salt)
	t := float64(frame-b*period) / float64(period)
	t = t * t * (3 - 2*t)
	return util.Lerp(a, c, t)
}

// Block is floor(frame / size) for any sign of frame: the index of the
// size-frame block that contains frame.
func Block(frame, size int) int {
	if size < 1 {
		size = 1
	}
	b := frame / size
	if frame%size != 0 && frame < 0 {
		b--
	}
	return b
}
