package stream

import (
	"fmt"

	"github.com/matt-g-everett/frametx/noise"
)

// NoiseMode selects how a NoiseTrack shapes its channel.
type NoiseMode string

// Noise modes.
const (
	NoiseRaw    NoiseMode = "raw"
	NoiseJitter NoiseMode = "jitter"
	NoiseHeld   NoiseMode = "held"
	NoiseSmooth NoiseMode = "smooth"
)

// ParseNoiseMode validates a mode name. Empty means raw.
func ParseNoiseMode(s string) (NoiseMode, error) {
	switch m := NoiseMode(s); m {
	case "":
		return NoiseRaw, nil
	case NoiseRaw, NoiseJitter, NoiseHeld, NoiseSmooth:
		return m, nil
	}
	return "", fmt.Errorf("%w: noise mode %q", ErrInvalidTrack, s)
}

// A NoiseTrack emits one deterministic noise channel.
type NoiseTrack struct {
	name      string
	mode      NoiseMode
	salt      int
	amplitude float64
	hold      int
}

// NewNoiseTrack creates an instance of a NoiseTrack object. amplitude
// scales every mode; hold is the block or period length for held and
// smooth noise.
func NewNoiseTrack(name string, mode NoiseMode, salt int, amplitude float64, hold int) *NoiseTrack {
	n := new(NoiseTrack)
	n.name = name
	n.mode = mode
	n.salt = salt
	n.amplitude = amplitude
	n.hold = max(hold, 1)
	return n
}

// Name implements Track.
func (n *NoiseTrack) Name() string {
	return n.name
}

// Sample implements Track.
func (n *NoiseTrack) Sample(frame int) Sample {
	var v float64
	switch n.mode {
	case NoiseJitter:
		v = noise.Jitter(frame, n.salt, n.amplitude)
	case NoiseHeld:
		v = noise.Held(frame, n.salt, n.hold) * n.amplitude
	case NoiseSmooth:
		v = noise.Smooth(frame, n.salt, n.hold) * n.amplitude
	default:
		v = noise.Channel(frame, n.salt) * n.amplitude
	}
	return Sample{
		Track: n.name,
		Kind:  KindNoise,
		Value: v,
	}
}
