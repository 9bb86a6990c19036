package stream

import (
	"github.com/matt-g-everett/frametx/timing"
)

// A ProgressTrack reports the eased progress of one window.
type ProgressTrack struct {
	name   string
	window timing.Window
}

// NewProgressTrack creates an instance of a ProgressTrack object.
func NewProgressTrack(name string, window timing.Window) *ProgressTrack {
	p := new(ProgressTrack)
	p.name = name
	p.window = window
	return p
}

// Name implements Track.
func (p *ProgressTrack) Name() string {
	return p.name
}

// Sample implements Track.
func (p *ProgressTrack) Sample(frame int) Sample {
	return Sample{
		Track: p.name,
		Kind:  KindProgress,
		Value: p.window.Progress(frame),
	}
}
