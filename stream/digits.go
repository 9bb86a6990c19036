package stream

import (
	"github.com/matt-g-everett/frametx/counter"
	"github.com/matt-g-everett/frametx/timing"
)

// A DigitsTrack rolls each digit of a number independently.
type DigitsTrack struct {
	name   string
	reveal *counter.DigitReveal
	start  int
}

// NewDigitsTrack creates an instance of a DigitsTrack object.
func NewDigitsTrack(name string, reveal *counter.DigitReveal, start int) *DigitsTrack {
	d := new(DigitsTrack)
	d.name = name
	d.reveal = reveal
	d.start = start
	return d
}

// Name implements Track.
func (d *DigitsTrack) Name() string {
	return d.name
}

// Sample implements Track. Value is the linear progress of the whole roll.
func (d *DigitsTrack) Sample(frame int) Sample {
	return Sample{
		Track: d.name,
		Kind:  KindDigits,
		Value: timing.Progress(frame, d.start, d.reveal.End()-d.start, nil),
		Text:  d.reveal.At(frame),
	}
}
