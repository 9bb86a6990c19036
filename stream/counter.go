package stream

import (
	"github.com/matt-g-everett/frametx/counter"
	"github.com/matt-g-everett/frametx/timing"
)

// A CounterTrack counts from one number to another and formats it.
type CounterTrack struct {
	name   string
	spec   counter.Spec
	window timing.Window
	clamp  bool
}

// NewCounterTrack creates an instance of a CounterTrack object. With clamp
// set, overshooting easings are held inside the from/to range.
func NewCounterTrack(name string, spec counter.Spec, window timing.Window, clamp bool) *CounterTrack {
	c := new(CounterTrack)
	c.name = name
	c.spec = spec
	c.window = window
	c.clamp = clamp
	return c
}

// Name implements Track.
func (c *CounterTrack) Name() string {
	return c.name
}

// Sample implements Track.
func (c *CounterTrack) Sample(frame int) Sample {
	v := c.spec.Value(frame, c.window)
	if c.clamp {
		v = c.spec.Clamp(v)
	}
	return Sample{
		Track: c.name,
		Kind:  KindCounter,
		Value: v,
		Text:  c.spec.Format(v),
	}
}
