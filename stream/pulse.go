package stream

import (
	"github.com/matt-g-everett/frametx/easing"
	"github.com/matt-g-everett/frametx/util"
)

// A Pulse is a Track that breathes up and down over a fixed period using a
// precomputed look-up table.
type Pulse struct {
	name string
	lut  []float64
}

// NewPulse creates an instance of a Pulse object.
func NewPulse(name string, periodFrames int, fn easing.Func) *Pulse {
	p := new(Pulse)
	p.name = name
	p.lut = util.GenerateLut(max(periodFrames, 1), easing.OrLinear(fn))
	return p
}

// Name implements Track.
func (p *Pulse) Name() string {
	return p.name
}

// Sample implements Track.
func (p *Pulse) Sample(frame int) Sample {
	i := frame % len(p.lut)
	if i < 0 {
		i += len(p.lut)
	}
	return Sample{
		Track: p.name,
		Kind:  KindPulse,
		Value: p.lut[i],
	}
}
