package stream

import (
	"github.com/matt-g-everett/frametx/timing"
)

// A GradientTrail is a Track that walks a hue gradient as its window
// progresses and reports the colour as hex.
type GradientTrail struct {
	name       string
	gradient   GradientTable
	window     timing.Window
	saturation float64
	luminance  float64
}

// NewGradientTrail creates an instance of a GradientTrail object.
func NewGradientTrail(name string, gradient GradientTable, window timing.Window, saturation, luminance float64) *GradientTrail {
	g := new(GradientTrail)
	g.name = name
	g.gradient = gradient
	g.window = window
	g.saturation = saturation
	g.luminance = luminance
	return g
}

// Name implements Track.
func (g *GradientTrail) Name() string {
	return g.name
}

// Sample implements Track. Value is the eased progress; Text is the colour.
func (g *GradientTrail) Sample(frame int) Sample {
	t := g.window.Progress(frame)
	c := g.gradient.GetColor(t, g.saturation, g.luminance)
	return Sample{
		Track: g.name,
		Kind:  KindGradient,
		Value: t,
		Text:  c.Clamped().Hex(),
	}
}
