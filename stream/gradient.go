package stream

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// NewGradientTable converts config stops, checking they are ordered and
// span at least two positions.
func NewGradientTable(stops []GradientStop) (GradientTable, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: gradient needs at least two stops", ErrInvalidTrack)
	}
	g := make(GradientTable, len(stops))
	for i, s := range stops {
		if i > 0 && s.Pos < stops[i-1].Pos {
			return nil, fmt.Errorf("%w: gradient stop %d out of order", ErrInvalidTrack, i)
		}
		g[i].Hue = s.Hue
		g[i].Pos = s.Pos
	}
	return g, nil
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	if t <= g[0].Pos {
		return colorful.Hcl(g[0].Hue, s, l)
	}
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return colorful.Hcl(c2.Hue, s, l)
			}
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Past the last key point.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// Hue returns the interpolated hue at t without building a colour.
func (g GradientTable) Hue(t float64) float64 {
	h, _, _ := g.GetColor(t, 1, 0.5).Hcl()
	return h
}
