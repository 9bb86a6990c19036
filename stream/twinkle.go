package stream

import (
	"strings"

	"github.com/matt-g-everett/frametx/noise"
)

const (
	twinkleOn  = '*'
	twinkleOff = '.'
)

// A Twinkle is a Track that lights a row of cells at random. Which cells
// are lit depends only on the frame, the salt and the hold length.
type Twinkle struct {
	name      string
	cells     int
	salt      int
	hold      int
	threshold float64
}

// NewTwinkle creates an instance of a Twinkle object.
func NewTwinkle(name string, cells, salt, hold int, threshold float64) *Twinkle {
	t := new(Twinkle)
	t.name = name
	t.cells = cells
	t.salt = salt
	t.hold = max(hold, 1)
	t.threshold = threshold
	return t
}

// Name implements Track.
func (t *Twinkle) Name() string {
	return t.name
}

// Lit reports whether cell i is lit at frame.
func (t *Twinkle) Lit(frame, i int) bool {
	b := noise.Block(frame, t.hold)
	return noise.Flicker(b*t.cells+i, t.salt, t.threshold)
}

// Sample implements Track. Text draws the row; Value is the lit fraction.
func (t *Twinkle) Sample(frame int) Sample {
	var row strings.Builder
	lit := 0
	for i := 0; i < t.cells; i++ {
		if t.Lit(frame, i) {
			row.WriteRune(twinkleOn)
			lit++
		} else {
			row.WriteRune(twinkleOff)
		}
	}
	return Sample{
		Track: t.name,
		Kind:  KindTwinkle,
		Value: float64(lit) / float64(max(t.cells, 1)),
		Text:  row.String(),
	}
}
