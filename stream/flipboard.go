package stream

import (
	"github.com/matt-g-everett/frametx/flip"
)

// A FlipTrack reveals text on a split-flap board.
type FlipTrack struct {
	name  string
	board *flip.Board
}

// NewFlipTrack creates an instance of a FlipTrack object.
func NewFlipTrack(name string, board *flip.Board) *FlipTrack {
	f := new(FlipTrack)
	f.name = name
	f.board = board
	return f
}

// Name implements Track.
func (f *FlipTrack) Name() string {
	return f.name
}

// Sample implements Track. Value is the share of characters that have
// landed.
func (f *FlipTrack) Sample(frame int) Sample {
	n := len([]rune(f.board.Text()))
	value := 1.0
	if n > 0 {
		value = float64(f.board.Settled(frame)) / float64(n)
	}
	return Sample{
		Track: f.name,
		Kind:  KindFlip,
		Value: value,
		Text:  f.board.At(frame),
	}
}
