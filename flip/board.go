package flip

import (
	"fmt"

	"github.com/matt-g-everett/frametx/timing"
)

// A Board reveals a whole string, each character on its own window
// staggered from the previous one.
type Board struct {
	text     []rune
	window   timing.Window
	stagger  int
	alphabet *Alphabet
}

// NewBoard creates a Board. A nil alphabet selects Default.
func NewBoard(text string, w timing.Window, staggerFrames int, alphabet *Alphabet) (*Board, error) {
	if staggerFrames < 0 {
		return nil, fmt.Errorf("%w: negative stagger %d", ErrInvalidBoard, staggerFrames)
	}
	if w.Duration < 1 {
		return nil, fmt.Errorf("%w: duration %d frames", ErrInvalidBoard, w.Duration)
	}
	if alphabet == nil {
		alphabet = Default
	}

	b := new(Board)
	b.alphabet = alphabet
	b.text = []rune(alphabet.NormalizeString(text))
	b.window = w
	b.stagger = staggerFrames
	return b, nil
}

// Text is the normalised target text.
func (b *Board) Text() string {
	return string(b.text)
}

// End is the frame from which the whole board shows its text.
func (b *Board) End() int {
	if len(b.text) == 0 {
		return b.window.End()
	}
	return timing.Stagger(b.window, len(b.text)-1, b.stagger).End()
}

// At returns the board's display at frame.
func (b *Board) At(frame int) string {
	out := make([]rune, len(b.text))
	for i, r := range b.text {
		p := timing.Stagger(b.window, i, b.stagger).Progress(frame)
		out[i] = b.alphabet.Resolve(p, r)
	}
	return string(out)
}

// Settled reports how many leading characters have landed at frame.
func (b *Board) Settled(frame int) int {
	n := 0
	for i := range b.text {
		if !timing.Stagger(b.window, i, b.stagger).Done(frame) {
			break
		}
		n++
	}
	return n
}
