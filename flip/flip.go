// Package flip resolves split-flap style character reveals: each position
// cycles through an alphabet before landing on its target character.
package flip

import (
	"errors"
	"fmt"
	"math"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidAlphabet is returned when an Alphabet cannot be built.
var ErrInvalidAlphabet = errors.New("invalid alphabet")

// ErrInvalidBoard is returned by NewBoard for a bad stagger or window.
var ErrInvalidBoard = errors.New("invalid board")

const (
	baseCycles   = 8
	cycleSpread  = 5
	stepMultiple = 7
)

// DefaultCharacters is the blank followed by the glyphs of a departure board.
const DefaultCharacters = " ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.!?-:"

// Default is the departure board alphabet.
var Default = MustAlphabet(DefaultCharacters)

// An Alphabet is a blank character followed by ordered glyphs. It is
// immutable once built.
type Alphabet struct {
	blank     rune
	glyphs    []rune
	index     map[rune]int
	upperOnly bool
}

// NewAlphabet builds an Alphabet from chars. The first character is the
// blank shown before a reveal starts; the rest are the glyphs cycled
// through. Characters must be unique.
func NewAlphabet(chars string) (*Alphabet, error) {
	runes := []rune(chars)
	if len(runes) < 2 {
		return nil, fmt.Errorf("%w: need a blank and at least one glyph, got %q", ErrInvalidAlphabet, chars)
	}

	a := new(Alphabet)
	a.blank = runes[0]
	a.glyphs = runes[1:]
	a.index = make(map[rune]int, len(a.glyphs))
	a.upperOnly = true
	for i, r := range a.glyphs {
		if r == a.blank {
			return nil, fmt.Errorf("%w: glyph %q repeats the blank", ErrInvalidAlphabet, r)
		}
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("%w: duplicate glyph %q", ErrInvalidAlphabet, r)
		}
		a.index[r] = i
		if unicode.IsLower(r) {
			a.upperOnly = false
		}
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(chars string) *Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// Blank is the neutral character shown at progress 0.
func (a *Alphabet) Blank() rune {
	return a.blank
}

// Len is the number of glyphs, excluding the blank.
func (a *Alphabet) Len() int {
	return len(a.glyphs)
}

// Index returns the glyph index of r, or -1.
func (a *Alphabet) Index(r rune) int {
	if i, ok := a.index[a.Normalize(r)]; ok {
		return i
	}
	return -1
}

// Normalize upper-cases r when the alphabet has no lower-case glyphs.
func (a *Alphabet) Normalize(r rune) rune {
	if a.upperOnly {
		return unicode.ToUpper(r)
	}
	return r
}

// NormalizeString is Normalize for whole strings, using full case mapping.
// A Caser is stateful, so one is made per call.
func (a *Alphabet) NormalizeString(s string) string {
	if a.upperOnly {
		return cases.Upper(language.Und).String(s)
	}
	return s
}

// CycleCount is the number of flips shown before target lands. It varies
// with the target so neighbouring letters do not flip in lockstep.
func (a *Alphabet) CycleCount(target rune) int {
	return baseCycles + max(a.Index(target), 0)%cycleSpread
}

// Resolve returns the character displayed at progress for a flap landing on
// target. Progress at or below 0 shows the blank and at or above 1 shows the
// target. Targets missing from the alphabet still land exactly; they cycle
// as if they were the first glyph.
func (a *Alphabet) Resolve(progress float64, target rune) rune {
	target = a.Normalize(target)
	if target == a.blank || !(progress > 0) {
		return a.blank
	}
	if progress >= 1 {
		return target
	}

	idx := max(a.Index(target), 0)
	cycles := baseCycles + idx%cycleSpread
	step := int(math.Floor(progress * float64(cycles)))
	if step >= cycles-1 {
		return target
	}
	return a.glyphs[(step*stepMultiple+idx)%len(a.glyphs)]
}
