package timing

import (
	"errors"
	"fmt"
	"math"

	"github.com/matt-g-everett/frametx/easing"
)

// ErrInvalidSequence is returned when a Sequence cannot be built.
var ErrInvalidSequence = errors.New("invalid sequence")

// maxTransitionShare caps a transition at this fraction of a slot so every
// item keeps some dwell time.
const maxTransitionShare = 0.9

// OffsetMode selects how the in-slot offset is measured.
type OffsetMode int

const (
	// OffsetAbsolute measures from the start of the clamped current slot.
	OffsetAbsolute OffsetMode = iota
	// OffsetModulo measures frame mod slot width. Frames in the end padding
	// wrap around and report a transition on the last item; only use it to
	// reproduce output that depended on that behaviour.
	OffsetModulo
)

func (m OffsetMode) String() string {
	switch m {
	case OffsetAbsolute:
		return "absolute"
	case OffsetModulo:
		return "modulo"
	}
	return fmt.Sprintf("OffsetMode(%d)", int(m))
}

// ParseOffsetMode parses "absolute" or "modulo". Empty means absolute.
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch s {
	case "", "absolute":
		return OffsetAbsolute, nil
	case "modulo":
		return OffsetModulo, nil
	}
	return 0, fmt.Errorf("%w: offset mode %q", ErrInvalidSequence, s)
}

// Sequence splits a span of frames into ItemCount equal slots, one item
// shown at a time, optionally followed by end padding during which the last
// item holds.
type Sequence struct {
	ItemCount        int
	TotalFrames      int
	TransitionFrames int
	EndPaddingFrames int
	Offset           OffsetMode
}

// NewSequence validates and creates a Sequence. Each slot must be at least
// one frame wide.
func NewSequence(itemCount, totalFrames, transitionFrames, endPaddingFrames int) (Sequence, error) {
	switch {
	case itemCount < 1:
		return Sequence{}, fmt.Errorf("%w: item count %d", ErrInvalidSequence, itemCount)
	case totalFrames < 1:
		return Sequence{}, fmt.Errorf("%w: total frames %d", ErrInvalidSequence, totalFrames)
	case transitionFrames < 0:
		return Sequence{}, fmt.Errorf("%w: transition frames %d", ErrInvalidSequence, transitionFrames)
	case endPaddingFrames < 0:
		return Sequence{}, fmt.Errorf("%w: end padding frames %d", ErrInvalidSequence, endPaddingFrames)
	case totalFrames-endPaddingFrames < itemCount:
		return Sequence{}, fmt.Errorf("%w: %d frames after padding cannot hold %d items",
			ErrInvalidSequence, totalFrames-endPaddingFrames, itemCount)
	}
	return Sequence{
		ItemCount:        itemCount,
		TotalFrames:      totalFrames,
		TransitionFrames: transitionFrames,
		EndPaddingFrames: endPaddingFrames,
	}, nil
}

// SlotWidth is the number of frames each item is current for.
func (s Sequence) SlotWidth() float64 {
	return float64(s.TotalFrames-s.EndPaddingFrames) / float64(s.ItemCount)
}

// EffectiveTransition is the transition length after capping it to 90% of
// a slot.
func (s Sequence) EffectiveTransition() float64 {
	return math.Min(float64(s.TransitionFrames), s.SlotWidth()*maxTransitionShare)
}

// SlotStart is the first frame (possibly fractional) of slot i.
func (s Sequence) SlotStart(i int) float64 {
	return float64(i) * s.SlotWidth()
}

// Slot computes the sequence state at frame. Frames before zero report the
// first item, frames past the last slot (including the end padding) report
// the last item holding.
func (s Sequence) Slot(frame int) SlotState {
	width := s.SlotWidth()
	f := float64(frame)

	raw := int(math.Floor(f / width))
	current := raw
	if current < 0 {
		current = 0
	}
	if current > s.ItemCount-1 {
		current = s.ItemCount - 1
	}

	var offset float64
	switch s.Offset {
	case OffsetModulo:
		offset = math.Mod(f, width)
		if offset < 0 {
			offset += width
		}
	default:
		offset = f - float64(current)*width
	}

	transition := s.EffectiveTransition()
	st := SlotState{
		Current:  current,
		Previous: current - 1,
		Progress: 1,
	}
	if transition > 0 {
		st.Progress = progress(offset, transition, easing.Linear, true, true)
		st.Transitioning = offset < transition && current > 0
	}
	return st
}

// Phase is the state of one sequence item.
type Phase int

const (
	// PhaseHolding means the current item is fully shown.
	PhaseHolding Phase = iota
	// PhaseTransitioning means the current item is replacing Previous.
	PhaseTransitioning
)

func (p Phase) String() string {
	if p == PhaseTransitioning {
		return "transitioning"
	}
	return "holding"
}

// SlotState is the derived state of a Sequence at one frame. Previous is -1
// when there is no earlier item.
type SlotState struct {
	Current       int
	Previous      int
	Progress      float64
	Transitioning bool
}

// Phase returns the state-machine view of the slot.
func (st SlotState) Phase() Phase {
	if st.Transitioning {
		return PhaseTransitioning
	}
	return PhaseHolding
}

// Eased applies fn to the in-slot progress.
func (st SlotState) Eased(fn easing.Func) float64 {
	return easing.OrLinear(fn)(st.Progress)
}

// Visible reports whether item i should be drawn at all: the current item
// always, the previous one only while it is being replaced.
func (st SlotState) Visible(i int) bool {
	return i == st.Current || (st.Transitioning && i == st.Previous)
}
