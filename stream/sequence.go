package stream

import (
	"strconv"

	"github.com/matt-g-everett/frametx/easing"
	"github.com/matt-g-everett/frametx/timing"
)

// A SequenceTrack shows items one at a time. Value is the eased in-slot
// progress and Text the current item index.
type SequenceTrack struct {
	name     string
	sequence timing.Sequence
	easing   easing.Func
}

// NewSequenceTrack creates an instance of a SequenceTrack object.
func NewSequenceTrack(name string, sequence timing.Sequence, fn easing.Func) *SequenceTrack {
	s := new(SequenceTrack)
	s.name = name
	s.sequence = sequence
	s.easing = easing.OrLinear(fn)
	return s
}

// Name implements Track.
func (s *SequenceTrack) Name() string {
	return s.name
}

// Sample implements Track.
func (s *SequenceTrack) Sample(frame int) Sample {
	st := s.sequence.Slot(frame)
	return Sample{
		Track: s.name,
		Kind:  KindSequence,
		Value: st.Eased(s.easing),
		Text:  strconv.Itoa(st.Current),
		Slot: &Slot{
			Current:       st.Current,
			Previous:      st.Previous,
			Transitioning: st.Transitioning,
		},
	}
}
