package stream

import (
	"encoding/binary"
	"math"
)

// Slot is the JSON form of a sequence's state.
type Slot struct {
	Current       int  `json:"current"`
	Previous      int  `json:"previous"`
	Transitioning bool `json:"transitioning"`
}

// Sample is the output of one Track at one frame: a number, a string, or
// both.
type Sample struct {
	Track string  `json:"track"`
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
	Text  string  `json:"text,omitempty"`
	Slot  *Slot   `json:"slot,omitempty"`
}

// Frame holds every track's sample for one frame index.
type Frame struct {
	Number  int      `json:"frame"`
	Seconds float64  `json:"seconds"`
	Samples []Sample `json:"samples"`
}

// NewFrame creates a new Frame instance.
func NewFrame(number int, capacity int) *Frame {
	f := new(Frame)
	f.Number = number
	f.Samples = make([]Sample, 0, capacity)
	return f
}

// Sample finds the sample produced by the named track.
func (f *Frame) Sample(track string) (Sample, bool) {
	for _, s := range f.Samples {
		if s.Track == track {
			return s, true
		}
	}
	return Sample{}, false
}

// MarshalBinary packs the frame number and every sample value, for
// consumers that only need the numeric channels. Layout, little endian:
// int32 frame, uint16 count, then count float64 values in track order.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.Samples) > math.MaxUint16 {
		return nil, errTooManySamples
	}
	data = make([]byte, 6, 6+len(f.Samples)*8)
	binary.LittleEndian.PutUint32(data, uint32(int32(f.Number)))
	binary.LittleEndian.PutUint16(data[4:], uint16(len(f.Samples)))
	for _, s := range f.Samples {
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(s.Value))
	}

	return data, nil
}

// UnmarshalBinary is the inverse of MarshalBinary. Track names and text are
// not carried, so only Number and the sample values are restored.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < 6 {
		return errShortFrame
	}
	f.Number = int(int32(binary.LittleEndian.Uint32(data)))
	n := int(binary.LittleEndian.Uint16(data[4:]))
	if len(data) != 6+n*8 {
		return errShortFrame
	}
	f.Samples = make([]Sample, n)
	for i := range f.Samples {
		f.Samples[i].Value = math.Float64frombits(binary.LittleEndian.Uint64(data[6+i*8:]))
	}
	return nil
}
