package stream

import "errors"

var (
	// ErrInvalidTrack wraps every track configuration error.
	ErrInvalidTrack = errors.New("invalid track")

	errShortFrame     = errors.New("stream: truncated binary frame")
	errTooManySamples = errors.New("stream: too many samples for a binary frame")
)
