package stream

// Track kinds accepted in TrackConfig.Kind.
const (
	KindProgress = "progress"
	KindSequence = "sequence"
	KindCounter  = "counter"
	KindDigits   = "digits"
	KindFlip     = "flip"
	KindNoise    = "noise"
	KindTwinkle  = "twinkle"
	KindGradient = "gradient"
	KindPulse    = "pulse"
)
