package stream

import (
	"fmt"
	"log"

	"golang.org/x/text/language"

	"github.com/matt-g-everett/frametx/counter"
	"github.com/matt-g-everett/frametx/easing"
	"github.com/matt-g-everett/frametx/flip"
	"github.com/matt-g-everett/frametx/ident"
	"github.com/matt-g-everett/frametx/timing"
)

const (
	defaultFPS         = 30
	defaultSaturation  = 0.8
	defaultLuminance   = 0.5
	defaultTwinkleRate = 0.1
)

// Scene is an immutable set of tracks on one clock. Frame may be called
// concurrently and in any order.
type Scene struct {
	Clock  timing.Clock
	tracks []Track
}

// NewScene validates the config and builds every track. The first
// configuration error is returned; a Scene never fails per frame.
func NewScene(cfg Config) (*Scene, error) {
	clock, err := newClock(cfg.Clock)
	if err != nil {
		return nil, err
	}

	s := new(Scene)
	s.Clock = clock
	seen := make(map[string]bool, len(cfg.Tracks))
	for i, tc := range cfg.Tracks {
		if tc.Name == "" {
			return nil, fmt.Errorf("%w: track %d has no name", ErrInvalidTrack, i)
		}
		if seen[tc.Name] {
			return nil, fmt.Errorf("%w: duplicate track name %q", ErrInvalidTrack, tc.Name)
		}
		seen[tc.Name] = true

		t, err := buildTrack(clock, tc)
		if err != nil {
			return nil, fmt.Errorf("track %q: %w", tc.Name, err)
		}
		s.tracks = append(s.tracks, t)
	}
	return s, nil
}

// NewSceneFromTracks assembles a scene from already built tracks.
func NewSceneFromTracks(clock timing.Clock, tracks ...Track) *Scene {
	s := new(Scene)
	s.Clock = clock
	s.tracks = tracks
	return s
}

func newClock(cc ClockConfig) (timing.Clock, error) {
	fps := cc.FPS
	if fps == 0 {
		fps = defaultFPS
	}
	frames := cc.Frames
	if frames == 0 {
		frames = timing.Clock{FPS: fps}.Frames(cc.Duration)
	}
	return timing.NewClock(fps, frames)
}

// Tracks returns the scene's tracks in config order.
func (s *Scene) Tracks() []Track {
	return s.tracks
}

// ID is a stable identifier derived from the clock and the track names, so
// clients can tell whether two servers are playing the same scene.
func (s *Scene) ID() string {
	parts := make([]string, 0, len(s.tracks)+1)
	parts = append(parts, fmt.Sprintf("%d@%d", s.Clock.TotalFrames, s.Clock.FPS))
	for _, t := range s.tracks {
		parts = append(parts, t.Name())
	}
	return ident.ID("scene", parts...)
}

// Frame evaluates every track at frame n.
func (s *Scene) Frame(n int) *Frame {
	f := NewFrame(n, len(s.tracks))
	f.Seconds = s.Clock.Seconds(n)
	for _, t := range s.tracks {
		f.Samples = append(f.Samples, t.Sample(n))
	}
	return f
}

func buildTrack(clock timing.Clock, tc TrackConfig) (Track, error) {
	fn, err := easing.Lookup(tc.Easing)
	if err != nil {
		return nil, err
	}
	if tc.Stagger < 0 {
		return nil, fmt.Errorf("%w: negative stagger", ErrInvalidTrack)
	}

	switch tc.Kind {
	case KindProgress:
		w, err := clock.Window(tc.Delay, tc.Duration, fn)
		if err != nil {
			return nil, err
		}
		return NewProgressTrack(tc.Name, w), nil

	case KindSequence:
		total := clock.TotalFrames - clock.Frames(tc.Delay)
		seq, err := timing.NewSequence(tc.Items, total, clock.Frames(tc.Transition), clock.Frames(tc.EndPadding))
		if err != nil {
			return nil, err
		}
		seq.Offset, err = timing.ParseOffsetMode(tc.Offset)
		if err != nil {
			return nil, err
		}
		if seq.Offset == timing.OffsetModulo {
			log.Printf("track %q: modulo slot offsets report transitions during end padding", tc.Name)
		}
		return newDelayed(clock.Frames(tc.Delay), NewSequenceTrack(tc.Name, seq, fn)), nil

	case KindCounter:
		w, err := clock.Window(tc.Delay, tc.Duration, fn)
		if err != nil {
			return nil, err
		}
		spec, err := counterSpec(tc)
		if err != nil {
			return nil, err
		}
		return NewCounterTrack(tc.Name, spec, w, tc.Clamp), nil

	case KindDigits:
		w, err := clock.Window(tc.Delay, tc.Duration, fn)
		if err != nil {
			return nil, err
		}
		from := tc.FromText
		if from == "" {
			from = "0"
		}
		reveal, err := counter.NewDigitReveal(from, tc.Text, w, clock.Frames(tc.Stagger))
		if err != nil {
			return nil, err
		}
		return NewDigitsTrack(tc.Name, reveal, w.Start()), nil

	case KindFlip:
		w, err := clock.Window(tc.Delay, tc.Duration, fn)
		if err != nil {
			return nil, err
		}
		alphabet := flip.Default
		if tc.Alphabet != "" {
			if alphabet, err = flip.NewAlphabet(tc.Alphabet); err != nil {
				return nil, err
			}
		}
		board, err := flip.NewBoard(tc.Text, w, clock.Frames(tc.Stagger), alphabet)
		if err != nil {
			return nil, err
		}
		return NewFlipTrack(tc.Name, board), nil

	case KindNoise:
		mode, err := ParseNoiseMode(tc.Mode)
		if err != nil {
			return nil, err
		}
		amplitude := tc.Amplitude
		if amplitude == 0 {
			amplitude = 1
		}
		return NewNoiseTrack(tc.Name, mode, tc.Salt, amplitude, clock.Frames(tc.Hold)), nil

	case KindTwinkle:
		if tc.Cells < 1 {
			return nil, fmt.Errorf("%w: twinkle needs cells", ErrInvalidTrack)
		}
		threshold := tc.Threshold
		if threshold == 0 {
			threshold = defaultTwinkleRate
		}
		if threshold < 0 || threshold > 1 {
			return nil, fmt.Errorf("%w: threshold %v outside [0, 1]", ErrInvalidTrack, threshold)
		}
		return NewTwinkle(tc.Name, tc.Cells, tc.Salt, clock.Frames(tc.Hold), threshold), nil

	case KindGradient:
		w, err := clock.Window(tc.Delay, tc.Duration, fn)
		if err != nil {
			return nil, err
		}
		g, err := NewGradientTable(tc.Stops)
		if err != nil {
			return nil, err
		}
		sat, lum := tc.Saturation, tc.Luminance
		if sat == 0 {
			sat = defaultSaturation
		}
		if lum == 0 {
			lum = defaultLuminance
		}
		return NewGradientTrail(tc.Name, g, w, sat, lum), nil

	case KindPulse:
		period := clock.Frames(tc.Period)
		if period < 2 {
			return nil, fmt.Errorf("%w: pulse period must span at least two frames", ErrInvalidTrack)
		}
		return NewPulse(tc.Name, period, fn), nil
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidTrack, tc.Kind)
}

func counterSpec(tc TrackConfig) (counter.Spec, error) {
	spec, err := counter.NewSpec(tc.From, tc.To, tc.Decimals)
	if err != nil {
		return counter.Spec{}, err
	}
	if tc.Locale != "" {
		tag, err := language.Parse(tc.Locale)
		if err != nil {
			return counter.Spec{}, fmt.Errorf("%w: locale %q: %v", ErrInvalidTrack, tc.Locale, err)
		}
		spec = spec.WithLocale(tag)
	}
	if tc.GroupSeparator != nil {
		spec.GroupSeparator = *tc.GroupSeparator
	}
	if tc.DecimalSeparator != nil {
		spec.DecimalSeparator = *tc.DecimalSeparator
	}
	spec.Abbreviate = tc.Abbreviate
	spec.Prefix = tc.Prefix
	spec.Suffix = tc.Suffix
	return spec, spec.Validate()
}
