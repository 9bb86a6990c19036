package counter

import (
	"errors"
	"math"
	"testing"

	"github.com/matt-g-everett/frametx/easing"
	"github.com/matt-g-everett/frametx/timing"
)

func TestCounterRoundTrip(t *testing.T) {
	s, err := NewSpec(0, 1000, 0)
	if err != nil {
		t.Fatal(err)
	}
	w := timing.MustWindow(15, 60, easing.MustLookup("outExpo"))

	for _, frame := range []int{w.End(), w.End() + 1, w.End() + 500} {
		if got, want := s.Text(frame, w), s.Format(s.To); got != want {
			t.Errorf("frame %d: %q, want %q", frame, got, want)
		}
	}
	if got := s.Text(w.End(), w); got != "1,000" {
		t.Errorf("final text = %q, want \"1,000\"", got)
	}
	if got := s.Text(0, w); got != "0" {
		t.Errorf("initial text = %q, want \"0\"", got)
	}
}

func TestCounterLandsOnFractionalTarget(t *testing.T) {
	tests := []struct {
		from, to float64
		decimals int
	}{
		{1.1, 0.145, 2},
		{0.1, 0.7, 1},
		{-2.675, 3.005, 2},
		{1e6 / 3, 12.345, 3},
	}
	w := timing.MustWindow(0, 10, nil)
	for _, tt := range tests {
		s, err := NewSpec(tt.from, tt.to, tt.decimals)
		if err != nil {
			t.Fatal(err)
		}
		if v := s.Value(w.End(), w); v != tt.to {
			t.Errorf("%v->%v: end value %v", tt.from, tt.to, v)
		}
		if got, want := s.Text(w.End(), w), s.Format(tt.to); got != want {
			t.Errorf("%v->%v: end text %q, want %q", tt.from, tt.to, got, want)
		}
		if got, want := s.Text(w.Start(), w), s.Format(tt.from); got != want {
			t.Errorf("%v->%v: start text %q, want %q", tt.from, tt.to, got, want)
		}
	}
}

func TestCounterDeterministic(t *testing.T) {
	s, _ := NewSpec(-250, 98765.4321, 2)
	w := timing.MustWindow(0, 90, easing.MustLookup("inOutCubic"))
	for frame := -10; frame < 120; frame++ {
		if s.Text(frame, w) != s.Text(frame, w) {
			t.Fatalf("frame %d not deterministic", frame)
		}
	}
}

func TestCounterSameEndpoints(t *testing.T) {
	s, _ := NewSpec(42, 42, 1)
	w := timing.MustWindow(0, 10, nil)
	for frame := -5; frame < 20; frame++ {
		if got := s.Text(frame, w); got != "42.0" {
			t.Fatalf("frame %d: %q", frame, got)
		}
	}
}

func TestCounterClampOvershoot(t *testing.T) {
	s, _ := NewSpec(0, 100, 0)
	w := timing.MustWindow(0, 100, easing.MustLookup("outBack"))
	over := false
	for frame := 0; frame <= 100; frame++ {
		v := s.Value(frame, w)
		if v > 100 {
			over = true
		}
		if c := s.Clamp(v); c < 0 || c > 100 {
			t.Fatalf("frame %d: clamped %v out of range", frame, c)
		}
	}
	if !over {
		t.Error("outBack counter never overshot")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		v    float64
		want string
	}{
		{"zero", Spec{Decimals: 0, GroupSeparator: ",", DecimalSeparator: "."}, 0, "0"},
		{"zero decimals", Spec{Decimals: 2, GroupSeparator: ",", DecimalSeparator: "."}, 0, "0.00"},
		{"negative zero", Spec{Decimals: 0, GroupSeparator: ",", DecimalSeparator: "."}, math.Copysign(0, -1), "0"},
		{"rounds to negative zero", Spec{Decimals: 1, GroupSeparator: ",", DecimalSeparator: "."}, -0.01, "0.0"},
		{"grouping", Spec{Decimals: 0, GroupSeparator: ",", DecimalSeparator: "."}, 1234567, "1,234,567"},
		{"grouping exact", Spec{Decimals: 0, GroupSeparator: ",", DecimalSeparator: "."}, 123456, "123,456"},
		{"negative grouping", Spec{Decimals: 2, GroupSeparator: ",", DecimalSeparator: "."}, -9876.5, "-9,876.50"},
		{"european", Spec{Decimals: 2, GroupSeparator: ".", DecimalSeparator: ","}, 1234.5, "1.234,50"},
		{"no grouping", Spec{Decimals: 0, DecimalSeparator: "."}, 1234567, "1234567"},
		{"prefix suffix", Spec{Decimals: 0, GroupSeparator: ",", DecimalSeparator: ".", Prefix: "$", Suffix: "+"}, 2500, "$2,500+"},
		{"abbrev below", Spec{Decimals: 1, Abbreviate: true, DecimalSeparator: "."}, 999, "999.0"},
		{"abbrev boundary", Spec{Decimals: 1, Abbreviate: true, DecimalSeparator: "."}, 1000, "1.0K"},
		{"abbrev million", Spec{Decimals: 2, Abbreviate: true, DecimalSeparator: "."}, 2500000, "2.50M"},
		{"abbrev billion", Spec{Decimals: 0, Abbreviate: true, DecimalSeparator: "."}, 7e9, "7B"},
		{"abbrev trillion cap", Spec{Decimals: 0, Abbreviate: true, GroupSeparator: ",", DecimalSeparator: "."}, 5e15, "5,000T"},
		{"abbrev rounding promotes", Spec{Decimals: 1, Abbreviate: true, DecimalSeparator: "."}, 999999, "1.0M"},
		{"abbrev negative", Spec{Decimals: 1, Abbreviate: true, DecimalSeparator: "."}, -1500, "-1.5K"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Format(tt.v); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		decimals int
	}{
		{"negative decimals", 0, 1, -1},
		{"nan", math.NaN(), 1, 0},
		{"inf", 0, math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpec(tt.from, tt.to, tt.decimals); !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}
