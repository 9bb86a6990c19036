package flip

import (
	"errors"
	"math"
	"testing"

	"github.com/matt-g-everett/frametx/timing"
)

func TestResolveTermination(t *testing.T) {
	for _, g := range Default.glyphs {
		if got := Default.Resolve(1, g); got != g {
			t.Errorf("Resolve(1, %q) = %q", g, got)
		}
		if got := Default.Resolve(0, g); got != ' ' {
			t.Errorf("Resolve(0, %q) = %q, want blank", g, got)
		}
		if got := Default.Resolve(-3, g); got != ' ' {
			t.Errorf("Resolve(-3, %q) = %q, want blank", g, got)
		}
		if got := Default.Resolve(7, g); got != g {
			t.Errorf("Resolve(7, %q) = %q", g, got)
		}
	}
}

func TestResolveScenario(t *testing.T) {
	if got := Default.Index('F'); got != 5 {
		t.Fatalf("Index('F') = %d, want 5", got)
	}
	if got := Default.CycleCount('F'); got != 8 {
		t.Fatalf("CycleCount('F') = %d, want 8", got)
	}
	// step 4 -> (4*7 + 5) mod 41 = 33 -> '7'
	if got := Default.Resolve(0.5, 'F'); got != '7' {
		t.Errorf("Resolve(0.5, 'F') = %q, want '7'", got)
	}
}

func TestResolveWalk(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     rune
	}{
		{"step 0 lands on the target by coincidence", 0.01, 'F'}, // (0*7+5) mod 41 = 5
		{"step 1", 0.13, 'M'},                                    // 12
		{"step 2", 0.25, 'T'},                                    // 19
		{"step 6 wraps", 0.8, 'G'},                               // 47 mod 41 = 6
		{"final step snaps", 0.9, 'F'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Default.Resolve(tt.progress, 'F'); got != tt.want {
				t.Errorf("Resolve(%v, 'F') = %q, want %q", tt.progress, got, tt.want)
			}
		})
	}
}

func TestResolveLowerCaseTarget(t *testing.T) {
	if got := Default.Resolve(1, 'f'); got != 'F' {
		t.Errorf("Resolve(1, 'f') = %q, want 'F'", got)
	}
	if got := Default.Resolve(0.5, 'f'); got != Default.Resolve(0.5, 'F') {
		t.Errorf("lower-case target cycles differently: %q", got)
	}
}

func TestResolveBlankTarget(t *testing.T) {
	for _, p := range []float64{0, 0.3, 0.99, 1} {
		if got := Default.Resolve(p, ' '); got != ' ' {
			t.Errorf("Resolve(%v, ' ') = %q", p, got)
		}
	}
}

func TestResolveUnknownTarget(t *testing.T) {
	if got := Default.Resolve(1, '#'); got != '#' {
		t.Errorf("Resolve(1, '#') = %q", got)
	}
	if got := Default.Resolve(0.5, '#'); got == '#' {
		t.Errorf("unknown target landed early")
	}
}

func TestNewAlphabetRejects(t *testing.T) {
	tests := []struct {
		name  string
		chars string
	}{
		{"empty", ""},
		{"blank only", " "},
		{"duplicate", " ABA"},
		{"blank repeated", " AB "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAlphabet(tt.chars); !errors.Is(err, ErrInvalidAlphabet) {
				t.Errorf("error = %v, want ErrInvalidAlphabet", err)
			}
		})
	}
}

func TestMixedCaseAlphabetKeepsCase(t *testing.T) {
	a := MustAlphabet("_abcABC")
	if got := a.Resolve(1, 'b'); got != 'b' {
		t.Errorf("Resolve(1, 'b') = %q", got)
	}
	if a.Blank() != '_' || a.Len() != 6 {
		t.Errorf("blank %q len %d", a.Blank(), a.Len())
	}
}

func TestBoard(t *testing.T) {
	w := timing.MustWindow(5, 16, nil)
	b, err := NewBoard("Hi there!", w, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.Text() != "HI THERE!" {
		t.Fatalf("Text = %q", b.Text())
	}
	if got := b.At(0); got != "         " {
		t.Errorf("At(0) = %q", got)
	}
	if got := b.At(b.End()); got != "HI THERE!" {
		t.Errorf("At(End) = %q", got)
	}
	if b.End() != 5+16+8*3 {
		t.Errorf("End = %d", b.End())
	}
	for frame := 0; frame < b.End(); frame++ {
		if got := []rune(b.At(frame))[2]; got != ' ' {
			t.Fatalf("frame %d: space flipped to %q", frame, got)
		}
	}
	if b.Settled(b.End()) != 9 || b.Settled(0) != 0 {
		t.Errorf("Settled = %d / %d", b.Settled(b.End()), b.Settled(0))
	}
}

func TestBoardDeterministic(t *testing.T) {
	w := timing.MustWindow(0, 30, nil)
	b, _ := NewBoard("DEPARTURES", w, 2, nil)
	seen := map[int]string{}
	for pass := 0; pass < 2; pass++ {
		for frame := 60; frame >= -5; frame-- {
			got := b.At(frame)
			if prev, ok := seen[frame]; ok && prev != got {
				t.Fatalf("frame %d: %q then %q", frame, prev, got)
			}
			seen[frame] = got
		}
	}
}

func TestNewBoardRejects(t *testing.T) {
	tests := []struct {
		name    string
		w       timing.Window
		stagger int
	}{
		{"negative stagger", timing.MustWindow(0, 1, nil), -1},
		{"zero duration", timing.Window{Duration: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard("X", tt.w, tt.stagger, nil)
			if !errors.Is(err, ErrInvalidBoard) {
				t.Errorf("err = %v, want ErrInvalidBoard", err)
			}
		})
	}
}

func TestResolveUndefinedProgress(t *testing.T) {
	for _, p := range []float64{math.NaN(), math.Inf(-1)} {
		for _, g := range []rune{'F', 'A', '?', 'z'} {
			if got := Default.Resolve(p, g); got != ' ' {
				t.Errorf("Resolve(%v, %q) = %q, want blank", p, g, got)
			}
		}
	}
	if got := Default.Resolve(math.Inf(1), 'F'); got != 'F' {
		t.Errorf("Resolve(+Inf, 'F') = %q", got)
	}
}
