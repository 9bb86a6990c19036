package timing

import (
	"errors"
	"testing"

	"github.com/matt-g-everett/frametx/easing"
)

func TestProgressBoundaryClamp(t *testing.T) {
	tests := []struct {
		name   string
		easing string
	}{
		{"linear", "linear"},
		{"out cubic", "outCubic"},
		{"out back", "outBack"},
		{"in elastic", "inElastic"},
	}

	const delay, duration = 30, 45
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := easing.MustLookup(tt.easing)
			if got, want := Progress(delay-100, delay, duration, fn), fn(0); got != want {
				t.Errorf("before window: got %v, want %v", got, want)
			}
			if got, want := Progress(delay+duration+100, delay, duration, fn), fn(1); got != want {
				t.Errorf("after window: got %v, want %v", got, want)
			}
		})
	}
}

func TestProgressLinear(t *testing.T) {
	tests := []struct {
		frame int
		want  float64
	}{
		{-50, 0},
		{10, 0},
		{15, 0.25},
		{20, 0.5},
		{30, 1},
		{31, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.frame, 10, 20, nil); got != tt.want {
			t.Errorf("Progress(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestProgressZeroDurationGuard(t *testing.T) {
	if got := Progress(5, 5, 0, nil); got != 0 {
		t.Errorf("at start = %v, want 0", got)
	}
	if got := Progress(6, 5, 0, nil); got != 1 {
		t.Errorf("one frame later = %v, want 1", got)
	}
}

func TestNewWindowRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name            string
		delay, duration int
	}{
		{"zero duration", 0, 0},
		{"negative duration", 0, -3},
		{"negative delay", -1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWindow(tt.delay, tt.duration, nil)
			if !errors.Is(err, ErrInvalidWindow) {
				t.Errorf("error = %v, want ErrInvalidWindow", err)
			}
		})
	}
}

func TestWindowExtrapolate(t *testing.T) {
	w := MustWindow(10, 10, nil).Extrapolate(true, true)
	if got := w.Progress(0); got != -1 {
		t.Errorf("left extrapolation = %v, want -1", got)
	}
	if got := w.Progress(30); got != 2 {
		t.Errorf("right extrapolation = %v, want 2", got)
	}
	if got := w.Linear(15); got != 0.5 {
		t.Errorf("Linear(15) = %v, want 0.5", got)
	}
}

func TestWindowDeterministic(t *testing.T) {
	w := MustWindow(12, 37, easing.MustLookup("inOutElastic"))
	for frame := -20; frame < 80; frame++ {
		a := w.Progress(frame)
		b := w.Progress(frame)
		if a != b {
			t.Fatalf("frame %d: %v != %v", frame, a, b)
		}
	}
}

func TestStagger(t *testing.T) {
	w := MustWindow(10, 20, nil)
	s := Stagger(w, 3, 4)
	if s.Start() != 22 || s.End() != 42 {
		t.Errorf("staggered window = [%d, %d), want [22, 42)", s.Start(), s.End())
	}
	if w.Start() != 10 {
		t.Error("Stagger modified the original window")
	}
	if !s.Done(42) || s.Done(41) {
		t.Error("Done boundary wrong")
	}
}

func TestGroupIndex(t *testing.T) {
	tests := []struct {
		index, items, groups, want int
	}{
		{0, 10, 2, 0},
		{4, 10, 2, 0},
		{5, 10, 2, 1},
		{9, 10, 2, 1},
		{2, 3, 5, 2},
		{-1, 3, 2, 0},
		{7, 3, 2, 1},
		{1, 0, 2, 0},
	}
	for _, tt := range tests {
		if got := GroupIndex(tt.index, tt.items, tt.groups); got != tt.want {
			t.Errorf("GroupIndex(%d, %d, %d) = %d, want %d", tt.index, tt.items, tt.groups, got, tt.want)
		}
	}
}
