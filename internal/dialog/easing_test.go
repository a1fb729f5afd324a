package dialog

import (
	"errors"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]Easing{
		"linear":           Linear,
		"ease-out":         EaseOutCubic,
		"fast-out-slow-in": FastOutSlowIn,
		"spring":           DefaultSpring,
	}
	for name, ease := range curves {
		if got := ease(0); got != 0 {
			t.Fatalf("%s: expected 0 at start, got %f", name, got)
		}
		if got := ease(1); got != 1 {
			t.Fatalf("%s: expected 1 at end, got %f", name, got)
		}
		if got := ease(2); got != 1 {
			t.Fatalf("%s: expected input to be clamped, got %f", name, got)
		}
	}
}

func TestFastOutSlowInIsMonotonic(t *testing.T) {
	last := 0.0
	for i := 1; i <= 100; i++ {
		v := FastOutSlowIn(float64(i) / 100)
		if v < last-1e-9 {
			t.Fatalf("curve decreased at %d: %f < %f", i, v, last)
		}
		last = v
	}
	if FastOutSlowIn(0.5) <= 0.5 {
		t.Fatalf("expected the curve to lead linear time at the midpoint")
	}
}

func TestSpringOvershoots(t *testing.T) {
	peak := 0.0
	for i := 0; i <= 100; i++ {
		if v := DefaultSpring(float64(i) / 100); v > peak {
			peak = v
		}
	}
	if peak <= 1 {
		t.Fatalf("expected an underdamped spring to overshoot, peak %f", peak)
	}
}

func TestParseEasing(t *testing.T) {
	for _, name := range []string{"", "linear", "ease-out", "fast-out-slow-in", "Spring"} {
		if _, err := ParseEasing(name); err != nil {
			t.Fatalf("ParseEasing(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseEasing("bounce"); !errors.Is(err, ErrUnknownEasing) {
		t.Fatalf("expected ErrUnknownEasing, got %v", err)
	}
}
