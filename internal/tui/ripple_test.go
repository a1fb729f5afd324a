package tui

import (
	"math"
	"testing"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/akyairhashvil/timedialog/internal/testutil"
)

func TestRippleLifetime(t *testing.T) {
	clock := testutil.NewFakeClock()
	r := newRipple(10, 5, clock.Now())
	if !r.active(clock.Now()) {
		t.Fatalf("expected a fresh ripple to be active")
	}
	clock.Advance(config.RippleDuration)
	if r.active(clock.Now()) {
		t.Fatalf("expected the ripple to end after RippleDuration")
	}
	if (ripple{}).active(clock.Now()) {
		t.Fatalf("zero ripple must be inactive")
	}
}

func TestRippleRingGrows(t *testing.T) {
	clock := testutil.NewFakeClock()
	r := newRipple(0, 0, clock.Now())
	clock.Advance(config.RippleDuration / 2)
	rad := r.radius(clock.Now())
	if math.Abs(rad-config.RippleRadius/2.0) > 1e-9 {
		t.Fatalf("expected half radius, got %f", rad)
	}
	for _, cell := range r.cells(clock.Now()) {
		d := math.Hypot(float64(cell[0])/2, float64(cell[1]))
		if math.Abs(d-rad) > 0.5 {
			t.Fatalf("cell %v is off the ring", cell)
		}
	}
	if len(r.cells(clock.Now())) == 0 {
		t.Fatalf("expected ring cells")
	}
}
