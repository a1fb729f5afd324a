package dialog

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// Easing maps linear time t in [0,1] to animation progress. Springs may
// overshoot 1 before settling.
type Easing func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOutCubic decelerates towards the end.
func EaseOutCubic(t float64) float64 {
	u := 1 - clamp01(t)
	return 1 - u*u*u
}

// FastOutSlowIn is the standard material curve, cubic-bezier(0.4, 0, 0.2, 1).
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier builds a CSS-style timing function with fixed end points
// (0,0) and (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		t = clamp01(t)
		if t == 0 || t == 1 {
			return t
		}
		lo, hi := 0.0, 1.0
		s := t
		for i := 0; i < 40; i++ {
			x := bezier(s, x1, x2)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return bezier(s, y1, y2)
	}
}

func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

const springSamples = 120

// Spring samples a damped harmonic oscillator released from 0 towards 1.
// The whole transition is mapped onto one simulated second, so frequency
// is in radians per transition. The last sample is pinned to 1.
func Spring(frequency, damping float64) Easing {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)
	samples := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		samples[i] = pos
	}
	samples[springSamples] = 1
	return func(t float64) float64 {
		f := clamp01(t) * springSamples
		i := int(f)
		if i >= springSamples {
			return 1
		}
		frac := f - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

// DefaultSpring is a lightly underdamped spring with a small overshoot.
var DefaultSpring = Spring(9, 0.55)

// ParseEasing resolves a configured easing name. The empty name selects
// FastOutSlowIn.
func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fast-out-slow-in", "standard":
		return FastOutSlowIn, nil
	case "linear":
		return Linear, nil
	case "ease-out", "ease-out-cubic":
		return EaseOutCubic, nil
	case "spring":
		return DefaultSpring, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
