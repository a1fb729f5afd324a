package dialog

import (
	"fmt"
	"strings"
	"time"
)

// Effect is a bit set of visual effects applied while a transition plays.
type Effect uint8

const (
	EffectSlide Effect = 1 << iota
	EffectFade
	EffectScale
)

// EffectNone shows or hides the panel without animating it.
const EffectNone Effect = 0

var effectNames = []struct {
	effect Effect
	name   string
}{
	{EffectSlide, "slide"},
	{EffectFade, "fade"},
	{EffectScale, "scale"},
}

func (e Effect) Has(f Effect) bool {
	return e&f == f && f != 0
}

func (e Effect) String() string {
	if e == EffectNone {
		return "none"
	}
	var parts []string
	for _, n := range effectNames {
		if e.Has(n.effect) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// ParseEffects reads a "+" or "," separated list such as "slide+fade".
func ParseEffects(s string) (Effect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return EffectNone, nil
	}
	var out Effect
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ',' }) {
		tok = strings.TrimSpace(tok)
		found := false
		for _, n := range effectNames {
			if n.name == tok {
				out |= n.effect
				found = true
				break
			}
		}
		if !found {
			return EffectNone, fmt.Errorf("%w: %q", ErrUnknownEffect, tok)
		}
	}
	return out, nil
}

// Transition describes how the panel animates into or out of view.
type Transition struct {
	Effects  Effect
	Duration time.Duration
	Easing   Easing
}

func (t Transition) Valid() bool {
	return t.Duration >= 0
}

func (t Transition) ease(f float64) float64 {
	if t.Easing == nil {
		return Linear(f)
	}
	return t.Easing(f)
}

// fraction reports how far through the transition elapsed is.
func (t Transition) fraction(elapsed time.Duration) float64 {
	if t.Duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(t.Duration))
}
