package tui

import (
	"math"
	"time"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// ripple is the tap feedback: a ring that expands from the tap point and
// disappears after config.RippleDuration.
type ripple struct {
	x, y    int
	start   time.Time
	started bool
}

func newRipple(x, y int, now time.Time) ripple {
	return ripple{x: x, y: y, start: now, started: true}
}

func (r ripple) active(now time.Time) bool {
	return r.started && now.Sub(r.start) < config.RippleDuration
}

// radius grows linearly from zero to config.RippleRadius rows.
func (r ripple) radius(now time.Time) float64 {
	f := float64(now.Sub(r.start)) / float64(config.RippleDuration)
	return config.RippleRadius * math.Min(math.Max(f, 0), 1)
}

// cells lists the ring's cells relative to the tap point. Terminal cells are
// about twice as tall as wide, so columns count half.
func (r ripple) cells(now time.Time) [][2]int {
	rad := r.radius(now)
	reach := int(math.Ceil(rad)) + 1
	var out [][2]int
	for dy := -reach; dy <= reach; dy++ {
		for dx := -2 * reach; dx <= 2*reach; dx++ {
			d := math.Hypot(float64(dx)/2, float64(dy))
			if math.Abs(d-rad) <= 0.5 {
				out = append(out, [2]int{dx, dy})
			}
		}
	}
	return out
}

func (r ripple) paint(c canvas, now time.Time, style lipgloss.Style) {
	if !r.active(now) {
		return
	}
	glyph := style.Render(config.RippleGlyph)
	for _, cell := range r.cells(now) {
		c.draw(glyph, r.x+cell[0], r.y+cell[1])
	}
}
