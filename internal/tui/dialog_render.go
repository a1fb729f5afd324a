package tui

import (
	"math"
	"strings"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/akyairhashvil/timedialog/internal/dialog"
	"github.com/akyairhashvil/timedialog/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// View renders the dialog layer over an empty screen.
func (m DialogModel) View() string {
	return m.paint(blankCanvas(m.width, m.height)).String()
}

// Render composites the dialog layer onto the host's rendered screen.
func (m DialogModel) Render(base string) string {
	return m.paint(newCanvas(base)).String()
}

func (m DialogModel) paint(c canvas) canvas {
	if m.ctrl.State() != dialog.StateClosed {
		snap := m.ctrl.Snapshot()
		panel := m.renderPanel(snap.Reveal, snap.Effects, snap.Progress)
		w, h := lipgloss.Size(panel)
		x, y := m.opts.Position.anchor(m.width, m.height, w, h)
		panel, x, y = m.applyEffects(panel, x, y, snap.Reveal, snap.Effects)
		c.draw(panel, x, y)
	}
	if !m.opts.DisableSplash {
		m.ripple.paint(c, m.clock.Now(), m.rippleStyle())
	}
	return c
}

func (m DialogModel) panelWidth() int {
	w := m.width - 2*config.PanelMarginX
	return util.Clamp(w, config.MinPanelWidth, config.MaxPanelWidth)
}

// renderPanel draws the panel at full size. Fading is applied here since it
// changes colors rather than geometry.
func (m DialogModel) renderPanel(reveal float64, effects dialog.Effect, pct float64) string {
	width := m.panelWidth()
	inner := width - 2*config.PanelPaddingX

	panelColor, textColor := m.opts.PanelColor, m.opts.TextColor
	fullColor, emptyColor := m.opts.ProgressColor, m.opts.ProgressBackgroundColor
	var content string
	if m.opts.Content != nil {
		content = m.opts.Content(inner)
	}

	if effects.Has(dialog.EffectFade) {
		a := util.Clamp(reveal, 0, 1)
		if a < 1 {
			backdrop := m.opts.BackdropColor
			panelColor = blend(backdrop, panelColor, a)
			textColor = blend(backdrop, textColor, a)
			fullColor = blend(backdrop, fullColor, a)
			emptyColor = blend(backdrop, emptyColor, a)
			content = ansi.Strip(content)
		}
	}

	body := lipgloss.NewStyle().Foreground(lipgloss.Color(textColor)).Render(content)
	parts := []string{body}
	if m.opts.ShowProgress {
		bar := m.progress
		bar.Width = inner
		bar.FullColor = fullColor
		bar.EmptyColor = emptyColor
		for i := 0; i < config.ContentGap; i++ {
			parts = append(parts, "")
		}
		parts = append(parts, bar.ViewAs(pct))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(panelColor)).
		Padding(config.PanelPaddingY, config.PanelPaddingX).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// applyEffects applies the geometric effects of the transition in play and
// returns the block with its adjusted origin.
func (m DialogModel) applyEffects(panel string, x, y int, reveal float64, effects dialog.Effect) (string, int, int) {
	if effects.Has(dialog.EffectScale) {
		var dx, dy int
		panel, dx, dy = scaleBlock(panel, util.Clamp(reveal, 0, 1))
		x, y = x+dx, y+dy
	}
	if effects.Has(dialog.EffectSlide) {
		_, h := lipgloss.Size(panel)
		y = slideOffset(y, h, m.height, reveal, m.opts.Position.fromBottom())
	}
	return panel, x, y
}

// scaleBlock crops block around its centre to the fraction r of its size.
func scaleBlock(block string, r float64) (string, int, int) {
	lines := strings.Split(block, "\n")
	w, h := lipgloss.Size(block)
	nw := int(math.Round(float64(w) * r))
	nh := int(math.Round(float64(h) * r))
	if nw <= 0 || nh <= 0 {
		return "", 0, 0
	}
	dx, dy := (w-nw)/2, (h-nh)/2
	out := make([]string, 0, nh)
	for _, line := range lines[dy : dy+nh] {
		out = append(out, crop(line, dx, nw))
	}
	return strings.Join(out, "\n"), dx, dy
}

// slideOffset moves a block at row y towards the top edge, or the bottom
// edge, as reveal drops from 1 to 0. At 0 the block is fully off screen.
func slideOffset(y, h, screenH int, reveal float64, fromBottom bool) int {
	if fromBottom {
		return int(math.Round(util.Lerp(float64(screenH), float64(y), reveal)))
	}
	return int(math.Round(util.Lerp(float64(-h), float64(y), reveal)))
}

// blend mixes from towards to in Lab space; a=1 yields to. Unparseable
// colors skip the blend.
func blend(from, to string, a float64) string {
	if a >= 1 {
		return to
	}
	cf, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	ct, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	return cf.BlendLab(ct, a).Clamped().Hex()
}

func (m DialogModel) rippleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.opts.ProgressColor))
}
