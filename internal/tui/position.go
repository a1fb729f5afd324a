package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Position anchors the dialog panel on screen.
type Position int

const (
	TopLeft Position = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var positionNames = map[string]Position{
	"top-left":      TopLeft,
	"top":           TopCenter,
	"top-center":    TopCenter,
	"top-right":     TopRight,
	"left":          CenterLeft,
	"center-left":   CenterLeft,
	"center":        Center,
	"right":         CenterRight,
	"center-right":  CenterRight,
	"bottom-left":   BottomLeft,
	"bottom":        BottomCenter,
	"bottom-center": BottomCenter,
	"bottom-right":  BottomRight,
}

// ParsePosition accepts names such as "top-center" or "bottom". The empty
// string selects TopCenter.
func ParsePosition(name string) (Position, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return TopCenter, nil
	}
	if p, ok := positionNames[name]; ok {
		return p, nil
	}
	return TopCenter, fmt.Errorf("%w: %q", ErrUnknownPosition, name)
}

func (p Position) String() string {
	switch p {
	case TopLeft:
		return "top-left"
	case TopCenter:
		return "top-center"
	case TopRight:
		return "top-right"
	case CenterLeft:
		return "center-left"
	case Center:
		return "center"
	case CenterRight:
		return "center-right"
	case BottomLeft:
		return "bottom-left"
	case BottomCenter:
		return "bottom-center"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

func (p Position) Horizontal() lipgloss.Position {
	switch p % 3 {
	case 0:
		return lipgloss.Left
	case 2:
		return lipgloss.Right
	}
	return lipgloss.Center
}

func (p Position) Vertical() lipgloss.Position {
	switch p / 3 {
	case 0:
		return lipgloss.Top
	case 2:
		return lipgloss.Bottom
	}
	return lipgloss.Center
}

// fromBottom reports whether slides should travel through the bottom edge.
func (p Position) fromBottom() bool {
	return p.Vertical() == lipgloss.Bottom
}

// anchor returns the top-left cell of a w×h block placed inside a
// screenW×screenH screen, respecting the panel margins.
func (p Position) anchor(screenW, screenH, w, h int) (x, y int) {
	x = config.PanelMarginX + placeOffset(screenW-2*config.PanelMarginX-w, p.Horizontal())
	y = config.PanelMarginY + placeOffset(screenH-2*config.PanelMarginY-h, p.Vertical())
	return x, y
}

func placeOffset(free int, pos lipgloss.Position) int {
	if free <= 0 {
		return 0
	}
	return int(math.Round(float64(free) * float64(pos)))
}
