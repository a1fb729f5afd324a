package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// canvas is a rendered screen split into lines so that blocks can be
// painted over it cell by cell.
type canvas []string

func newCanvas(screen string) canvas {
	return canvas(strings.Split(screen, "\n"))
}

func blankCanvas(width, height int) canvas {
	if height <= 0 {
		return canvas{}
	}
	row := strings.Repeat(" ", max(width, 0))
	c := make(canvas, height)
	for i := range c {
		c[i] = row
	}
	return c
}

func (c canvas) String() string {
	return strings.Join(c, "\n")
}

// draw paints block with its top-left cell at (x, y). Parts that fall
// outside the canvas are clipped.
func (c canvas) draw(block string, x, y int) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c) {
			continue
		}
		c[row] = spliceLine(c[row], line, x)
	}
}

// spliceLine replaces the cells of under starting at column x with over.
// Styles on either side are terminated so they cannot bleed across.
func spliceLine(under, over string, x int) string {
	if x < 0 {
		over = ansi.TruncateLeft(over, -x, "")
		x = 0
	}
	limit := ansi.StringWidth(under)
	if x >= limit {
		return under
	}
	w := ansi.StringWidth(over)
	if x+w > limit {
		over = ansi.Truncate(over, limit-x, "")
		w = ansi.StringWidth(over)
	}
	if w == 0 {
		return under
	}
	left := ansi.Truncate(under, x, "")
	var b strings.Builder
	b.WriteString(left)
	b.WriteString(resetSGR)
	b.WriteString(over)
	b.WriteString(resetSGR)
	if x+w < limit {
		b.WriteString(ansi.TruncateLeft(under, x+w, ""))
	}
	return b.String()
}

// crop keeps width cells of line starting at column left.
func crop(line string, left, width int) string {
	if width <= 0 {
		return ""
	}
	if left > 0 {
		line = ansi.TruncateLeft(line, left, "")
	}
	return ansi.Truncate(line, width, "")
}
