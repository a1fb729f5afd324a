package tui

import (
	"strings"

	"github.com/akyairhashvil/timedialog/internal/util"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// MarkdownContent renders md with glamour, wrapped to the panel's inner
// width. Renders are cached per width; on failure the raw text is shown.
func MarkdownContent(md, style string) func(width int) string {
	if style == "" {
		style = "dark"
	}
	cache := make(map[int]string)
	return func(width int) string {
		if out, ok := cache[width]; ok {
			return out
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if util.LogError("markdown renderer", err) {
			return TextContent(md)(width)
		}
		out, err := r.Render(md)
		if util.LogError("render markdown", err) {
			return TextContent(md)(width)
		}
		out = strings.Trim(out, "\n")
		cache[width] = out
		return out
	}
}

// TextContent word-wraps plain text to the panel's inner width.
func TextContent(text string) func(width int) string {
	return func(width int) string {
		return lipgloss.NewStyle().Width(width).Render(text)
	}
}
