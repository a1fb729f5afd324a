package tui

import (
	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme supplies the default palette for the backdrop and the dialog.
// Colors configured explicitly on DialogOptions take precedence.
type Theme struct {
	Name          string
	Backdrop      string
	Prompt        lipgloss.Style
	Hint          lipgloss.Style
	Panel         string
	PanelText     string
	ProgressFull  string
	ProgressEmpty string
	// Markdown names the glamour style used for markdown content.
	Markdown string
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Backdrop:      "#000000",
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true),
		Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Panel:         config.DefaultPanelColor,
		PanelText:     config.DefaultTextColor,
		ProgressFull:  config.DefaultProgressColor,
		ProgressEmpty: config.DefaultProgressBackgroundColor,
		Markdown:      "dark",
	},
	"dracula": {
		Name:          "Dracula",
		Backdrop:      "#282a36",
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd")).Bold(true), // Cyan
		Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4")),            // Comment
		Panel:         "#44475a",
		PanelText:     "#f8f8f2",
		ProgressFull:  "#50fa7b", // Green
		ProgressEmpty: "#6272a4",
		Markdown:      "dracula",
	},
}

// LookupTheme returns the named theme, falling back to "default".
func LookupTheme(name string) (Theme, bool) {
	if t, ok := Themes[name]; ok {
		return t, true
	}
	return Themes["default"], false
}
