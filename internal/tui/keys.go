package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// appKeys are the host screen's bindings. They double as the hint line.
type appKeys struct {
	Tap   key.Binding
	Close key.Binding
	Quit  key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Tap: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "tap"),
		),
		Close: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k appKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Close, k.Quit}
}

func (k appKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHelp(theme Theme) help.Model {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = theme.Hint.Bold(true)
	h.Styles.ShortDesc = theme.Hint
	h.Styles.ShortSeparator = theme.Hint
	return h
}
