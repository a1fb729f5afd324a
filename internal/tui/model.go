package tui

import (
	"fmt"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/akyairhashvil/timedialog/internal/dialog"
	"github.com/akyairhashvil/timedialog/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the demo screen: a full-screen tap surface that opens a
// timed dialog. It owns the open flag the dialog is driven by.
type AppModel struct {
	cfg    config.File
	theme  Theme
	dialog DialogModel
	keys   appKeys
	help   help.Model
	open   bool
	err    error
	width  int
	height int
}

func NewAppModel(cfg config.File, clock dialog.Clock) (AppModel, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return AppModel{}, err
	}
	theme, _ := LookupTheme(cfg.Theme)
	m := AppModel{
		cfg:   cfg,
		theme: theme,
		keys:  defaultAppKeys(),
		help:  newHelp(theme),
	}
	m.dialog = NewDialogModel(withHostCallbacks(opts), clock, LogObserver{Name: "dialog"})
	return m, nil
}

func withHostCallbacks(opts DialogOptions) DialogOptions {
	opts.OnTap = func() tea.Msg { return TappedMsg{} }
	opts.OnDismiss = func() tea.Msg { return DismissedMsg{} }
	return opts
}

func (m AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}

// Open reports the host's open flag.
func (m AppModel) Open() bool {
	return m.open
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	case TappedMsg:
		// Taps while the dialog is up are ignored here, not in the dialog.
		if m.open {
			return m, nil
		}
		m.open = true
		m.dialog, cmd = m.dialog.SetVisible(true)
		return m, cmd
	case DismissedMsg:
		m.open = false
		m.dialog, cmd = m.dialog.SetVisible(false)
		return m, cmd
	case ConfigReloadedMsg:
		return m.handleReload(msg)
	}

	m.dialog, cmd = m.dialog.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	var cmd tea.Cmd
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.dialog = m.dialog.Stop()
		m.open = false
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tap):
		m.dialog, cmd = m.dialog.Tap(m.width/2, m.height/2)
		return m, cmd
	case key.Matches(msg, m.keys.Close):
		if !m.open {
			return m, nil
		}
		m.open = false
		m.dialog, cmd = m.dialog.SetVisible(false)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleReload(msg ConfigReloadedMsg) (AppModel, tea.Cmd) {
	if util.LogError("reload config", msg.Err) {
		m.err = msg.Err
		return m, nil
	}
	opts, err := OptionsFromConfig(msg.Config)
	if util.LogError("apply config", err) {
		m.err = err
		return m, nil
	}
	m.cfg = msg.Config
	m.theme, _ = LookupTheme(msg.Config.Theme)
	m.help = newHelp(m.theme)
	m.err = nil
	m.dialog = m.dialog.SetOptions(withHostCallbacks(opts))
	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.dialog.Render(m.backdrop())
}

func (m AppModel) backdrop() string {
	lines := []string{m.theme.Prompt.Render(config.PromptText), "", m.help.View(m.keys)}
	if m.err != nil {
		lines = append(lines, "", m.theme.Hint.Render(fmt.Sprintf("config error: %v", m.err)))
	}
	prompt := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
}
