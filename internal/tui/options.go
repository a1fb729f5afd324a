package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/akyairhashvil/timedialog/internal/dialog"
	tea "github.com/charmbracelet/bubbletea"
)

// DialogOptions configures a DialogModel. OnTap and OnDismiss run inside
// Update; a non-nil message they return is delivered to the program.
type DialogOptions struct {
	Duration                time.Duration
	Position                Position
	Enter                   dialog.Transition
	Exit                    dialog.Transition
	ProgressColor           string
	ProgressBackgroundColor string
	PanelColor              string
	TextColor               string
	// BackdropColor is what a fading panel blends from.
	BackdropColor string
	ShowProgress  bool
	DisableSplash bool
	OnTap         func() tea.Msg
	OnDismiss     func() tea.Msg
	// Content renders the panel body for the given inner width.
	Content func(width int) string
}

// DefaultDialogOptions scales the panel in and out at the top centre.
func DefaultDialogOptions() DialogOptions {
	scale := dialog.Transition{
		Effects:  dialog.EffectScale,
		Duration: config.DefaultTransitionDuration,
		Easing:   dialog.FastOutSlowIn,
	}
	return DialogOptions{
		Duration:                config.DefaultDuration,
		Position:                TopCenter,
		Enter:                   scale,
		Exit:                    scale,
		ProgressColor:           config.DefaultProgressColor,
		ProgressBackgroundColor: config.DefaultProgressBackgroundColor,
		PanelColor:              config.DefaultPanelColor,
		TextColor:               config.DefaultTextColor,
		BackdropColor:           Themes["default"].Backdrop,
		ShowProgress:            true,
	}
}

// OptionsFromConfig builds dialog options from a configuration file.
// Unset colors come from the configured theme; an empty theme name selects
// the default palette. Callbacks are left nil.
func OptionsFromConfig(f config.File) (DialogOptions, error) {
	if err := f.Validate(); err != nil {
		return DialogOptions{}, err
	}
	theme, ok := LookupTheme(f.Theme)
	if !ok && f.Theme != "" {
		return DialogOptions{}, fmt.Errorf("%w: %q", ErrUnknownTheme, f.Theme)
	}
	pos, err := ParsePosition(f.Position)
	if err != nil {
		return DialogOptions{}, err
	}
	enter, err := transitionFromConfig(f.Enter)
	if err != nil {
		return DialogOptions{}, fmt.Errorf("enter: %w", err)
	}
	exit, err := transitionFromConfig(f.Exit)
	if err != nil {
		return DialogOptions{}, fmt.Errorf("exit: %w", err)
	}

	opts := DialogOptions{
		Duration:                f.Duration(),
		Position:                pos,
		Enter:                   enter,
		Exit:                    exit,
		ProgressColor:           orDefault(f.ProgressColor, theme.ProgressFull),
		ProgressBackgroundColor: orDefault(f.ProgressBackgroundColor, theme.ProgressEmpty),
		PanelColor:              orDefault(f.PanelColor, theme.Panel),
		TextColor:               orDefault(f.TextColor, theme.PanelText),
		BackdropColor:           theme.Backdrop,
		ShowProgress:            f.ShowProgress,
		DisableSplash:           f.DisableSplash,
	}
	if f.Markdown {
		opts.Content = MarkdownContent(f.Content, theme.Markdown)
	} else {
		opts.Content = TextContent(f.Content)
	}
	return opts, nil
}

func transitionFromConfig(t config.TransitionFile) (dialog.Transition, error) {
	effects, err := dialog.ParseEffects(t.Effects)
	if err != nil {
		return dialog.Transition{}, err
	}
	easing, err := dialog.ParseEasing(t.Easing)
	if err != nil {
		return dialog.Transition{}, err
	}
	return dialog.Transition{Effects: effects, Duration: t.Duration(), Easing: easing}, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
