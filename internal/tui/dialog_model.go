package tui

import (
	"sync/atomic"
	"time"

	"github.com/akyairhashvil/timedialog/internal/config"
	"github.com/akyairhashvil/timedialog/internal/dialog"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

var lastDialogID int64

func nextDialogID() int {
	return int(atomic.AddInt64(&lastDialogID, 1))
}

// expireMsg carries the countdown generation it was scheduled for. Once
// that generation is dead the message is a no-op.
type expireMsg struct {
	id  int
	gen uint64
}

// frameMsg drives transitions, the progress bar and the ripple. Only the
// loop whose seq matches the model keeps running.
type frameMsg struct {
	id  int
	seq int
}

// DialogModel is a timed dialog component. The host owns visibility and
// reports it through SetVisible; the model owns the countdown, the
// animations and tap handling on the full-screen backing surface.
type DialogModel struct {
	id       int
	opts     DialogOptions
	clock    dialog.Clock
	ctrl     *dialog.Controller
	progress progress.Model
	ripple   ripple

	frameSeq  int
	animating bool

	width, height int
}

// NewDialogModel builds a closed dialog. A nil clock uses the wall clock.
func NewDialogModel(opts DialogOptions, clock dialog.Clock, observers ...dialog.Observer) DialogModel {
	if clock == nil {
		clock = dialog.SystemClock{}
	}
	ctrlOpts := []dialog.Option{
		dialog.WithClock(clock),
		dialog.WithEnter(opts.Enter),
		dialog.WithExit(opts.Exit),
	}
	for _, o := range observers {
		ctrlOpts = append(ctrlOpts, dialog.WithObserver(o))
	}
	m := DialogModel{
		id:    nextDialogID(),
		opts:  opts,
		clock: clock,
		ctrl:  dialog.New(opts.Duration, ctrlOpts...),
	}
	m.progress = newProgressBar(opts)
	return m
}

func newProgressBar(opts DialogOptions) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(opts.ProgressColor),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = opts.ProgressBackgroundColor
	return bar
}

func (m DialogModel) Init() tea.Cmd {
	return nil
}

// Controller exposes the underlying state machine, mainly for observers
// and tests.
func (m DialogModel) Controller() *dialog.Controller {
	return m.ctrl
}

func (m DialogModel) Options() DialogOptions {
	return m.opts
}

// SetOptions applies new options. Durations and transitions take effect
// from the next cycle; colors and content apply immediately.
func (m DialogModel) SetOptions(opts DialogOptions) DialogModel {
	m.opts = opts
	m.ctrl.SetDuration(opts.Duration)
	m.ctrl.SetTransitions(opts.Enter, opts.Exit)
	m.progress = newProgressBar(opts)
	return m
}

// SetVisible mirrors the host's open flag. Opening starts the countdown
// and entrance; closing cancels the countdown and plays the exit without
// a dismiss callback. Repeating the current value does nothing.
func (m DialogModel) SetVisible(visible bool) (DialogModel, tea.Cmd) {
	if visible {
		gen, started := m.ctrl.Open()
		if !started {
			return m, nil
		}
		var frames tea.Cmd
		m, frames = m.startFrames()
		return m, tea.Batch(m.countdown(gen), frames)
	}
	if !m.ctrl.Close() {
		return m, nil
	}
	return m.startFrames()
}

// Tap handles a press on the backing surface. OnTap runs for every tap,
// whatever the dialog is doing.
func (m DialogModel) Tap(x, y int) (DialogModel, tea.Cmd) {
	var cmds []tea.Cmd
	if m.opts.OnTap != nil {
		cmds = append(cmds, deliver(m.opts.OnTap()))
	}
	if !m.opts.DisableSplash {
		m.ripple = newRipple(x, y, m.clock.Now())
		var frames tea.Cmd
		m, frames = m.startFrames()
		cmds = append(cmds, frames)
	}
	return m, tea.Batch(cmds...)
}

// Stop is the unmount: the countdown and frame loop are abandoned and the
// dialog disappears without a dismiss callback.
func (m DialogModel) Stop() DialogModel {
	m.ctrl.Stop()
	m.frameSeq++
	m.animating = false
	m.ripple = ripple{}
	return m
}

func (m DialogModel) Update(msg tea.Msg) (DialogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.Tap(msg.X, msg.Y)
		}
		return m, nil
	case expireMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m.handleExpire(msg.gen)
	case frameMsg:
		if msg.id != m.id || msg.seq != m.frameSeq {
			return m, nil
		}
		return m.handleFrame()
	}
	return m, nil
}

func (m DialogModel) handleExpire(gen uint64) (DialogModel, tea.Cmd) {
	if !m.ctrl.Expire(gen) {
		return m, nil
	}
	var cmds []tea.Cmd
	if m.opts.OnDismiss != nil {
		cmds = append(cmds, deliver(m.opts.OnDismiss()))
	}
	var frames tea.Cmd
	m, frames = m.startFrames()
	cmds = append(cmds, frames)
	return m, tea.Batch(cmds...)
}

func (m DialogModel) handleFrame() (DialogModel, tea.Cmd) {
	m.ctrl.Advance()
	now := m.clock.Now()
	if !m.ripple.active(now) {
		m.ripple = ripple{}
	}
	if m.ctrl.State() == dialog.StateClosed && !m.ripple.started {
		m.animating = false
		return m, nil
	}
	return m, m.frameCmd()
}

// startFrames begins the frame loop unless one is already running.
func (m DialogModel) startFrames() (DialogModel, tea.Cmd) {
	if m.animating {
		return m, nil
	}
	m.animating = true
	m.frameSeq++
	return m, m.frameCmd()
}

func (m DialogModel) frameCmd() tea.Cmd {
	id, seq := m.id, m.frameSeq
	return tea.Tick(config.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, seq: seq}
	})
}

func (m DialogModel) countdown(gen uint64) tea.Cmd {
	id, d := m.id, m.ctrl.Duration()
	if d <= 0 {
		return deliver(expireMsg{id: id, gen: gen})
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return expireMsg{id: id, gen: gen}
	})
}

func deliver(msg tea.Msg) tea.Cmd {
	if msg == nil {
		return nil
	}
	return func() tea.Msg { return msg }
}
