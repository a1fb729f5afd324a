// Package dialog implements the state machine behind a timed dialog: an
// overlay that animates in, sweeps a progress indicator over a fixed
// duration, reports a dismiss exactly once and animates out again.
//
// The package does not render anything and owns no timers. The caller
// schedules the countdown for the generation returned by Open and
// reports it back through Expire; stale generations are ignored, which
// is how a cancelled countdown is abandoned without side effects.
package dialog

import "time"

// State is the controller's lifecycle phase.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	}
	return "unknown"
}

// Snapshot is a read-only view of the controller at one instant.
type Snapshot struct {
	State      State
	Visible    bool
	Progress   float64
	Reveal     float64
	Effects    Effect
	Generation uint64
	Duration   time.Duration
	Remaining  time.Duration
}

type observerEntry struct {
	id  int
	obs Observer
}

// Controller is not safe for concurrent use; drive it from one event loop.
type Controller struct {
	clock    Clock
	duration time.Duration
	enter    Transition
	exit     Transition

	state State
	gen   uint64

	// cycle is the duration captured when the current countdown started.
	cycle     time.Duration
	startedAt time.Time
	changedAt time.Time
	// from is the reveal amount at the moment the current transition began.
	from      float64
	progress  float64
	dismissed bool

	observers []observerEntry
	nextObsID int
}

type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.clock = c
		}
	}
}

func WithEnter(t Transition) Option {
	return func(c *Controller) { c.enter = t }
}

func WithExit(t Transition) Option {
	return func(c *Controller) { c.exit = t }
}

func WithObserver(o Observer) Option {
	return func(c *Controller) { c.Subscribe(o) }
}

// New returns a closed controller. A non-positive duration makes every
// countdown elapse immediately.
func New(duration time.Duration, opts ...Option) *Controller {
	c := &Controller{
		clock:    SystemClock{},
		duration: duration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open starts a presentation cycle and returns its countdown generation.
// While the dialog is already opening or open it does nothing and reports
// the running generation with started == false.
func (c *Controller) Open() (gen uint64, started bool) {
	if c.Visible() {
		return c.gen, false
	}
	now := c.clock.Now()
	from := c.revealAt(now)
	c.resetProgress()
	c.gen++
	c.cycle = c.duration
	c.startedAt = now
	c.changedAt = now
	c.from = from
	c.transition(StateOpening, CauseOpen, now)
	return c.gen, true
}

// Close dismisses the dialog from outside. The pending countdown is
// invalidated and no dismiss is reported for this cycle.
func (c *Controller) Close() bool {
	if !c.Visible() {
		return false
	}
	now := c.clock.Now()
	c.progress = c.progressAt(now)
	c.from = c.revealAt(now)
	c.gen++
	c.changedAt = now
	c.transition(StateClosing, CauseClose, now)
	return true
}

// Expire reports that the countdown for gen has elapsed. It returns true
// at most once per cycle, and only when gen is the live countdown; the
// caller must then run its dismiss callback.
func (c *Controller) Expire(gen uint64) bool {
	if gen != c.gen || !c.Visible() || c.dismissed {
		return false
	}
	now := c.clock.Now()
	c.from = c.revealAt(now)
	c.progress = 1
	c.dismissed = true
	c.changedAt = now
	c.transition(StateClosing, CauseExpire, now)
	return true
}

// Advance settles finished transitions. Leaving CLOSING resets progress
// to zero in one step so the indicator never animates backwards.
func (c *Controller) Advance() {
	now := c.clock.Now()
	switch c.state {
	case StateOpening:
		c.progress = c.progressAt(now)
		if now.Sub(c.changedAt) >= c.enter.Duration {
			c.transition(StateOpen, CauseSettle, now)
		}
	case StateOpen:
		c.progress = c.progressAt(now)
	case StateClosing:
		if now.Sub(c.changedAt) >= c.exit.Duration {
			c.resetProgress()
			c.transition(StateClosed, CauseSettle, now)
		}
	}
}

// Stop tears the controller down: the countdown is invalidated and the
// dialog drops straight to CLOSED without reporting a dismiss.
func (c *Controller) Stop() {
	c.gen++
	if c.state == StateClosed {
		return
	}
	now := c.clock.Now()
	c.resetProgress()
	c.from = 0
	c.transition(StateClosed, CauseStop, now)
}

// Progress is clamp(elapsed/duration, 0, 1) while visible. It never
// decreases within a cycle, is frozen while closing and is zero when closed.
func (c *Controller) Progress() float64 {
	if c.Visible() {
		if p := c.progressAt(c.clock.Now()); p > c.progress {
			c.progress = p
		}
	}
	return c.progress
}

// Reveal is the eased visibility of the panel: 0 hidden, 1 fully shown.
// Spring easings may briefly exceed the range.
func (c *Controller) Reveal() float64 {
	return c.revealAt(c.clock.Now())
}

// Effects returns the effects of the transition currently playing.
func (c *Controller) Effects() Effect {
	switch c.state {
	case StateOpening:
		return c.enter.Effects
	case StateClosing:
		return c.exit.Effects
	}
	return EffectNone
}

// Remaining is the time left on the live countdown.
func (c *Controller) Remaining() time.Duration {
	if !c.Visible() {
		return 0
	}
	left := c.cycle - c.clock.Now().Sub(c.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// SetDuration changes the configured duration. A running countdown keeps
// the duration it started with.
func (c *Controller) SetDuration(d time.Duration) {
	c.duration = d
}

// SetTransitions replaces the enter and exit descriptors for future
// transitions.
func (c *Controller) SetTransitions(enter, exit Transition) {
	c.enter, c.exit = enter, exit
}

func (c *Controller) Duration() time.Duration { return c.duration }
func (c *Controller) Generation() uint64      { return c.gen }
func (c *Controller) State() State            { return c.state }

// Visible reports whether a countdown is running.
func (c *Controller) Visible() bool {
	return c.state == StateOpening || c.state == StateOpen
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		Visible:    c.Visible(),
		Progress:   c.Progress(),
		Reveal:     c.Reveal(),
		Effects:    c.Effects(),
		Generation: c.gen,
		Duration:   c.duration,
		Remaining:  c.Remaining(),
	}
}

// Subscribe registers o and returns a function that removes it.
func (c *Controller) Subscribe(o Observer) (cancel func()) {
	if o == nil {
		return func() {}
	}
	c.nextObsID++
	id := c.nextObsID
	c.observers = append(c.observers, observerEntry{id: id, obs: o})
	return func() {
		for i, e := range c.observers {
			if e.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) progressAt(now time.Time) float64 {
	if c.cycle <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(c.startedAt)) / float64(c.cycle))
}

func (c *Controller) revealAt(now time.Time) float64 {
	switch c.state {
	case StateOpening:
		f := c.enter.fraction(now.Sub(c.changedAt))
		return c.from + (1-c.from)*c.enter.ease(f)
	case StateOpen:
		return 1
	case StateClosing:
		f := c.exit.fraction(now.Sub(c.changedAt))
		return c.from * (1 - c.exit.ease(f))
	}
	return 0
}

func (c *Controller) resetProgress() {
	c.progress = 0
	c.dismissed = false
}

func (c *Controller) transition(to State, cause Cause, now time.Time) {
	from := c.state
	c.state = to
	ev := Event{From: from, To: to, Cause: cause, Generation: c.gen, At: now}
	for _, e := range c.observers {
		e.obs.DialogEvent(ev)
	}
}
