package dialog

import "time"

// Cause records why the controller changed state.
type Cause int

const (
	CauseOpen Cause = iota
	CauseExpire
	CauseClose
	CauseSettle
	CauseStop
)

func (c Cause) String() string {
	switch c {
	case CauseOpen:
		return "open"
	case CauseExpire:
		return "expire"
	case CauseClose:
		return "close"
	case CauseSettle:
		return "settle"
	case CauseStop:
		return "stop"
	}
	return "unknown"
}

// Event is delivered to observers after every state change.
type Event struct {
	From       State
	To         State
	Cause      Cause
	Generation uint64
	At         time.Time
}

// Observer receives state changes synchronously, on the goroutine that
// drove the controller. Implementations must not call back into it.
//
//go:generate mockgen -source=observer.go -destination=mock_observer_test.go -package=dialog
type Observer interface {
	DialogEvent(ev Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(ev Event)

func (f ObserverFunc) DialogEvent(ev Event) { f(ev) }
