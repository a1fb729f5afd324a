package tui

import (
	"log"

	"github.com/akyairhashvil/timedialog/internal/dialog"
)

// LogObserver writes every dialog state change to the standard logger.
type LogObserver struct {
	Name string
}

func (o LogObserver) DialogEvent(ev dialog.Event) {
	log.Printf("%s: %s -> %s (%s, gen %d)", o.Name, ev.From, ev.To, ev.Cause, ev.Generation)
}
