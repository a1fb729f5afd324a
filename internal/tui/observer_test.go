package tui

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/akyairhashvil/timedialog/internal/dialog"
)

func TestLogObserverWritesTransitions(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	LogObserver{Name: "toast"}.DialogEvent(dialog.Event{
		From:       dialog.StateOpen,
		To:         dialog.StateClosing,
		Cause:      dialog.CauseExpire,
		Generation: 4,
	})
	if !strings.Contains(buf.String(), "toast: open -> closing (expire, gen 4)") {
		t.Fatalf("unexpected log line %q", buf.String())
	}
}
