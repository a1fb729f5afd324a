// Package util provides small shared helpers: logging, config paths and
// numeric clamping.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil and reports
// whether it did.
func LogError(context string, err error) bool {
	if err == nil {
		return false
	}
	log.Printf("%s: %v", context, err)
	return true
}

// DiscardLogs silences the standard logger. A full-screen TUI owns the
// terminal, so log lines must not reach stdout or stderr.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}
