package tui

import "errors"

var (
	ErrUnknownPosition = errors.New("unknown dialog position")
	ErrUnknownTheme    = errors.New("unknown theme")
)
