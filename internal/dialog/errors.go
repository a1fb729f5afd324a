package dialog

import "errors"

var (
	ErrUnknownEffect = errors.New("unknown transition effect")
	ErrUnknownEasing = errors.New("unknown easing")
)
