package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrInvalidTransition = errors.New("transition duration must not be negative")
)

// LoadError reports a configuration file that could not be used.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
