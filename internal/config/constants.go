package config

import "time"

// Timer durations.
const (
	DefaultDuration           = 3000 * time.Millisecond
	DefaultTransitionDuration = 500 * time.Millisecond
	FrameInterval             = time.Second / 60
	RippleDuration            = 350 * time.Millisecond
	ReloadDebounce            = 150 * time.Millisecond
)

// Application settings.
const (
	AppName        = "timedialog"
	ConfigFileName = "timedialog.yaml"
	EnvConfigPath  = "TIMEDIALOG_CONFIG"
	EnvLogFile     = "TIMEDIALOG_LOG"
)

// Default palette, matching the original demo.
const (
	DefaultProgressColor           = "#96ffe7"
	DefaultProgressBackgroundColor = "#27c5a1"
	DefaultPanelColor              = "#14aa88"
	DefaultTextColor               = "#ffffff"
)
