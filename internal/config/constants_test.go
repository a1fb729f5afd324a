package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultDuration <= 0 {
		t.Fatalf("DefaultDuration must be positive")
	}
	if DefaultTransitionDuration <= 0 || DefaultTransitionDuration >= DefaultDuration {
		t.Fatalf("DefaultTransitionDuration must be positive and shorter than DefaultDuration")
	}
	if FrameInterval <= 0 || RippleDuration <= FrameInterval {
		t.Fatalf("RippleDuration must span several frames")
	}
	if AppName == "" || ConfigFileName == "" {
		t.Fatalf("application names should not be empty")
	}
	if EnvConfigPath == EnvLogFile {
		t.Fatalf("environment variables must differ")
	}
	if MinPanelWidth <= 2*PanelPaddingX || MaxPanelWidth < MinPanelWidth {
		t.Fatalf("panel width bounds are inconsistent")
	}
}
