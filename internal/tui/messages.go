package tui

import "github.com/akyairhashvil/timedialog/internal/config"

// TappedMsg is emitted by the demo dialog's OnTap callback.
type TappedMsg struct{}

// DismissedMsg is emitted by the demo dialog's OnDismiss callback.
type DismissedMsg struct{}

// ConfigReloadedMsg carries a configuration reloaded from disk. Err is set
// when the new file could not be used.
type ConfigReloadedMsg struct {
	Config config.File
	Err    error
}
