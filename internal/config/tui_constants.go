package config

// Layout constants.
const (
	// PanelMarginX keeps the panel off the left and right screen edges.
	PanelMarginX = 2

	// PanelMarginY keeps the panel off the top and bottom screen edges.
	PanelMarginY = 1

	// PanelPaddingX and PanelPaddingY pad the content inside the panel.
	PanelPaddingX = 2
	PanelPaddingY = 1

	// MaxPanelWidth caps the panel on wide terminals.
	MaxPanelWidth = 72

	// MinPanelWidth is the narrowest panel that still fits a progress bar.
	MinPanelWidth = 16

	// ContentGap is the number of blank lines between content and progress bar.
	ContentGap = 1
)

// Tap feedback.
const (
	// RippleRadius is the final ripple radius in rows; columns are doubled.
	RippleRadius = 3

	// RippleGlyph draws the ripple ring.
	RippleGlyph = "·"
)

// PromptText is drawn in the middle of the tap surface.
const PromptText = "T A P"
