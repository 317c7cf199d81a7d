package tui

// Icons for status lines. Color is the primary signal; shape reinforces it.
const (
	IconCheck   = "✔" // success
	IconCross   = "✖" // error
	IconWarning = "⚠"
	IconInfo    = "ℹ"
)
