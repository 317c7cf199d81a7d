package tui

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Vazpera/vividry/internal/color"
	"github.com/Vazpera/vividry/internal/gradient"
	"github.com/Vazpera/vividry/internal/tui/terminal"
)

// plainMode disables all styling: no colors, no icons.
// When enabled, output is clean plain text suitable for pipes or --no-color.
var (
	plainMode bool
	plainOnce sync.Once
	plainMu   sync.RWMutex
)

// initPlainMode auto-detects plain mode from environment on first call.
// Precedence: NO_COLOR > TTY detection > terminal capability detection.
func initPlainMode() {
	plainOnce.Do(func() {
		// NO_COLOR wins: https://no-color.org
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			plainMode = true
			return
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // Fd() fits in int on all supported platforms
			plainMode = true
			return
		}
		if terminal.Detect().Caps == terminal.CapNone {
			plainMode = true
		}
	})
}

// SetPlainMode explicitly enables or disables plain mode.
// Call this early (e.g. when parsing --no-color) before any output.
func SetPlainMode(plain bool) {
	plainMu.Lock()
	defer plainMu.Unlock()
	plainMode = plain
	// Mark as initialized so auto-detect doesn't override
	plainOnce.Do(func() {})
}

// IsPlainMode returns true if styling is disabled.
func IsPlainMode() bool {
	initPlainMode()
	plainMu.RLock()
	defer plainMu.RUnlock()
	return plainMode
}

// Color palette. Adapts to OS theme.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

// Reusable styles.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)

	stylePrefix = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	styleFaint  = lipgloss.NewStyle().Faint(true)
)

// Prefix returns the branded [vividry] prefix string.
func Prefix() string {
	if IsPlainMode() {
		return "[vividry]"
	}
	return stylePrefix.Render("[vividry]")
}

// brandStops are the control colors of the banner gradient.
var brandStops = []color.Color{
	color.MustFromHex("#ff5f6d"),
	color.MustFromHex("#ffc371"),
	color.MustFromHex("#47cf73"),
	color.MustFromHex("#3a7bd5"),
}

// BrandGradient renders text across the brand gradient.
// In plain mode, returns the text unstyled.
func BrandGradient(text string) string {
	return GradientText(text, brandStops...)
}

// GradientText colors each rune of text along a gradient through stops.
// Spaces are kept but not colored. In plain mode, returns the text unstyled.
func GradientText(text string, stops ...color.Color) string {
	if IsPlainMode() {
		return text
	}
	runes := []rune(text)
	if len(runes) == 0 || len(stops) == 0 {
		return text
	}
	n := max(len(runes), 2)
	var b strings.Builder
	for i, r := range runes {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		c := gradient.Sample(stops, n, i)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#" + clampedHex(c)))
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// hasCapability reports whether the current terminal supports the given capability.
// Always returns false in plain mode (no styled output).
func hasCapability(c terminal.Capability) bool {
	if IsPlainMode() {
		return false
	}
	return terminal.Detect().Caps.Has(c)
}

// Title renders text as a heading. In plain mode, returns the text unstyled.
func Title(text string) string {
	if IsPlainMode() {
		return text
	}
	return StyleTitle.Render(text)
}

// Faint returns text with faint/dim formatting if supported.
func Faint(text string) string {
	if !hasCapability(terminal.CapFaint) {
		return text
	}
	return styleFaint.Render(text)
}
