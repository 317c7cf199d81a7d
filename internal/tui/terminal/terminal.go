// Package terminal detects how many colors the attached terminal can show.
package terminal

import (
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Capability is a bitfield representing terminal features.
type Capability uint16

const (
	CapTruecolor Capability = 1 << iota // 24-bit color
	CapANSI256                          // xterm 256-color palette
	CapANSI                             // 16 basic colors
	CapFaint                            // ANSI faint/dim attribute
)

// Composite capability sets.
const (
	CapNone Capability = 0
	CapAll  Capability = CapTruecolor | CapANSI256 | CapANSI | CapFaint
)

// Has reports whether the capability set includes all bits in v.
func (c Capability) Has(v Capability) bool {
	return c&v == v
}

// With returns the set with v added.
func (c Capability) With(v Capability) Capability {
	return c | v
}

// Without returns the set with v removed.
func (c Capability) Without(v Capability) Capability {
	return c &^ v
}

// Profile maps the best color depth in c to a termenv profile.
func (c Capability) Profile() termenv.Profile {
	switch {
	case c.Has(CapTruecolor):
		return termenv.TrueColor
	case c.Has(CapANSI256):
		return termenv.ANSI256
	case c.Has(CapANSI):
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// Info holds detected terminal capabilities.
type Info struct {
	Caps        Capability // detected feature set
	Multiplexed bool       // true if running inside tmux/screen
}

// EnvFunc is the signature for environment variable lookup (matches os.Getenv).
type EnvFunc func(string) string

var (
	cachedInfo Info
	detectOnce sync.Once
)

// Detect identifies terminal capabilities from os.Getenv.
// Result is cached after first call.
func Detect() Info {
	detectOnce.Do(func() {
		cachedInfo = DetectWith(os.Getenv)
	})
	return cachedInfo
}

// Apple Terminal tops out at the 256-color palette.
var caps256 = CapANSI256 | CapANSI | CapFaint

// DetectWith identifies terminal capabilities using a custom env lookup.
// Not cached, used by tests.
func DetectWith(getenv EnvFunc) Info {
	info := Info{}

	if getenv("TMUX") != "" || getenv("STY") != "" {
		info.Multiplexed = true
	}

	// Most-specific env vars first to avoid false matches.
	switch {
	case getenv("WT_SESSION") != "",
		getenv("KITTY_WINDOW_ID") != "",
		getenv("ALACRITTY_LOG") != "",
		getenv("WEZTERM_EXECUTABLE") != "",
		getenv("KONSOLE_VERSION") != "",
		getenv("GNOME_TERMINAL_SCREEN") != "":
		info.Caps = CapAll
	default:
		switch getenv("TERM_PROGRAM") {
		case "vscode", "iTerm.app", "WezTerm", "ghostty":
			info.Caps = CapAll
		case "Apple_Terminal":
			info.Caps = caps256
		default:
			if getenv("VTE_VERSION") != "" {
				info.Caps = CapAll
			}
		}
	}

	// COLORTERM is authoritative for truecolor on any terminal.
	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		info.Caps = info.Caps.With(CapTruecolor | CapANSI256 | CapANSI)
	}

	// Fall back to TERM for depth when nothing else matched.
	if info.Caps == CapNone {
		term := getenv("TERM")
		switch {
		case term == "" || term == "dumb":
		case strings.Contains(term, "256color"):
			info.Caps = caps256
		default:
			info.Caps = CapANSI
		}
	}

	return info
}
