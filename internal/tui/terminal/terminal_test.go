package terminal

import (
	"testing"

	"github.com/muesli/termenv"
)

// mockEnv builds an EnvFunc from a map of key-value pairs.
func mockEnv(env map[string]string) EnvFunc {
	return func(key string) string {
		return env[key]
	}
}

func TestDetectWith_FullCaps(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"WT_SESSION", map[string]string{"WT_SESSION": "guid"}},
		{"KITTY_WINDOW_ID", map[string]string{"KITTY_WINDOW_ID": "1"}},
		{"ALACRITTY_LOG", map[string]string{"ALACRITTY_LOG": "/tmp/log"}},
		{"WEZTERM_EXECUTABLE", map[string]string{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm"}},
		{"KONSOLE_VERSION", map[string]string{"KONSOLE_VERSION": "220401"}},
		{"GNOME_TERMINAL_SCREEN", map[string]string{"GNOME_TERMINAL_SCREEN": "/org/gnome"}},
		{"TERM_PROGRAM_vscode", map[string]string{"TERM_PROGRAM": "vscode"}},
		{"TERM_PROGRAM_iTerm", map[string]string{"TERM_PROGRAM": "iTerm.app"}},
		{"VTE_VERSION_only", map[string]string{"VTE_VERSION": "7200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DetectWith(mockEnv(tt.env))
			if info.Caps != CapAll {
				t.Errorf("Caps = %d, want CapAll (%d)", info.Caps, CapAll)
			}
			if info.Caps.Profile() != termenv.TrueColor {
				t.Errorf("Profile = %v, want TrueColor", info.Caps.Profile())
			}
		})
	}
}

func TestDetectWith_AppleTerminal(t *testing.T) {
	info := DetectWith(mockEnv(map[string]string{"TERM_PROGRAM": "Apple_Terminal"}))
	if info.Caps.Has(CapTruecolor) {
		t.Error("Apple_Terminal should not have CapTruecolor")
	}
	if info.Caps.Profile() != termenv.ANSI256 {
		t.Errorf("Profile = %v, want ANSI256", info.Caps.Profile())
	}
}

func TestDetectWith_Colorterm(t *testing.T) {
	for _, ct := range []string{"truecolor", "24bit"} {
		t.Run(ct, func(t *testing.T) {
			info := DetectWith(mockEnv(map[string]string{"COLORTERM": ct, "TERM_PROGRAM": "Apple_Terminal"}))
			if !info.Caps.Has(CapTruecolor) {
				t.Error("COLORTERM should grant CapTruecolor")
			}
		})
	}
}

func TestDetectWith_TermFallback(t *testing.T) {
	tests := []struct {
		term string
		want termenv.Profile
	}{
		{"xterm-256color", termenv.ANSI256},
		{"screen-256color", termenv.ANSI256},
		{"xterm", termenv.ANSI},
		{"linux", termenv.ANSI},
		{"dumb", termenv.Ascii},
		{"", termenv.Ascii},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			info := DetectWith(mockEnv(map[string]string{"TERM": tt.term}))
			if got := info.Caps.Profile(); got != tt.want {
				t.Errorf("TERM=%q Profile = %v, want %v", tt.term, got, tt.want)
			}
		})
	}
}

func TestDetectWith_Unknown(t *testing.T) {
	info := DetectWith(mockEnv(map[string]string{}))
	if info.Caps != CapNone {
		t.Errorf("Caps = %d, want CapNone", info.Caps)
	}
	if info.Multiplexed {
		t.Error("Multiplexed should be false for empty env")
	}
}

func TestDetectWith_Multiplexed(t *testing.T) {
	for _, key := range []string{"TMUX", "STY"} {
		info := DetectWith(mockEnv(map[string]string{key: "1"}))
		if !info.Multiplexed {
			t.Errorf("%s should mark Multiplexed", key)
		}
	}
}

func TestCapabilityBits(t *testing.T) {
	c := CapNone.With(CapANSI).With(CapFaint)
	if !c.Has(CapANSI | CapFaint) {
		t.Error("With did not add bits")
	}
	c = c.Without(CapFaint)
	if c.Has(CapFaint) {
		t.Error("Without did not remove bit")
	}
	if CapAll.Without(CapTruecolor).Profile() != termenv.ANSI256 {
		t.Error("dropping truecolor should fall back to ANSI256")
	}
}
