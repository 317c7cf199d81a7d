package types

import "testing"

func TestLogLevelValid(t *testing.T) {
	valid := []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, "", "warning", "WARN", "Debug"}
	for _, l := range valid {
		if !l.Valid() {
			t.Errorf("LogLevel(%q).Valid() = false, want true", l)
		}
	}
	invalid := []LogLevel{"invalid", "verbose", "fatal", "warnings"}
	for _, l := range invalid {
		if l.Valid() {
			t.Errorf("LogLevel(%q).Valid() = true, want false", l)
		}
	}
}

func TestFormatValid(t *testing.T) {
	for _, f := range AllFormats() {
		if !f.Valid() {
			t.Errorf("AllFormats() contains invalid format: %s", f)
		}
	}
	for _, f := range []Format{"", "HEX", "cmyk", "lab"} {
		if f.Valid() {
			t.Errorf("Format(%q).Valid() = true, want false", f)
		}
	}
	if !FormatTable.IsTable() || FormatHex.IsTable() {
		t.Error("IsTable mismatch")
	}
}

func TestForegroundValid(t *testing.T) {
	for _, f := range []Foreground{ForegroundBlack, ForegroundWhite, ForegroundAuto} {
		if !f.Valid() {
			t.Errorf("Foreground(%q).Valid() = false, want true", f)
		}
	}
	if Foreground("").Valid() || Foreground("gray").Valid() {
		t.Error("unknown foreground should be invalid")
	}
}

func TestLogLevelNormalize(t *testing.T) {
	tests := []struct {
		in   LogLevel
		want LogLevel
	}{
		{"warning", LogLevelWarn},
		{"WARNING", LogLevelWarn},
		{"Info", LogLevelInfo},
		{"", ""},
		{"bogus", "bogus"},
	}
	for _, tt := range tests {
		if got := tt.in.Normalize(); got != tt.want {
			t.Errorf("LogLevel(%q).Normalize() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
