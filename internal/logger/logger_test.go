package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"debug", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"WARNING", LevelWarn, false},
		{"error", LevelError, false},
		{"", LevelInfo, false},       // empty defaults to info
		{"TRACE", LevelTrace, false}, // case-insensitive
		{"Debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"invalid", 0, true},
		{"verbose", 0, true},
		{"fatal", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) should return error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// These tests modify global state and must not run in parallel.

func captureLogs(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetColored(false)
	SetGlobalLevel(level)
	t.Cleanup(func() {
		SetOutput(nil)
		SetColored(true)
		SetGlobalLevel(LevelInfo)
	})
	return &buf
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	buf := captureLogs(t, LevelWarn)
	log := New("test")

	log.Debug("hidden %d", 1)
	log.Info("hidden %d", 2)
	log.Warn("shown %d", 3)
	log.Error("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] [test] shown 3") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] [test] shown 4") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestSetGlobalLevelFromString_IgnoresInvalid(t *testing.T) {
	buf := captureLogs(t, LevelError)
	SetGlobalLevelFromString("bogus")
	New("x").Warn("still filtered")
	if buf.Len() != 0 {
		t.Errorf("invalid level string changed the level: %q", buf.String())
	}

	SetGlobalLevelFromString("trace")
	New("x").Trace("now visible")
	if !strings.Contains(buf.String(), "[TRACE] [x] now visible") {
		t.Errorf("trace line missing: %q", buf.String())
	}
}

func TestLogger_LineFormat(t *testing.T) {
	buf := captureLogs(t, LevelTrace)
	prevNow := global.now
	global.now = func() time.Time { return time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { global.now = prevNow })

	New("gradient").Info("%d samples", 7)
	if got := buf.String(); got != "13:04:05 [INFO] [gradient] 7 samples\n" {
		t.Errorf("line = %q", got)
	}
}

func TestLevel_String(t *testing.T) {
	if LevelWarn.String() != "WARN" || LevelTrace.String() != "TRACE" {
		t.Errorf("labels = %s, %s", LevelWarn, LevelTrace)
	}
	if got := Level(42).String(); got != "Level(42)" {
		t.Errorf("out of range level = %q", got)
	}
}

func TestLogger_Enabled(t *testing.T) {
	captureLogs(t, LevelInfo)
	log := New("x")
	if log.Enabled(LevelDebug) {
		t.Error("debug should be disabled at info")
	}
	if !log.Enabled(LevelError) {
		t.Error("error should be enabled at info")
	}
}
