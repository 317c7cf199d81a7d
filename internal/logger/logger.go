// Package logger is a small leveled logger with styled level labels.
// Messages go to stderr by default so they never mix with swatch output.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Vazpera/vividry/internal/types"
)

// Level orders log verbosity from most to least verbose.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// levelInfo ties a Level to its config name, label and label style.
type levelInfo struct {
	name  types.LogLevel
	label string
	style lipgloss.Style
}

var levels = [...]levelInfo{
	LevelTrace: {types.LogLevelTrace, "TRACE", lipgloss.NewStyle().Foreground(lipgloss.Color("#8E8EA0"))},
	LevelDebug: {types.LogLevelDebug, "DEBUG", lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7"))},
	LevelInfo:  {types.LogLevelInfo, "INFO", lipgloss.NewStyle().Foreground(lipgloss.Color("#9ECE6A"))},
	LevelWarn:  {types.LogLevelWarn, "WARN", lipgloss.NewStyle().Foreground(lipgloss.Color("#E0AF68"))},
	LevelError: {types.LogLevelError, "ERROR", lipgloss.NewStyle().Foreground(lipgloss.Color("#F7768E"))},
}

var styleFaint = lipgloss.NewStyle().Faint(true)

// String returns the upper-case label, e.g. "WARN".
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levels[l].label
}

// ParseLevel maps a config or flag value to a Level. Matching is
// case-insensitive, "warning" is accepted for warn, and empty means info.
func ParseLevel(s string) (Level, error) {
	name := types.LogLevel(s).Normalize()
	if name == "" {
		return LevelInfo, nil
	}
	for l, info := range levels {
		if info.name == name {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q (valid: trace, debug, info, warn, error)", s)
}

// sink is the process-wide destination shared by every Logger.
type sink struct {
	mu      sync.RWMutex
	level   Level
	colored bool
	out     io.Writer
	now     func() time.Time
}

var global = &sink{level: LevelInfo, colored: true, out: os.Stderr, now: time.Now}

// SetGlobalLevel sets the minimum level written by every Logger.
func SetGlobalLevel(level Level) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.level = level
}

// SetGlobalLevelFromString is SetGlobalLevel for a config value.
// Unknown values leave the level unchanged.
func SetGlobalLevelFromString(level string) {
	if l, err := ParseLevel(level); err == nil {
		SetGlobalLevel(l)
	}
}

// SetColored enables or disables styled labels.
func SetColored(colored bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.colored = colored
}

// SetOutput redirects all loggers. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	global.out = w
}

// Logger writes leveled messages tagged with a component name.
type Logger struct {
	component string
}

// New returns a Logger for the named component, e.g. "api".
func New(component string) *Logger {
	return &Logger{component: component}
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return level >= global.level
}

func (l *Logger) write(level Level, format string, args ...any) {
	global.mu.RLock()
	if level < global.level {
		global.mu.RUnlock()
		return
	}
	colored, out, ts := global.colored, global.out, global.now()
	global.mu.RUnlock()

	fmt.Fprintln(out, l.line(ts, level, fmt.Sprintf(format, args...), colored))
}

// line formats one entry: "15:04:05 [LEVEL] [component] message".
func (l *Logger) line(ts time.Time, level Level, msg string, colored bool) string {
	stamp := ts.Format("15:04:05")
	label := "[" + level.String() + "]"
	tag := "[" + l.component + "]"
	if colored {
		stamp = styleFaint.Render(stamp)
		label = levels[level].style.Render(label)
		tag = styleFaint.Render(tag)
	}
	return stamp + " " + label + " " + tag + " " + msg
}

// Trace logs at the most verbose level.
func (l *Logger) Trace(format string, args ...any) { l.write(LevelTrace, format, args...) }

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) { l.write(LevelDebug, format, args...) }

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) { l.write(LevelInfo, format, args...) }

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) { l.write(LevelWarn, format, args...) }

// Error logs an error.
func (l *Logger) Error(format string, args ...any) { l.write(LevelError, format, args...) }
