package tui

import (
	"fmt"
	"io"
	"os"
)

// Status lines go to stdout, errors to stderr.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects status lines to out and errors to errOut.
// A nil writer restores the matching process stream.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout, stderr = out, errOut
}

// PrintSuccess prints a styled success message with the [vividry] prefix.
func PrintSuccess(msg string) {
	if IsPlainMode() {
		fmt.Fprintf(stdout, "[vividry] OK: %s\n", msg)
		return
	}
	fmt.Fprintf(stdout, "%s %s %s\n", Prefix(), StyleSuccess.Render(IconCheck), msg)
}

// PrintError prints a styled error message with the [vividry] prefix.
func PrintError(msg string) {
	if IsPlainMode() {
		fmt.Fprintf(stderr, "[vividry] ERROR: %s\n", msg)
		return
	}
	fmt.Fprintf(stderr, "%s %s %s\n", Prefix(), StyleError.Render(IconCross), msg)
}

// PrintWarning prints a styled warning message with the [vividry] prefix.
func PrintWarning(msg string) {
	if IsPlainMode() {
		fmt.Fprintf(stdout, "[vividry] WARNING: %s\n", msg)
		return
	}
	fmt.Fprintf(stdout, "%s %s %s\n", Prefix(), StyleWarning.Render(IconWarning), msg)
}

// PrintInfo prints a styled info message with the [vividry] prefix.
func PrintInfo(msg string) {
	if IsPlainMode() {
		fmt.Fprintf(stdout, "[vividry] %s\n", msg)
		return
	}
	fmt.Fprintf(stdout, "%s %s %s\n", Prefix(), StyleInfo.Render(IconInfo), msg)
}
